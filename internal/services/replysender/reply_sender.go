package replysender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// ReplyFailureCode is the code returned when a reply could not be delivered.
	ReplyFailureCode = -1

	// DefaultBaseURL is the LINE Messaging API host.
	DefaultBaseURL = "https://api.line.me"
	replyPath      = "/v2/bot/message/reply"

	defaultReplyTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// TextMessage is a LINE text message object.
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ReplyRequest is the body of the reply endpoint.
type ReplyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []TextMessage `json:"messages"`
}

// ReplySender posts reply messages to the LINE Messaging API.
type ReplySender struct {
	client      *http.Client
	baseURL     string
	accessToken string
}

// NewReplySender creates a ReplySender. A nil client gets a default with a timeout.
func NewReplySender(client *http.Client, baseURL, accessToken string) *ReplySender {
	if client == nil {
		client = &http.Client{
			Timeout: defaultReplyTimeout,
		}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ReplySender{
		client:      client,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		accessToken: strings.Join(strings.Fields(accessToken), ""),
	}
}

// Reply sends text as a single text message bound to replyToken.
// Returns a richerrors.Error with ReplyFailureCode when delivery fails.
func (s *ReplySender) Reply(ctx context.Context, replyToken, text string) error {
	body, err := json.Marshal(ReplyRequest{
		ReplyToken: replyToken,
		Messages:   []TextMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reply payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+replyPath, bytes.NewBuffer(body))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return richerrors.Error{
				Code: ReplyFailureCode,
				Err:  fmt.Errorf("invalid URL: %w", err),
			}
		}
		return fmt.Errorf("failed to create reply request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: ReplyFailureCode,
			Err:  fmt.Errorf("failed to POST reply: %w", err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= 400 {
		// The platform explains rejected replies in the body, e.g. an expired reply token.
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return richerrors.Error{
			Code: ReplyFailureCode,
			Err:  fmt.Errorf("reply API returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	return nil
}
