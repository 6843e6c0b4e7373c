package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCompletion is returned when a provider answers without any text.
var ErrEmptyCompletion = errors.New("empty completion")

// Request is a single-prompt completion request.
type Request struct {
	Model     string
	MaxTokens int
	Prompt    string
}

// Client turns a prompt into generated text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ProviderError is an error reported by a generation provider's API.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s API error (%d): %s", e.Provider, e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// cleanKey drops every whitespace character, including ones pasted into the middle of a key.
func cleanKey(key string) string {
	return strings.Join(strings.Fields(key), "")
}
