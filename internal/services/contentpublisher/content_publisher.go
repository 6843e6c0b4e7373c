package contentpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DIMO-Network/cloudevent"
	"github.com/DIMO-Network/line-blog-webhook/internal/services/contentstore"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const (
	// EventType is the CloudEvent type of content creation notices.
	EventType   = "line-blog.content.created"
	dataVersion = "line-blog.content/v1.0"
)

// ContentCreated is the data of a content creation event.
type ContentCreated struct {
	ID               string    `json:"id"`
	FileName         string    `json:"fileName"`
	Topic            string    `json:"topic"`
	CreatedAt        time.Time `json:"createdAt"`
	Length           int       `json:"length"`
	GenerationFailed bool      `json:"generationFailed"`
}

// ContentPublisher announces stored articles so the blog site can pick them up.
type ContentPublisher struct {
	publisher message.Publisher
	topic     string
	source    string
}

// NewContentPublisher creates a ContentPublisher. A nil publisher disables publishing.
func NewContentPublisher(publisher message.Publisher, topic, source string) *ContentPublisher {
	return &ContentPublisher{
		publisher: publisher,
		topic:     topic,
		source:    source,
	}
}

// Publish sends a content created event for record.
func (p *ContentPublisher) Publish(ctx context.Context, record *contentstore.GeneratedContent, generationFailed bool) error {
	if p.publisher == nil {
		return nil
	}
	event := NewContentCreatedEvent(record, generationFailed, p.source)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal content event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.SetContext(ctx)
	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish content event to %s: %w", p.topic, err)
	}
	return nil
}

// NewContentCreatedEvent wraps record in a CloudEvent.
func NewContentCreatedEvent(record *contentstore.GeneratedContent, generationFailed bool, source string) *cloudevent.CloudEvent[ContentCreated] {
	return &cloudevent.CloudEvent[ContentCreated]{
		CloudEventHeader: cloudevent.CloudEventHeader{
			ID:              uuid.New().String(),
			Source:          source,
			Subject:         record.FileName,
			Time:            time.Now().UTC(),
			DataContentType: "application/json",
			DataVersion:     dataVersion,
			Type:            EventType,
			SpecVersion:     "1.0",
		},
		Data: ContentCreated{
			ID:               record.ID,
			FileName:         record.FileName,
			Topic:            record.Topic,
			CreatedAt:        record.CreatedAt,
			Length:           len([]rune(record.Content)),
			GenerationFailed: generationFailed,
		},
	}
}
