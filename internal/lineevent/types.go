// Package lineevent holds the subset of the LINE Messaging API webhook payload this service reads.
package lineevent

const (
	TypeMessage     = "message"
	MessageTypeText = "text"
)

// Payload is the body LINE posts to the webhook URL.
type Payload struct {
	// Destination is the user ID of the bot that received the events.
	Destination string `json:"destination"`
	// Events may be empty; LINE sends an empty list when verifying the webhook URL.
	Events []Event `json:"events"`
}

// Event is a single webhook event.
type Event struct {
	Type            string           `json:"type"`
	Message         *Message         `json:"message,omitempty"`
	ReplyToken      string           `json:"replyToken"`
	WebhookEventID  string           `json:"webhookEventId"`
	Timestamp       int64            `json:"timestamp"`
	Source          *Source          `json:"source,omitempty"`
	DeliveryContext *DeliveryContext `json:"deliveryContext,omitempty"`
}

// Message is the message object of a message event.
type Message struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// Source identifies who sent the event.
type Source struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

// DeliveryContext tells whether LINE is redelivering an event.
type DeliveryContext struct {
	IsRedelivery bool `json:"isRedelivery"`
}

// MessageType returns the message type, or "" for events without a message.
func (e *Event) MessageType() string {
	if e.Message == nil {
		return ""
	}
	return e.Message.Type
}

// Text returns the message text, or "" for events without a message.
func (e *Event) Text() string {
	if e.Message == nil {
		return ""
	}
	return e.Message.Text
}

// SourceType returns the source type (user, group, room), or "".
func (e *Event) SourceType() string {
	if e.Source == nil {
		return ""
	}
	return e.Source.Type
}

// UserID returns the sending user's ID, or "".
func (e *Event) UserID() string {
	if e.Source == nil {
		return ""
	}
	return e.Source.UserID
}

// IsTextMessage reports whether the event is a text message event.
func (e *Event) IsTextMessage() bool {
	return e.Type == TypeMessage && e.MessageType() == MessageTypeText
}
