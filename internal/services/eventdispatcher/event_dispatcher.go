//go:generate go tool mockgen -source=event_dispatcher.go -destination=event_dispatcher_mock_test.go -package=eventdispatcher
package eventdispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/DIMO-Network/line-blog-webhook/internal/eventfilter"
	"github.com/DIMO-Network/line-blog-webhook/internal/lineevent"
	"github.com/DIMO-Network/line-blog-webhook/internal/services/contentgenerator"
	"github.com/DIMO-Network/line-blog-webhook/internal/services/contentstore"
	"github.com/google/cel-go/cel"
	"github.com/rs/zerolog"
)

type ContentGenerator interface {
	Generate(ctx context.Context, topic string) contentgenerator.Generation
}

type ContentStore interface {
	Append(ctx context.Context, record *contentstore.GeneratedContent) (string, error)
	List(ctx context.Context) ([]contentstore.GeneratedContent, error)
}

type ContentPublisher interface {
	Publish(ctx context.Context, record *contentstore.GeneratedContent, generationFailed bool) error
}

type ReplySender interface {
	Reply(ctx context.Context, replyToken, text string) error
}

type Deduplicator interface {
	Seen(eventID string) bool
}

// Status is the result of processing one webhook event.
type Status string

const (
	StatusCompleted   Status = "completed"
	StatusSkipped     Status = "skipped"
	StatusDuplicate   Status = "duplicate"
	StatusReplyFailed Status = "reply_failed"
	StatusFailed      Status = "failed"
)

// Outcome describes what happened to one event.
type Outcome struct {
	Index            int
	Status           Status
	Topic            string
	FileName         string
	GenerationFailed bool
	Err              error
}

// Config holds the dispatcher's collaborators.
type Config struct {
	Generator   ContentGenerator
	Store       ContentStore
	Publisher   ContentPublisher
	Replier     ReplySender
	Dedup       Deduplicator
	Filter      cel.Program
	BlogSiteURL string
}

// EventDispatcher runs generate, store, publish and reply for each accepted event.
type EventDispatcher struct {
	generator   ContentGenerator
	store       ContentStore
	publisher   ContentPublisher
	replier     ReplySender
	dedup       Deduplicator
	filter      cel.Program
	blogSiteURL string
	now         func() time.Time
}

// NewEventDispatcher creates an EventDispatcher. A nil Filter uses eventfilter.DefaultExpression.
func NewEventDispatcher(cfg Config) (*EventDispatcher, error) {
	filter := cfg.Filter
	if filter == nil {
		prg, err := eventfilter.Prepare(eventfilter.DefaultExpression)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare default event filter: %w", err)
		}
		filter = prg
	}
	return &EventDispatcher{
		generator:   cfg.Generator,
		store:       cfg.Store,
		publisher:   cfg.Publisher,
		replier:     cfg.Replier,
		dedup:       cfg.Dedup,
		filter:      filter,
		blogSiteURL: cfg.BlogSiteURL,
		now:         time.Now,
	}, nil
}

// Dispatch processes events one after another. A failing event never stops the ones after it.
func (d *EventDispatcher) Dispatch(ctx context.Context, events []lineevent.Event) []Outcome {
	outcomes := make([]Outcome, 0, len(events))
	for i := range events {
		outcome := d.dispatchEvent(ctx, &events[i])
		outcome.Index = i
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// dispatchEvent is the per-event failure boundary. A panic anywhere in it, including while
// sending the error reply, becomes a failed outcome for this event only.
func (d *EventDispatcher) dispatchEvent(ctx context.Context, event *lineevent.Event) (outcome Outcome) {
	logger := zerolog.Ctx(ctx).With().
		Str("webhookEventId", event.WebhookEventID).
		Str("eventType", event.Type).
		Logger()
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic while dispatching event: %v", r)
			logger.Error().Err(err).Msg("Event dispatch panicked")
			outcome = Outcome{Status: StatusFailed, Topic: event.Text(), FileName: outcome.FileName, Err: err}
		}
	}()

	ok, err := eventfilter.Matches(d.filter, event)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to evaluate event filter")
		return Outcome{Status: StatusSkipped, Err: err}
	}
	if !ok {
		logger.Debug().Msg("Event does not match filter; skipping.")
		return Outcome{Status: StatusSkipped}
	}

	if d.dedup != nil && d.dedup.Seen(event.WebhookEventID) {
		logger.Info().
			Bool("isRedelivery", event.DeliveryContext != nil && event.DeliveryContext.IsRedelivery).
			Msg("Event already processed; skipping.")
		return Outcome{Status: StatusDuplicate, Topic: event.Text()}
	}

	ctx = logger.WithContext(ctx)
	logger.Info().Str("topic", event.Text()).Str("userId", event.UserID()).Msg("Message received")

	outcome = d.processEvent(ctx, event)
	if outcome.Status != StatusFailed {
		return outcome
	}

	logger.Error().Err(outcome.Err).Msg("Blog generation error")
	if err := d.replier.Reply(ctx, event.ReplyToken, ErrorMessage(outcome.Err)); err != nil {
		logger.Error().Err(err).Msg("Error sending reply")
	}
	return outcome
}

// processEvent runs the pipeline for one accepted event. Panics are turned into a failed outcome.
func (d *EventDispatcher) processEvent(ctx context.Context, event *lineevent.Event) (outcome Outcome) {
	topic := event.Text()
	outcome.Topic = topic
	defer func() {
		if r := recover(); r != nil {
			outcome.Status = StatusFailed
			outcome.Err = fmt.Errorf("panic while processing event: %v", r)
		}
	}()
	logger := zerolog.Ctx(ctx)

	generation := d.generator.Generate(ctx, topic)
	outcome.GenerationFailed = generation.Failed()
	if generation.Failed() {
		// The placeholder article is still stored and announced like a normal one.
		logger.Warn().Err(generation.Err).Str("topic", topic).Msg("Generation failed; storing error content")
	} else {
		logger.Info().Str("topic", topic).Msg("Blog generated successfully")
	}

	record, err := contentstore.Save(ctx, d.store, generation.Content, topic, d.now())
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}
	outcome.FileName = record.FileName
	logger.Info().Str("fileName", record.FileName).Msg("Blog saved")

	if d.publisher != nil {
		if err := d.publisher.Publish(ctx, record, generation.Failed()); err != nil {
			logger.Error().Err(err).Str("fileName", record.FileName).Msg("Failed to publish content event")
		}
	}

	if err := d.replier.Reply(ctx, event.ReplyToken, SuccessMessage(topic, record.FileName, d.blogSiteURL)); err != nil {
		logger.Error().Err(err).Msg("Error sending reply")
		outcome.Status = StatusReplyFailed
		outcome.Err = err
		return outcome
	}
	logger.Info().Msg("Reply sent successfully")

	outcome.Status = StatusCompleted
	return outcome
}

// SuccessMessage is the reply sent after an article has been stored.
func SuccessMessage(topic, fileName, blogSiteURL string) string {
	return fmt.Sprintf("🎉 ブログ記事の生成が完了しました！\n\n"+
		"📝 テーマ: 「%s」\n"+
		"📄 ファイル名: %s\n"+
		"🌐 ブログサイト: %s\n\n"+
		"新しい記事がブログサイトに表示されています！", topic, fileName, blogSiteURL)
}

// ErrorMessage is the reply sent when an event could not be processed.
func ErrorMessage(err error) string {
	return fmt.Sprintf("❌ エラーが発生しました: %s", err.Error())
}
