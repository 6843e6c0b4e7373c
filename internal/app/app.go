package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	_ "github.com/DIMO-Network/line-blog-webhook/docs" // Import Swagger docs
	"github.com/DIMO-Network/line-blog-webhook/internal/clients/llm"
	"github.com/DIMO-Network/line-blog-webhook/internal/config"
	"github.com/DIMO-Network/line-blog-webhook/internal/controllers/contents"
	"github.com/DIMO-Network/line-blog-webhook/internal/controllers/linewebhook"
	"github.com/DIMO-Network/line-blog-webhook/internal/eventfilter"
	"github.com/DIMO-Network/line-blog-webhook/internal/kafka"
	"github.com/DIMO-Network/line-blog-webhook/internal/services/contentgenerator"
	"github.com/DIMO-Network/line-blog-webhook/internal/services/contentpublisher"
	"github.com/DIMO-Network/line-blog-webhook/internal/services/contentstore"
	"github.com/DIMO-Network/line-blog-webhook/internal/services/eventdedup"
	"github.com/DIMO-Network/line-blog-webhook/internal/services/eventdispatcher"
	"github.com/DIMO-Network/line-blog-webhook/internal/services/replysender"
	"github.com/DIMO-Network/line-blog-webhook/pkg/middleware"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

const (
	WebhookPath  = "/api/webhook"
	ContentsPath = "/v1/contents"
)

var errMissingChannelSecret = errors.New("VERIFY_SIGNATURE is enabled but LINE_CHANNEL_SECRET is empty")

func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	if settings.VerifySignature && settings.LineChannelSecret == "" {
		return nil, errMissingChannelSecret
	}
	if settings.LineChannelAccessToken == "" {
		logger.Warn().Msg("LINE_CHANNEL_ACCESS_TOKEN is empty, replies will be rejected")
	}

	llmClient, err := llm.NewClient(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	filter, err := eventfilter.Prepare(settings.EventFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare event filter: %w", err)
	}

	publisher, err := startContentPublisher(ctx, logger, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to start content publisher: %w", err)
	}

	store := contentstore.NewMemoryStore()
	dispatcher, err := eventdispatcher.NewEventDispatcher(eventdispatcher.Config{
		Generator:   contentgenerator.NewContentGenerator(llmClient, settings.LLMModel, settings.LLMMaxTokens, logger),
		Store:       store,
		Publisher:   contentpublisher.NewContentPublisher(publisher, settings.ContentTopic, settings.ServiceName),
		Replier:     replysender.NewReplySender(nil, settings.LineAPIBaseURL, settings.LineChannelAccessToken),
		Dedup:       eventdedup.New(settings.EventDedupTTL),
		Filter:      filter,
		BlogSiteURL: settings.BlogSiteURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event dispatcher: %w", err)
	}

	return CreateFiberApp(logger, dispatcher, store, settings), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, dispatcher linewebhook.Dispatcher, store contents.Lister, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting LINE blog webhook...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)
	app.Use(middleware.CORSHeaders)

	app.Get("/swagger/*", swagger.HandlerDefault)

	webhookController := linewebhook.NewWebhookController(dispatcher)
	contentsController := contents.NewContentsController(store)
	logger.Info().Bool("verifySignature", settings.VerifySignature).Msg("Registering routes...")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	app.All(WebhookPath, middleware.LineSignature(settings.LineChannelSecret, settings.VerifySignature), webhookController.HandleWebhook)
	app.Get(ContentsPath, contentsController.ListContents)

	return app
}

// startContentPublisher connects to Kafka when brokers are configured. It returns nil otherwise,
// which leaves content events disabled.
func startContentPublisher(ctx context.Context, logger zerolog.Logger, settings *config.Settings) (message.Publisher, error) {
	brokers := splitBrokers(settings.KafkaBrokers)
	if len(brokers) == 0 {
		logger.Info().Msg("KAFKA_BROKERS is empty, content events are disabled")
		return nil, nil
	}

	clusterConfig := sarama.NewConfig()
	clusterConfig.Version = sarama.V2_8_1_0

	publisher, err := kafka.NewPublisher(&kafka.Config{
		ClusterConfig:   clusterConfig,
		BrokerAddresses: brokers,
	})
	if err != nil {
		return nil, err
	}

	go func() {
		<-ctx.Done()
		if err := publisher.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close content publisher")
		}
	}()

	logger.Info().Msgf("Content events publishing to topic: %s", settings.ContentTopic)
	return publisher, nil
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
