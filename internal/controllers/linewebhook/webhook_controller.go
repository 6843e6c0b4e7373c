//go:generate go tool mockgen -source=webhook_controller.go -destination=webhook_controller_mock_test.go -package=linewebhook
package linewebhook

import (
	"context"
	"encoding/json"

	"github.com/DIMO-Network/line-blog-webhook/internal/lineevent"
	"github.com/DIMO-Network/line-blog-webhook/internal/services/eventdispatcher"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Dispatcher processes the events of one webhook delivery.
type Dispatcher interface {
	Dispatch(ctx context.Context, events []lineevent.Event) []eventdispatcher.Outcome
}

// WebhookController receives LINE webhook deliveries.
type WebhookController struct {
	dispatcher Dispatcher
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(dispatcher Dispatcher) *WebhookController {
	return &WebhookController{dispatcher: dispatcher}
}

// HandleWebhook godoc
// @Summary      Receive LINE webhook events
// @Description  Accepts a LINE Messaging API webhook delivery. Each text message becomes a generated blog article and a reply to the sender. POST deliveries are always acknowledged with 200 so LINE does not treat processing errors as delivery failures. OPTIONS answers 200 with an empty body; any other method answers 405.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Param        x-line-signature  header    string             false  "Base64 HMAC-SHA256 of the body keyed by the channel secret"
// @Param        request           body      lineevent.Payload  true   "Webhook payload"
// @Success      200               {object}  SuccessResponse    "Delivery acknowledged"
// @Failure      401               {object}  map[string]string  "Invalid signature"
// @Failure      405               {object}  ErrorResponse      "Method not allowed"
// @Router       /api/webhook [post]
func (w *WebhookController) HandleWebhook(c *fiber.Ctx) (err error) {
	switch c.Method() {
	case fiber.MethodOptions:
		return c.Status(fiber.StatusOK).Send(nil)
	case fiber.MethodPost:
	default:
		return c.Status(fiber.StatusMethodNotAllowed).JSON(ErrorResponse{Error: "Method not allowed"})
	}

	ctx := c.UserContext()
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("Webhook received")

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Webhook processing panicked")
			err = c.Status(fiber.StatusOK).JSON(SuccessResponse{Success: true})
		}
	}()

	var payload lineevent.Payload
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		logger.Error().Err(err).Msg("Failed to parse webhook payload")
		return c.Status(fiber.StatusOK).JSON(SuccessResponse{Success: true})
	}

	outcomes := w.dispatcher.Dispatch(ctx, payload.Events)
	summary := zerolog.Dict()
	counts := make(map[eventdispatcher.Status]int)
	for _, o := range outcomes {
		counts[o.Status]++
	}
	for status, n := range counts {
		summary = summary.Int(string(status), n)
	}
	logger.Info().Int("events", len(payload.Events)).Dict("outcomes", summary).Msg("Webhook processed")

	return c.Status(fiber.StatusOK).JSON(SuccessResponse{Success: true})
}
