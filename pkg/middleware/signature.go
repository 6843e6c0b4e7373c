package middleware

import (
	"errors"

	"github.com/DIMO-Network/line-blog-webhook/internal/signature"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

var errInvalidSignature = errors.New("request body does not match x-line-signature")

// LineSignature checks the x-line-signature header of POST requests against channelSecret.
// When enforce is false a mismatch is only logged.
func LineSignature(channelSecret string, enforce bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			return c.Next()
		}
		if signature.Verify(c.Body(), c.Get(signature.HeaderName), channelSecret) {
			return c.Next()
		}

		logger := zerolog.Ctx(c.UserContext())
		if !enforce {
			logger.Warn().Bool("hasSignature", c.Get(signature.HeaderName) != "").Msg("Webhook signature mismatch")
			return c.Next()
		}
		return richerrors.Error{
			ExternalMsg: "Invalid signature",
			Err:         errInvalidSignature,
			Code:        fiber.StatusUnauthorized,
		}
	}
}
