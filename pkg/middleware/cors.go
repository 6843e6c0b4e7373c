package middleware

import (
	"strings"

	"github.com/DIMO-Network/line-blog-webhook/internal/signature"
	"github.com/gofiber/fiber/v2"
)

var (
	allowedMethods = strings.Join([]string{fiber.MethodPost, fiber.MethodGet, fiber.MethodOptions}, ", ")
	allowedHeaders = "Content-Type, " + signature.HeaderName
)

// CORSHeaders sets the CORS headers on every response, whether or not the request carries an Origin.
func CORSHeaders(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, allowedMethods)
	c.Set(fiber.HeaderAccessControlAllowHeaders, allowedHeaders)
	return c.Next()
}
