package middleware

import (
	"user-management/config"
	"user-management/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimiter caps requests per client IP. It passes everything through when disabled.
func RateLimiter(cfg config.RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Next: func(*fiber.Ctx) bool {
			return !cfg.Enabled
		},
		Max:        cfg.Max,
		Expiration: cfg.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: dto.ErrorBody{Code: dto.UNAVAILABLE, Message: "rate limit exceeded"},
			})
		},
	})
}
