// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status and duration.
// 5xx responses are logged at error level, 4xx at warn.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		fields := []interface{}{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", status,
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
			"request_id", reqID,
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Errorw("http", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warnw("http", fields...)
		default:
			log.Infow("http", fields...)
		}
		return err
	}
}
