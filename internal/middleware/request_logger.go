package middleware

import (
	"time"

	"dsa-tutor/internal/logger"
	"dsa-tutor/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderRequestID is echoed on every response.
const HeaderRequestID = "X-Request-ID"

const requestIDKey = "request_id"

// RequestLogger tags each request with an ID and logs its outcome.
// An incoming X-Request-ID header is reused as is.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		id := c.Get(HeaderRequestID)
		if id == "" {
			id = util.NewRequestID()
		}
		c.Locals(requestIDKey, id)
		c.Set(HeaderRequestID, id)

		err := c.Next()
		if err != nil {
			// Run the error handler now so the logged status is the final one
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		logger.Get().Info("Request handled",
			zap.String("request_id", id),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return nil
	}
}

// RequestIDFrom returns the ID assigned by RequestLogger, or "" outside it.
func RequestIDFrom(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}
