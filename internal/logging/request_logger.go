package logging

import (
	"log/slog"
	"time"

	"github.com/amarjela/district-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

const errorKey = "request_error"

// RecordError attaches a failure a handler already answered to the request, for RequestLogger.
func RecordError(c *fiber.Ctx, err error) {
	c.Locals(errorKey, err)
}

// RequestLogger logs 5xx answers with their request context so they reach system_logs.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		c.SetUserContext(WithRequestAttrs(c.UserContext(), slog.String("request_id", requestID(c))))
		err := c.Next()

		// Returned errors are logged by the app error handler.
		status := c.Response().StatusCode()
		if err != nil || status < fiber.StatusInternalServerError {
			return err
		}

		attrs := []any{
			"request_id", requestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if actor, ok := identity.GetActor(c); ok {
			attrs = append(attrs, "user_id", actor.ID.String())
		}
		if handled, ok := c.Locals(errorKey).(error); ok {
			attrs = append(attrs, "error", handled.Error())
		}
		slog.Error("request failed", attrs...)
		return err
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
