package middleware

import (
	"time"

	"github.com/arzan03/aircnc-server/internal/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// NewRequestLogger attaches a request-scoped logger to the user context and
// writes one access log line per request.
func NewRequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)

		reqLog := log.With("request_id", requestID)
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		chainErr := c.Next()
		if chainErr != nil {
			// Let the app error handler write the response so the logged
			// status matches what the client sees.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		evt := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			evt = reqLog.Error()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")

		return nil
	}
}
