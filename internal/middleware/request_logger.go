package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"tamrah/internal/logging"
	"tamrah/internal/metrics"
)

// RequestLogger logs every request and records it in the HTTP metrics.
// Routes are labelled by pattern, not raw path, to bound label cardinality.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		route := c.Route().Path
		if status == fiber.StatusNotFound && route == "/" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(elapsed.Seconds())

		var event *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			event = logging.Error()
		case status >= fiber.StatusBadRequest:
			event = logging.Warn()
		default:
			event = logging.Info()
		}
		event.
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("HTTP request")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
