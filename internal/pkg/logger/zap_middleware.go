package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/sparkrides/internal/pkg/requestcontext"
)

// ZapEchoMiddleware logs every request served by echo with the given logger.
// Latency counts from the arrival time recorded by the request ID middleware
// when it ran first.
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := req.URL.Path
			if raw := req.URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo write the error response so the logged status is final
				c.Error(err)
			}

			ctx := c.Request().Context()
			latency := requestcontext.Elapsed(ctx)
			if latency == 0 {
				latency = time.Since(start)
			}
			requestID := requestcontext.RequestID(ctx)
			if requestID == "" {
				requestID = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			logger.LogHTTPRequest(newrelic.FromContext(ctx), req.Method, path, c.RealIP(), requestID, c.Response().Status, latency, err)

			return nil
		}
	}
}
