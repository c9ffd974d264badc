package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/sparkrides/internal/pkg/requestcontext"
)

const maxRequestIDLength = 128

// RequestIDMiddleware propagates the caller's X-Request-ID or assigns a new
// UUID, and echoes it on the response
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.NewString()
				req.Header.Set(echo.HeaderXRequestID, requestID)
			}

			c.SetRequest(req.WithContext(requestcontext.WithRequestID(req.Context(), requestID)))
			c.Set("request_id", requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			return next(c)
		}
	}
}
