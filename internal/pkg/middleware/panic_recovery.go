package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/sparkrides/internal/pkg/logger"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	StackSize int
	Logger    *logger.ZapLogger
}

// DefaultPanicRecoveryConfig returns default configuration for panic recovery
func DefaultPanicRecoveryConfig() PanicRecoveryConfig {
	return PanicRecoveryConfig{
		StackSize: 4 << 10, // 4 KB
	}
}

// PanicRecoveryMiddleware recovers from panics in handlers, logs them with
// the stack trace and answers 500
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, config)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	config := DefaultPanicRecoveryConfig()
	config.Logger = zapLogger
	return PanicRecoveryMiddleware(config)
}

func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) {
	stack := debug.Stack()
	if config.StackSize > 0 && len(stack) > config.StackSize {
		stack = stack[:config.StackSize]
	}
	stackTrace := string(stack)

	req := c.Request()
	requestID := getRequestID(c)
	panicType := fmt.Sprintf("%T", r)

	log := config.Logger.Logger
	if txn := newrelic.FromContext(req.Context()); txn != nil {
		log = config.Logger.WithNewRelicContext(txn)
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  panicType,
				"http.method": req.Method,
				"http.path":   req.URL.Path,
				"request_id":  requestID,
			},
		})
	}

	log.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", panicType),
		logger.String("stack_trace", stackTrace),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_agent", req.UserAgent()),
		logger.String("request_id", requestID),
	)

	sendPanicResponse(c, requestID)
}

func extractSafeHeaders(headers http.Header) map[string]string {
	safe := make(map[string]string)
	sensitiveHeaders := map[string]bool{
		"authorization": true,
		"cookie":        true,
		"set-cookie":    true,
		"x-api-key":     true,
	}

	for name, values := range headers {
		if !sensitiveHeaders[strings.ToLower(name)] && len(values) > 0 {
			safe[name] = values[0]
		}
	}
	return safe
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func sendPanicResponse(c echo.Context, requestID string) {
	if c.Response().Committed {
		return
	}

	response := map[string]interface{}{
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred while processing your request",
	}
	if requestID != "" {
		response["request_id"] = requestID
	}

	if err := c.JSON(http.StatusInternalServerError, response); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
