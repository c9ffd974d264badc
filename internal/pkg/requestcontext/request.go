package requestcontext

import (
	"context"
	"time"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// StartTimeKey is the context key for the time the request arrived
	StartTimeKey ContextKey = "start_time"
)

// WithRequestID stores the request ID and arrival time in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	return context.WithValue(ctx, StartTimeKey, time.Now())
}

// RequestID returns the request ID stored in ctx, or ""
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Elapsed returns the time since the request arrived, or 0 when unknown
func Elapsed(ctx context.Context) time.Duration {
	if ctx == nil {
		return 0
	}
	start, ok := ctx.Value(StartTimeKey).(time.Time)
	if !ok {
		return 0
	}
	return time.Since(start)
}
