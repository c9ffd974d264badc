package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// SetTransactionName sets the transaction name for the transaction in ctx
func SetTransactionName(ctx context.Context, name string) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.SetName(name)
	}
}

// WithSegmentAndReturn executes fn within a New Relic segment and returns its value
func WithSegmentAndReturn[T any](ctx context.Context, segmentName string, fn func() (T, error)) (T, error) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		defer txn.StartSegment(segmentName).End()
	}
	return fn()
}

// WithDatastoreSegment records fn as a PostgreSQL operation on collection
func WithDatastoreSegment[T any](ctx context.Context, collection, operation string, fn func() (T, error)) (T, error) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		segment := newrelic.DatastoreSegment{
			StartTime:  txn.StartSegmentNow(),
			Product:    newrelic.DatastorePostgres,
			Collection: collection,
			Operation:  operation,
		}
		defer segment.End()
	}
	return fn()
}

// TraceHandler names the transaction after handlerName and reports handler errors
func TraceHandler(handlerName string, handler echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		SetTransactionName(ctx, handlerName)

		err := handler(c)
		if err != nil {
			NoticeTransactionError(ctx, err)
		}
		return err
	}
}
