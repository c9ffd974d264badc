package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// InstrumentHTTPRequest runs doFunc inside an external segment of the
// transaction carried by ctx, if any
//
//	resp, err := InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
//	  return client.Do(req)
//	})
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, doFunc func() (*http.Response, error)) (*http.Response, error) {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return doFunc()
	}

	segment := newrelic.StartExternalSegment(txn, req)
	defer segment.End()

	resp, err := doFunc()
	if resp != nil {
		segment.Response = resp
	}
	return resp, err
}

// AddTransactionAttribute adds a custom attribute to the transaction in ctx
func AddTransactionAttribute(ctx context.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeTransactionError reports err on the transaction in ctx
func NoticeTransactionError(ctx context.Context, err error) {
	if txn := newrelic.FromContext(ctx); txn != nil && err != nil {
		txn.NoticeError(err)
	}
}
