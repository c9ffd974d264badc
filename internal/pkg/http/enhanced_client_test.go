package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/sparkrides/internal/pkg/circuitbreaker"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhancedClient_GetSendsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sparkrides-test/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"code":"Ok"}`))
	}))
	defer server.Close()

	client := NewEnhancedClient(logger.NewNopLogger(), time.Second,
		WithUserAgent("sparkrides-test/1.0"),
		WithHeader("Accept", "application/json"))

	body, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"Ok"}`, string(body))
}

func TestEnhancedClient_NonSuccessStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	client := NewEnhancedClient(logger.NewNopLogger(), time.Second)
	_, err := client.Get(context.Background(), server.URL)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "upstream down", string(httpErr.Body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "requests are never retried")
}

func TestEnhancedClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewEnhancedClient(logger.NewNopLogger(), 50*time.Millisecond)
	_, err := client.Get(context.Background(), server.URL)
	require.Error(t, err)
}

func TestEnhancedClient_CircuitOpensOnServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	manager := circuitbreaker.NewManagerWithConfig(logger.NewNopLogger(), func(name string) circuitbreaker.Config {
		cfg := BreakerConfig(name)
		cfg.FailureThreshold = 2
		return cfg
	})
	client := NewEnhancedClient(logger.NewNopLogger(), time.Second, WithCircuitManager(manager))

	for i := 0; i < 2; i++ {
		_, err := client.Get(context.Background(), server.URL)
		require.Error(t, err)
	}
	_, err := client.Get(context.Background(), server.URL)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitBreakerOpen)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	host := strings.TrimPrefix(server.URL, "http://")
	assert.Equal(t, "OPEN", client.GetCircuitBreakerStats()[host].State)
}

func TestBreakerConfig_IgnoresClientErrors(t *testing.T) {
	isFailure := BreakerConfig("provider").IsFailure

	assert.False(t, isFailure(nil))
	assert.False(t, isFailure(context.Canceled))
	assert.False(t, isFailure(&HTTPError{StatusCode: http.StatusBadRequest}))
	assert.True(t, isFailure(&HTTPError{StatusCode: http.StatusInternalServerError}))
	assert.True(t, isFailure(context.DeadlineExceeded))
}
