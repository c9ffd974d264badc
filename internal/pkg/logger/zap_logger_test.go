package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/sparkrides/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger(level zapcore.Level) (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return FromZap(zap.New(core)), logs
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  zapcore.Level
		msg    string
	}{
		{"success", http.StatusOK, zapcore.InfoLevel, "Request processed"},
		{"client error", http.StatusBadRequest, zapcore.WarnLevel, "Client error"},
		{"server error", http.StatusInternalServerError, zapcore.ErrorLevel, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := observedLogger(zapcore.DebugLevel)
			zl.LogHTTPRequest(nil, http.MethodGet, "/api/road-route/", "127.0.0.1", "req-1", tt.status, 5*time.Millisecond, nil)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.msg, entry.Message)
			assert.Equal(t, int64(tt.status), entry.ContextMap()["status"])
			assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
		})
	}
}

func TestNewZapLogger_WritesFile(t *testing.T) {
	path := t.TempDir() + "/logs/app.log"
	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "sparkrides"}, nil)
	require.NoError(t, err)

	zl.Info("hello")
	require.NoError(t, zl.Close())
	assert.FileExists(t, path)
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	zl, err := NewZapLogger(ZapConfig{Level: "loud"}, nil)
	require.NoError(t, err)
	assert.True(t, zl.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, zl.Core().Enabled(zapcore.DebugLevel))
}

func TestZapEchoMiddleware(t *testing.T) {
	zl, logs := observedLogger(zapcore.DebugLevel)
	e := echo.New()
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "/ok?x=1", logs.All()[0].ContextMap()["path"])
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestZapEchoMiddleware_UsesRequestArrival(t *testing.T) {
	zl, logs := observedLogger(zapcore.DebugLevel)
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := requestcontext.WithRequestID(c.Request().Context(), "req-7")
			ctx = context.WithValue(ctx, requestcontext.StartTimeKey, time.Now().Add(-2*time.Second))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-7", fields["request_id"])
	assert.GreaterOrEqual(t, fields["latency_ms"], int64(2000))
}

func TestGlobalLogger(t *testing.T) {
	zl, logs := observedLogger(zapcore.InfoLevel)
	SetGlobalLogger(zl)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	Info("resolved", String("key", "a"))
	Debug("hidden")
	assert.Equal(t, 1, logs.Len())
	assert.Same(t, zl, GetGlobalLogger())
}

func TestCtxLoggingCarriesRequestID(t *testing.T) {
	zl, logs := observedLogger(zapcore.InfoLevel)
	SetGlobalLogger(zl)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	WarnCtx(requestcontext.WithRequestID(context.Background(), "req-42"), "route lookup failed")
	InfoCtx(context.Background(), "no request")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "req-42", logs.All()[0].ContextMap()["request_id"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "request_id")
}
