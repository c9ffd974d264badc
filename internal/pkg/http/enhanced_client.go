package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/piresc/sparkrides/internal/pkg/circuitbreaker"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	nrpkg "github.com/piresc/sparkrides/internal/pkg/newrelic"
)

// MaxResponseBytes caps how much of a response body is read
const MaxResponseBytes = 16 << 20

// EnhancedClient wraps http.Client with a per-host circuit breaker and
// New Relic external segments. Requests are sent exactly once.
type EnhancedClient struct {
	client         *http.Client
	circuitManager *circuitbreaker.Manager
	logger         *logger.ZapLogger
	headers        http.Header
}

// Option configures an EnhancedClient
type Option func(*EnhancedClient)

// WithHeader sets a header sent on every request
func WithHeader(key, value string) Option {
	return func(c *EnhancedClient) {
		c.headers.Set(key, value)
	}
}

// WithUserAgent sets the User-Agent sent on every request
func WithUserAgent(ua string) Option {
	return WithHeader("User-Agent", ua)
}

// WithTransport replaces the underlying round tripper
func WithTransport(rt http.RoundTripper) Option {
	return func(c *EnhancedClient) {
		c.client.Transport = rt
	}
}

// WithCircuitManager shares a breaker manager between clients
func WithCircuitManager(m *circuitbreaker.Manager) Option {
	return func(c *EnhancedClient) {
		c.circuitManager = m
	}
}

// NewEnhancedClient creates a new enhanced HTTP client
func NewEnhancedClient(log *logger.ZapLogger, timeout time.Duration, opts ...Option) *EnhancedClient {
	c := &EnhancedClient{
		client:  &http.Client{Timeout: timeout},
		logger:  log,
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.circuitManager == nil {
		c.circuitManager = circuitbreaker.NewManagerWithConfig(log, BreakerConfig)
	}
	return c
}

// BreakerConfig opens a host's breaker after repeated transport errors or
// 5xx answers. Client errors and caller cancellations are not counted.
func BreakerConfig(name string) circuitbreaker.Config {
	cfg := circuitbreaker.DefaultConfig(name)
	cfg.Timeout = 30 * time.Second
	cfg.IsFailure = func(err error) bool {
		if err == nil || errors.Is(err, context.Canceled) {
			return false
		}
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return httpErr.StatusCode >= 500
		}
		return true
	}
	return cfg
}

// Do sends req once and returns the response body. Any status outside
// 2xx is reported as *HTTPError.
func (c *EnhancedClient) Do(ctx context.Context, req *http.Request) ([]byte, error) {
	serviceName := req.URL.Host
	if serviceName == "" {
		serviceName = "unknown"
	}

	for key, values := range c.headers {
		if req.Header.Get(key) == "" {
			req.Header[key] = values
		}
	}

	var body []byte
	err := c.circuitManager.Execute(ctx, serviceName, func(ctx context.Context) error {
		resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
			return c.client.Do(req.WithContext(ctx))
		})
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &HTTPError{
				StatusCode: resp.StatusCode,
				Message:    http.StatusText(resp.StatusCode),
				Body:       body,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Get performs a GET request
func (c *EnhancedClient) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (c *EnhancedClient) GetCircuitBreakerStats() map[string]circuitbreaker.Stats {
	return c.circuitManager.GetStats()
}

// HTTPError represents a non-2xx response
type HTTPError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Message)
}
