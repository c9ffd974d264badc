package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/sparkrides/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/sparkrides/internal/pkg/http"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/models"
	"github.com/piresc/sparkrides/services/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	eastPaloAlto = models.Coordinate{Latitude: 37.4688, Longitude: -122.1411}
	sanJose      = models.Coordinate{Latitude: 37.3382, Longitude: -121.8863}
)

func newTestGateway(url string, timeout time.Duration, opts ...httpclient.Option) *HTTPGateway {
	cfg := models.RoutingConfig{
		ProviderURL: url + "/route/v1/driving/",
		UserAgent:   "sparkrides-route-client/1.0",
		Timeout:     timeout,
	}
	client := httpclient.NewEnhancedClient(logger.NewNopLogger(), cfg.Timeout,
		append([]httpclient.Option{
			httpclient.WithUserAgent(cfg.UserAgent),
			httpclient.WithHeader("Accept", "application/json"),
		}, opts...)...)
	return NewHTTPGateway(cfg, client)
}

func TestHTTPGateway_FetchRoute_Request(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/route/v1/driving/-122.1411,37.4688;-121.8863,37.3382", r.URL.Path)
		assert.Equal(t, "full", r.URL.Query().Get("overview"))
		assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))
		assert.Equal(t, "sparkrides-route-client/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"code":"Ok","routes":[{"geometry":{"type":"LineString","coordinates":[[-122.1411,37.4688],[-121.8863,37.3382]]}}]}`)
	}))
	defer server.Close()

	path, err := newTestGateway(server.URL, time.Second).FetchRoute(context.Background(), eastPaloAlto, sanJose)
	require.NoError(t, err)
	assert.Equal(t, models.RoutePath{eastPaloAlto, sanJose}, path)
}

func TestHTTPGateway_FetchRoute_Polyline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":"Ok","routes":[{"geometry":"_p~iF~ps|U_ulLnnqC_mqNvxq`+"`"+`@"}]}`)
	}))
	defer server.Close()

	path, err := newTestGateway(server.URL, time.Second).FetchRoute(context.Background(), eastPaloAlto, sanJose)
	require.NoError(t, err)
	assert.Len(t, path, 3)
}

func TestHTTPGateway_FetchRoute_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "oops", wantErr: routes.ErrProviderStatus},
		{name: "rate limited", status: http.StatusTooManyRequests, body: "slow down", wantErr: routes.ErrProviderStatus},
		{name: "osrm no route", status: http.StatusBadRequest, body: `{"code":"NoRoute","message":"Impossible route"}`, wantErr: routes.ErrNoRoute},
		{name: "not json", status: http.StatusOK, body: "<html>", wantErr: routes.ErrMalformedResponse},
		{name: "provider error code", status: http.StatusOK, body: `{"code":"NoSegment","routes":[]}`, wantErr: routes.ErrNoRoute},
		{name: "no routes", status: http.StatusOK, body: `{"code":"Ok","routes":[]}`, wantErr: routes.ErrNoRoute},
		{name: "no geometry", status: http.StatusOK, body: `{"code":"Ok","routes":[{"distance":10}]}`, wantErr: routes.ErrNoGeometry},
		{name: "one point", status: http.StatusOK, body: `{"code":"Ok","routes":[{"geometry":{"coordinates":[[-122.1411,37.4688]]}}]}`, wantErr: routes.ErrNoGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			path, err := newTestGateway(server.URL, time.Second).FetchRoute(context.Background(), eastPaloAlto, sanJose)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, path)
		})
	}
}

func TestHTTPGateway_FetchRoute_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := newTestGateway(server.URL, 50*time.Millisecond).FetchRoute(context.Background(), eastPaloAlto, sanJose)
	assert.ErrorIs(t, err, routes.ErrProviderUnavailable)
}

func TestHTTPGateway_FetchRoute_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestGateway(url, time.Second).FetchRoute(context.Background(), eastPaloAlto, sanJose)
	assert.ErrorIs(t, err, routes.ErrProviderUnavailable)
}

func TestHTTPGateway_FetchRoute_CircuitOpen(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	manager := circuitbreaker.NewManagerWithConfig(logger.NewNopLogger(), func(name string) circuitbreaker.Config {
		cfg := httpclient.BreakerConfig(name)
		cfg.FailureThreshold = 1
		return cfg
	})
	gw := newTestGateway(server.URL, time.Second, httpclient.WithCircuitManager(manager))

	_, err := gw.FetchRoute(context.Background(), eastPaloAlto, sanJose)
	require.ErrorIs(t, err, routes.ErrProviderStatus)

	_, err = gw.FetchRoute(context.Background(), eastPaloAlto, sanJose)
	assert.ErrorIs(t, err, routes.ErrCircuitOpen)
	assert.True(t, errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	stats := gw.CircuitBreakerStats()
	require.Len(t, stats, 1)
	for _, s := range stats {
		assert.Equal(t, "OPEN", s.State)
	}
}
