package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/piresc/sparkrides/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/sparkrides/internal/pkg/http"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/models"
	nrpkg "github.com/piresc/sparkrides/internal/pkg/newrelic"
	"github.com/piresc/sparkrides/services/routes"
)

const providerOK = "Ok"

// HTTPGateway fetches driving routes from an OSRM-compatible provider
type HTTPGateway struct {
	client  *httpclient.EnhancedClient
	baseURL string
}

// NewProviderClient builds the HTTP client used for provider calls
func NewProviderClient(cfg models.RoutingConfig, log *logger.ZapLogger) *httpclient.EnhancedClient {
	return httpclient.NewEnhancedClient(log, cfg.Timeout,
		httpclient.WithUserAgent(cfg.UserAgent),
		httpclient.WithHeader("Accept", "application/json"))
}

// NewHTTPGateway creates a routing provider gateway
func NewHTTPGateway(cfg models.RoutingConfig, client *httpclient.EnhancedClient) *HTTPGateway {
	return &HTTPGateway{
		client:  client,
		baseURL: strings.TrimRight(cfg.ProviderURL, "/"),
	}
}

// CircuitBreakerStats reports the breaker state per provider host
func (gw *HTTPGateway) CircuitBreakerStats() map[string]circuitbreaker.Stats {
	return gw.client.GetCircuitBreakerStats()
}

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry json.RawMessage `json:"geometry"`
	} `json:"routes"`
}

// FetchRoute asks the provider for the full driving geometry between two
// points. Coordinates travel as lng,lat on the wire.
func (gw *HTTPGateway) FetchRoute(ctx context.Context, origin, destination models.Coordinate) (models.RoutePath, error) {
	url := gw.routeURL(origin, destination)
	nrpkg.AddTransactionAttribute(ctx, "route.provider_url", url)

	body, err := gw.client.Get(ctx, url)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	var resp routeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", routes.ErrMalformedResponse, err)
	}
	if resp.Code != "" && resp.Code != providerOK {
		return nil, fmt.Errorf("%w: %s %s", routes.ErrNoRoute, resp.Code, resp.Message)
	}
	if len(resp.Routes) == 0 {
		return nil, fmt.Errorf("%w: empty routes", routes.ErrNoRoute)
	}

	return decodeGeometry(resp.Routes[0].Geometry)
}

func (gw *HTTPGateway) routeURL(origin, destination models.Coordinate) string {
	return fmt.Sprintf("%s/%s,%s;%s,%s?overview=full&geometries=geojson",
		gw.baseURL,
		formatDegrees(origin.Longitude), formatDegrees(origin.Latitude),
		formatDegrees(destination.Longitude), formatDegrees(destination.Latitude))
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func classifyTransportError(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", routes.ErrCircuitOpen, err)
	}

	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		// OSRM answers 400 with a code such as NoRoute or InvalidQuery
		var resp routeResponse
		if json.Unmarshal(httpErr.Body, &resp) == nil && resp.Code != "" && resp.Code != providerOK {
			return fmt.Errorf("%w: %s %s", routes.ErrNoRoute, resp.Code, resp.Message)
		}
		return fmt.Errorf("%w: %w", routes.ErrProviderStatus, err)
	}

	return fmt.Errorf("%w: %w", routes.ErrProviderUnavailable, err)
}
