package handler

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/middleware"
	"github.com/piresc/sparkrides/internal/pkg/models"
	nrpkg "github.com/piresc/sparkrides/internal/pkg/newrelic"
	"github.com/piresc/sparkrides/services/routes"
	httpHandler "github.com/piresc/sparkrides/services/routes/handler/http"
)

// HTTPHandler registers the road-route endpoints
type HTTPHandler struct {
	routeHTTP   *httpHandler.RouteHandler
	cfg         *models.Config
	redisClient *redis.Client
	logger      *logger.ZapLogger
}

// NewHTTPHandler creates the route service handler. redisClient may be nil,
// in which case requests are not rate limited.
func NewHTTPHandler(
	routeUC routes.RouteUC,
	cfg *models.Config,
	redisClient *redis.Client,
	zapLogger *logger.ZapLogger,
) *HTTPHandler {
	return &HTTPHandler{
		routeHTTP:   httpHandler.NewRouteHandler(routeUC),
		cfg:         cfg,
		redisClient: redisClient,
		logger:      zapLogger,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	var limits []echo.MiddlewareFunc
	if h.cfg.RateLimit.Enabled && h.redisClient != nil {
		limits = append(limits, middleware.IPRateLimiter(h.cfg.RateLimit.Limit, h.cfg.RateLimit.Period, h.redisClient, h.logger))
	}

	api := e.Group("/api")
	getRoadRoute := nrpkg.TraceHandler("Routes.GetRoadRoute", h.routeHTTP.GetRoadRoute)
	api.GET("/road-route", getRoadRoute, limits...)
	api.GET("/road-route/", getRoadRoute, limits...)

	// Operator routes
	api.DELETE("/road-route/cache", nrpkg.TraceHandler("Routes.ClearCache", h.routeHTTP.ClearCache), middleware.ValidateAdminKey(h.cfg.Admin.APIKey))
}
