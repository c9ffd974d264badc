package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/models"
	nrpkg "github.com/piresc/sparkrides/internal/pkg/newrelic"
	"github.com/piresc/sparkrides/services/routes"
	"golang.org/x/sync/singleflight"
)

// RouteUC implements routes.RouteUC
type RouteUC struct {
	routeGW routes.RouteGW
	cache   *RouteCache
	group   singleflight.Group
}

// NewRouteUC creates a route resolver backed by cache
func NewRouteUC(routeGW routes.RouteGW, cache *RouteCache) *RouteUC {
	return &RouteUC{
		routeGW: routeGW,
		cache:   cache,
	}
}

// ResolveRoute returns the driving path from origin to destination, or nil
// when none is available. The first answer for a pair of endpoints,
// including a failure, is reused for the life of the process.
func (uc *RouteUC) ResolveRoute(ctx context.Context, origin, destination models.Coordinate) models.RoutePath {
	if origin == destination {
		return models.RoutePath{origin, destination}
	}

	key := models.RouteQuery{Origin: origin, Destination: destination}.Key()
	if path, ok := uc.cache.Get(key); ok {
		nrpkg.AddTransactionAttribute(ctx, "route.cache", "hit")
		return path
	}
	nrpkg.AddTransactionAttribute(ctx, "route.cache", "miss")

	// concurrent misses for the same key share one provider call, which
	// outlives any single caller
	ch := uc.group.DoChan(key, func() (interface{}, error) {
		if path, ok := uc.cache.Get(key); ok {
			return path, nil
		}
		return uc.fetch(context.WithoutCancel(ctx), key, origin, destination), nil
	})

	select {
	case res := <-ch:
		path, _ := res.Val.(models.RoutePath)
		return path
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Route lookup abandoned by caller",
			logger.String("route_key", key),
			logger.Err(ctx.Err()))
		return nil
	}
}

func (uc *RouteUC) fetch(ctx context.Context, key string, origin, destination models.Coordinate) models.RoutePath {
	start := time.Now()
	path, err := nrpkg.WithSegmentAndReturn(ctx, "RouteUC.FetchRoute", func() (models.RoutePath, error) {
		return uc.routeGW.FetchRoute(ctx, origin, destination)
	})
	if err == nil {
		uc.cache.Set(key, path)
		logger.DebugCtx(ctx, "Route resolved",
			logger.String("route_key", key),
			logger.Int("points", len(path)),
			logger.Duration("latency", time.Since(start)))
		return path
	}

	if errors.Is(err, routes.ErrCircuitOpen) {
		// the provider was never asked
		logger.WarnCtx(ctx, "Route lookup rejected by circuit breaker",
			logger.String("route_key", key),
			logger.Err(err))
		return nil
	}

	uc.cache.Set(key, nil)
	logger.WarnCtx(ctx, "Route lookup failed, caching as unavailable",
		logger.String("route_key", key),
		logger.String("reason", failureReason(err)),
		logger.Err(err),
		logger.Duration("latency", time.Since(start)))
	return nil
}

// ClearCache forgets every resolved route
func (uc *RouteUC) ClearCache() int {
	n := uc.cache.Reset()
	logger.Info("Route cache cleared", logger.Int("entries", n))
	return n
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, routes.ErrProviderUnavailable):
		return "unavailable"
	case errors.Is(err, routes.ErrProviderStatus):
		return "status"
	case errors.Is(err, routes.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, routes.ErrNoRoute):
		return "no_route"
	case errors.Is(err, routes.ErrNoGeometry):
		return "no_geometry"
	default:
		return "unknown"
	}
}
