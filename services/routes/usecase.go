package routes

import (
	"context"

	"github.com/piresc/sparkrides/internal/pkg/models"
)

// RouteUC defines the interface for road route resolution
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/sparkrides/services/routes RouteUC
type RouteUC interface {
	// ResolveRoute returns the driving path between two validated
	// coordinates, or nil when no route is available. Provider failures
	// are absorbed and remembered.
	ResolveRoute(ctx context.Context, origin, destination models.Coordinate) models.RoutePath
	// ClearCache forgets every resolved route and returns how many entries
	// were dropped
	ClearCache() int
}
