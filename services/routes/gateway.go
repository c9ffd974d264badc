package routes

import (
	"context"

	"github.com/piresc/sparkrides/internal/pkg/models"
)

// RouteGW defines the interface for the routing provider
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/sparkrides/services/routes RouteGW
type RouteGW interface {
	FetchRoute(ctx context.Context, origin, destination models.Coordinate) (models.RoutePath, error)
}
