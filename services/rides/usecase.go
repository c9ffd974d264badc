package rides

import (
	"context"

	"github.com/piresc/sparkrides/internal/pkg/models"
)

// RideUC defines the interface for ride business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/sparkrides/services/rides RideUC
type RideUC interface {
	SearchRides(ctx context.Context, search models.RideSearch) ([]*models.Ride, error)
	GetRide(ctx context.Context, id int64) (*models.Ride, error)
	BuildRideMap(ctx context.Context) (*models.RideMap, error)
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
}
