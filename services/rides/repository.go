package rides

import (
	"context"
	"time"

	"github.com/piresc/sparkrides/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/sparkrides/services/rides RideRepo
type RideRepo interface {
	SearchRides(ctx context.Context, search models.RideSearch) ([]*models.Ride, error)
	ListAvailableRides(ctx context.Context) ([]*models.Ride, error)
	GetRide(ctx context.Context, id int64) (*models.Ride, error)
	ListUpcomingRides(ctx context.Context, from time.Time, openOnly bool, limit int) ([]*models.Ride, error)
	GetRideStats(ctx context.Context, from time.Time) (*models.RideStats, error)
	ListPopularDestinations(ctx context.Context, limit int) ([]models.Destination, error)
}
