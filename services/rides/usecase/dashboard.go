package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/models"
)

const (
	maxFeaturedMatches     = 4
	maxPopularDestinations = 4
	maxUpcomingPreview     = 5
)

// GetDashboard gathers the home page: featured open rides, the busiest
// destinations, board totals and the next departures
func (uc *RideUC) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	today := startOfDay(uc.now())

	open, err := uc.rideRepo.ListUpcomingRides(ctx, today, true, maxFeaturedMatches)
	if err != nil {
		return nil, fmt.Errorf("failed to load featured rides: %w", err)
	}
	upcoming, err := uc.rideRepo.ListUpcomingRides(ctx, today, false, maxUpcomingPreview)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming rides: %w", err)
	}
	destinations, err := uc.rideRepo.ListPopularDestinations(ctx, maxPopularDestinations)
	if err != nil {
		return nil, fmt.Errorf("failed to load popular destinations: %w", err)
	}
	stats, err := uc.rideRepo.GetRideStats(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load ride stats: %w", err)
	}

	dashboard := &models.Dashboard{
		FeaturedMatches:     make([]models.FeaturedMatch, 0, len(open)),
		PopularDestinations: destinations,
		Stats:               *stats,
		UpcomingPreview:     upcoming,
	}
	for _, ride := range open {
		dashboard.FeaturedMatches = append(dashboard.FeaturedMatches, models.FeaturedMatch{
			Ride:          ride,
			Compatibility: compatibilityScore(ride),
		})
	}

	logger.DebugCtx(ctx, "Dashboard built",
		logger.Int("featured", len(dashboard.FeaturedMatches)),
		logger.Int("total_rides", stats.TotalRides))

	return dashboard, nil
}

// compatibilityScore is a stable display score between 72% and 96%
func compatibilityScore(ride *models.Ride) string {
	n := (utf8.RuneCountInString(ride.FirstName)*3 + ride.SeatsAvailable*4) % 25
	if n < 0 {
		n += 25
	}
	return fmt.Sprintf("%d%%", 72+n)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
