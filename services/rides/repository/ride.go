package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/models"
	nrpkg "github.com/piresc/sparkrides/internal/pkg/newrelic"
	"github.com/piresc/sparkrides/services/rides"
)

const rideColumns = `id, first_name, origination, destination_city, destination_state,
	date, to_char(time, 'HH24:MI') AS time, taking_passengers, seats_available, age,
	COALESCE(occupation, '') AS occupation, COALESCE(interests, '') AS interests, COALESCE(bio, '') AS bio`

type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewRideRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *RideRepo {
	logger.Info("Initializing ride repository")
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// SearchRides returns rides matching every search term and filter, ordered
// by departure
func (r *RideRepo) SearchRides(ctx context.Context, search models.RideSearch) ([]*models.Ride, error) {
	query, args := buildSearchQuery(search)

	return nrpkg.WithDatastoreSegment(ctx, "rides", "SELECT", func() ([]*models.Ride, error) {
		result := []*models.Ride{}
		if err := r.db.SelectContext(ctx, &result, query, args...); err != nil {
			return nil, fmt.Errorf("failed to search rides: %w", err)
		}
		return result, nil
	})
}

// ListAvailableRides returns rides taking passengers with at least one open seat
func (r *RideRepo) ListAvailableRides(ctx context.Context) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + `
		FROM rides
		WHERE taking_passengers = TRUE AND seats_available > 0
		ORDER BY date, time`

	return nrpkg.WithDatastoreSegment(ctx, "rides", "SELECT", func() ([]*models.Ride, error) {
		result := []*models.Ride{}
		if err := r.db.SelectContext(ctx, &result, query); err != nil {
			return nil, fmt.Errorf("failed to list available rides: %w", err)
		}
		return result, nil
	})
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, id int64) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ride %d: %w", id, rides.ErrRideNotFound)
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// ListUpcomingRides returns up to limit rides departing on or after from,
// soonest first. openOnly keeps rides taking passengers.
func (r *RideRepo) ListUpcomingRides(ctx context.Context, from time.Time, openOnly bool, limit int) ([]*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE date >= $1`
	if openOnly {
		query += ` AND taking_passengers = TRUE`
	}
	query += ` ORDER BY date, time, id LIMIT $2`

	return nrpkg.WithDatastoreSegment(ctx, "rides", "SELECT", func() ([]*models.Ride, error) {
		result := []*models.Ride{}
		if err := r.db.SelectContext(ctx, &result, query, from.Format("2006-01-02"), limit); err != nil {
			return nil, fmt.Errorf("failed to list upcoming rides: %w", err)
		}
		return result, nil
	})
}

// GetRideStats counts every ride, the upcoming rides taking passengers and
// the seats offered across the board
func (r *RideRepo) GetRideStats(ctx context.Context, from time.Time) (*models.RideStats, error) {
	query := `SELECT
			COUNT(*) AS total_rides,
			COUNT(*) FILTER (WHERE date >= $1 AND taking_passengers) AS open_rides,
			COALESCE(SUM(seats_available), 0) AS open_seats
		FROM rides`

	return nrpkg.WithDatastoreSegment(ctx, "rides", "SELECT", func() (*models.RideStats, error) {
		var stats models.RideStats
		if err := r.db.GetContext(ctx, &stats, query, from.Format("2006-01-02")); err != nil {
			return nil, fmt.Errorf("failed to get ride stats: %w", err)
		}
		return &stats, nil
	})
}

// ListPopularDestinations returns the limit most requested destinations
func (r *RideRepo) ListPopularDestinations(ctx context.Context, limit int) ([]models.Destination, error) {
	query := `SELECT destination_city, destination_state, COUNT(id) AS total
		FROM rides
		GROUP BY destination_city, destination_state
		ORDER BY total DESC, destination_city
		LIMIT $1`

	return nrpkg.WithDatastoreSegment(ctx, "rides", "SELECT", func() ([]models.Destination, error) {
		result := []models.Destination{}
		if err := r.db.SelectContext(ctx, &result, query, limit); err != nil {
			return nil, fmt.Errorf("failed to list popular destinations: %w", err)
		}
		return result, nil
	})
}

func buildSearchQuery(search models.RideSearch) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	for _, term := range SearchTerms(search.Search) {
		pattern := arg("%" + escapeLike(term) + "%")
		stateMatch := "destination_state ILIKE " + pattern
		// two letter terms are treated as state abbreviations
		if utf8.RuneCountInString(term) == 2 {
			stateMatch = "UPPER(destination_state) = UPPER(" + arg(term) + ")"
		}
		conds = append(conds, fmt.Sprintf(
			"(first_name ILIKE %[1]s OR origination ILIKE %[1]s OR destination_city ILIKE %[1]s OR %[2]s)",
			pattern, stateMatch))
	}
	if search.TravelDate != nil {
		conds = append(conds, "date = "+arg(search.TravelDate.Format("2006-01-02")))
	}
	if search.MinimumSeats > 0 {
		conds = append(conds, "seats_available >= "+arg(search.MinimumSeats))
	}
	if search.PassengersOnly {
		conds = append(conds, "taking_passengers = TRUE")
	}

	query := `SELECT ` + rideColumns + ` FROM rides`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date, time, first_name"
	return query, args
}

// SearchTerms splits a free-text search on whitespace and commas
func SearchTerms(search string) []string {
	return strings.FieldsFunc(search, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
