package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/piresc/sparkrides/internal/pkg/logger"
	"github.com/piresc/sparkrides/internal/pkg/models"
	"github.com/piresc/sparkrides/internal/utils"
	"github.com/piresc/sparkrides/services/rides"
)

const (
	maxCorridors = 8
	maxHotspots  = 6
)

// RideUC implements rides.RideUC
type RideUC struct {
	rideRepo rides.RideRepo
	now      func() time.Time
}

// NewRideUC creates a new ride use case
func NewRideUC(rideRepo rides.RideRepo) *RideUC {
	return &RideUC{
		rideRepo: rideRepo,
		now:      time.Now,
	}
}

// SearchRides validates the search and returns the matching rides
func (uc *RideUC) SearchRides(ctx context.Context, search models.RideSearch) ([]*models.Ride, error) {
	search.Search = strings.TrimSpace(search.Search)
	if utf8.RuneCountInString(search.Search) > rides.MaxSearchLength {
		return nil, fmt.Errorf("%w: search longer than %d characters", rides.ErrInvalidSearch, rides.MaxSearchLength)
	}
	if search.MinimumSeats < 0 {
		return nil, fmt.Errorf("%w: minimum seats must not be negative", rides.ErrInvalidSearch)
	}

	return uc.rideRepo.SearchRides(ctx, search)
}

// GetRide returns a single ride
func (uc *RideUC) GetRide(ctx context.Context, id int64) (*models.Ride, error) {
	return uc.rideRepo.GetRide(ctx, id)
}

// BuildRideMap plots every available ride and summarizes the network
func (uc *RideUC) BuildRideMap(ctx context.Context) (*models.RideMap, error) {
	available, err := uc.rideRepo.ListAvailableRides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load available rides: %w", err)
	}

	rideMap := &models.RideMap{
		Rides:     []models.MapRide{},
		Corridors: corridors(available),
		Hotspots:  hotspots(available),
	}

	for _, ride := range available {
		rideMap.NetworkRides++
		rideMap.NetworkSeats += ride.SeatsAvailable

		origin, destination, ok := resolveEndpoints(ride)
		if !ok {
			rideMap.UnresolvedCount++
			continue
		}
		rideMap.Rides = append(rideMap.Rides, models.MapRide{
			ID:               ride.ID,
			FirstName:        ride.FirstName,
			Origination:      ride.Origination,
			DestinationCity:  ride.DestinationCity,
			DestinationState: ride.DestinationState,
			Date:             ride.Date.Format("2006-01-02"),
			Time:             ride.Time,
			SeatsAvailable:   ride.SeatsAvailable,
			OriginLat:        origin.Latitude,
			OriginLng:        origin.Longitude,
			DestinationLat:   destination.Latitude,
			DestinationLng:   destination.Longitude,
			OriginGeohash:    utils.EncodeCoordinate(origin, utils.ClusterPrecision),
			DistanceKm:       roundKm(utils.CalculateDistance(origin, destination)),
		})
	}
	rideMap.PlottedCount = len(rideMap.Rides)
	rideMap.Clusters = clusters(rideMap.Rides)

	logger.DebugCtx(ctx, "Ride map built",
		logger.Int("plotted", rideMap.PlottedCount),
		logger.Int("unresolved", rideMap.UnresolvedCount))

	return rideMap, nil
}

// resolveEndpoints places both ends of a ride. An unknown end borrows the
// position of the known one.
func resolveEndpoints(ride *models.Ride) (models.Coordinate, models.Coordinate, bool) {
	origin, originOK := utils.ResolveCity(ride.Origination, ride.DestinationState)
	destination, destinationOK := utils.ResolveCity(ride.DestinationCity, ride.DestinationState)

	switch {
	case originOK && destinationOK:
		return origin, destination, true
	case originOK:
		return origin, origin, true
	case destinationOK:
		return destination, destination, true
	default:
		return models.Coordinate{}, models.Coordinate{}, false
	}
}

type corridorKey struct {
	origination      string
	destinationCity  string
	destinationState string
}

func corridors(available []*models.Ride) []models.Corridor {
	var keys []corridorKey
	byKey := make(map[corridorKey]*models.Corridor)

	for _, ride := range available {
		key := corridorKey{ride.Origination, ride.DestinationCity, ride.DestinationState}
		c, ok := byKey[key]
		if !ok {
			c = &models.Corridor{
				Route: fmt.Sprintf("%s to %s, %s", key.origination, key.destinationCity, key.destinationState),
			}
			byKey[key] = c
			keys = append(keys, key)
		}
		if c.Rides == 0 {
			if origin, destination, ok := resolveEndpoints(ride); ok {
				c.DistanceKm = roundKm(utils.CalculateDistance(origin, destination))
			}
		}
		c.Rides++
		c.OpenSeats += ride.SeatsAvailable
		if ride.TakingPassengers {
			c.ActiveDrivers++
		}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := byKey[keys[i]], byKey[keys[j]]
		if a.Rides != b.Rides {
			return a.Rides > b.Rides
		}
		return keys[i].origination < keys[j].origination
	})
	if len(keys) > maxCorridors {
		keys = keys[:maxCorridors]
	}

	result := make([]models.Corridor, 0, len(keys))
	for _, key := range keys {
		c := byKey[key]
		c.Load = loadLabel(c.Rides)
		result = append(result, *c)
	}
	return result
}

func roundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

func loadLabel(rides int) string {
	switch {
	case rides >= 3:
		return "High demand"
	case rides == 2:
		return "Steady"
	default:
		return "Light"
	}
}

func hotspots(available []*models.Ride) []models.Hotspot {
	counts := make(map[string]int)
	for _, ride := range available {
		counts[ride.Origination]++
	}

	result := make([]models.Hotspot, 0, len(counts))
	for origination, total := range counts {
		result = append(result, models.Hotspot{Origination: origination, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Origination < result[j].Origination
	})
	if len(result) > maxHotspots {
		result = result[:maxHotspots]
	}
	return result
}

// clusters counts plotted pickups per geohash cell, busiest first
func clusters(plotted []models.MapRide) []models.Cluster {
	counts := make(map[string]int)
	for _, ride := range plotted {
		counts[ride.OriginGeohash]++
	}

	result := make([]models.Cluster, 0, len(counts))
	for hash, rides := range counts {
		center := utils.DecodeGeohash(hash)
		result = append(result, models.Cluster{
			Geohash:   hash,
			CenterLat: center.Latitude,
			CenterLng: center.Longitude,
			Rides:     rides,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Rides != result[j].Rides {
			return result[i].Rides > result[j].Rides
		}
		return result[i].Geohash < result[j].Geohash
	})
	return result
}
