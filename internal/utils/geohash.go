package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/sparkrides/internal/pkg/models"
)

// ClusterPrecision groups pickups into cells of roughly 5 km
const ClusterPrecision = 5

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash converts a geohash string to the center of its cell
func DecodeGeohash(hash string) models.Coordinate {
	lat, lng := geohash.DecodeCenter(hash)
	return models.Coordinate{Latitude: lat, Longitude: lng}
}

// CalculateDistance returns the great-circle distance between two points
// in kilometers using the Haversine formula
func CalculateDistance(a, b models.Coordinate) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
