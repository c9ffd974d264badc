package models

import (
	"strconv"
	"strings"
)

// RouteKeyPrecision is the number of decimal digits kept when building a
// route cache key (about 1.1 m at the equator).
const RouteKeyPrecision = 5

// Coordinate is a latitude/longitude pair in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RoutePath is an ordered driving path from origin to destination.
// A nil RoutePath means no route is available.
type RoutePath []Coordinate

// MarshalJSON renders the path as [[lat, lng], ...], or null when absent
func (p RoutePath) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+len(p)*24)
	buf = append(buf, '[')
	for i, c := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '[')
		buf = strconv.AppendFloat(buf, c.Latitude, 'f', -1, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, c.Longitude, 'f', -1, 64)
		buf = append(buf, ']')
	}
	buf = append(buf, ']')
	return buf, nil
}

// RouteQuery identifies a route resolution by its two endpoints
type RouteQuery struct {
	Origin      Coordinate
	Destination Coordinate
}

// Key returns the cache key for the query: origin lat, origin lng,
// destination lat, destination lng, each rounded to RouteKeyPrecision digits.
func (q RouteQuery) Key() string {
	var sb strings.Builder
	sb.WriteString(roundCoord(q.Origin.Latitude))
	sb.WriteByte(',')
	sb.WriteString(roundCoord(q.Origin.Longitude))
	sb.WriteByte(';')
	sb.WriteString(roundCoord(q.Destination.Latitude))
	sb.WriteByte(',')
	sb.WriteString(roundCoord(q.Destination.Longitude))
	return sb.String()
}

func roundCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', RouteKeyPrecision, 64)
	// -0.000001 and 0.000001 must share a key
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}
