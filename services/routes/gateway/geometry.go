package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/piresc/sparkrides/internal/pkg/models"
	"github.com/piresc/sparkrides/internal/utils"
	"github.com/piresc/sparkrides/services/routes"
	"github.com/twpayne/go-polyline"
)

// polylineScales lists the precisions tried for encoded geometries, in order
var polylineScales = []float64{1e5, 1e6}

// decodeGeometry turns a route geometry into a path. The provider sends
// either a GeoJSON LineString object with [lng, lat] positions or an
// encoded polyline string.
func decodeGeometry(raw json.RawMessage) (models.RoutePath, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: geometry missing", routes.ErrNoGeometry)
	}

	var path models.RoutePath
	switch raw[0] {
	case '{':
		var line struct {
			Coordinates []json.RawMessage `json:"coordinates"`
		}
		if err := json.Unmarshal(raw, &line); err != nil {
			return nil, fmt.Errorf("%w: %v", routes.ErrNoGeometry, err)
		}
		path = decodePositions(line.Coordinates)
	case '"':
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("%w: %v", routes.ErrNoGeometry, err)
		}
		path = decodePolyline(encoded)
	default:
		return nil, fmt.Errorf("%w: unsupported geometry type", routes.ErrNoGeometry)
	}

	if len(path) <= 1 {
		return nil, fmt.Errorf("%w: %d usable points", routes.ErrNoGeometry, len(path))
	}
	return path, nil
}

// decodePositions swaps [lng, lat] positions to lat/lng, skipping entries
// that are not a valid position
func decodePositions(positions []json.RawMessage) models.RoutePath {
	path := make(models.RoutePath, 0, len(positions))
	for _, raw := range positions {
		if c, ok := decodePosition(raw); ok {
			path = append(path, c)
		}
	}
	return path
}

func decodePosition(raw json.RawMessage) (models.Coordinate, bool) {
	var parts []interface{}
	if err := json.Unmarshal(raw, &parts); err != nil || len(parts) < 2 {
		return models.Coordinate{}, false
	}

	lng, ok := toFloat(parts[0])
	if !ok {
		return models.Coordinate{}, false
	}
	lat, ok := toFloat(parts[1])
	if !ok {
		return models.Coordinate{}, false
	}

	c := models.Coordinate{Latitude: lat, Longitude: lng}
	if utils.ValidateCoordinate(c) != nil {
		return models.Coordinate{}, false
	}
	return c, true
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := utils.ParseDecimal(n)
		return f, err == nil
	default:
		return 0, false
	}
}

// decodePolyline tries precision 5 then 6 and keeps the first decoding that
// yields more than one in-range point
func decodePolyline(encoded string) models.RoutePath {
	for _, scale := range polylineScales {
		if path := decodePolylineAt(encoded, scale); len(path) > 1 {
			return path
		}
	}
	return nil
}

func decodePolylineAt(encoded string, scale float64) models.RoutePath {
	codec := polyline.Codec{Dim: 2, Scale: scale}
	coords, rest, err := codec.DecodeCoords([]byte(encoded))
	if err != nil || len(rest) != 0 {
		return nil
	}

	path := make(models.RoutePath, 0, len(coords))
	for _, c := range coords {
		p := models.Coordinate{Latitude: c[0], Longitude: c[1]}
		if utils.ValidateCoordinate(p) != nil {
			return nil
		}
		path = append(path, p)
	}
	return path
}
