package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/piresc/sparkrides/internal/pkg/models"
)

var (
	// ErrMalformedNumber is returned when a coordinate is not a decimal number
	ErrMalformedNumber = errors.New("malformed number")
	// ErrOutOfRange is returned when a latitude is outside [-90, 90] or a
	// longitude outside [-180, 180]
	ErrOutOfRange = errors.New("coordinate out of range")
)

// ParseCoordinate parses raw latitude and longitude strings into a
// validated Coordinate
func ParseCoordinate(latRaw, lngRaw string) (models.Coordinate, error) {
	lat, err := parseDegrees("latitude", latRaw)
	if err != nil {
		return models.Coordinate{}, err
	}
	lng, err := parseDegrees("longitude", lngRaw)
	if err != nil {
		return models.Coordinate{}, err
	}

	c := models.Coordinate{Latitude: lat, Longitude: lng}
	if err := ValidateCoordinate(c); err != nil {
		return models.Coordinate{}, err
	}
	return c, nil
}

// ParseDecimal parses a plain decimal number. Hex floats and digit
// separators, which strconv.ParseFloat also accepts, are rejected.
func ParseDecimal(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.ContainsAny(s, "xX_") {
		return 0, &strconv.NumError{Func: "ParseDecimal", Num: s, Err: strconv.ErrSyntax}
	}
	return strconv.ParseFloat(s, 64)
}

func parseDegrees(field, raw string) (float64, error) {
	v, err := ParseDecimal(raw)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s %q: %w", field, raw, ErrOutOfRange)
		}
		return 0, fmt.Errorf("%s %q: %w", field, raw, ErrMalformedNumber)
	}
	return v, nil
}

// ValidateCoordinate checks that c lies within valid latitude and longitude
// bounds
func ValidateCoordinate(c models.Coordinate) error {
	if !validDegrees(c.Latitude, 90) {
		return fmt.Errorf("latitude %v: %w", c.Latitude, ErrOutOfRange)
	}
	if !validDegrees(c.Longitude, 180) {
		return fmt.Errorf("longitude %v: %w", c.Longitude, ErrOutOfRange)
	}
	return nil
}

func validDegrees(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}
