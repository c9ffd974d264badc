package utils

import (
	"strings"

	"github.com/piresc/sparkrides/internal/pkg/models"
)

type cityKey struct {
	city  string
	state string
}

var cityCoordinates = map[cityKey]models.Coordinate{
	{"east palo alto", "CA"}:  {Latitude: 37.4688, Longitude: -122.1411},
	{"stanford", "CA"}:        {Latitude: 37.4275, Longitude: -122.1697},
	{"san diego", "CA"}:       {Latitude: 32.7157, Longitude: -117.1611},
	{"cupertino", "CA"}:       {Latitude: 37.3229, Longitude: -122.0322},
	{"portola valley", "CA"}:  {Latitude: 37.3721, Longitude: -122.2180},
	{"monte sereno", "CA"}:    {Latitude: 37.2369, Longitude: -121.9922},
	{"santa cruz", "CA"}:      {Latitude: 36.9741, Longitude: -122.0308},
	{"los altos", "CA"}:       {Latitude: 37.3852, Longitude: -122.1141},
	{"torrance", "CA"}:        {Latitude: 33.8358, Longitude: -118.3406},
	{"san jose", "CA"}:        {Latitude: 37.3382, Longitude: -121.8863},
	{"carmel valley", "CA"}:   {Latitude: 36.4791, Longitude: -121.7328},
	{"los altos hills", "CA"}: {Latitude: 37.3791, Longitude: -122.1375},
	{"bakersfield", "CA"}:     {Latitude: 35.3733, Longitude: -119.0187},
	{"menlo park", "CA"}:      {Latitude: 37.4530, Longitude: -122.1817},
	{"austin", "TX"}:          {Latitude: 30.2672, Longitude: -97.7431},
	{"dallas", "TX"}:          {Latitude: 32.7767, Longitude: -96.7970},
	{"miami", "FL"}:           {Latitude: 25.7617, Longitude: -80.1918},
	{"orlando", "FL"}:         {Latitude: 28.5383, Longitude: -81.3792},
	{"seattle", "WA"}:         {Latitude: 47.6062, Longitude: -122.3321},
}

var stateCenters = map[string]models.Coordinate{
	"CA": {Latitude: 36.7783, Longitude: -119.4179},
	"TX": {Latitude: 31.9686, Longitude: -99.9018},
	"FL": {Latitude: 27.6648, Longitude: -81.5158},
	"WA": {Latitude: 47.7511, Longitude: -120.7401},
}

// ResolveCity returns the coordinates of a known city, falling back to the
// center of its state. Matching ignores case and surrounding whitespace.
func ResolveCity(city, state string) (models.Coordinate, bool) {
	key := cityKey{
		city:  strings.ToLower(strings.TrimSpace(city)),
		state: strings.ToUpper(strings.TrimSpace(state)),
	}
	if c, ok := cityCoordinates[key]; ok {
		return c, true
	}
	c, ok := stateCenters[key.state]
	return c, ok
}
