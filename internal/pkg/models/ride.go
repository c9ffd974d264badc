package models

import "time"

// Ride represents a posted carpool ride
type Ride struct {
	ID               int64     `json:"id" db:"id"`
	FirstName        string    `json:"first_name" db:"first_name"`
	Origination      string    `json:"origination" db:"origination"`
	DestinationCity  string    `json:"destination_city" db:"destination_city"`
	DestinationState string    `json:"destination_state" db:"destination_state"`
	Date             time.Time `json:"date" db:"date"`
	Time             string    `json:"time" db:"time"`
	TakingPassengers bool      `json:"taking_passengers" db:"taking_passengers"`
	SeatsAvailable   int       `json:"seats_available" db:"seats_available"`
	Age              *int      `json:"age,omitempty" db:"age"`
	Occupation       string    `json:"occupation,omitempty" db:"occupation"`
	Interests        string    `json:"interests,omitempty" db:"interests"`
	Bio              string    `json:"bio,omitempty" db:"bio"`
}

// RideSearch holds the filters of a ride search
type RideSearch struct {
	Search         string
	TravelDate     *time.Time
	MinimumSeats   int
	PassengersOnly bool
}

// MapRide is a ride with resolved endpoints, ready to be plotted
type MapRide struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"first_name"`
	Origination      string  `json:"origination"`
	DestinationCity  string  `json:"destination_city"`
	DestinationState string  `json:"destination_state"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	SeatsAvailable   int     `json:"seats_available"`
	OriginLat        float64 `json:"origin_lat"`
	OriginLng        float64 `json:"origin_lng"`
	DestinationLat   float64 `json:"destination_lat"`
	DestinationLng   float64 `json:"destination_lng"`
	OriginGeohash    string  `json:"origin_geohash"`
	DistanceKm       float64 `json:"distance_km"`
}

// Corridor aggregates rides sharing an origination and destination
type Corridor struct {
	Route         string  `json:"route"`
	Load          string  `json:"load"`
	Rides         int     `json:"rides"`
	OpenSeats     int     `json:"open_seats"`
	ActiveDrivers int     `json:"active_drivers"`
	DistanceKm    float64 `json:"distance_km,omitempty"`
}

// Hotspot counts rides departing from one origination
type Hotspot struct {
	Origination string `json:"origination"`
	Total       int    `json:"total"`
}

// Cluster groups plotted pickups falling in one geohash cell
type Cluster struct {
	Geohash   string  `json:"geohash"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Rides     int     `json:"rides"`
}

// RideMap is the payload behind the map page
type RideMap struct {
	Rides           []MapRide  `json:"map_rides"`
	PlottedCount    int        `json:"plotted_ride_count"`
	UnresolvedCount int        `json:"unresolved_ride_count"`
	Corridors       []Corridor `json:"corridor_cards"`
	Hotspots        []Hotspot  `json:"pickup_hotspots"`
	Clusters        []Cluster  `json:"pickup_clusters"`
	NetworkRides    int        `json:"network_rides"`
	NetworkSeats    int        `json:"network_seats"`
}

// RideStats counts the rides on the board
type RideStats struct {
	TotalRides int `json:"total_rides" db:"total_rides"`
	OpenRides  int `json:"open_rides" db:"open_rides"`
	OpenSeats  int `json:"open_seats" db:"open_seats"`
}

// Destination counts rides heading to one city
type Destination struct {
	City  string `json:"destination_city" db:"destination_city"`
	State string `json:"destination_state" db:"destination_state"`
	Total int    `json:"total" db:"total"`
}

// FeaturedMatch is an open ride highlighted on the home page
type FeaturedMatch struct {
	Ride          *Ride  `json:"rider"`
	Compatibility string `json:"compatibility"`
}

// Dashboard is the payload behind the home page
type Dashboard struct {
	FeaturedMatches     []FeaturedMatch `json:"featured_matches"`
	PopularDestinations []Destination   `json:"popular_destinations"`
	Stats               RideStats       `json:"stats"`
	UpcomingPreview     []*Ride         `json:"upcoming_preview"`
}
