package citygraph

import "errors"

// Sentinel errors for city graph operations.
var (
	// ErrEmptyCityName indicates AddCity was called with an empty name.
	ErrEmptyCityName = errors.New("citygraph: city name is empty")

	// ErrCityIndex indicates a city index outside [0, CityCount()).
	ErrCityIndex = errors.New("citygraph: city index out of range")

	// ErrBadDistance indicates a road distance below the minimum of 1.
	ErrBadDistance = errors.New("citygraph: road distance must be positive")

	// ErrCityNotFound indicates a lookup for a name that was never registered.
	ErrCityNotFound = errors.New("citygraph: city not known")
)

// Edge is one directed half-link of an undirected road: the index of the
// neighboring city and the distance to it. Each direction of a road holds
// its own Edge with its own copy of the distance.
type Edge struct {
	// To is the index of the city this half-link leads to.
	To int

	// Distance is the road length; always ≥ 1.
	Distance int64
}
