package citygraph

import "fmt"

// Graph is the in-memory city network: a dense, index-addressed adjacency
// list. The zero value is unusable; construct with New.
//
// Indices are assigned in creation order and are contiguous, so callers
// may iterate cities as 0..CityCount()-1.
type Graph struct {
	names []string // city index → display name
	edges [][]Edge // city index → outgoing half-links, in insertion order
}

// New returns an empty city graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{}
}

// AddCity registers a city name and returns its index. If the name is
// already known the existing index is returned unchanged, so repeated
// registrations of one name collapse to a single city.
// Returns ErrEmptyCityName for an empty name.
// Complexity: O(n) (linear name scan).
func (g *Graph) AddCity(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyCityName
	}

	// Known name → existing index.
	for i, known := range g.names {
		if known == name {
			return i, nil
		}
	}

	// New city: next sequential index, no roads yet.
	g.names = append(g.names, name)
	g.edges = append(g.edges, nil)

	return len(g.names) - 1, nil
}

// AddRoad records an undirected road of the given distance between the
// cities at indices a and b, as two independent directed half-links.
// Parallel roads between the same pair are kept, not deduplicated.
//
// Returns ErrCityIndex if either index is out of range, and ErrBadDistance
// (naming both cities) if distance < 1.
// Complexity: O(1) amortized.
func (g *Graph) AddRoad(a, b int, distance int64) error {
	if err := g.checkIndex(a); err != nil {
		return err
	}
	if err := g.checkIndex(b); err != nil {
		return err
	}
	if distance < 1 {
		return fmt.Errorf("%w: %d between %q and %q", ErrBadDistance, distance, g.names[a], g.names[b])
	}

	g.edges[a] = append(g.edges[a], Edge{To: b, Distance: distance})
	g.edges[b] = append(g.edges[b], Edge{To: a, Distance: distance})

	return nil
}

// CityCount returns the number of registered cities.
func (g *Graph) CityCount() int { return len(g.names) }

// CityName returns the display name of the city at the given index.
func (g *Graph) CityName(i int) (string, error) {
	if err := g.checkIndex(i); err != nil {
		return "", err
	}

	return g.names[i], nil
}

// Names returns a copy of all city names in index order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Neighbors returns a copy of the outgoing half-links of the city at the
// given index, in insertion order.
func (g *Graph) Neighbors(i int) ([]Edge, error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}

	out := make([]Edge, len(g.edges[i]))
	copy(out, g.edges[i])

	return out, nil
}

// IndexOf resolves a city name to its index by linear scan.
// An unknown name is a usage error, reported as ErrCityNotFound wrapped
// with the name — callers must not proceed with an undefined index.
// Complexity: O(n).
func (g *Graph) IndexOf(name string) (int, error) {
	for i, known := range g.names {
		if known == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrCityNotFound, name)
}

// checkIndex validates a city index against the current count.
func (g *Graph) checkIndex(i int) error {
	if i < 0 || i >= len(g.names) {
		return fmt.Errorf("%w: %d (have %d cities)", ErrCityIndex, i, len(g.names))
	}

	return nil
}
