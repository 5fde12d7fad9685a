package dijkstra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cityroute/citygraph"
)

// Result holds the finalized outcome of one Run: per-city distances and
// predecessor links, read-only from here on.
type Result struct {
	g      *citygraph.Graph
	source int
	dist   []int64
	prev   []int
}

// Source returns the index of the run's source city.
func (r *Result) Source() int { return r.source }

// DistanceTo returns the shortest distance from the source to the city at
// the given index, or Unreached if no path exists.
func (r *Result) DistanceTo(i int) (int64, error) {
	if i < 0 || i >= len(r.dist) {
		return 0, fmt.Errorf("%w: %d (have %d cities)", citygraph.ErrCityIndex, i, len(r.dist))
	}

	return r.dist[i], nil
}

// PredecessorOf returns the index of the city preceding i on its shortest
// route, or NoPredecessor for the source and for unreachable cities.
func (r *Result) PredecessorOf(i int) (int, error) {
	if i < 0 || i >= len(r.prev) {
		return 0, fmt.Errorf("%w: %d (have %d cities)", citygraph.ErrCityIndex, i, len(r.prev))
	}

	return r.prev[i], nil
}

// PathTo reconstructs the shortest route from the source to the city at
// index destination as an ordered list of city names, source first.
//
// An unreachable destination is reported as ErrNoRoute (wrapped with both
// city names) — it is never rendered as an empty or partial route.
// Complexity: O(route length).
func (r *Result) PathTo(destination int) ([]string, error) {
	if destination < 0 || destination >= len(r.dist) {
		return nil, fmt.Errorf("%w: %d (have %d cities)", citygraph.ErrCityIndex, destination, len(r.dist))
	}
	if r.dist[destination] == Unreached {
		srcName, _ := r.g.CityName(r.source)
		dstName, _ := r.g.CityName(destination)

		return nil, fmt.Errorf("%w: %q from %q", ErrNoRoute, dstName, srcName)
	}

	// Walk predecessor links backward from the destination. The chain ends
	// at the source, whose predecessor is NoPredecessor by construction.
	indices := []int{destination}
	for at := destination; r.prev[at] != NoPredecessor; at = r.prev[at] {
		indices = append(indices, r.prev[at])
	}

	// Reverse into forward order and resolve names.
	names := make([]string, len(indices))
	for i, idx := range indices {
		name, err := r.g.CityName(idx)
		if err != nil {
			return nil, err
		}
		names[len(indices)-1-i] = name
	}

	return names, nil
}

// FormatRoute renders one query's answer as line-oriented text:
//
//	York to Hull is 86km
//
//	Route:
//	York ---> Leeds ---> Hull
//
// Returns ErrNoRoute when the destination is unreachable.
func (r *Result) FormatRoute(destination int) (string, error) {
	path, err := r.PathTo(destination)
	if err != nil {
		return "", err
	}

	srcName, err := r.g.CityName(r.source)
	if err != nil {
		return "", err
	}
	dstName, err := r.g.CityName(destination)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s to %s is %dkm\n\n", srcName, dstName, r.dist[destination])
	b.WriteString("Route:\n")
	b.WriteString(strings.Join(path, " ---> "))
	b.WriteString("\n")

	return b.String(), nil
}

// Table renders the complete run as a fixed-width column dump: index, city
// name, distance from the source, and the previous city on the route.
// The source row shows a dashed previous marker; unreachable cities show
// UNREACHABLE in place of a distance.
func (r *Result) Table() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s%-20s%-20s%-20s\n", "Vertex", "CityName", "Distance", "Previous")
	fmt.Fprintf(&b, "%30s\n\n", "From Source")

	for i := range r.dist {
		name, _ := r.g.CityName(i)

		var distance, previous string
		switch {
		case r.prev[i] == NoPredecessor && i == r.source:
			distance = fmt.Sprintf("%d", r.dist[i])
			previous = "----------"
		case r.dist[i] == Unreached:
			distance = "UNREACHABLE"
			previous = "----------"
		default:
			prevName, _ := r.g.CityName(r.prev[i])
			distance = fmt.Sprintf("%d", r.dist[i])
			previous = prevName
		}

		fmt.Fprintf(&b, "%-10d%-20s%-20s%-20s\n", i, name, distance, previous)
	}

	return b.String()
}
