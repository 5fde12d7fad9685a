package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/minheap"
)

// Run computes shortest routes from the city at index source to every
// other city in g, and returns a Result for distance queries, route
// reconstruction and rendering.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, g.CityCount()) (ErrBadSource).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Run(g *citygraph.Graph, source int) (*Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= g.CityCount() {
		return nil, fmt.Errorf("%w: %d (have %d cities)", ErrBadSource, source, g.CityCount())
	}

	// 2) Allocate this run's scheduling tables and heap. The Graph itself
	//    is never written, so runs may share it.
	n := g.CityCount()
	r := &runner{
		g:       g,
		source:  source,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		heap:    minheap.New(n),
	}

	// 3) Reset phase, then the relaxation loop to heap-empty completion.
	r.reset()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Hand the finalized tables to the Result.
	return &Result{g: g, source: source, dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state of a single run.
type runner struct {
	g       *citygraph.Graph
	source  int
	dist    []int64 // city index → best known distance from source
	prev    []int   // city index → predecessor on that route, or NoPredecessor
	visited []bool  // city index → distance finalized
	heap    *minheap.MinHeap
}

// reset initializes every city's scheduling state — distance Unreached
// (0 for the source), no predecessor, not visited — and enqueues all of
// them, so the source surfaces first with key 0.
func (r *runner) reset() {
	for i := range r.dist {
		r.dist[i] = Unreached
		r.prev[i] = NoPredecessor
		r.visited[i] = false
	}
	r.dist[r.source] = 0

	for i := range r.dist {
		r.heap.Push(i, r.dist[i])
	}
}

// process pops the closest unvisited city and relaxes its roads until the
// heap is empty. Every city is popped exactly once: keys only ever move
// down via DecreaseKey, so no duplicates exist to skip.
func (r *runner) process() error {
	for !r.heap.IsEmpty() {
		u := r.heap.Pop()

		// A city popped while still at Unreached has no path from the
		// source; finalize it without touching its roads, since the
		// sentinel must never be added into.
		if r.dist[u] != Unreached {
			if err := r.relax(u); err != nil {
				return err
			}
		}

		r.visited[u] = true
	}

	return nil
}

// relax examines each road out of u and improves any unvisited neighbor
// whose best known distance is beaten strictly, recording u as its
// predecessor and lowering its heap key in place.
func (r *runner) relax(u int) error {
	roads, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: roads of city %d: %w", u, err)
	}

	for _, road := range roads {
		v := road.To
		if r.visited[v] {
			continue
		}

		alternate := r.dist[u] + road.Distance
		if alternate < r.dist[v] {
			r.dist[v] = alternate
			r.prev[v] = u
			r.heap.DecreaseKey(v, alternate)
		}
	}

	return nil
}
