// Package citygraph defines the weighted, undirected city network used by
// the route planner: an adjacency-list graph whose vertices are named
// cities addressed by dense integer indices.
//
// Data model:
//
//   - A city's identity is its creation-order index (0..n-1, never reused)
//     plus a unique display name. AddCity is idempotent: registering a name
//     that is already known returns the existing index, so duplicate names
//     collapse to one city on first sight.
//   - An undirected road between A and B is stored as two independent
//     directed half-edges (A→B and B→A), each carrying its own copy of the
//     distance. Parallel roads between the same pair are legal and kept
//     separately; shortest-path relaxation simply considers each of them.
//   - Road distances must be ≥ 1. A non-positive distance aborts the
//     mutation with ErrBadDistance naming both cities involved.
//   - Per-city edge iteration order is insertion order. That order is
//     immaterial to shortest-path correctness but keeps reports
//     reproducible when distances tie.
//
// Name lookup (IndexOf) is a linear scan over the cities. The planner's
// query volume is per-batch, not per-relaxation, so the O(n) scan is not
// on the hot path.
//
// A Graph is mutable only through AddCity and AddRoad. Once loaded it is
// read-only for shortest-path runs: the dijkstra package keeps all of its
// per-run scheduling state outside the Graph, so any number of concurrent
// runs may share one instance.
//
// Errors (sentinel):
//
//   - ErrEmptyCityName — AddCity called with an empty name.
//   - ErrCityIndex    — an index outside [0, CityCount()).
//   - ErrBadDistance  — a road distance < 1.
//   - ErrCityNotFound — IndexOf called with an unregistered name.
package citygraph
