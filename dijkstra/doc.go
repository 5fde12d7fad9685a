// Package dijkstra computes single-source shortest routes over a
// citygraph.Graph using Dijkstra's algorithm with a true decrease-key
// min-heap (package minheap).
//
// Overview:
//
//   - Run(g, source) finalizes the minimum distance and predecessor of
//     every city reachable from source in O((V + E) log V) time.
//   - Every city is pushed onto the heap exactly once during the reset
//     phase; relaxation lowers enqueued keys in place via DecreaseKey, so
//     every city is also popped exactly once and no stale duplicates ever
//     enter the queue.
//   - The Result answers per-city distances, reconstructs source→city
//     routes from the predecessor chain, renders a single route as
//     line-oriented text, and dumps the whole run as a table.
//
// Scheduling state:
//
//   - Distances, predecessors and visited flags live in per-run tables
//     indexed by city index, not in the Graph. A loaded Graph is therefore
//     read-only here, and concurrent Run calls against one Graph are safe —
//     each run owns its tables and its heap.
//
// Unreachable cities:
//
//   - Unreached (math.MaxInt64) is the sentinel for "no path found".
//     It is only ever overwritten, never added into: a city popped while
//     still at Unreached is finalized without relaxing its roads, so the
//     sentinel cannot overflow into a bogus finite distance.
//   - An unreachable destination is a legitimate terminal state, not a
//     defect: PathTo and FormatRoute report it as ErrNoRoute instead of
//     rendering a garbage route.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — V pushes + V pops + ≤E DecreaseKey calls,
//     each O(log V).
//   - Space: O(V) scheduling tables + O(V) heap.
//
// Errors (sentinel):
//
//   - ErrNilGraph  — Run received a nil graph.
//   - ErrBadSource — the source index is outside the graph.
//   - ErrNoRoute   — path reconstruction requested for an unreachable city.
//
// Negative road distances cannot occur: citygraph.AddRoad rejects anything
// below 1 at load time, which is the precondition Dijkstra needs.
package dijkstra
