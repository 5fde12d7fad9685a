// Package routeserver exposes a loaded city network as a small HTTP JSON
// API:
//
//	GET  /api/cities — all known city names, in index order
//	POST /api/routes — {"source": "...", "destination": "..."} →
//	                   {"source", "destination", "distance", "route": [...]}
//
// Status mapping:
//
//   - 400 — request body is not valid JSON or a name is empty
//   - 404 — a city name is not known to the graph
//   - 422 — both cities exist but no route connects them
//   - 500 — internal engine failure (should not happen on a valid graph)
//
// Every query runs the shortest-path engine fresh; runs keep their
// scheduling state outside the Graph, so concurrent requests over the one
// shared graph need no locking.
package routeserver
