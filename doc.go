// Package cityroute is an in-memory route planner for weighted city
// networks: build a graph of named cities once, then answer
// shortest-route queries between any two of them.
//
// 🚀 What is cityroute?
//
//	A small, focused library that brings together:
//		• citygraph/   — dense, index-addressed adjacency-list graph of named cities
//		• minheap/     — indexed binary min-heap with O(log n) decrease-key
//		• dijkstra/    — single-source shortest paths + route reconstruction & rendering
//		• cityio/      — tab-delimited loaders for road tables and query pairs
//		• routeserver/ — HTTP JSON query surface over a loaded graph
//		• cmd/cityroute — batch planner binary (roads file + pairs file → report)
//
// ✨ Why choose cityroute?
//
//   - True decrease-key — the heap tracks every vertex's slot, so relaxation
//     never scans and never pushes duplicates
//   - Per-run scheduling state — a loaded graph is read-only during queries,
//     so concurrent queries against one graph are safe
//   - Typed sentinel errors — bad input is diagnosed with the city names
//     involved, never with a silent exit
//
// Quick ASCII example:
//
//	    York──42──Leeds
//	      │         │
//	     61        25
//	      │         │
//	    Hull──95──Sheffield
//
//	dijkstra.Run over this network from York answers every city in one pass.
//
//	go get github.com/katalvlaran/cityroute
package cityroute
