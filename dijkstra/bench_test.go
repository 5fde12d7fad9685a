package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cityroute/citygraph"
	"github.com/katalvlaran/cityroute/dijkstra"
)

// benchGraph builds a connected random network of n cities with roughly
// edges total roads. Seeded deterministically so every run benchmarks the
// same graph.
func benchGraph(b *testing.B, n, edges int) *citygraph.Graph {
	b.Helper()
	g := citygraph.New()
	r := rand.New(rand.NewSource(42))

	for i := 0; i < n; i++ {
		if _, err := g.AddCity(fmt.Sprintf("C%d", i)); err != nil {
			b.Fatal(err)
		}
	}

	// Chain for connectivity, then random extras.
	for i := 1; i < n; i++ {
		if err := g.AddRoad(i-1, i, int64(r.Intn(10)+1)); err != nil {
			b.Fatal(err)
		}
	}
	for i := n - 1; i < edges; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		if err := g.AddRoad(u, v, int64(r.Intn(100)+1)); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

func BenchmarkRun(b *testing.B) {
	for _, size := range []struct{ n, e int }{
		{100, 400},
		{1000, 4000},
	} {
		g := benchGraph(b, size.n, size.e)
		b.Run(fmt.Sprintf("V%d_E%d", size.n, size.e), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := dijkstra.Run(g, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
