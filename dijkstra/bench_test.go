package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dijkstra"
)

// gridGraph returns an n×n four-connected grid with random weights 1..9.
func gridGraph(n int) core.Graph[int, int] {
	r := rand.New(rand.NewSource(1))
	g := make(core.Graph[int, int], n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			id := y*n + x
			nbrs := map[int]int{}
			if x > 0 {
				nbrs[id-1] = 1 + r.Intn(9)
			}
			if x < n-1 {
				nbrs[id+1] = 1 + r.Intn(9)
			}
			if y > 0 {
				nbrs[id-n] = 1 + r.Intn(9)
			}
			if y < n-1 {
				nbrs[id+n] = 1 + r.Intn(9)
			}
			g[id] = nbrs
		}
	}

	return g
}

// BenchmarkShortestPaths_Grid100 runs a full query on a 100×100 grid (10k vertices, ~40k arcs).
func BenchmarkShortestPaths_Grid100(b *testing.B) {
	g := gridGraph(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPaths(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPaths_MaxDistance measures a query bounded to a small neighborhood.
func BenchmarkShortestPaths_MaxDistance(b *testing.B) {
	g := gridGraph(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPaths(g, 5050, dijkstra.WithMaxDistance(30)); err != nil {
			b.Fatal(err)
		}
	}
}
