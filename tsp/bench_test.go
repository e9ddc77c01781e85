package tsp_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/tsp"
)

func BenchmarkGenetic_20(b *testing.B) {
	dist := manhattanDist(22, 50, 1)
	opts := tsp.DefaultOptions()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(dist, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExact_12(b *testing.B) {
	dist := manhattanDist(14, 50, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Exact(dist); err != nil {
			b.Fatal(err)
		}
	}
}
