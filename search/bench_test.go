package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/search"
)

// benchView builds an M×M grid with ~20% random obstacles (corners kept free).
func benchView(b *testing.B, m int) *grid.View {
	rng := rand.New(rand.NewSource(1))
	var blocked []grid.CellID
	for id := 2; id < m*m; id++ {
		if rng.Float64() < 0.2 {
			blocked = append(blocked, grid.CellID(id))
		}
	}

	return view(b, m, m, blocked...)
}

func benchmarkFinder(b *testing.B, f search.Finder) {
	const m = 200
	v := benchView(b, m)
	from, to := grid.CellID(1), grid.CellID(m*m)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.FindPath(v, from, to)
	}
}

// BenchmarkBidirectional_200 measures the two-frontier search corner to corner.
func BenchmarkBidirectional_200(b *testing.B) { benchmarkFinder(b, search.NewBidirectional()) }

// BenchmarkAStar_200 measures single-frontier A*.
func BenchmarkAStar_200(b *testing.B) { benchmarkFinder(b, search.NewAStar()) }

// BenchmarkBFS_200 measures uninformed BFS.
func BenchmarkBFS_200(b *testing.B) { benchmarkFinder(b, search.NewBFS()) }
