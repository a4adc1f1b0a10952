package trace_test

import (
	"math/rand"
	"testing"

	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/grid"
	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/trace"
)

// BenchmarkGenerate_Random measures a full trace of a random 10×10 grid.
// Snapshots are deep copies, so cost grows as O((R×C)²).
func BenchmarkGenerate_Random(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	g := randomGrid(rng, 10, 10)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = trace.Generate(g)
	}
}

// BenchmarkGenerate_SingleSource spreads from one corner of a full 8×8 grid.
func BenchmarkGenerate_SingleSource(b *testing.B) {
	const n = 8
	g := make([][]grid.CellState, n)
	for r := range g {
		g[r] = make([]grid.CellState, n)
		for c := range g[r] {
			g[r][c] = grid.Fresh
		}
	}
	g[0][0] = grid.Rotten

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = trace.Generate(g)
	}
}
