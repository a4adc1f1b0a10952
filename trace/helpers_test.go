package trace_test

import (
	"math/rand"

	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/grid"
)

// scenario is a named input grid with its expected answer.
type scenario struct {
	name    string
	grid    [][]int
	minutes int
	success bool
}

// scenarios are the canonical inputs shared by several tests.
var scenarios = []scenario{
	{"Spread", [][]int{{2, 1, 1}, {1, 1, 0}, {0, 1, 1}}, 4, true},
	{"IsolatedFresh", [][]int{{2, 1, 1}, {0, 1, 1}, {1, 0, 1}}, -1, false},
	{"NoFresh", [][]int{{0, 2}}, 0, true},
	{"AllEmpty", [][]int{{0, 0}, {0, 0}}, 0, true},
	{"NoRotten", [][]int{{1}}, -1, false},
	{"TwoSources", [][]int{{2, 1, 1, 1, 2}}, 2, true},
	{"Column", [][]int{{2}, {1}, {1}}, 2, true},
}

// randomGrid draws a rows×cols grid with values in [0,2].
func randomGrid(rng *rand.Rand, rows, cols int) [][]grid.CellState {
	g := make([][]grid.CellState, rows)
	for r := range g {
		g[r] = make([]grid.CellState, cols)
		for c := range g[r] {
			g[r][c] = grid.CellState(rng.Intn(3))
		}
	}
	return g
}

// corpus returns the scenarios plus a deterministic batch of random grids.
func corpus() [][][]grid.CellState {
	out := make([][][]grid.CellState, 0, len(scenarios)+60)
	for _, sc := range scenarios {
		out = append(out, grid.FromInts(sc.grid))
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 60; i++ {
		out = append(out, randomGrid(rng, 1+rng.Intn(5), 1+rng.Intn(5)))
	}
	return out
}
