package grid_test

import (
	"reflect"
	"testing"

	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/grid"
)

//----------------------------------------------------------------------------//
// Count and NewInfoGrid Tests
//----------------------------------------------------------------------------//

// TestCount verifies single-pass classification on a few shapes.
func TestCount(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		want grid.Counts
	}{
		{"Mixed", [][]int{{2, 1, 1}, {1, 1, 0}, {0, 1, 1}}, grid.Counts{Fresh: 6, Rotten: 1, Empty: 2}},
		{"AllEmpty", [][]int{{0, 0}, {0, 0}}, grid.Counts{Empty: 4}},
		{"SingleRow", [][]int{{0, 2}}, grid.Counts{Rotten: 1, Empty: 1}},
		{"SingleFresh", [][]int{{1}}, grid.Counts{Fresh: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.FromInts(tc.grid)
			got := grid.Count(g)
			if got != tc.want {
				t.Errorf("Count(%v) = %+v; want %+v", tc.grid, got, tc.want)
			}
			if got.Total() != len(tc.grid)*len(tc.grid[0]) {
				t.Errorf("Total() = %d; want %d", got.Total(), len(tc.grid)*len(tc.grid[0]))
			}
		})
	}
}

// TestNewInfoGrid checks coordinates, states and initial infection times.
func TestNewInfoGrid(t *testing.T) {
	g := grid.FromInts([][]int{
		{2, 1},
		{0, 2},
	})
	info := grid.NewInfoGrid(g)
	for r := range g {
		for c := range g[r] {
			ci := info[r][c]
			if ci.Row != r || ci.Col != c {
				t.Errorf("info[%d][%d] coordinate = %v", r, c, ci.Coordinate)
			}
			if ci.State != g[r][c] {
				t.Errorf("info[%d][%d].State = %v; want %v", r, c, ci.State, g[r][c])
			}
			m, ok := ci.InfectionMinute()
			if g[r][c] == grid.Rotten {
				if !ok || m != 0 {
					t.Errorf("info[%d][%d] infection = (%d,%v); want (0,true)", r, c, m, ok)
				}
			} else if ok {
				t.Errorf("info[%d][%d] has infection time %d; want unset", r, c, m)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Clone Tests
//----------------------------------------------------------------------------//

// TestClone_Independent ensures clones share no backing storage.
func TestClone_Independent(t *testing.T) {
	g := grid.FromInts([][]int{{1, 2}, {0, 1}})
	cp := grid.Clone(g)
	if !reflect.DeepEqual(g, cp) {
		t.Fatalf("Clone = %v; want %v", cp, g)
	}
	cp[0][0] = grid.Rotten
	if g[0][0] != grid.Fresh {
		t.Errorf("mutating clone changed source: %v", g[0][0])
	}
}

// TestCloneInfo_NoSharedInfectionTime mutates a cloned infection time and
// checks the source record keeps its own value.
func TestCloneInfo_NoSharedInfectionTime(t *testing.T) {
	info := grid.NewInfoGrid(grid.FromInts([][]int{{2, 1}}))
	cp := grid.CloneInfo(info)
	*cp[0][0].InfectionTime = 7
	cp[0][1].Infect(3)

	if m, _ := info[0][0].InfectionMinute(); m != 0 {
		t.Errorf("source infection time = %d; want 0", m)
	}
	if _, ok := info[0][1].InfectionMinute(); ok {
		t.Errorf("source fresh cell gained an infection time")
	}
	if info[0][1].State != grid.Fresh {
		t.Errorf("source state = %v; want fresh", info[0][1].State)
	}
}

//----------------------------------------------------------------------------//
// Adjacency Tests
//----------------------------------------------------------------------------//

// TestDirections_Order pins the examination order and offsets.
func TestDirections_Order(t *testing.T) {
	want := []struct {
		d      grid.Direction
		dr, dc int
		name   string
	}{
		{grid.Up, -1, 0, "up"},
		{grid.Down, 1, 0, "down"},
		{grid.Left, 0, -1, "left"},
		{grid.Right, 0, 1, "right"},
	}
	dirs := grid.Directions()
	for i, w := range want {
		if dirs[i] != w.d {
			t.Fatalf("Directions()[%d] = %v; want %v", i, dirs[i], w.d)
		}
		dr, dc := w.d.Offset()
		if dr != w.dr || dc != w.dc {
			t.Errorf("%v.Offset() = (%d,%d); want (%d,%d)", w.d, dr, dc, w.dr, w.dc)
		}
		if w.d.String() != w.name {
			t.Errorf("String() = %q; want %q", w.d.String(), w.name)
		}
	}
	if grid.NoDirection.String() != "" {
		t.Errorf("NoDirection.String() = %q; want empty", grid.NoDirection.String())
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g := grid.FromInts([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	for _, rc := range [][2]int{{0, 0}, {1, 2}, {1, 1}} {
		if !grid.InBounds(g, rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	for _, rc := range [][2]int{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		if grid.InBounds(g, rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

// TestAdjacentFresh covers order, bounds and non-fresh filtering.
//
// Grid:
//
//	1 1 0
//	1 2 1
//	2 1 1
func TestAdjacentFresh(t *testing.T) {
	g := grid.FromInts([][]int{
		{1, 1, 0},
		{1, 2, 1},
		{2, 1, 1},
	})
	cases := []struct {
		name     string
		row, col int
		want     []grid.Coordinate
	}{
		{"CenterAllFresh", 1, 1, []grid.Coordinate{{0, 1}, {2, 1}, {1, 0}, {1, 2}}},
		{"CornerClipped", 0, 0, []grid.Coordinate{{1, 0}, {0, 1}}},
		{"RottenAndEmptySkipped", 1, 0, []grid.Coordinate{{0, 0}}},
		{"BottomRight", 2, 2, []grid.Coordinate{{1, 2}, {2, 1}}},
		{"NeighborsEmptyOrRotten", 0, 2, []grid.Coordinate{{1, 2}, {0, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := grid.AdjacentFresh(g, tc.row, tc.col)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("AdjacentFresh(%d,%d) = %v; want %v", tc.row, tc.col, got, tc.want)
			}
		})
	}
}

// TestAdjacentFresh_Pure ensures the resolver leaves the grid untouched.
func TestAdjacentFresh_Pure(t *testing.T) {
	g := grid.FromInts([][]int{{1, 2, 1}})
	before := grid.Clone(g)
	_ = grid.AdjacentFresh(g, 0, 1)
	if !reflect.DeepEqual(g, before) {
		t.Errorf("grid mutated: %v; want %v", g, before)
	}
}
