package trace

import (
	"slices"

	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/grid"
	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/narration"
)

// Binding is one named variable value tied to its declaring listing line.
type Binding struct {
	Name  string
	Value string
	Line  int
}

// Snapshot is the state of the run at one instant.
// All slices are owned by the snapshot; see Clone before mutating.
type Snapshot struct {
	Grid  [][]grid.CellState
	Cells [][]grid.CellInfo

	Minute            int
	FreshCount        int
	RottenCount       int
	EmptyCount        int
	TotalCells        int
	InitialFreshCount int

	// InfectedThisMinute is non-zero only on the snapshot closing a minute.
	InfectedThisMinute int
	// Wave is the 1-based BFS layer being processed, 0 before the loop.
	Wave        int
	NewlyRotten []grid.Coordinate
	Queue       []grid.Coordinate

	Phase            Phase
	Point            narration.Point
	HighlightedLines []int
	Description      string
	Variables        []Binding

	// CurrentCell is the cell under examination, nil when none.
	CurrentCell *grid.Coordinate
	// Direction is the direction being checked, grid.NoDirection when none.
	Direction grid.Direction
}

// Variable looks up a binding by name.
func (s Snapshot) Variable(name string) (Binding, bool) {
	for _, b := range s.Variables {
		if b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	cp := s
	cp.Grid = grid.Clone(s.Grid)
	cp.Cells = grid.CloneInfo(s.Cells)
	cp.NewlyRotten = slices.Clone(s.NewlyRotten)
	cp.Queue = slices.Clone(s.Queue)
	cp.HighlightedLines = slices.Clone(s.HighlightedLines)
	cp.Variables = slices.Clone(s.Variables)
	if s.CurrentCell != nil {
		c := *s.CurrentCell
		cp.CurrentCell = &c
	}
	return cp
}

// Result is the full trace of one run.
//
//   - Steps: snapshots in emission order; Steps[0] is the first PhaseInit
//     snapshot and the last entry is the only PhaseComplete one.
//   - FinalMinutes: minutes until no fresh cell remains, or Unreachable.
//   - Success: true iff every fresh cell rotted.
type Result struct {
	Steps        []Snapshot
	FinalMinutes int
	Success      bool
}

// Len returns the number of snapshots.
func (r *Result) Len() int {
	return len(r.Steps)
}

// At returns the i-th snapshot, or false when i is out of range.
func (r *Result) At(i int) (Snapshot, bool) {
	if i < 0 || i >= len(r.Steps) {
		return Snapshot{}, false
	}
	return r.Steps[i], true
}

// Final returns the closing PhaseComplete snapshot.
func (r *Result) Final() Snapshot {
	return r.Steps[len(r.Steps)-1]
}
