package grid

import "fmt"

// CellState is the semantic value of one grid cell.
type CellState int

const (
	// Empty holds no orange.
	Empty CellState = iota
	// Fresh holds an orange that can still be infected.
	Fresh
	// Rotten holds an infected orange.
	Rotten
)

// String returns the lowercase state name.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Fresh:
		return "fresh"
	case Rotten:
		return "rotten"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Coordinate addresses a cell by zero-based row and column.
type Coordinate struct {
	Row, Col int
}

// String formats the coordinate as [row,col].
func (c Coordinate) String() string {
	return fmt.Sprintf("[%d,%d]", c.Row, c.Col)
}

// CellInfo is the per-cell record carried alongside the raw grid.
// InfectionTime is nil until the cell turns rotten; cells rotten at start
// carry minute 0.
type CellInfo struct {
	Coordinate
	State         CellState
	InfectionTime *int
}

// InfectionMinute reports the minute the cell turned rotten, if any.
func (ci CellInfo) InfectionMinute() (int, bool) {
	if ci.InfectionTime == nil {
		return 0, false
	}
	return *ci.InfectionTime, true
}

// Infect marks the cell rotten at minute m.
func (ci *CellInfo) Infect(m int) {
	ci.State = Rotten
	ci.InfectionTime = &m
}

// Counts tallies cells per state.
type Counts struct {
	Fresh, Rotten, Empty int
}

// Total returns the number of classified cells.
func (c Counts) Total() int {
	return c.Fresh + c.Rotten + c.Empty
}

// FromInts converts raw integer rows into CellState rows.
// Values are taken as-is; callers guarantee they lie in {0,1,2}.
func FromInts(values [][]int) [][]CellState {
	out := make([][]CellState, len(values))
	for r, row := range values {
		out[r] = make([]CellState, len(row))
		for c, v := range row {
			out[r][c] = CellState(v)
		}
	}
	return out
}

// Dims returns the row and column count of g.
func Dims(g [][]CellState) (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}
	return len(g), len(g[0])
}
