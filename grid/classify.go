package grid

// Count classifies every cell of g in a single row-major pass.
// Any value other than Fresh or Rotten counts as Empty.
// Complexity: O(R×C).
func Count(g [][]CellState) Counts {
	var c Counts
	for _, row := range g {
		for _, s := range row {
			switch s {
			case Fresh:
				c.Fresh++
			case Rotten:
				c.Rotten++
			default:
				c.Empty++
			}
		}
	}
	return c
}

// NewInfoGrid builds one CellInfo per cell of g.
// Rotten cells get infection time 0, all others none.
// Complexity: O(R×C) time and memory.
func NewInfoGrid(g [][]CellState) [][]CellInfo {
	info := make([][]CellInfo, len(g))
	for r, row := range g {
		info[r] = make([]CellInfo, len(row))
		for c, s := range row {
			info[r][c] = CellInfo{Coordinate: Coordinate{Row: r, Col: c}, State: s}
			if s == Rotten {
				info[r][c].Infect(0)
			}
		}
	}
	return info
}

// Clone returns a deep copy of g.
func Clone(g [][]CellState) [][]CellState {
	out := make([][]CellState, len(g))
	for r := range g {
		out[r] = make([]CellState, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}

// CloneInfo returns a deep copy of info. Infection times are copied by
// value so no pointer is shared between the two grids.
func CloneInfo(info [][]CellInfo) [][]CellInfo {
	out := make([][]CellInfo, len(info))
	for r := range info {
		out[r] = make([]CellInfo, len(info[r]))
		for c, ci := range info[r] {
			out[r][c] = ci
			if ci.InfectionTime != nil {
				t := *ci.InfectionTime
				out[r][c].InfectionTime = &t
			}
		}
	}
	return out
}
