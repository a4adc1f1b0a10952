package grid

import "fmt"

// Direction names one of the four cardinal neighbors.
type Direction uint8

const (
	// NoDirection marks the absence of a direction under examination.
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// directions is the fixed examination order shared by every adjacency check.
var directions = [4]Direction{Up, Down, Left, Right}

// Directions returns the four directions in examination order.
func Directions() [4]Direction {
	return directions
}

// Offset returns the (row, col) delta of d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the lowercase direction name, or "" for NoDirection.
func (d Direction) String() string {
	switch d {
	case NoDirection:
		return ""
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Step returns the coordinate one cell away from c in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	dr, dc := d.Offset()
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// InBounds reports whether (row,col) lies within g.
// Complexity: O(1).
func InBounds(g [][]CellState, row, col int) bool {
	rows, cols := Dims(g)
	return row >= 0 && row < rows && col >= 0 && col < cols
}

// AdjacentFresh returns the in-bounds Fresh neighbors of (row,col),
// ordered up, down, left, right. g is not modified.
// Complexity: O(1).
func AdjacentFresh(g [][]CellState, row, col int) []Coordinate {
	out := make([]Coordinate, 0, len(directions))
	origin := Coordinate{Row: row, Col: col}
	for _, d := range directions {
		n := origin.Step(d)
		if InBounds(g, n.Row, n.Col) && g[n.Row][n.Col] == Fresh {
			out = append(out, n)
		}
	}
	return out
}
