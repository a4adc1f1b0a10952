package narration

import "fmt"

// Point identifies one narrated statement of the simulated listing.
type Point uint8

const (
	MethodDef Point = iota
	InitRows
	InitCols
	InitQueue
	InitFresh
	ScanComment
	ScanRow
	ScanCol
	IfFresh
	FreshIncrement
	IfRotten
	EnqueueInitial
	InitMinutes
	InitDirections
	BFSComment
	WhileLoop
	LayerSize
	ForIndex
	Poll
	ReadCoordinates
	CheckComment
	ForDirection
	ComputeRow
	ComputeCol
	BoundsCheck
	SetRotten
	FreshDecrement
	EnqueueInfected
	MinutesIncrement
	Return

	numPoints
)

var pointNames = [numPoints]string{
	MethodDef:        "method-def",
	InitRows:         "init-rows",
	InitCols:         "init-cols",
	InitQueue:        "init-queue",
	InitFresh:        "init-fresh",
	ScanComment:      "scan-comment",
	ScanRow:          "scan-row",
	ScanCol:          "scan-col",
	IfFresh:          "if-fresh",
	FreshIncrement:   "fresh-increment",
	IfRotten:         "if-rotten",
	EnqueueInitial:   "enqueue-initial",
	InitMinutes:      "init-minutes",
	InitDirections:   "init-directions",
	BFSComment:       "bfs-comment",
	WhileLoop:        "while-loop",
	LayerSize:        "layer-size",
	ForIndex:         "for-index",
	Poll:             "poll",
	ReadCoordinates:  "read-coordinates",
	CheckComment:     "check-comment",
	ForDirection:     "for-direction",
	ComputeRow:       "compute-row",
	ComputeCol:       "compute-col",
	BoundsCheck:      "bounds-check",
	SetRotten:        "set-rotten",
	FreshDecrement:   "fresh-decrement",
	EnqueueInfected:  "enqueue-infected",
	MinutesIncrement: "minutes-increment",
	Return:           "return",
}

// String returns the YAML key of p.
func (p Point) String() string {
	if p < numPoints {
		return pointNames[p]
	}
	return fmt.Sprintf("Point(%d)", uint8(p))
}

// Points returns every Point in listing order.
func Points() []Point {
	out := make([]Point, numPoints)
	for i := range out {
		out[i] = Point(i)
	}
	return out
}

// ParsePoint resolves a YAML key back to its Point.
func ParsePoint(name string) (Point, bool) {
	for i, n := range pointNames {
		if n == name {
			return Point(i), true
		}
	}
	return 0, false
}
