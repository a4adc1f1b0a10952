package narration

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for table construction.
var (
	// ErrUnknownPoint is returned when a point key names no Point.
	ErrUnknownPoint = errors.New("narration: unknown point")
	// ErrMissingPoint is returned when a Point has no lines assigned.
	ErrMissingPoint = errors.New("narration: point has no lines")
	// ErrInvalidLine is returned for non-positive line numbers.
	ErrInvalidLine = errors.New("narration: line numbers must be positive")
	// ErrDecode wraps YAML decoding failures.
	ErrDecode = errors.New("narration: cannot decode table")
)

// Table maps narrated points and variable names to listing lines.
// A Table is read-only once built and safe to share.
type Table struct {
	points    [numPoints][]int
	variables map[string]int
}

// New validates and builds a Table. Every Point must have at least one line.
// The input maps are copied.
func New(points map[Point][]int, variables map[string]int) (*Table, error) {
	t := &Table{variables: make(map[string]int, len(variables))}
	for p, lines := range points {
		if p >= numPoints {
			return nil, fmt.Errorf("%w: %v", ErrUnknownPoint, p)
		}
		for _, l := range lines {
			if l <= 0 {
				return nil, fmt.Errorf("%w: %s line %d", ErrInvalidLine, p, l)
			}
		}
		t.points[p] = slices.Clone(lines)
	}
	for _, p := range Points() {
		if len(t.points[p]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingPoint, p)
		}
	}
	for name, l := range variables {
		if l <= 0 {
			return nil, fmt.Errorf("%w: variable %q line %d", ErrInvalidLine, name, l)
		}
		t.variables[name] = l
	}
	return t, nil
}

// Default returns the table for the stock listing of orangesRotting.
func Default() *Table {
	t, err := New(map[Point][]int{
		MethodDef:        {2},
		InitRows:         {3},
		InitCols:         {4},
		InitQueue:        {5},
		InitFresh:        {6},
		ScanComment:      {8},
		ScanRow:          {9},
		ScanCol:          {10},
		IfFresh:          {11},
		FreshIncrement:   {12},
		IfRotten:         {13},
		EnqueueInitial:   {14},
		InitMinutes:      {19},
		InitDirections:   {20},
		BFSComment:       {22},
		WhileLoop:        {23},
		LayerSize:        {24},
		ForIndex:         {25},
		Poll:             {26},
		ReadCoordinates:  {27},
		CheckComment:     {29},
		ForDirection:     {30},
		ComputeRow:       {31},
		ComputeCol:       {32},
		BoundsCheck:      {34, 35},
		SetRotten:        {36},
		FreshDecrement:   {37},
		EnqueueInfected:  {38},
		MinutesIncrement: {42},
		Return:           {45},
	}, map[string]int{
		"M":         3,
		"N":         4,
		"queueSize": 5,
		"fresh":     6,
		"r":         9,
		"c":         10,
		"minutes":   19,
		"size":      24,
		"i":         25,
		"cell":      26,
		"currentR":  27,
		"currentC":  27,
		"dir":       30,
		"nr":        31,
		"nc":        32,
	})
	if err != nil {
		panic(err) // static table
	}
	return t
}

// Lines returns a copy of the lines highlighted for p.
func (t *Table) Lines(p Point) []int {
	if p >= numPoints {
		return nil
	}
	return slices.Clone(t.points[p])
}

// VariableLine returns the declaring line of a variable, if the table knows it.
func (t *Table) VariableLine(name string) (int, bool) {
	l, ok := t.variables[name]
	return l, ok
}

// document is the YAML shape accepted by Load.
type document struct {
	Points    map[string][]int `yaml:"points"`
	Variables map[string]int   `yaml:"variables"`
}

// Load decodes a Table from YAML. All points must be present.
func Load(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	points := make(map[Point][]int, len(doc.Points))
	for name, lines := range doc.Points {
		p, ok := ParsePoint(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPoint, name)
		}
		points[p] = lines
	}
	return New(points, doc.Variables)
}
