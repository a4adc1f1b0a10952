package trace

import (
	"fmt"
	"slices"

	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/grid"
	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/narration"
)

// variable is an unresolved binding: a name and its current value.
type variable struct {
	name  string
	value any
}

// vars builds an ordered variable list from alternating name/value pairs.
func vars(kv ...any) []variable {
	out := make([]variable, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, variable{name: kv[i].(string), value: kv[i+1]})
	}
	return out
}

// event describes one observation point of the generator.
type event struct {
	phase       Phase
	point       narration.Point
	description string
	variables   []variable
	cell        *grid.Coordinate
	direction   grid.Direction
	infected    int
}

// recorder freezes walker state into snapshots.
type recorder struct {
	table  *narration.Table
	onStep func(Snapshot)
	steps  []Snapshot
	closed bool
}

// record appends a snapshot of w taken at ev.
// Recording after the terminal phase, or with an undeclared phase, is a
// programming error and panics.
func (r *recorder) record(w *walker, ev event) {
	if r.closed {
		panic("trace: snapshot recorded after completion")
	}
	if !ev.phase.valid() {
		panic(fmt.Sprintf("trace: undeclared phase %v", ev.phase))
	}

	s := Snapshot{
		Grid:               grid.Clone(w.grid),
		Cells:              grid.CloneInfo(w.cells),
		Minute:             w.minute,
		FreshCount:         w.counts.Fresh,
		RottenCount:        w.counts.Rotten,
		EmptyCount:         w.counts.Empty,
		TotalCells:         w.total,
		InitialFreshCount:  w.initialFresh,
		InfectedThisMinute: ev.infected,
		Wave:               w.wave,
		NewlyRotten:        slices.Clone(w.newlyRotten),
		Queue:              slices.Clone(w.queue),
		Phase:              ev.phase,
		Point:              ev.point,
		HighlightedLines:   r.table.Lines(ev.point),
		Description:        ev.description,
		Variables:          r.bind(ev.variables),
		Direction:          ev.direction,
	}
	if s.NewlyRotten == nil {
		s.NewlyRotten = []grid.Coordinate{}
	}
	if s.Queue == nil {
		s.Queue = []grid.Coordinate{}
	}
	if ev.cell != nil {
		c := *ev.cell
		s.CurrentCell = &c
	}

	r.steps = append(r.steps, s)
	r.closed = ev.phase.Terminal()
	r.onStep(s.Clone())
}

// bind resolves variables against the table, dropping names it does not know.
func (r *recorder) bind(vs []variable) []Binding {
	out := make([]Binding, 0, len(vs))
	for _, v := range vs {
		line, ok := r.table.VariableLine(v.name)
		if !ok {
			continue
		}
		out = append(out, Binding{Name: v.name, Value: fmt.Sprint(v.value), Line: line})
	}
	return out
}
