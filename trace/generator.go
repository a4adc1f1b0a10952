package trace

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/grid"
	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/narration"
)

// walker owns the mutable working state of one run.
type walker struct {
	grid  [][]grid.CellState
	cells [][]grid.CellInfo
	rows  int
	cols  int
	total int

	// counts tracks cell states in grid and always sums to total.
	counts       grid.Counts
	initialFresh int

	// fresh is the algorithm's own counter. It is built up during the scan
	// and decremented one step after each infection, so it can trail counts.
	fresh       int
	queue       []grid.Coordinate
	minute      int
	wave        int
	newlyRotten []grid.Coordinate

	rec *recorder
	log *zap.Logger
	opt Options
}

// Generate runs the BFS on a private copy of g and returns every snapshot
// together with the final answer. g is not modified.
//
// Preconditions: g is rectangular with at least one row and one column and
// holds only grid.Empty, grid.Fresh or grid.Rotten.
//
// Complexity: O(R×C) BFS work, O(R×C) per snapshot, O(R×C) snapshots.
func Generate(g [][]grid.CellState, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	work := grid.Clone(g)
	rows, cols := grid.Dims(work)
	counts := grid.Count(work)
	w := &walker{
		grid:         work,
		cells:        grid.NewInfoGrid(work),
		rows:         rows,
		cols:         cols,
		total:        rows * cols,
		counts:       counts,
		initialFresh: counts.Fresh,
		queue:        make([]grid.Coordinate, 0, counts.Rotten),
		rec:          &recorder{table: o.Narration, onStep: o.OnStep},
		log:          o.Logger.With(zap.Int("rows", rows), zap.Int("cols", cols)),
		opt:          o,
	}

	w.declare()
	w.scan()
	w.log.Debug("scan complete",
		zap.Int("fresh", w.fresh),
		zap.Int("rotten", len(w.queue)),
		zap.Int("empty", w.counts.Empty),
	)

	if w.fresh == 0 {
		w.log.Debug("no fresh cells, finishing early")
		return w.finish(func(out Outcome) string {
			return fmt.Sprintf("No fresh oranges to infect, return %d", out.FinalMinutes)
		})
	}
	if len(w.queue) == 0 {
		w.log.Debug("no rotten sources, finishing early", zap.Int("fresh", w.fresh))
		return w.finish(func(out Outcome) string {
			return fmt.Sprintf("No rotten oranges, so %d fresh orange(s) can never be infected, return %d", w.fresh, out.FinalMinutes)
		})
	}

	w.spread()
	return w.finish(completionMessage(w.fresh))
}

// record snapshots the current state.
func (w *walker) record(ev event) {
	w.rec.record(w, ev)
}

// declare emits the method entry and local variable declarations.
func (w *walker) declare() {
	rows, cols := w.rows, w.cols
	w.record(event{
		phase:       PhaseInit,
		point:       narration.MethodDef,
		description: fmt.Sprintf("Enter orangesRotting with a %d×%d grid", rows, cols),
		variables:   vars("M", rows, "N", cols),
	})
	w.record(event{
		phase:       PhaseInit,
		point:       narration.InitRows,
		description: fmt.Sprintf("M = grid.length = %d (rows)", rows),
		variables:   vars("M", rows),
	})
	w.record(event{
		phase:       PhaseInit,
		point:       narration.InitCols,
		description: fmt.Sprintf("N = grid[0].length = %d (columns)", cols),
		variables:   vars("M", rows, "N", cols),
	})
	w.record(event{
		phase:       PhaseInit,
		point:       narration.InitQueue,
		description: "Create an empty queue for the coordinates of rotten oranges",
		variables:   vars("M", rows, "N", cols, "queueSize", len(w.queue)),
	})
	w.record(event{
		phase:       PhaseInit,
		point:       narration.InitFresh,
		description: "fresh = 0 counts the fresh oranges",
		variables:   vars("M", rows, "N", cols, "queueSize", len(w.queue), "fresh", w.fresh),
	})
	w.record(event{
		phase:       PhaseInit,
		point:       narration.ScanComment,
		description: "Scan the grid: count fresh oranges and enqueue every rotten one",
		variables:   vars("M", rows, "N", cols, "queueSize", len(w.queue), "fresh", w.fresh),
	})
}

// scan visits every cell in row-major order, counting fresh cells and
// enqueueing rotten ones in discovery order.
func (w *walker) scan() {
	rows, cols := w.rows, w.cols
	for r := 0; r < rows; r++ {
		w.record(event{
			phase:       PhaseInit,
			point:       narration.ScanRow,
			description: fmt.Sprintf("Outer loop: r = %d, scan row %d", r, r),
			variables:   vars("M", rows, "N", cols, "queueSize", len(w.queue), "fresh", w.fresh, "r", r),
		})
		for c := 0; c < cols; c++ {
			at := grid.Coordinate{Row: r, Col: c}
			scanVars := func() []variable {
				return vars("M", rows, "N", cols, "queueSize", len(w.queue), "fresh", w.fresh, "r", r, "c", c)
			}
			w.record(event{
				phase:       PhaseInit,
				point:       narration.ScanCol,
				description: fmt.Sprintf("Inner loop: c = %d, inspect cell %v", c, at),
				variables:   scanVars(),
				cell:        &at,
			})

			switch w.grid[r][c] {
			case grid.Fresh:
				w.record(event{
					phase:       PhaseInit,
					point:       narration.IfFresh,
					description: fmt.Sprintf("Cell %v is 1 (fresh orange)", at),
					variables:   scanVars(),
					cell:        &at,
				})
				w.fresh++
				w.record(event{
					phase:       PhaseInit,
					point:       narration.FreshIncrement,
					description: fmt.Sprintf("fresh++, fresh count is now %d", w.fresh),
					variables:   scanVars(),
					cell:        &at,
				})
			case grid.Rotten:
				w.record(event{
					phase:       PhaseInit,
					point:       narration.IfRotten,
					description: fmt.Sprintf("Cell %v is 2 (rotten orange)", at),
					variables:   scanVars(),
					cell:        &at,
				})
				w.queue = append(w.queue, at)
				w.record(event{
					phase:       PhaseInit,
					point:       narration.EnqueueInitial,
					description: fmt.Sprintf("Enqueue rotten orange %v, queue length is now %d", at, len(w.queue)),
					variables:   scanVars(),
					cell:        &at,
				})
			default:
				w.record(event{
					phase:       PhaseInit,
					point:       narration.ScanCol,
					description: fmt.Sprintf("Cell %v is 0 (empty), skip", at),
					variables:   scanVars(),
					cell:        &at,
				})
			}
		}
	}

	w.record(event{
		phase:       PhaseInit,
		point:       narration.InitMinutes,
		description: fmt.Sprintf("Scan finished: %d fresh orange(s) found, %d rotten orange(s) queued", w.fresh, len(w.queue)),
		variables:   vars("M", rows, "N", cols, "queueSize", len(w.queue), "fresh", w.fresh),
	})
	w.record(event{
		phase:       PhaseInit,
		point:       narration.InitMinutes,
		description: "minutes = 0 records elapsed minutes",
		variables:   vars("M", rows, "N", cols, "queueSize", len(w.queue), "fresh", w.fresh, "minutes", w.minute),
	})
	w.record(event{
		phase:       PhaseInit,
		point:       narration.InitDirections,
		description: "dirs = {{-1,0},{1,0},{0,-1},{0,1}}: up, down, left, right",
		variables:   vars("M", rows, "N", cols, "queueSize", len(w.queue), "fresh", w.fresh, "minutes", w.minute),
	})
}

// loopVars are the bindings shared by every BFS-loop snapshot.
func (w *walker) loopVars(extra ...any) []variable {
	return vars(append([]any{"fresh", w.fresh, "queueSize", len(w.queue), "minutes", w.minute}, extra...)...)
}

// spread runs the layered BFS until the queue drains or nothing fresh remains.
func (w *walker) spread() {
	w.record(event{
		phase:       PhaseBFSLoop,
		point:       narration.BFSComment,
		description: "Start the breadth-first search main loop",
		variables:   w.loopVars(),
	})

	for len(w.queue) > 0 && w.fresh > 0 {
		w.newlyRotten = w.newlyRotten[:0]
		w.wave++
		w.record(event{
			phase: PhaseBFSLoop,
			point: narration.WhileLoop,
			description: fmt.Sprintf("while condition holds: queue is not empty (%d > 0) and fresh oranges remain (%d > 0)",
				len(w.queue), w.fresh),
			variables: w.loopVars(),
		})

		// Cells infected during this layer are appended behind size and wait
		// for the next one.
		size := len(w.queue)
		w.log.Debug("layer start", zap.Int("wave", w.wave), zap.Int("size", size), zap.Int("fresh", w.fresh))
		w.record(event{
			phase:       PhaseBFSLoop,
			point:       narration.LayerSize,
			description: fmt.Sprintf("Layer size = %d: this minute processes %d rotten orange(s)", size, size),
			variables:   w.loopVars("size", size),
		})

		for i := 0; i < size; i++ {
			w.process(i, size)
		}

		if n := len(w.newlyRotten); n > 0 {
			w.minute++
			w.record(event{
				phase:       PhaseInfect,
				point:       narration.MinutesIncrement,
				description: fmt.Sprintf("Minute %d ends: %d orange(s) infected, minutes++ = %d", w.minute, n, w.minute),
				variables:   w.loopVars(),
				infected:    n,
			})
			w.log.Debug("minute complete", zap.Int("minute", w.minute), zap.Int("infected", n))
			w.opt.OnLayer(w.minute, n)
		}
	}

	reason := "the queue is empty, nothing left to spread the rot"
	if w.fresh == 0 {
		reason = "every fresh orange has rotted (fresh = 0)"
	}
	w.newlyRotten = w.newlyRotten[:0]
	w.record(event{
		phase:       PhaseBFSLoop,
		point:       narration.WhileLoop,
		description: fmt.Sprintf("while condition fails: %s, exit the loop", reason),
		variables:   w.loopVars(),
	})
}

// process dequeues the i-th cell of a layer and checks its four neighbors.
func (w *walker) process(i, size int) {
	w.record(event{
		phase:       PhaseBFSLoop,
		point:       narration.ForIndex,
		description: fmt.Sprintf("Process rotten orange %d/%d", i+1, size),
		variables:   w.loopVars("size", size, "i", i),
	})

	cell := w.queue[0]
	w.queue = w.queue[1:]
	w.record(event{
		phase:       PhaseBFSLoop,
		point:       narration.Poll,
		description: fmt.Sprintf("Dequeue rotten orange %v", cell),
		variables:   w.loopVars("size", size, "i", i, "cell", cell),
		cell:        &cell,
	})
	if ce := w.log.Check(zap.DebugLevel, "dequeued"); ce != nil {
		ce.Write(
			zap.Stringer("cell", cell),
			zap.Int("freshNeighbors", len(grid.AdjacentFresh(w.grid, cell.Row, cell.Col))),
		)
	}

	w.record(event{
		phase:       PhaseBFSLoop,
		point:       narration.ReadCoordinates,
		description: fmt.Sprintf("Read coordinates r = %d, c = %d", cell.Row, cell.Col),
		variables:   w.loopVars("currentR", cell.Row, "currentC", cell.Col),
		cell:        &cell,
	})
	w.record(event{
		phase:       PhaseCheckAdjacent,
		point:       narration.CheckComment,
		description: fmt.Sprintf("Check the four neighbors of %v", cell),
		variables:   w.loopVars("currentR", cell.Row, "currentC", cell.Col),
		cell:        &cell,
	})

	for _, d := range grid.Directions() {
		w.check(cell, d)
	}
}

// check examines the neighbor of cell in direction d and infects it if fresh.
func (w *walker) check(cell grid.Coordinate, d grid.Direction) {
	dr, dc := d.Offset()
	at := func(extra ...any) []variable {
		return w.loopVars(append(extra, "currentR", cell.Row, "currentC", cell.Col)...)
	}
	w.record(event{
		phase:       PhaseCheckAdjacent,
		point:       narration.ForDirection,
		description: fmt.Sprintf("Check %s (dir = [%d,%d])", d, dr, dc),
		variables:   at("dir", fmt.Sprintf("[%d,%d]", dr, dc)),
		cell:        &cell,
		direction:   d,
	})

	n := cell.Step(d)
	w.record(event{
		phase:       PhaseCheckAdjacent,
		point:       narration.ComputeRow,
		description: fmt.Sprintf("nr = %d + (%d) = %d", cell.Row, dr, n.Row),
		variables:   at("nr", n.Row),
		cell:        &cell,
		direction:   d,
	})
	w.record(event{
		phase:       PhaseCheckAdjacent,
		point:       narration.ComputeCol,
		description: fmt.Sprintf("nc = %d + (%d) = %d", cell.Col, dc, n.Col),
		variables:   at("nr", n.Row, "nc", n.Col),
		cell:        &cell,
		direction:   d,
	})

	switch {
	case !grid.InBounds(w.grid, n.Row, n.Col):
		w.record(event{
			phase:       PhaseCheckAdjacent,
			point:       narration.BoundsCheck,
			description: fmt.Sprintf("%v is out of bounds, skip this direction", n),
			variables:   w.loopVars("nr", n.Row, "nc", n.Col),
			cell:        &cell,
			direction:   d,
		})
	case w.grid[n.Row][n.Col] != grid.Fresh:
		w.record(event{
			phase:       PhaseCheckAdjacent,
			point:       narration.BoundsCheck,
			description: fmt.Sprintf("%v is %s, not fresh, skip", n, w.grid[n.Row][n.Col]),
			variables:   w.loopVars("nr", n.Row, "nc", n.Col),
			cell:        &cell,
			direction:   d,
		})
	default:
		w.record(event{
			phase:       PhaseCheckAdjacent,
			point:       narration.BoundsCheck,
			description: fmt.Sprintf("%v is a fresh orange, infect it", n),
			variables:   w.loopVars("nr", n.Row, "nc", n.Col),
			cell:        &cell,
			direction:   d,
		})
		w.infect(n, d)
	}
}

// infect turns n rotten at minute+1 and queues it for the next layer.
func (w *walker) infect(n grid.Coordinate, d grid.Direction) {
	w.grid[n.Row][n.Col] = grid.Rotten
	w.cells[n.Row][n.Col].Infect(w.minute + 1)
	w.counts.Fresh--
	w.counts.Rotten++
	w.record(event{
		phase:       PhaseInfect,
		point:       narration.SetRotten,
		description: fmt.Sprintf("Mark %v rotten (grid[%d][%d] = 2)", n, n.Row, n.Col),
		variables:   w.loopVars("nr", n.Row, "nc", n.Col),
		cell:        &n,
		direction:   d,
	})

	w.fresh--
	w.record(event{
		phase:       PhaseInfect,
		point:       narration.FreshDecrement,
		description: fmt.Sprintf("fresh--, fresh count is now %d", w.fresh),
		variables:   w.loopVars("nr", n.Row, "nc", n.Col),
		cell:        &n,
		direction:   d,
	})

	w.queue = append(w.queue, n)
	w.newlyRotten = append(w.newlyRotten, n)
	w.record(event{
		phase:       PhaseInfect,
		point:       narration.EnqueueInfected,
		description: fmt.Sprintf("Enqueue newly infected %v, queue length is now %d", n, len(w.queue)),
		variables:   w.loopVars("nr", n.Row, "nc", n.Col),
		cell:        &n,
		direction:   d,
	})
}
