// Package trace runs the multi-source "rotting oranges" BFS while recording
// an ordered, immutable snapshot of every observable micro-step.
//
// What
//
//   - Generate scans the grid, seeds the queue with every rotten cell in
//     row-major order, then spreads the rot layer by layer. Each layer
//     processes exactly the cells queued when it started, so layers and
//     minutes correspond one to one.
//   - Every sub-decision (cell scanned, cell dequeued, direction examined,
//     bounds classified, mutation applied, counter updated, enqueue) emits a
//     Snapshot tagged with a Phase and a narration.Point.
//   - Result carries the snapshots plus FinalMinutes (or Unreachable) and
//     Success. The last snapshot is always the single PhaseComplete one.
//
// Determinism
//
//	Scan order is row-major, neighbors are examined up, down, left, right,
//	and the queue is strict FIFO. The same grid always yields the same
//	snapshot sequence.
//
// Snapshots
//
//	Each Snapshot is a deep copy taken at one instant: grid, cell-info grid,
//	queue, newly rotten list and variable bindings never alias the working
//	state or any other snapshot. Memory is O(R×C) per snapshot.
//
// Options
//
//   - DefaultOptions(): no-op logger, narration.Default(), no hooks.
//   - WithLogger(l):     structured debug logging of phase boundaries.
//   - WithNarration(t):  line-correlation table used for highlights and bindings.
//   - WithOnStep(fn):    observe each snapshot as it is recorded (receives a copy).
//   - WithOnLayer(fn):   observe each completed minute.
//
// Errors
//
//	None. The grid must be rectangular, non-empty and hold only 0, 1 or 2;
//	behavior on other input is unspecified.
package trace
