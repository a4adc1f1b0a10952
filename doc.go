// Package rotting is a step-by-step tracer for the "rotting oranges"
// multi-source BFS (LeetCode 994).
//
// What it does:
//
//	Given a rectangular grid of 0 (empty), 1 (fresh) and 2 (rotten) cells,
//	every minute each rotten orange infects its fresh up/down/left/right
//	neighbors. The tracer answers how many minutes pass until nothing fresh
//	remains (or -1 when some orange is walled off) and records every
//	observable micro-step along the way as an immutable snapshot, ready to be
//	replayed by a visualizer.
//
// Layout:
//
//	grid/      — cell states, coordinates, classifier, adjacency resolver
//	narration/ — injectable line-correlation table for the narrated listing
//	trace/     — trace generator, step recorder, result assembler
//	reference/ — plain multi-source BFS used to verify answers
//
// Quick example:
//
//	res := trace.Generate(grid.FromInts([][]int{{2, 1, 1}, {1, 1, 0}, {0, 1, 1}}))
//	fmt.Println(res.FinalMinutes, res.Success, res.Len())
//
// Parsing, validating or generating grids, and rendering or playing back a
// trace, are left to the caller.
package rotting
