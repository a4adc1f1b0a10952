// Package grid models the orange grid: cell states, coordinates, per-cell
// infection records, and the pure helpers the trace generator is built on.
//
// What:
//
//   - CellState is the closed set Empty (0), Fresh (1), Rotten (2).
//   - Count classifies every cell in a single pass (Cell Classifier).
//   - NewInfoGrid builds one CellInfo per cell; rotten cells start at minute 0.
//   - AdjacentFresh returns the in-bounds fresh neighbors of a coordinate in
//     the fixed order up, down, left, right (Adjacency Resolver).
//   - Clone and CloneInfo produce deep, non-aliased copies.
//
// Preconditions:
//
//	Grids are rectangular, non-empty and hold only values in {0,1,2}.
//	Validation belongs to the caller; nothing here checks it.
//
// Complexity:
//
//   - Count, NewInfoGrid, Clone, CloneInfo: O(R×C) time and memory.
//   - AdjacentFresh, InBounds:             O(1).
package grid
