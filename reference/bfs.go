// Package reference computes the rotting-oranges answer with a plain
// multi-source BFS and no instrumentation. It exists to cross-check the
// trace generator.
package reference

import "github.com/fuck-algorithm/leetcode-994-rotting-oranges/grid"

// offsets are the orthogonal neighbor deltas (row, col).
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// InfectionTimes returns, for every cell, the minute it is rotten by:
// 0 for initially rotten cells, the BFS distance to the nearest rotten cell
// for reachable fresh cells, and -1 for empty or unreachable cells.
//
// Time:   O(R·C).
// Memory: O(R·C) for the distance table and queue.
func InfectionTimes(g [][]grid.CellState) [][]int {
	rows, cols := grid.Dims(g)
	dist := make([][]int, rows)
	queue := make([]int, 0, rows*cols)
	for r := 0; r < rows; r++ {
		dist[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			dist[r][c] = -1
			if g[r][c] == grid.Rotten {
				dist[r][c] = 0
				queue = append(queue, r*cols+c)
			}
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ur, uc := u/cols, u%cols
		for _, d := range offsets {
			vr, vc := ur+d[0], uc+d[1]
			if vr < 0 || vr >= rows || vc < 0 || vc >= cols {
				continue
			}
			if g[vr][vc] != grid.Fresh || dist[vr][vc] >= 0 {
				continue
			}
			dist[vr][vc] = dist[ur][uc] + 1
			queue = append(queue, vr*cols+vc)
		}
	}
	return dist
}

// Minutes returns the minutes until no fresh cell remains, or -1 if some
// fresh cell is unreachable from every rotten cell.
func Minutes(g [][]grid.CellState) int {
	dist := InfectionTimes(g)
	worst := 0
	for r, row := range g {
		for c, s := range row {
			if s != grid.Fresh {
				continue
			}
			if dist[r][c] < 0 {
				return -1
			}
			if dist[r][c] > worst {
				worst = dist[r][c]
			}
		}
	}
	return worst
}
