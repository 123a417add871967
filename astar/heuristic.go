package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Heuristic estimates the remaining cost between two cells.
type Heuristic func(a, b gridgraph.Cell) int

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. It never overestimates the
// true cost on a 4-connected unit-cost grid and is consistent, so A* with it
// returns optimal paths.
func Manhattan(a, b gridgraph.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

var _ Heuristic = Manhattan

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
