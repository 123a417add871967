package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Reconstruct walks predecessor links back from goal while a predecessor is
// recorded, then reverses the walk. The first cell without a predecessor (the
// start) is not included, so the result runs from the cell after the start up
// to and including goal. It is empty, not nil, when goal has no predecessor.
func Reconstruct(cameFrom map[gridgraph.Cell]gridgraph.Cell, goal gridgraph.Cell) []gridgraph.Cell {
	path := []gridgraph.Cell{}
	for current := goal; ; {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, current)
		current = prev
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
