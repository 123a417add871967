package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// FindPath returns the shortest 4-connected path from start to goal on g.
// The path excludes start and ends with goal; it is empty when start == goal.
// ok is false when no path exists, including when start or goal is out of
// bounds or blocked. The grid is not modified.
func FindPath(g *gridgraph.Grid, start, goal gridgraph.Cell) (path []gridgraph.Cell, ok bool) {
	res, err := Search(g, start, goal)
	if err != nil || !res.Found() {
		return nil, false
	}
	return res.Path, true
}

// Search runs A* from start to goal on g to completion.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must be in bounds and not blocked; otherwise the result
//     is StatusFailed, or ErrInvalidEndpoint with WithStrictEndpoints.
//
// An unreachable goal is reported as StatusFailed with a nil error.
//
// Complexity:
//
//   - Time:  O(V log V)
//   - Space: O(V)
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	r, err := newRunner(g, start, goal, opts)
	if err != nil {
		return Result{Status: StatusFailed}, err
	}
	for r.step() {
	}

	return r.result(), nil
}
