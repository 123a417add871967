// Package astar finds shortest paths on a gridgraph.Grid with the A* search
// algorithm: 4-connected moves, unit edge cost, Manhattan-distance heuristic.
//
// Entry points:
//
//   - FindPath: the plain contract. Returns the cells from start (exclusive)
//     to goal (inclusive), or ok == false when the goal is unreachable.
//   - Search: the configurable form, returning a Result with status and
//     search statistics.
//   - Stepper: the same search advanced one frontier pop at a time, for
//     drawing the exploration as it happens.
//
// Search order is reproducible. Neighbors are relaxed in the order up, down,
// left, right, and frontier ties on f-score are broken by the cell's
// row-major order.
//
// Complexity (V = rows×cols):
//
//   - Time:  O(V log V); each relaxation is O(log V) and membership tests are O(1).
//   - Space: O(V) for g-scores, f-scores, predecessors and the frontier.
//
// Notes on implementation choices:
//
//   - By default a cell is pushed only when it is not already in the frontier,
//     and a cell whose g-score improves keeps its older, larger priority.
//     LazyDuplicates instead pushes on every improvement and drops stale
//     entries when they surface.
//   - There is no closed set; a cell whose g-score improves after it was
//     popped is pushed again.
//   - The returned path excludes the start cell unless WithIncludeStart is set.
//   - An unreachable goal is a normal outcome (StatusFailed), never an error.
package astar
