// Package gridgraph models a rectangular occupancy grid as a 4-connected graph
// of cells, the input of the astar path search.
//
// What:
//
//   - Grid holds rows×cols cells, each Free, Blocked, Start or Goal.
//   - Exactly one Start and one Goal; neither may be Blocked.
//   - Neighbors yields the in-bounds axis-aligned cells in a fixed order
//     (up, down, left, right); search tie-breaking depends on that order.
//   - Regions and MinClearance analyse connectivity for diagnostics.
//
// Construction:
//
//   - New(rows, cols, blocked, start, goal) from an obstacle list.
//   - From2D(values) from a tagged matrix (deep-copied).
//   - Parse(r) from a text map: '.' free, '#' blocked, 'S' start, 'G' goal.
//
// A Grid is immutable once built: no exported method mutates it, so a single
// Grid may be shared by concurrent searches.
//
// Complexity:
//
//   - InBounds, IsBlocked, At, Neighbors: O(1).
//   - Regions:      O(R×C), Memory: O(R×C).
//   - MinClearance: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrEndpointBlocked: start or goal is listed as an obstacle.
//   - ErrEndpointCount: not exactly one Start and one Goal.
//   - ErrUnknownSymbol: unrecognised rune in a text map.
package gridgraph
