// Package gridgraph provides a read-only occupancy grid that the astar
// package searches. It supports:
//
//   - Construction from an obstacle list, a tagged matrix, or a text map
//   - Bounds and obstacle queries
//   - 4-connected neighbor enumeration in a fixed order
//   - Connectivity analysis of the non-blocked cells
package gridgraph

import (
	"fmt"
	"strings"
)

// New builds a rows×cols grid with the given obstacles and endpoints.
// Duplicate obstacles are tolerated.
// Returns ErrEmptyGrid if rows or cols is below 1, ErrOutOfBounds if any
// cell lies outside the grid, and ErrEndpointBlocked if start or goal is
// listed as an obstacle.
// Complexity: O(R×C + len(blocked)).
func New(rows, cols int, blocked []Cell, start, goal Cell) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Occupancy, rows*cols),
	}
	for _, c := range blocked {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: obstacle %v in %dx%d grid", ErrOutOfBounds, c, rows, cols)
		}
		g.cells[g.index(c)] = Blocked
	}
	for _, c := range []Cell{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: endpoint %v in %dx%d grid", ErrOutOfBounds, c, rows, cols)
		}
		if g.cells[g.index(c)] == Blocked {
			return nil, fmt.Errorf("%w: %v", ErrEndpointBlocked, c)
		}
	}
	// Start tag is written first so that start == goal keeps the Goal tag.
	g.start, g.goal = start, goal
	g.cells[g.index(start)] = Start
	g.cells[g.index(goal)] = Goal

	return g, nil
}

// From2D builds a grid from a non-empty, rectangular matrix of occupancy
// tags, values[row][col]. It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrEndpointCount when the
// matrix does not hold exactly one Start and one Goal.
// Complexity: O(R×C).
func From2D(values [][]Occupancy) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{rows: rows, cols: cols, cells: make([]Occupancy, 0, rows*cols)}
	starts, goals := 0, 0
	for r, row := range values {
		for c, v := range row {
			switch v {
			case Start:
				starts++
				g.start = Cell{r, c}
			case Goal:
				goals++
				g.goal = Cell{r, c}
			case Free, Blocked:
			default:
				return nil, fmt.Errorf("%w: %v at %v", ErrUnknownSymbol, v, Cell{r, c})
			}
		}
		g.cells = append(g.cells, row...)
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: found %d start, %d goal", ErrEndpointCount, starts, goals)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the cell tagged Start.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the cell tagged Goal.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsBlocked reports whether c is an obstacle. Out-of-bounds cells report
// false; check InBounds first.
// Complexity: O(1).
func (g *Grid) IsBlocked(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == Blocked
}

// At returns the occupancy tag of c, or Blocked when c is out of bounds.
func (g *Grid) At(c Cell) Occupancy {
	if !g.InBounds(c) {
		return Blocked
	}
	return g.cells[g.index(c)]
}

// Neighbors returns the in-bounds 4-connected neighbors of c in the order
// up, down, left, right. Blocked neighbors are included.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{c.Row + d.Row, c.Col + d.Col}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// String renders the grid in the Parse text format.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.cells[r*g.cols+c].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps c to its row-major offset: row*cols + col.
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// cell converts a row-major offset back to a Cell.
func (g *Grid) cell(idx int) Cell {
	return Cell{idx / g.cols, idx % g.cols}
}
