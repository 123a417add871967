// Package gridgraph defines the cell, occupancy and grid types of the
// gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Occupancy is the state tag of a single grid cell.
type Occupancy uint8

const (
	// Free cells are traversable.
	Free Occupancy = iota
	// Blocked cells are obstacles and never part of a path.
	Blocked
	// Start marks the search origin. It is traversable.
	Start
	// Goal marks the search target. It is traversable.
	Goal
)

// String returns the tag name.
func (o Occupancy) String() string {
	switch o {
	case Free:
		return "free"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("occupancy(%d)", uint8(o))
	}
}

// Symbol returns the text-map rune for o ('.', '#', 'S', 'G').
func (o Occupancy) Symbol() rune {
	switch o {
	case Blocked:
		return '#'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	default:
		return '.'
	}
}

// Cell is a (row, column) grid coordinate. Two cells are equal iff both
// coordinates match, so Cell can be used directly as a map key.
type Cell struct {
	Row, Col int
}

// Less reports whether c sorts before o in row-major order.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Adjacent reports whether c and o share an edge (4-connectivity).
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets lists the 4-connected moves in search order:
// up, down, left, right.
var neighborOffsets = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rectangular occupancy map. It is immutable once built.
// cells is stored row-major; start and goal are cached for O(1) lookup.
type Grid struct {
	rows, cols int
	cells      []Occupancy
	start      Cell
	goal       Cell
}
