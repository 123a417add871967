package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrEndpointBlocked indicates the start or goal cell is an obstacle.
	ErrEndpointBlocked = errors.New("gridgraph: start and goal must not be blocked")
	// ErrEndpointCount indicates a grid without exactly one start and one goal.
	ErrEndpointCount = errors.New("gridgraph: grid needs exactly one start and one goal")
	// ErrUnknownSymbol indicates an unrecognised rune in a text map.
	ErrUnknownSymbol = errors.New("gridgraph: unknown map symbol")
)
