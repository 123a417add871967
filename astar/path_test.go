package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestReconstruct(t *testing.T) {
	c := func(r, col int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: col} }
	cameFrom := map[gridgraph.Cell]gridgraph.Cell{
		c(0, 1): c(0, 0),
		c(0, 2): c(0, 1),
		c(1, 2): c(0, 2),
		c(5, 5): c(4, 5), // unrelated branch
	}

	cases := []struct {
		name string
		goal gridgraph.Cell
		want []gridgraph.Cell
	}{
		{"Chain", c(1, 2), []gridgraph.Cell{c(0, 1), c(0, 2), c(1, 2)}},
		{"OneStep", c(0, 1), []gridgraph.Cell{c(0, 1)}},
		{"StartItself", c(0, 0), []gridgraph.Cell{}},
		{"Unknown", c(9, 9), []gridgraph.Cell{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reconstruct(cameFrom, tc.goal)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}
