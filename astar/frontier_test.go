package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestFrontier_Order checks ascending priority with row-major tie-breaking.
func TestFrontier_Order(t *testing.T) {
	f := newFrontier(4)
	f.push(5, gridgraph.Cell{Row: 0, Col: 0})
	f.push(3, gridgraph.Cell{Row: 2, Col: 1})
	f.push(3, gridgraph.Cell{Row: 1, Col: 7})
	f.push(3, gridgraph.Cell{Row: 1, Col: 2})
	f.push(4, gridgraph.Cell{Row: 0, Col: 9})

	want := []entry{
		{3, gridgraph.Cell{Row: 1, Col: 2}},
		{3, gridgraph.Cell{Row: 1, Col: 7}},
		{3, gridgraph.Cell{Row: 2, Col: 1}},
		{4, gridgraph.Cell{Row: 0, Col: 9}},
		{5, gridgraph.Cell{Row: 0, Col: 0}},
	}
	for _, w := range want {
		require.Positive(t, f.Len())
		p, c := f.popMin()
		assert.Equal(t, w, entry{p, c})
	}
	assert.Zero(t, f.Len())
}

// TestFrontier_Contains tracks duplicates: a cell stays contained until its
// last entry is popped.
func TestFrontier_Contains(t *testing.T) {
	f := newFrontier(0)
	a := gridgraph.Cell{Row: 1, Col: 1}
	b := gridgraph.Cell{Row: 2, Col: 2}

	assert.False(t, f.contains(a))
	f.push(7, a)
	f.push(2, a)
	f.push(4, b)
	assert.True(t, f.contains(a))
	assert.Equal(t, []gridgraph.Cell{a, b}, f.cells())

	p, c := f.peek()
	assert.Equal(t, 2, p)
	assert.Equal(t, a, c)

	f.popMin() // (2, a)
	assert.True(t, f.contains(a), "stale duplicate still queued")
	f.popMin() // (4, b)
	assert.False(t, f.contains(b))
	f.popMin() // (7, a)
	assert.False(t, f.contains(a))
	assert.Empty(t, f.cells())
}
