package astar

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// entry is a (priority, cell) pair stored in the frontier heap.
type entry struct {
	priority int
	cell     gridgraph.Cell
}

// entryHeap is a min-heap ordered by priority, then by the cell's row-major
// order. The secondary key makes pops deterministic.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].cell.Less(h[j].cell)
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// frontier is the open set. It never removes or re-prioritises queued
// entries; live counts how many entries each cell has so that contains is
// O(1) instead of a scan over the heap.
type frontier struct {
	h    entryHeap
	live map[gridgraph.Cell]int
}

func newFrontier(capacity int) *frontier {
	return &frontier{
		h:    make(entryHeap, 0, capacity),
		live: make(map[gridgraph.Cell]int, capacity),
	}
}

func (f *frontier) Len() int { return f.h.Len() }

func (f *frontier) push(priority int, c gridgraph.Cell) {
	heap.Push(&f.h, entry{priority: priority, cell: c})
	f.live[c]++
}

// popMin removes and returns the lowest entry. The frontier must be non-empty.
func (f *frontier) popMin() (int, gridgraph.Cell) {
	e := heap.Pop(&f.h).(entry)
	if f.live[e.cell]--; f.live[e.cell] == 0 {
		delete(f.live, e.cell)
	}
	return e.priority, e.cell
}

// peek returns the lowest entry without removing it.
func (f *frontier) peek() (int, gridgraph.Cell) {
	return f.h[0].priority, f.h[0].cell
}

func (f *frontier) contains(c gridgraph.Cell) bool {
	return f.live[c] > 0
}

// cells returns the distinct queued cells in row-major order.
func (f *frontier) cells() []gridgraph.Cell {
	out := make([]gridgraph.Cell, 0, len(f.live))
	for c := range f.live {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
