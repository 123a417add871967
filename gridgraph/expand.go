package gridgraph

import (
	"container/list"
	"fmt"
)

// MinClearance finds the fewest Blocked cells that would have to be cleared
// to connect from and to by a 4-connected walk. Each Blocked cell entered
// costs 1, any other cell costs 0. It returns the Blocked cells along one
// such walk, in walk order; the slice is empty when the cells are already
// connected. The grid itself is never modified.
//
// Behavior:
//  1. Validate both cells.
//  2. 0–1 BFS from `from`:
//     • Moving into a non-blocked cell → cost 0 (pushed to the front)
//     • Moving into a blocked cell     → cost 1 (pushed to the back)
//  3. Stop when `to` is popped.
//  4. Walk predecessors back and keep the blocked cells.
//
// Complexity: O(R×C) time, O(R×C) memory.
func (g *Grid) MinClearance(from, to Cell) ([]Cell, error) {
	for _, c := range []Cell{from, to} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
		}
	}

	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.index(from), g.index(to)
	dist[src] = g.enterCost(src)
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		for _, nb := range g.Neighbors(g.cell(u)) {
			v := g.index(nb)
			step := g.enterCost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	cleared := make([]Cell, 0, dist[dst])
	for at := dst; at >= 0; at = prev[at] {
		if g.cells[at] == Blocked {
			cleared = append(cleared, g.cell(at))
		}
	}
	for i, j := 0, len(cleared)-1; i < j; i, j = i+1, j-1 {
		cleared[i], cleared[j] = cleared[j], cleared[i]
	}
	return cleared, nil
}

func (g *Grid) enterCost(idx int) int {
	if g.cells[idx] == Blocked {
		return 1
	}
	return 0
}
