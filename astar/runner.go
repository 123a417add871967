package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// runner holds the mutable state of a single search. It is created per call
// and never shared; the grid is only read.
type runner struct {
	grid        *gridgraph.Grid
	start, goal gridgraph.Cell
	options     Options

	gScore   map[gridgraph.Cell]int // missing key means +∞
	fScore   map[gridgraph.Cell]int // missing key means +∞
	cameFrom map[gridgraph.Cell]gridgraph.Cell
	open     *frontier

	status    Status
	current   gridgraph.Cell
	expanded  int
	pushed    int
	truncated bool
	path      []gridgraph.Cell

	// order records popped cells when trackOrder is set (Stepper only).
	trackOrder bool
	order      []gridgraph.Cell
}

// newRunner validates inputs and seeds the frontier with the start cell.
// Invalid endpoints produce an already-failed runner unless strict mode is on.
func newRunner(g *gridgraph.Grid, start, goal gridgraph.Cell, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}

	size := g.Rows() * g.Cols()
	r := &runner{
		grid:     g,
		start:    start,
		goal:     goal,
		options:  cfg,
		gScore:   make(map[gridgraph.Cell]int),
		fScore:   make(map[gridgraph.Cell]int),
		cameFrom: make(map[gridgraph.Cell]gridgraph.Cell),
		open:     newFrontier(min(size, 64)),
		status:   StatusRunning,
	}

	for _, c := range []gridgraph.Cell{start, goal} {
		if g.InBounds(c) && !g.IsBlocked(c) {
			continue
		}
		if cfg.StrictEndpoints {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, c)
		}
		r.status = StatusFailed
		return r, nil
	}

	r.gScore[start] = 0
	r.fScore[start] = Manhattan(start, goal)
	r.push(r.fScore[start], start)

	return r, nil
}

// step pops one live frontier entry and processes it: either the goal is
// reached or the entry's neighbors are relaxed. It returns false when the
// search had already finished.
func (r *runner) step() bool {
	if r.status != StatusRunning {
		return false
	}

	_, current := r.open.popMin()
	r.current = current
	r.expanded++
	if r.trackOrder {
		r.order = append(r.order, current)
	}
	if r.options.OnExpand != nil {
		r.options.OnExpand(current, r.gScore[current])
	}

	if current == r.goal {
		r.status = StatusSucceeded
		r.path = Reconstruct(r.cameFrom, current)
		if r.options.IncludeStart {
			r.path = append([]gridgraph.Cell{r.start}, r.path...)
		}
		return true
	}

	r.relax(current)

	if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
		r.status = StatusFailed
		r.truncated = true
		return true
	}
	r.settle()
	return true
}

// relax examines each non-blocked neighbor of current in up, down, left,
// right order and records strictly shorter paths.
func (r *runner) relax(current gridgraph.Cell) {
	tentative := r.gScore[current] + 1
	for _, n := range r.grid.Neighbors(current) {
		if r.grid.IsBlocked(n) {
			continue
		}
		if g, seen := r.gScore[n]; seen && tentative >= g {
			continue
		}
		r.cameFrom[n] = current
		r.gScore[n] = tentative
		r.fScore[n] = tentative + Manhattan(n, r.goal)

		if r.options.Frontier == MembershipCheck && r.open.contains(n) {
			continue
		}
		r.push(r.fScore[n], n)
	}
}

// settle drops stale entries from the top of the frontier (LazyDuplicates
// only) and fails the search once nothing live remains.
func (r *runner) settle() {
	if r.options.Frontier == LazyDuplicates {
		for r.open.Len() > 0 {
			p, c := r.open.peek()
			if p <= r.fScore[c] {
				break
			}
			r.open.popMin()
		}
	}
	if r.open.Len() == 0 {
		r.status = StatusFailed
	}
}

func (r *runner) push(priority int, c gridgraph.Cell) {
	r.open.push(priority, c)
	r.pushed++
	if r.options.OnPush != nil {
		r.options.OnPush(c, priority)
	}
}

func (r *runner) result() Result {
	res := Result{
		Status:    r.status,
		Expanded:  r.expanded,
		Pushed:    r.pushed,
		Truncated: r.truncated,
	}
	if r.status == StatusSucceeded {
		res.Path = r.path
		res.Cost = r.gScore[r.goal]
	}
	return res
}
