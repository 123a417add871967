package astar

import (
	"iter"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Snapshot exposes the search state after one step.
type Snapshot struct {
	Index    int            // 1-based step number
	Current  gridgraph.Cell // cell popped in this step
	Status   Status
	Frontier []gridgraph.Cell // queued cells, row-major order
	Expanded []gridgraph.Cell // popped cells, in pop order
	Path     []gridgraph.Cell // set once Status == StatusSucceeded
}

// Stepper runs the same search as Search one frontier pop at a time, so a
// display can draw the exploration between steps. It is not safe for
// concurrent use and cannot be rewound.
type Stepper struct {
	r     *runner
	index int
}

// NewStepper prepares a search from start to goal on g. It validates its
// arguments exactly like Search.
func NewStepper(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...Option) (*Stepper, error) {
	r, err := newRunner(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	r.trackOrder = true

	return &Stepper{r: r}, nil
}

// Step advances the search by one frontier pop and returns the resulting
// snapshot. Once the search has finished it returns the final snapshot and
// false without doing any work.
func (s *Stepper) Step() (Snapshot, bool) {
	if !s.r.step() {
		return s.snapshot(), false
	}
	s.index++
	return s.snapshot(), true
}

// Steps returns the remaining steps as a lazy sequence. The sequence is
// finite and consumes the Stepper: ranging over it twice yields nothing the
// second time.
func (s *Stepper) Steps() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for {
			snap, ok := s.Step()
			if !ok || !yield(snap) {
				return
			}
		}
	}
}

// Done reports whether the search has reached a terminal status.
func (s *Stepper) Done() bool { return s.r.status != StatusRunning }

// Result returns the search outcome so far.
func (s *Stepper) Result() Result { return s.r.result() }

func (s *Stepper) snapshot() Snapshot {
	snap := Snapshot{
		Index:    s.index,
		Current:  s.r.current,
		Status:   s.r.status,
		Frontier: s.r.open.cells(),
		Expanded: append([]gridgraph.Cell(nil), s.r.order...),
	}
	if s.r.status == StatusSucceeded {
		snap.Path = append([]gridgraph.Cell{}, s.r.path...)
	}
	return snap
}
