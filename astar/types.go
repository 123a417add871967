// Package astar defines result types, configuration options and sentinel
// errors for A* search on a gridgraph.Grid.
//
// Options:
//
//	– Frontier:        MembershipCheck (default) or LazyDuplicates.
//	– StrictEndpoints: report bad start/goal cells as ErrInvalidEndpoint
//	                   instead of a failed search.
//	– IncludeStart:    prepend the start cell to the returned path.
//	– MaxExpansions:   give up (StatusFailed, Truncated) after this many pops.
//	– OnExpand/OnPush: observation hooks.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid pointer is nil.
//	– ErrInvalidEndpoint  if start or goal is out of bounds or blocked (strict mode only).
//	– ErrOptionViolation  if an option was given an invalid value.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Search and NewStepper.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoint indicates that start or goal is out of bounds or
	// blocked. Only returned when WithStrictEndpoints is set; otherwise the
	// search simply fails.
	ErrInvalidEndpoint = errors.New("astar: invalid start or goal cell")

	// ErrOptionViolation indicates that an Option received an invalid value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Status is the state of a search.
type Status int

const (
	// StatusRunning means the frontier still holds candidates.
	StatusRunning Status = iota
	// StatusSucceeded means the goal was popped and a path reconstructed.
	StatusSucceeded
	// StatusFailed means the frontier ran dry (or the expansion budget ran
	// out) without reaching the goal.
	StatusFailed
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result contains the outcome of a search.
type Result struct {
	Status    Status
	Path      []gridgraph.Cell // nil unless Status == StatusSucceeded
	Cost      int              // edges from start to goal; 0 unless succeeded
	Expanded  int              // cells popped from the frontier and processed
	Pushed    int              // frontier insertions, including the start
	Truncated bool             // failed because MaxExpansions was reached
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Status == StatusSucceeded }

// FrontierPolicy selects how improved cells re-enter the frontier.
type FrontierPolicy int

const (
	// MembershipCheck pushes a cell only when it is not already queued.
	// An already-queued cell keeps its earlier priority after its g-score
	// improves; the live g-score is still used for relaxation.
	MembershipCheck FrontierPolicy = iota

	// LazyDuplicates pushes a cell on every improvement and skips popped
	// entries whose priority is above the cell's current f-score.
	LazyDuplicates
)

// String returns the policy name used in configuration.
func (p FrontierPolicy) String() string {
	switch p {
	case MembershipCheck:
		return "membership"
	case LazyDuplicates:
		return "lazy"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Options configures Search and NewStepper.
type Options struct {
	Frontier        FrontierPolicy
	StrictEndpoints bool
	IncludeStart    bool
	MaxExpansions   int // 0 means unlimited

	// OnExpand is called for every popped cell with its g-score.
	OnExpand func(c gridgraph.Cell, g int)

	// OnPush is called for every frontier insertion with its priority.
	OnPush func(c gridgraph.Cell, f int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the default configuration:
//   - Frontier:        MembershipCheck
//   - StrictEndpoints: false (bad endpoints yield StatusFailed)
//   - IncludeStart:    false
//   - MaxExpansions:   0 (unlimited)
//   - no hooks
func DefaultOptions() Options {
	return Options{Frontier: MembershipCheck}
}

// WithFrontierPolicy selects the frontier policy.
func WithFrontierPolicy(p FrontierPolicy) Option {
	return func(o *Options) {
		if p != MembershipCheck && p != LazyDuplicates {
			o.err = fmt.Errorf("%w: unknown frontier policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Frontier = p
	}
}

// WithStrictEndpoints makes Search return ErrInvalidEndpoint for a start or
// goal that is out of bounds or blocked.
func WithStrictEndpoints() Option {
	return func(o *Options) { o.StrictEndpoints = true }
}

// WithIncludeStart prepends the start cell to the returned path.
func WithIncludeStart() Option {
	return func(o *Options) { o.IncludeStart = true }
}

// WithMaxExpansions caps the number of processed frontier pops. n must be > 0.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxExpansions must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// OnExpand registers a hook called for every processed frontier pop.
func OnExpand(fn func(c gridgraph.Cell, g int)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// OnPush registers a hook called for every frontier insertion.
func OnPush(fn func(c gridgraph.Cell, f int)) Option {
	return func(o *Options) { o.OnPush = fn }
}
