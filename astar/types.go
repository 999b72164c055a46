package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates that no heuristic function was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrDegenerateSearch indicates that source or dest does not address a
	// node of the grid.
	ErrDegenerateSearch = errors.New("astar: source or destination unset")
)

// RelaxPolicy selects which neighbours of an expanded node take part in
// cost relaxation. Frontier membership is unaffected: blocked and visited
// nodes are never enqueued under either policy.
type RelaxPolicy int

const (
	// RelaxAll relaxes every neighbour, blocked and visited ones included.
	// A blocked destination adjacent to an expanded node therefore receives a
	// Parent even though the search never enters it.
	RelaxAll RelaxPolicy = iota

	// RelaxTraversable skips blocked neighbours, so blocked nodes never
	// receive a cost or a Parent.
	RelaxTraversable
)

// String returns the lower-case name of p.
func (p RelaxPolicy) String() string {
	switch p {
	case RelaxAll:
		return "all"
	case RelaxTraversable:
		return "traversable"
	default:
		return fmt.Sprintf("relax(%d)", int(p))
	}
}

// Options configures FindPath.
//
// ReturnPath – if true, Result.Path holds the source→dest ids on success.
// Relax      – relaxation policy (RelaxAll by default).
// OnExpand   – optional hook called with every expanded node id, in order.
type Options struct {
	ReturnPath bool
	Relax      RelaxPolicy
	OnExpand   func(id int)
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithReturnPath enables reconstruction of Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithRelaxPolicy sets the relaxation policy.
// Panics on values other than RelaxAll and RelaxTraversable.
func WithRelaxPolicy(p RelaxPolicy) Option {
	if p != RelaxAll && p != RelaxTraversable {
		panic(fmt.Sprintf("astar: WithRelaxPolicy(%d)", int(p)))
	}
	return func(o *Options) {
		o.Relax = p
	}
}

// WithOnExpand registers a hook called with each node id as it is expanded.
// Panics on nil.
func WithOnExpand(fn func(id int)) Option {
	if fn == nil {
		panic("astar: WithOnExpand(nil)")
	}
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns the defaults: no path reconstruction, RelaxAll,
// no hook.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		Relax:      RelaxAll,
	}
}

// Result summarises a search. The authoritative outcome is the per-node
// state written into the grid; Result is a convenience view of it.
type Result struct {
	Source, Dest int     // Node ids the search ran between
	Found        bool    // Dest was expanded (or equals Source)
	Cost         float64 // Dest.Local when Found, +Inf otherwise
	Path         []int   // Source→dest ids; nil unless Found and ReturnPath
	Expanded     int     // Nodes popped and marked visited
	Pushed       int     // Frontier entries created, duplicates included
}
