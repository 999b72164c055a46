package astar

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/heuristic"
)

// FindPath searches from node source to node dest over g using h as both
// edge cost and remaining-distance estimate.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. h must be non-nil (ErrNilHeuristic).
//  3. source and dest must be ids of g (ErrDegenerateSearch).
//
// Nothing is mutated when validation fails. Otherwise every node's search
// state is reset and rewritten; the grid topology is never touched.
// Calling FindPath twice on an unchanged grid yields identical node state.
//
// Edge cases:
//
//   - source == dest: the loop never runs; Found is true with a zero-cost,
//     single-node path.
//   - Blocked source or dest: no special casing. Blocked-ness only decides
//     whether a node is enqueued as a neighbour.
func FindPath(g *gridgraph.Grid, source, dest int, h heuristic.Func, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before any mutation
	if g == nil {
		return nil, ErrNilGrid
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	if !g.Valid(source) {
		return nil, fmt.Errorf("%w: source id %d not in [0,%d)", ErrDegenerateSearch, source, g.Len())
	}
	if !g.Valid(dest) {
		return nil, fmt.Errorf("%w: dest id %d not in [0,%d)", ErrDegenerateSearch, dest, g.Len())
	}

	r := &runner{
		g:       g,
		h:       h,
		options: cfg,
		source:  source,
		dest:    dest,
		destPos: g.Coordinate(dest),
		open:    make([]int, 0, g.Len()),
	}

	// 3) Reset state, seed the frontier and run the main loop
	r.init()
	found := r.process()

	res := &Result{
		Source:   source,
		Dest:     dest,
		Found:    found,
		Cost:     math.Inf(1),
		Expanded: r.expanded,
		Pushed:   r.pushed,
	}
	if !found {
		return res, nil
	}
	res.Cost = r.node(dest).Local
	if cfg.ReturnPath {
		path, err := g.PathTo(dest)
		if err != nil {
			return nil, fmt.Errorf("astar: reconstruct path: %w", err)
		}
		res.Path = path
	}

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *gridgraph.Grid
	h       heuristic.Func
	options Options

	source, dest int
	destPos      gridgraph.Cell

	open     []int // frontier ids in encounter order, duplicates allowed
	pushed   int
	expanded int
}

// node returns the arena node for id. Callers pass only ids that FindPath
// validated or that come from a neighbour list, so the error is always nil.
func (r *runner) node(id int) *gridgraph.Node {
	n, _ := r.g.Node(id)
	return n
}

// init resets all search state and seeds the frontier with the source.
func (r *runner) init() {
	r.g.ResetSearchState()

	src := r.node(r.source)
	src.Local = 0
	src.Global = r.h(src.Cell(), r.destPos)

	r.push(r.source)
}

// process expands nodes until dest becomes current or the frontier is
// exhausted. It reports whether dest was reached.
func (r *runner) process() bool {
	current := r.source
	for current != r.dest && len(r.open) > 0 {
		// Order by the current Global; equal costs keep encounter order.
		sort.SliceStable(r.open, func(i, j int) bool {
			return r.node(r.open[i]).Global < r.node(r.open[j]).Global
		})

		// Discard entries of already-visited nodes (lazy deletion).
		skip := 0
		for skip < len(r.open) && r.node(r.open[skip]).Visited {
			skip++
		}
		if skip == len(r.open) {
			r.open = r.open[:0]
			break
		}

		current = r.open[skip]
		r.open = r.open[skip+1:]
		r.node(current).Visited = true
		r.expanded++
		if r.options.OnExpand != nil {
			r.options.OnExpand(current)
		}
		r.relax(current)
	}

	return current == r.dest
}

// relax walks the neighbours of u. Every open neighbour is enqueued on each
// encounter; costs are lowered where going through u is strictly cheaper.
func (r *runner) relax(u int) {
	cur := r.node(u)
	curPos := cur.Cell()

	r.g.EachNeighbour(u, func(v int) {
		n := r.node(v)
		if !n.Blocked && !n.Visited {
			r.push(v)
		}
		if n.Blocked && r.options.Relax == RelaxTraversable {
			return
		}

		tentative := cur.Local + r.h(curPos, n.Cell())
		if tentative >= n.Local {
			return
		}
		n.Local = tentative
		n.Global = tentative + r.h(n.Cell(), r.destPos)
		n.Parent = u
	})
}

func (r *runner) push(id int) {
	r.open = append(r.open, id)
	r.pushed++
}
