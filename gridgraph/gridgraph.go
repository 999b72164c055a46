// Package gridgraph provides a mutable 2-D grid graph:
//
//   - A fixed arena of nodes addressed by (x,y) or by row-major id
//   - Per-node blocked flags and ordered neighbour lists
//   - Bulk connectivity rebuilds (see topology.go) and a symmetric edge toggle
//   - Per-node search state written by the astar package
//
// Neighbour and parent links are stored as ids into the arena.
package gridgraph

import (
	"fmt"
)

// NewGrid allocates a width×height grid. Every node gets its coordinates,
// Blocked=false, an empty neighbour list and freshly reset search state.
// Returns ErrBadDimensions if width or height is not positive.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	g := &Grid{
		Width:  width,
		Height: height,
		nodes:  make([]Node, width*height),
		conn:   ConnNone,
	}
	for id := range g.nodes {
		n := &g.nodes[id]
		n.X, n.Y = id%width, id/width
		n.reset()
	}

	return g, nil
}

// Len returns the number of nodes, Width×Height.
func (g *Grid) Len() int {
	return len(g.nodes)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// ID returns the row-major id of c, or ErrInvalidCoordinate.
func (g *Grid) ID(c Cell) (int, error) {
	if !g.InBounds(c.X, c.Y) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrInvalidCoordinate, c.X, c.Y, g.Width, g.Height)
	}

	return g.index(c.X, c.Y), nil
}

// Coordinate converts a row-major id back to its cell.
// Complexity: O(1).
func (g *Grid) Coordinate(id int) Cell {
	return Cell{X: id % g.Width, Y: id / g.Width}
}

// Valid reports whether id addresses a node of g.
func (g *Grid) Valid(id int) bool {
	return id >= 0 && id < len(g.nodes)
}

// Node returns the node with the given id, or ErrInvalidNode.
// The pointer stays valid for the lifetime of g.
func (g *Grid) Node(id int) (*Node, error) {
	if !g.Valid(id) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidNode, id, len(g.nodes))
	}

	return &g.nodes[id], nil
}

// NodeAt returns the node at c, or ErrInvalidCoordinate.
func (g *Grid) NodeAt(c Cell) (*Node, error) {
	id, err := g.ID(c)
	if err != nil {
		return nil, err
	}

	return &g.nodes[id], nil
}

// Connectivity returns the pattern of the last bulk rebuild, or ConnCustom
// once ToggleEdge has changed it.
func (g *Grid) Connectivity() Connectivity {
	return g.conn
}

// ToggleBlocked flips the blocked flag of the node at c. Adjacency is left
// untouched.
func (g *Grid) ToggleBlocked(c Cell) error {
	id, err := g.ID(c)
	if err != nil {
		return err
	}
	g.nodes[id].Blocked = !g.nodes[id].Blocked

	return nil
}

// SetBlocked sets the blocked flag of the node at c.
func (g *Grid) SetBlocked(c Cell, blocked bool) error {
	id, err := g.ID(c)
	if err != nil {
		return err
	}
	g.nodes[id].Blocked = blocked

	return nil
}

// ResetSearchState sets Visited=false, Local=Global=+Inf and Parent=NoParent
// on every node.
// Complexity: O(W×H).
func (g *Grid) ResetSearchState() {
	for id := range g.nodes {
		g.nodes[id].reset()
	}
}

// Neighbours returns a copy of the ordered neighbour ids of node id.
// An invalid id yields nil.
func (g *Grid) Neighbours(id int) []int {
	if !g.Valid(id) {
		return nil
	}
	nb := g.nodes[id].neighbours
	out := make([]int, len(nb))
	copy(out, nb)

	return out
}

// EachNeighbour calls fn for every neighbour of node id, in list order,
// without copying the list. fn must not mutate the topology of g.
func (g *Grid) EachNeighbour(id int, fn func(nb int)) {
	if !g.Valid(id) {
		return
	}
	for _, nb := range g.nodes[id].neighbours {
		fn(nb)
	}
}

// Degree returns the length of node id's neighbour list (0 for invalid ids).
func (g *Grid) Degree(id int) int {
	if !g.Valid(id) {
		return 0
	}

	return len(g.nodes[id].neighbours)
}

// HasEdge reports whether b is in a's neighbour list.
// Out-of-bounds cells report false.
func (g *Grid) HasEdge(a, b Cell) bool {
	ai, err := g.ID(a)
	if err != nil {
		return false
	}
	bi, err := g.ID(b)
	if err != nil {
		return false
	}

	return indexOf(g.nodes[ai].neighbours, bi) >= 0
}

// ToggleEdge links a and b when they are not linked, or unlinks them when b
// is already a neighbour of a. The relation is updated on both sides, so
// adjacency stays symmetric even if only one half of the link was present.
// Both cells are validated before anything changes.
//
// linked reports the state after the toggle.
func (g *Grid) ToggleEdge(a, b Cell) (linked bool, err error) {
	ai, err := g.ID(a)
	if err != nil {
		return false, err
	}
	bi, err := g.ID(b)
	if err != nil {
		return false, err
	}
	if ai == bi {
		return false, fmt.Errorf("%w: %s", ErrSelfLoop, a)
	}

	na, nb := &g.nodes[ai], &g.nodes[bi]
	if indexOf(na.neighbours, bi) >= 0 {
		na.neighbours = removeID(na.neighbours, bi)
		nb.neighbours = removeID(nb.neighbours, ai)
	} else {
		na.neighbours = append(na.neighbours, bi)
		if indexOf(nb.neighbours, ai) < 0 {
			nb.neighbours = append(nb.neighbours, ai)
		}
		linked = true
	}
	g.conn = ConnCustom

	return linked, nil
}

// IsSymmetric reports whether b ∈ a.neighbours ⟺ a ∈ b.neighbours holds for
// every pair of nodes.
// Complexity: O(W×H + E).
func (g *Grid) IsSymmetric() bool {
	links := newEdgeSet()
	for id := range g.nodes {
		for _, nb := range g.nodes[id].neighbours {
			links.Put(edgeKey{from: id, to: nb})
		}
	}
	symmetric := true
	links.Each(func(e edgeKey) {
		if !links.Has(edgeKey{from: e.to, to: e.from}) {
			symmetric = false
		}
	})

	return symmetric
}

// PathTo walks Parent links back from dest and returns the ids in
// source-first order. A dest without a parent yields just [dest]; callers
// decide whether that is the trivial source==dest path or "unreachable".
// Returns ErrParentCycle if the walk does not terminate within Len() steps.
func (g *Grid) PathTo(dest int) ([]int, error) {
	if !g.Valid(dest) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidNode, dest, len(g.nodes))
	}
	var rev []int
	for at := dest; at != NoParent; at = g.nodes[at].Parent {
		if len(rev) >= len(g.nodes) {
			return nil, fmt.Errorf("%w: walk from %s", ErrParentCycle, g.Coordinate(dest))
		}
		rev = append(rev, at)
	}
	path := make([]int, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path, nil
}

// indexOf returns the position of id in ids, or -1.
func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}

	return -1
}

// removeID deletes every occurrence of id from ids, preserving order.
func removeID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}
