// Package gridgraph defines the node arena, coordinates and connectivity
// patterns used by the pathfinding packages of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"fmt"
	"math"
)

// NoParent marks a node whose Parent link is unset.
const NoParent = -1

// Connectivity selects which neighbouring cells a bulk rebuild links together.
type Connectivity int

const (
	// ConnNone leaves every neighbour list empty.
	ConnNone Connectivity = iota
	// ConnOrthogonal links the 4 side neighbours: N, S, E, W.
	ConnOrthogonal
	// ConnDiagonal links the 4 diagonal neighbours: NE, NW, SE, SW.
	ConnDiagonal
	// Conn8 links all 8 surrounding cells.
	Conn8
	// ConnCustom reports a topology edited by hand after the last rebuild.
	// It is never accepted by Connect.
	ConnCustom
)

// String returns a lower-case name for c.
func (c Connectivity) String() string {
	switch c {
	case ConnNone:
		return "none"
	case ConnOrthogonal:
		return "orthogonal"
	case ConnDiagonal:
		return "diagonal"
	case Conn8:
		return "full"
	case ConnCustom:
		return "custom"
	default:
		return fmt.Sprintf("connectivity(%d)", int(c))
	}
}

// Cell is an integer grid coordinate. It identifies exactly one Node.
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Node is a single addressable cell of the grid graph.
//
// Blocked and the neighbour list form the persistent topology. Visited,
// Local, Global and Parent are search state: they are overwritten at the
// start of every search and are meaningful only until the next one.
// Parent holds a node id (or NoParent), never a pointer.
type Node struct {
	X, Y    int  // Coordinates within the grid
	Blocked bool // Non-traversable for search, still a graph member

	Visited bool    // Expanded by the last search
	Local   float64 // Best known cost from the source
	Global  float64 // Local plus the heuristic estimate to the destination
	Parent  int     // Predecessor id on the best known route

	neighbours []int
}

// Cell returns the node's coordinate.
func (n *Node) Cell() Cell {
	return Cell{X: n.X, Y: n.Y}
}

// HasParent reports whether the last search linked n to a predecessor.
func (n *Node) HasParent() bool {
	return n.Parent != NoParent
}

// reset clears the search state of n.
func (n *Node) reset() {
	n.Visited = false
	n.Local = math.Inf(1)
	n.Global = math.Inf(1)
	n.Parent = NoParent
}

// Grid is a fixed-size Width×Height arena of nodes addressed by
// id = y*Width + x. It is created once and mutated in place; it is never
// resized. Neighbour lists are changed only through Grid methods so that the
// adjacency relation stays symmetric.
//
// Grid is not safe for concurrent use.
type Grid struct {
	Width, Height int

	nodes []Node
	conn  Connectivity
}
