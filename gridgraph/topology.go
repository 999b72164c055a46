package gridgraph

import "fmt"

// Side and diagonal offsets in the order a rebuild emits them:
// lower, upper, right, left, then lower-right, upper-right, lower-left,
// upper-left. y grows downwards.
var (
	sideOffsets = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagOffsets = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Offsets returns the neighbour offsets a rebuild with conn emits, in order.
// ConnNone yields an empty slice; ConnCustom and unknown values yield
// ErrUnknownConnectivity.
func Offsets(conn Connectivity) ([][2]int, error) {
	switch conn {
	case ConnNone:
		return [][2]int{}, nil
	case ConnOrthogonal:
		return sideOffsets, nil
	case ConnDiagonal:
		return diagOffsets, nil
	case Conn8:
		all := make([][2]int, 0, len(sideOffsets)+len(diagOffsets))
		all = append(all, sideOffsets...)
		return append(all, diagOffsets...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownConnectivity, conn)
	}
}

// Connect clears every neighbour list and repopulates it with the in-bounds
// cells selected by conn. Every offset set is closed under negation, so the
// result is symmetric by construction and free of duplicates.
// On ErrUnknownConnectivity the grid is left unchanged.
//
// Complexity: O(W×H×d), d ≤ 8.
func (g *Grid) Connect(conn Connectivity) error {
	offsets, err := Offsets(conn)
	if err != nil {
		return err
	}
	for id := range g.nodes {
		n := &g.nodes[id]
		n.neighbours = n.neighbours[:0]
		for _, d := range offsets {
			nx, ny := n.X+d[0], n.Y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			n.neighbours = append(n.neighbours, g.index(nx, ny))
		}
	}
	g.conn = conn

	return nil
}

// ConnectFull links every node to its up-to-8 surrounding cells.
func (g *Grid) ConnectFull() {
	// Conn8 is always known to Offsets.
	_ = g.Connect(Conn8)
}

// ClearEdges empties every neighbour list.
func (g *Grid) ClearEdges() {
	_ = g.Connect(ConnNone)
}
