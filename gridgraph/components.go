package gridgraph

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// edgeKey is a directed neighbour link from one node id to another.
type edgeKey struct {
	from, to int
}

func newEdgeSet() mapset.Set[edgeKey] {
	return mapset.New[edgeKey]()
}

// ConnectedComponents finds all groups of unblocked nodes that are linked
// through the current neighbour lists. Blocked nodes belong to no component.
// Returns a slice of components; each component is a slice of node ids in
// breadth-first discovery order, components ordered by their smallest id.
//
// Time:   O(W·H + E).
// Memory: O(W·H) for the seen set and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := mapset.New[int]()
	var comps [][]int

	for id := range g.nodes {
		if g.nodes[id].Blocked || seen.Has(id) {
			continue
		}
		// BFS to collect component
		queue := []int{id}
		seen.Put(id)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.nodes[u].neighbours {
				if g.nodes[v].Blocked || seen.Has(v) {
					continue
				}
				seen.Put(v)
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Reachable reports whether to can be reached from from by walking
// neighbour links through unblocked nodes. The endpoints themselves may be
// blocked: like the search, blocked-ness only stops a node from being
// entered as an intermediate or final step, so a blocked to is unreachable
// unless from == to.
func (g *Grid) Reachable(from, to int) (bool, error) {
	if !g.Valid(from) {
		return false, fmt.Errorf("%w: %d", ErrInvalidNode, from)
	}
	if !g.Valid(to) {
		return false, fmt.Errorf("%w: %d", ErrInvalidNode, to)
	}
	if from == to {
		return true, nil
	}

	seen := mapset.New[int]()
	seen.Put(from)
	queue := []int{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.nodes[queue[qi]].neighbours {
			if g.nodes[v].Blocked || seen.Has(v) {
				continue
			}
			if v == to {
				return true, nil
			}
			seen.Put(v)
			queue = append(queue, v)
		}
	}

	return false, nil
}
