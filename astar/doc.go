// Package astar runs a best-first (A*-style) search over a gridgraph.Grid
// and writes the outcome back into the grid's per-node search state.
//
// Overview:
//
//   - FindPath resets Visited/Local/Global/Parent on every node, seeds the
//     frontier with the source and expands nodes in ascending Global order
//     until the destination is expanded or the frontier runs dry.
//   - The same heuristic.Func is used as edge cost (Local accumulation) and
//     as remaining-distance estimate (Global = Local + h(n, dest)).
//   - Blocked nodes are never added to the frontier. Whether they still take
//     part in cost relaxation is chosen by RelaxPolicy.
//   - Unreachable is a result, not an error: Result.Found is false and the
//     destination keeps Parent == gridgraph.NoParent (see RelaxAll for the
//     one documented exception).
//
// Frontier:
//
//   - A slice of node ids. Every unblocked, unvisited neighbour of an
//     expanded node is appended, even if it is already queued.
//   - Before each expansion the slice is stable-sorted by the nodes' current
//     Global, so equal costs leave in encounter order.
//   - Lazy deletion: entries of visited nodes are dropped from the front.
//
// Options:
//
//   - WithReturnPath():       fill Result.Path with the source→dest ids.
//   - WithRelaxPolicy(p):     RelaxAll (default) or RelaxTraversable.
//   - WithOnExpand(fn):       hook called with every expanded node id.
//
// Complexity:
//
//   - Time:  O(V + V·E log E) per search in the worst case (one sort of
//     up to E entries per expansion). Meant for interactive grid sizes.
//   - Space: O(E) frontier entries.
//
// Errors (sentinel):
//
//   - ErrNilGrid           the grid pointer is nil.
//   - ErrNilHeuristic      the heuristic is nil.
//   - ErrDegenerateSearch  source or dest is not a node of the grid.
//
// Example usage:
//
//	h, _ := heuristic.Euclidean.Func()
//	res, err := astar.FindPath(g, src, dst, h, astar.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Found, res.Cost, res.Path)
package astar
