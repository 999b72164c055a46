// Package gridgraph models a mutable 2-D grid as a graph for interactive
// pathfinding.
//
// What:
//
//   - Grid is a fixed Width×Height arena of nodes, addressed by Cell{X,Y} or by
//     row-major id = y*Width + x.
//   - Each Node carries a Blocked flag, an ordered neighbour list and the
//     search state (Visited, Local, Global, Parent) written by package astar.
//   - Bulk rebuilds (Connect) regenerate every neighbour list for a
//     Connectivity pattern; ToggleEdge edits single links.
//   - ConnectedComponents and Reachable analyse the current topology.
//
// Why:
//
//   - Interactive editors: toggle walls, drag endpoints, wire custom edges
//     and re-run the search after every edit.
//   - Teaching: compare how connectivity and heuristics change path shape.
//
// Invariants:
//
//   - Connect always produces symmetric adjacency.
//   - ToggleEdge updates both directions, so any sequence of toggles keeps
//     b ∈ a.neighbours ⟺ a ∈ b.neighbours.
//   - Parent and neighbour links are ids, never pointers; nodes are never
//     freed or moved while the Grid lives.
//
// Complexity:
//
//   - NewGrid, ResetSearchState: O(W×H).
//   - Connect:                   O(W×H×d), d ≤ 8.
//   - ToggleEdge, HasEdge:       O(d).
//   - ConnectedComponents:       O(W×H + E).
//
// Errors:
//
//   - ErrBadDimensions: non-positive width or height.
//   - ErrInvalidCoordinate: (x,y) outside the grid.
//   - ErrInvalidNode: node id outside the arena.
//   - ErrSelfLoop: ToggleEdge with a == b.
//   - ErrUnknownConnectivity: Connect with an unsupported pattern.
//   - ErrParentCycle: PathTo found parent links that never terminate.
package gridgraph
