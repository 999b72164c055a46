// Package gridpath is an interactive pathfinding sandbox over a rectangular
// grid of cells.
//
// What is gridpath?
//
//	A small library plus a scripted driver that brings together:
//		• gridgraph/ – the grid as a graph: blocked flags, editable symmetric
//		  adjacency, bulk topology rebuilds, connected components
//		• heuristic/ – Euclidean, Manhattan and Diagonal distances, used both
//		  as edge cost and as estimate
//		• astar/     – best-first search with a binary-heap frontier
//		• session/   – one editing session: point edits, presets, bulk edits,
//		  a fresh search after every change, metrics, tracing and logs
//		• cmd/gridpath – replays a script of edits and prints grid and path
//
// Quick ASCII example (side-connected 3×3, Manhattan):
//
//	* * D
//	* # .
//	S . .
//
// The blocked centre forces the four-step detour marked with '*'.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
