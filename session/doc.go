// Package session owns one interactive pathfinding session: a grid, the
// active heuristic mode, the source and destination, and the result of the
// last search.
//
// What:
//
//   - Point edits: ToggleBlocked, SetSource, SetDest, ToggleEdge,
//     SetHeuristic.
//   - Topology presets: ApplyPreset (OrthogonalOnly, DiagonalOnly, Full,
//     RemoveEdges) rebuild every neighbour list and, except for the empty
//     preset, force a matching heuristic.
//   - Bulk edits: BlockAllExceptEndpoints, InvertAllExceptEndpoints.
//
// Every edit is validated first, applied in place, and then followed by a
// full search before it returns, so Result and the grid's per-node state
// always describe the current topology. A rejected edit changes nothing and
// runs no search.
//
// Observability:
//
//   - Structured logs through log/slog (WithLogger).
//   - Prometheus counters and histograms registered with promauto.
//   - One OpenTelemetry span per search, parented on WithContext's context.
//
// A Session is not safe for concurrent use: the surrounding application
// drives it from a single input loop.
package session
