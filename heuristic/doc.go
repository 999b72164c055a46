// Package heuristic provides the distance functions that drive grid search.
//
// What:
//
//   - Euclidean: straight-line distance sqrt(dx² + dy²).
//   - Manhattan: |dx| + |dy|.
//   - Diagonal:  (|dx| + |dy|) - min(|dx|, |dy|), i.e. unit-cost diagonal
//     moves (Chebyshev distance).
//
// A Mode selects one of them; Mode.Func resolves it to a Func.
//
// Every function is pure, works on coordinates only and returns a
// non-negative float64. The search uses the same function as edge cost and
// as remaining-distance estimate, so switching modes changes the shape of
// the path, not just the search order. None of the functions is guaranteed
// admissible for an arbitrary edge set (Manhattan over diagonal-only links
// overestimates, for example); that is accepted, not corrected.
//
// Errors:
//
//   - ErrUnknownMode: Mode.Func or ParseMode with an unsupported mode.
package heuristic
