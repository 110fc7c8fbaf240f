// Package search implements A* over a four-connected grid with unit step
// costs.
//
// It exposes two entry points:
//
//   - FindPath / Search: run the algorithm to completion.
//   - Stepper: advance the search one expansion at a time to drive animated
//     views.
//
// Both share the same frontier and bookkeeping, so an animated run and a
// one-shot run over the same grid always return the same path.
//
// The frontier is ordered by f = g + h with ties broken by insertion order.
// A coordinate may sit in the frontier several times with different costs;
// entries for coordinates that were closed in the meantime are discarded when
// popped. Search nodes live in a per-search arena and refer to their parent by
// index.
package search
