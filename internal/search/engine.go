package search

import "gridpath/internal/core"

// Result contains the outcome of a search.
type Result struct {
	Path     []core.Coord
	Cost     int
	Expanded int
	Pushed   int
	Stale    int
	Nodes    int
	Found    bool
}

// Search runs A* from start to end to completion. start and end must be in
// bounds and unblocked. When no route exists Found is false and Path is nil.
func Search(g Graph, start, end core.Coord, options ...Option) Result {
	s := NewStepper(g, start, end, options...)
	for !s.Step().Done {
	}
	return s.Result()
}

// FindPath returns the shortest start-to-end route, inclusive of both ends, or
// ok == false when the goal is unreachable.
func FindPath(g Graph, start, end core.Coord, options ...Option) (path []core.Coord, ok bool) {
	r := Search(g, start, end, options...)
	return r.Path, r.Found
}
