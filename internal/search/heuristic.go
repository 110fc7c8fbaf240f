package search

import "gridpath/internal/core"

// Heuristic estimates the remaining cost from a to b. For the search to return
// shortest paths it must be admissible and consistent under unit four-way
// moves.
type Heuristic func(a, b core.Coord) int

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b core.Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
