package search

import "gridpath/internal/core"

// reconstructPath follows parent links from the terminal node back to the
// start node and returns the coordinates in start-to-end order.
func reconstructPath(arena *nodeArena, terminal int32) []core.Coord {
	length := 0
	for idx := terminal; idx != noParent; idx = arena.at(idx).parent {
		length++
	}
	path := make([]core.Coord, length)
	i := length - 1
	for idx := terminal; idx != noParent; idx = arena.at(idx).parent {
		path[i] = arena.at(idx).pos
		i--
	}
	return path
}
