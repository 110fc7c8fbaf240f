package app

import "gridpath/internal/core"

// CellAt maps a pixel position to the grid cell under it. It reports false
// outside the n*n grid drawn with cell-sized squares.
func CellAt(px, py, cell, n int) (core.Coord, bool) {
	if cell <= 0 || px < 0 || py < 0 {
		return core.Coord{}, false
	}
	c := core.Coord{X: px / cell, Y: py / cell}
	if c.X >= n || c.Y >= n {
		return core.Coord{}, false
	}
	return c, true
}
