package render

import (
	"image/color"

	"gridpath/internal/board"
)

// Colors used by the window shell. Obstacles, path and endpoints follow the
// classic scheme: black walls, green path, blue start, red end.
var (
	ColorEmpty    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorObstacle = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorOpen     = color.RGBA{R: 190, G: 225, B: 250, A: 255}
	ColorClosed   = color.RGBA{R: 235, G: 220, B: 170, A: 255}
	ColorPath     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorStart    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ColorEnd      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorGridLine = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

var (
	searchPalette = buildPalette(true)
	plainPalette  = buildPalette(false)
)

// Palette returns the colors indexed by board cell value. With showSearch
// false the frontier and closed cells are drawn as empty.
func Palette(showSearch bool) []color.RGBA {
	if showSearch {
		return searchPalette
	}
	return plainPalette
}

func buildPalette(showSearch bool) []color.RGBA {
	p := make([]color.RGBA, board.CellKinds)
	p[board.CellEmpty] = ColorEmpty
	p[board.CellObstacle] = ColorObstacle
	p[board.CellOpen] = ColorEmpty
	p[board.CellClosed] = ColorEmpty
	if showSearch {
		p[board.CellOpen] = ColorOpen
		p[board.CellClosed] = ColorClosed
	}
	p[board.CellPath] = ColorPath
	p[board.CellStart] = ColorStart
	p[board.CellEnd] = ColorEnd
	return p
}
