//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads one pixel per cell into an image and draws it scaled up
// to the cell size, with grid lines on top.
type GridPainter struct {
	n     int
	cell  int
	img   *ebiten.Image
	lines *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for an n*n grid drawn with cell-sized
// squares.
func NewGridPainter(n, cell int) *GridPainter {
	if cell <= 0 {
		cell = 1
	}
	gp := &GridPainter{n: n, cell: cell, buf: make([]byte, 4*n*n)}
	gp.img = ebiten.NewImage(n, n)
	gp.lines = buildGridLines(n, cell, ColorGridLine)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA) {
	if len(cells) != gp.n*gp.n {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.cell), float64(gp.cell))
	dst.DrawImage(gp.img, op)
	dst.DrawImage(gp.lines, nil)
}

// Size returns the drawn size in pixels.
func (gp *GridPainter) Size() (int, int) { return gp.n * gp.cell, gp.n * gp.cell }

func buildGridLines(n, cell int, col color.Color) *ebiten.Image {
	size := n * cell
	img := ebiten.NewImage(size, size)
	for i := 0; i < size; i += cell {
		img.SubImage(image.Rect(i, 0, i+1, size)).(*ebiten.Image).Fill(col)
		img.SubImage(image.Rect(0, i, size, i+1)).(*ebiten.Image).Fill(col)
	}
	return img
}
