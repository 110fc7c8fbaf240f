package render

import (
	"image/color"
	"math"
	"testing"

	"gridpath/internal/board"
	"gridpath/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	cells := []uint8{0, 1, 9}
	buf := make([]byte, 4*len(cells))

	fillPaletteRGBA(buf, cells, palette)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}, buf, "out-of-range values clamp to the last color")

	fillPaletteRGBA(buf, cells, nil)
	assert.Equal(t, make([]byte, len(buf)), buf)
}

func TestPaletteCoversEveryCellKind(t *testing.T) {
	for _, show := range []bool{true, false} {
		p := Palette(show)
		require.Len(t, p, int(board.CellKinds))
		assert.Equal(t, ColorObstacle, p[board.CellObstacle])
		assert.Equal(t, ColorPath, p[board.CellPath])
		assert.Equal(t, ColorStart, p[board.CellStart])
		assert.Equal(t, ColorEnd, p[board.CellEnd])
	}
	assert.Equal(t, ColorOpen, Palette(true)[board.CellOpen])
	assert.Equal(t, ColorEmpty, Palette(false)[board.CellOpen])
	assert.Equal(t, ColorEmpty, Palette(false)[board.CellClosed])
}

func TestArrowPointsTowardsTarget(t *testing.T) {
	segs := Arrow(core.Coord{X: 2, Y: 2}, core.Coord{X: 1, Y: 2}, 20)
	shaft := segs[0]

	// Cell (2,2) has its centre at (50,50); the arrow points left.
	assert.InDelta(t, 50, (shaft.X1+shaft.X2)/2, 1e-9)
	assert.InDelta(t, 50, shaft.Y1, 1e-9)
	assert.Less(t, shaft.X2, shaft.X1)
	assert.InDelta(t, 16, math.Abs(shaft.X2-shaft.X1), 1e-9)

	for _, head := range segs[1:] {
		assert.Equal(t, shaft.X2, head.X1)
		assert.Greater(t, head.X2, head.X1, "head strokes trail behind the tip")
	}
}

func TestArrowDegenerate(t *testing.T) {
	assert.Equal(t, [3]Segment{}, Arrow(core.Coord{X: 1, Y: 1}, core.Coord{X: 1, Y: 1}, 10))
}

func TestASCII(t *testing.T) {
	g := core.NewGrid(3)
	g.AddObstacle(core.Coord{X: 1, Y: 1})
	path := []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}

	want := "S**\n" +
		".#*\n" +
		"..E\n"
	assert.Equal(t, want, ASCII(g, path, core.Coord{X: 0, Y: 0}, core.Coord{X: 2, Y: 2}))
}
