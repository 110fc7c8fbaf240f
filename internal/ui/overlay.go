//go:build ebiten

package ui

import (
	"image/color"

	"gridpath/internal/render"
	"gridpath/internal/search"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var arrowColor = color.RGBA{R: 90, G: 90, B: 110, A: 200}

// StepperSource exposes the search whose predecessors are drawn.
type StepperSource interface {
	Stepper() *search.Stepper
}

// Overlay draws optional search visuals on top of the grid.
type Overlay struct {
	src        StepperSource
	cell       int
	showArrows bool
	showSearch bool
}

// NewOverlay constructs an overlay. Search shading starts enabled and
// predecessor arrows start hidden.
func NewOverlay(src StepperSource, cell int) *Overlay {
	if cell <= 0 {
		cell = 1
	}
	return &Overlay{src: src, cell: cell, showSearch: true}
}

// Update toggles the layers: 1 for predecessor arrows, 2 for frontier and
// closed-set shading.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showArrows = !o.showArrows
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSearch = !o.showSearch
	}
}

// ShowSearch reports whether open and closed cells should be shaded.
func (o *Overlay) ShowSearch() bool { return o.showSearch }

// Draw renders an arrow from every proposed cell to its predecessor.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showArrows {
		return
	}
	st := o.src.Stepper()
	if st == nil {
		return
	}
	width := float32(o.cell) / 10
	if width < 1 {
		width = 1
	}
	for c, parent := range st.Predecessors() {
		for _, seg := range render.Arrow(c, parent, o.cell) {
			vector.StrokeLine(screen, float32(seg.X1), float32(seg.Y1), float32(seg.X2), float32(seg.Y2), width, arrowColor, true)
		}
	}
}
