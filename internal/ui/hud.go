//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"gridpath/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	statusColor = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	textColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	dimColor    = color.RGBA{R: 140, G: 140, B: 150, A: 255}
)

// HUD renders the status panel below the grid.
type HUD struct {
	src      Source
	setter   core.IntParameterSetter
	width    int
	height   int
	offsetY  int
	snapshot core.ParameterSnapshot
	controls []controlState

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a HUD of the given pixel width. Controls are picked up
// when src also implements core.ParameterControlsProvider and
// core.IntParameterSetter.
func NewHUD(src Source, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{src: src, width: width}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls(), width)
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	h.height = panelHeight(len(h.controls))
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Height returns the panel height in pixels.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	return h.height
}

// Update refreshes the snapshot and handles clicks on the +/- buttons. The
// panel is drawn offsetY pixels from the top of the screen.
func (h *HUD) Update(offsetY int) {
	if h == nil {
		return
	}
	h.offsetY = offsetY
	h.snapshot = h.src.Parameters()
	for i := range h.controls {
		h.controls[i].refresh(h.snapshot)
	}
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	i, dir, ok := hitControl(h.controls, mx, my-offsetY)
	if !ok {
		return
	}
	state := &h.controls[i]
	if v, changed := state.target(dir); changed && h.setter.SetIntParameter(state.control.Key, v) {
		state.value = v
	}
}

// Draw paints the panel at its offset.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, h.height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.src.Status(), face, panelPadding, statusBaseline, statusColor)
	text.Draw(h.panel, summaryLine(h.snapshot), face, panelPadding, summaryBaseline, textColor)

	for i := range h.controls {
		state := &h.controls[i]
		y := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, y, textColor)

		value, col := "--", dimColor
		if state.hasValue {
			value, col = strconv.Itoa(state.value), textColor
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, state.minusRect.Min.X-buttonGap-w, y, col)

		_, canDec := state.target(-1)
		_, canInc := state.target(1)
		h.drawButton(state.minusRect, "-", canDec && h.setter != nil)
		h.drawButton(state.plusRect, "+", canInc && h.setter != nil)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(h.offsetY))
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
