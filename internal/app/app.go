//go:build ebiten

package app

import (
	"gridpath/internal/render"
	"gridpath/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyActions maps keyboard shortcuts to session actions.
var keyActions = map[ebiten.Key]Action{
	ebiten.KeySpace: ActionRun,
	ebiten.KeyA:     ActionToggleAnimate,
	ebiten.KeyC:     ActionClearPath,
	ebiten.KeyL:     ActionApplyLayout,
	ebiten.KeyN:     ActionNextLayout,
	ebiten.KeyR:     ActionReset,
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	cell   int
	gridPx int
}

// New constructs a Game drawing the session grid with cell-sized squares.
func New(s *Session, cell int) *Game {
	n := s.Board().Size()
	gp := render.NewGridPainter(n, cell)
	w, _ := gp.Size()
	return &Game{
		session: s,
		painter: gp,
		overlay: ui.NewOverlay(s, cell),
		hud:     ui.NewHUD(s, w),
		cell:    cell,
		gridPx:  w,
	}
}

// Update handles per-frame input and advances animated searches.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Do(action)
		}
	}
	g.overlay.Update()
	g.handleMouse()
	g.hud.Update(g.gridPx)
	g.session.Tick(0)
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	c, ok := CellAt(mx, my, g.cell, g.session.Board().Size())
	if !ok {
		return
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	erase := ebiten.IsKeyPressed(ebiten.KeyX)
	switch {
	case left && erase:
		g.session.Use(ToolErase, c)
	case left && shift, ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		g.session.Use(ToolObstacle, c)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.session.Use(ToolStart, c)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.session.Use(ToolEnd, c)
	}
}

// Draw renders the grid, the search overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := g.session.Board().Cells()
	g.painter.Blit(screen, cells, render.Palette(g.overlay.ShowSearch()))
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size: the grid with the HUD below it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridPx, g.gridPx + g.hud.Height()
}

// WindowSize returns the preferred window size.
func (g *Game) WindowSize() (int, int) { return g.Layout(0, 0) }
