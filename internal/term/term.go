// Package term is the terminal frontend: the grid drawn with tcell, a
// keyboard cursor for editing and the same mouse buttons as the window shell.
package term

import (
	"context"
	"fmt"
	"time"

	"gridpath/internal/app"
	"gridpath/internal/board"
	"gridpath/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is drawn two columns wide so cells look square.
const cellWidth = 2

var cellStyles = [board.CellKinds]struct {
	r     rune
	style tcell.Style
}{
	board.CellEmpty:    {'·', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	board.CellObstacle: {'█', tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	board.CellOpen:     {'+', tcell.StyleDefault.Foreground(tcell.ColorLightBlue)},
	board.CellClosed:   {'•', tcell.StyleDefault.Foreground(tcell.ColorTan)},
	board.CellPath:     {'*', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)},
	board.CellStart:    {'S', tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)},
	board.CellEnd:      {'E', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
}

var keyActions = map[rune]app.Action{
	' ': app.ActionRun,
	'a': app.ActionToggleAnimate,
	'c': app.ActionClearPath,
	'L': app.ActionApplyLayout,
	'n': app.ActionNextLayout,
	'r': app.ActionReset,
}

const helpLine = "hjkl/arrows move  s start  e end  o obstacle  x erase  space run  a animate  c clear  L/n layout  r reset  q quit"

// Shell drives a Session on a tcell screen.
type Shell struct {
	screen  tcell.Screen
	session *app.Session
	pacer   *core.FixedStep
	tps     int

	cursor     core.Coord
	showSearch bool
	buttons    tcell.ButtonMask
}

// New creates a shell on an initialised screen. Animated searches advance
// tps times per second.
func New(screen tcell.Screen, s *app.Session, tps int) *Shell {
	return &Shell{
		screen:     screen,
		session:    s,
		pacer:      core.NewFixedStep(tps),
		tps:        tps,
		showSearch: true,
	}
}

// Cursor returns the keyboard cursor cell.
func (sh *Shell) Cursor() core.Coord { return sh.cursor }

// Run processes events and redraws until the user quits or ctx is done.
func (sh *Shell) Run(ctx context.Context) error {
	sh.screen.EnableMouse()
	sh.screen.HideCursor()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := sh.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	interval := time.Second / time.Duration(max(sh.tps, 1))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sh.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !sh.HandleEvent(ev) {
				return nil
			}
			sh.Draw()
		case <-ticker.C:
			for i := sh.pacer.Due(); i > 0; i-- {
				sh.session.Tick(0)
			}
			sh.Draw()
		}
	}
}

// HandleEvent applies one input event. It returns false when the user asked
// to quit.
func (sh *Shell) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return sh.handleKey(ev)
	case *tcell.EventMouse:
		sh.handleMouse(ev)
	case *tcell.EventResize:
		sh.screen.Sync()
	}
	return true
}

func (sh *Shell) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		sh.move(-1, 0)
	case tcell.KeyRight:
		sh.move(1, 0)
	case tcell.KeyUp:
		sh.move(0, -1)
	case tcell.KeyDown:
		sh.move(0, 1)
	case tcell.KeyRune:
		return sh.handleRune(ev.Rune())
	}
	return true
}

func (sh *Shell) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'h':
		sh.move(-1, 0)
	case 'l':
		sh.move(1, 0)
	case 'k':
		sh.move(0, -1)
	case 'j':
		sh.move(0, 1)
	case 's':
		sh.session.Use(app.ToolStart, sh.cursor)
	case 'e':
		sh.session.Use(app.ToolEnd, sh.cursor)
	case 'o':
		sh.session.Use(app.ToolToggle, sh.cursor)
	case 'x':
		sh.session.Use(app.ToolErase, sh.cursor)
	case '2':
		sh.showSearch = !sh.showSearch
	case '+', '-':
		step := 1
		if r == '-' {
			step = -1
		}
		cfg := sh.session.Board().Config()
		sh.session.SetIntParameter("steps_per_tick", cfg.StepsPerTick+step)
	default:
		if a, ok := keyActions[r]; ok {
			if a == app.ActionRun {
				sh.pacer.Reset()
			}
			sh.session.Do(a)
		}
	}
	return true
}

// move shifts the cursor, clamped to the grid.
func (sh *Shell) move(dx, dy int) {
	n := sh.session.Board().Size()
	next := sh.cursor.Add(dx, dy)
	next.X = min(max(next.X, 0), n-1)
	next.Y = min(max(next.Y, 0), n-1)
	sh.cursor = next
}

func (sh *Shell) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ sh.buttons
	sh.buttons = buttons

	x, y := ev.Position()
	n := sh.session.Board().Size()
	if x < 0 || y < 0 || x >= n*cellWidth || y >= n {
		return
	}
	c := core.Coord{X: x / cellWidth, Y: y}
	sh.cursor = c

	shift := ev.Modifiers()&tcell.ModShift != 0
	switch {
	case buttons&tcell.ButtonPrimary != 0 && shift, buttons&tcell.ButtonMiddle != 0:
		sh.session.Use(app.ToolObstacle, c)
	case pressed&tcell.ButtonPrimary != 0:
		sh.session.Use(app.ToolStart, c)
	case pressed&tcell.ButtonSecondary != 0:
		sh.session.Use(app.ToolEnd, c)
	}
}

// Draw renders the grid, the status lines and the cursor.
func (sh *Shell) Draw() {
	sh.screen.Clear()
	b := sh.session.Board()
	n := b.Size()
	cells := b.Cells()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			kind := cells[y*n+x]
			if !sh.showSearch && (kind == board.CellOpen || kind == board.CellClosed) {
				kind = board.CellEmpty
			}
			cs := cellStyles[kind]
			style := cs.style
			if (core.Coord{X: x, Y: y}) == sh.cursor {
				style = style.Reverse(true)
			}
			sh.screen.SetContent(x*cellWidth, y, cs.r, nil, style)
			sh.screen.SetContent(x*cellWidth+1, y, ' ', nil, style)
		}
	}

	mode := "instant"
	if sh.session.Animate() {
		mode = "animated"
	}
	sh.drawText(0, n, tcell.StyleDefault.Bold(true), sh.session.Status())
	sh.drawText(0, n+1, tcell.StyleDefault, fmt.Sprintf("cursor %d,%d  mode %s  steps/tick %d  layout %s",
		sh.cursor.X, sh.cursor.Y, mode, b.Config().StepsPerTick, b.Config().Layout))
	sh.drawText(0, n+2, tcell.StyleDefault.Foreground(tcell.ColorGray), helpLine)
	sh.screen.Show()
}

func (sh *Shell) drawText(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		sh.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
