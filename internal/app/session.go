package app

import (
	"log/slog"

	"gridpath/internal/board"
	"gridpath/internal/core"
	"gridpath/internal/logging"
	"gridpath/internal/search"
)

// Action is a keyboard command shared by the window and terminal shells.
type Action int

const (
	ActionNone Action = iota
	ActionRun
	ActionToggleAnimate
	ActionClearPath
	ActionApplyLayout
	ActionNextLayout
	ActionReset
)

// Tool is what a pointer press does to the cell under it.
type Tool int

const (
	ToolStart Tool = iota
	ToolEnd
	ToolObstacle
	ToolErase
	ToolToggle
)

// Session ties a board to the shell-level modes: animated or instant search
// and the layout rotation.
type Session struct {
	board   *board.Board
	logger  *slog.Logger
	animate bool
	layouts int
	seed    int64
}

// NewSession creates the board described by cfg and applies its layout.
func NewSession(cfg *Config, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Session{
		board:   board.New(cfg.BoardConfig(), logger),
		logger:  logger,
		animate: cfg.Animate,
		seed:    cfg.Seed,
	}
	if cfg.Layout != "" && cfg.Layout != "empty" {
		if err := s.board.ApplyLayout(cfg.Layout, cfg.Seed); err != nil {
			return nil, err
		}
		s.layouts++
	}
	return s, nil
}

// Board returns the session board.
func (s *Session) Board() *board.Board { return s.board }

// Animate reports whether searches run one tick at a time.
func (s *Session) Animate() bool { return s.animate }

// Status returns the board status message.
func (s *Session) Status() string { return s.board.Status() }

// Parameters reports the board parameters plus the search mode.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.board.Parameters()
	mode := "instant"
	if s.animate {
		mode = "animated"
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{Name: "Mode", Params: []core.Parameter{
		{Key: "mode", Label: "Mode", Type: core.ParamTypeText, Value: mode},
	}})
	return snap
}

// ParameterControls lists the HUD-adjustable board values.
func (s *Session) ParameterControls() []core.ParameterControl { return s.board.ParameterControls() }

// SetIntParameter forwards HUD adjustments to the board.
func (s *Session) SetIntParameter(key string, value int) bool {
	return s.board.SetIntParameter(key, value)
}

// Stepper returns the active or last search.
func (s *Session) Stepper() *search.Stepper { return s.board.Stepper() }

// Do performs a keyboard action.
func (s *Session) Do(a Action) {
	switch a {
	case ActionRun:
		if s.board.Searching() {
			return
		}
		if s.animate {
			s.board.Begin()
		} else {
			s.board.Run()
		}
	case ActionToggleAnimate:
		s.animate = !s.animate
		s.logger.Debug("search mode changed", "animate", s.animate)
	case ActionClearPath:
		s.board.ClearPath()
	case ActionApplyLayout:
		s.applyLayout(s.board.Config().Layout)
	case ActionNextLayout:
		names := core.LayoutNames()
		if len(names) == 0 {
			return
		}
		next := names[0]
		for i, name := range names {
			if name == s.board.Config().Layout {
				next = names[(i+1)%len(names)]
				break
			}
		}
		s.applyLayout(next)
	case ActionReset:
		s.board.Reset()
	}
}

// applyLayout bumps the seed on every application so repeated presses give
// fresh random layouts.
func (s *Session) applyLayout(name string) {
	seed := s.seed + int64(s.layouts)
	if err := s.board.ApplyLayout(name, seed); err != nil {
		s.logger.Error("apply layout", "layout", name, "err", err)
		return
	}
	s.layouts++
}

// Use applies tool to cell c.
func (s *Session) Use(t Tool, c core.Coord) {
	switch t {
	case ToolStart:
		s.board.SetStart(c)
	case ToolEnd:
		s.board.SetEnd(c)
	case ToolObstacle:
		s.board.AddObstacle(c)
	case ToolErase:
		s.board.RemoveObstacle(c)
	case ToolToggle:
		s.board.ToggleObstacle(c)
	}
}

// Tick advances an animated search by n expansions, or by the configured
// steps per tick when n <= 0.
func (s *Session) Tick(n int) {
	if s.board.Searching() {
		s.board.Advance(n)
	}
}
