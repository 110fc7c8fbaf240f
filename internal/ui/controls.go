package ui

import (
	"image"
	"strconv"
	"strings"

	"gridpath/internal/core"
)

// Source is the session state the HUD reads every frame.
type Source interface {
	Status() string
	Parameters() core.ParameterSnapshot
}

// summaryKeys are the counters printed on the second HUD line.
var summaryKeys = []string{"moves", "expanded", "pushed", "obstacles", "layout", "mode"}

type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, top: top, minusRect: minus, plusRect: plus}
	}
	return states
}

func (s *controlState) refresh(snap core.ParameterSnapshot) {
	p, ok := snap.Lookup(s.control.Key)
	if !ok || p.Type != core.ParamTypeInt {
		s.hasValue = false
		return
	}
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		s.hasValue = false
		return
	}
	s.value, s.hasValue = v, true
}

// target returns the value one step in direction, clamped to the control
// range. It reports false when the value would not change.
func (s *controlState) target(direction int) (int, bool) {
	if !s.hasValue || direction == 0 {
		return s.value, false
	}
	step := s.control.Step
	if step <= 0 {
		step = 1
	}
	next := s.control.Clamp(s.value + direction*step)
	return next, next != s.value
}

// hitControl maps a panel-relative point to a control index and direction.
func hitControl(states []controlState, x, y int) (int, int, bool) {
	pt := image.Pt(x, y)
	for i := range states {
		if pt.In(states[i].minusRect) {
			return i, -1, true
		}
		if pt.In(states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

func summaryLine(snap core.ParameterSnapshot) string {
	parts := make([]string, 0, len(summaryKeys))
	for _, key := range summaryKeys {
		p, ok := snap.Lookup(key)
		if !ok {
			continue
		}
		parts = append(parts, strings.ToLower(p.Label)+" "+p.Value)
	}
	return strings.Join(parts, "  ")
}

// panelHeight is the height of a HUD with n controls.
func panelHeight(n int) int {
	return controlsTop + n*lineHeight + panelPadding
}

const (
	panelPadding    = 10
	lineHeight      = 28
	buttonSize      = 20
	buttonGap       = 6
	statusBaseline  = 18
	summaryBaseline = 36
	labelBaseline   = 18
	controlsTop     = summaryBaseline + 8
)
