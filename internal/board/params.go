package board

import (
	"fmt"
	"strconv"

	"gridpath/internal/core"
)

// Parameters reports the session state for the HUD.
func (b *Board) Parameters() core.ParameterSnapshot {
	searchParams := []core.Parameter{
		textParam("start", "Start", b.formatEndpoint(b.start, b.hasStart)),
		textParam("end", "End", b.formatEndpoint(b.end, b.hasEnd)),
		intParam("runs", "Runs", b.runs),
	}
	if b.hasResult {
		r := b.result
		moves := "--"
		if r.Found {
			moves = strconv.Itoa(r.Cost)
		}
		searchParams = append(searchParams,
			textParam("moves", "Moves", moves),
			intParam("expanded", "Expanded", r.Expanded),
			intParam("pushed", "Pushed", r.Pushed),
		)
	} else if b.stepper != nil {
		searchParams = append(searchParams, intParam("expanded", "Expanded", b.stepper.Result().Expanded))
	}

	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Search", Params: searchParams},
		{Name: "Grid", Params: []core.Parameter{
			intParam("size", "Size", b.grid.Size()),
			intParam("obstacles", "Obstacles", b.grid.ObstacleCount()),
			textParam("layout", "Layout", b.cfg.Layout),
			intParam("density", "Density %", densityPercent(b.cfg.Density)),
			intParam("steps_per_tick", "Steps/tick", b.cfg.StepsPerTick),
		}},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (b *Board) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "steps_per_tick", Label: "Steps/tick", Step: 1, Min: 1, Max: maxStepsPerTick},
		{Key: "density", Label: "Density %", Step: densityPercentStep, Min: 0, Max: densityPercentMax},
	}
}

// SetIntParameter updates a HUD-adjustable value. Out-of-range values are
// clamped.
func (b *Board) SetIntParameter(key string, value int) bool {
	for _, ctrl := range b.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "steps_per_tick":
			b.cfg.StepsPerTick = value
		case "density":
			b.cfg.Density = float64(value) / 100
		}
		return true
	}
	return false
}

func (b *Board) formatEndpoint(c core.Coord, ok bool) string {
	if !ok {
		return "--"
	}
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

func densityPercent(d float64) int {
	return int(d*100 + 0.5)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
