package board

import (
	"fmt"
	"log/slog"

	"gridpath/internal/core"
	"gridpath/internal/logging"
	"gridpath/internal/search"
)

// Status messages shown by the shells.
const (
	StatusReady         = "Left click: start, right click: end, middle click: obstacle, space: search"
	StatusNeedEndpoints = "Set start and end points before running A*"
	StatusNoPathReset   = "No valid path! Resetting..."
	StatusNoPath        = "No valid path"
	StatusSearching     = "Searching..."
	StatusBusy          = "Search in progress"
	StatusReset         = "Grid cleared"
	StatusPathCleared   = "Path cleared"
	statusLayoutFmt     = "Applied layout %q"
	statusPathFoundFmt  = "Path found: %d moves, %d cells expanded"
)

const (
	defaultStepsPerTick = 4
	maxStepsPerTick     = 500
	densityPercentMax   = 90
	densityPercentStep  = 5
)

// Config controls board dimensions and session policy.
type Config struct {
	Size int

	// ResetOnFailure clears the whole board when a search finds no path.
	ResetOnFailure bool

	// StepsPerTick is how many expansions an animated search performs per
	// Advance call issued by a shell's frame loop.
	StepsPerTick int

	Layout  string
	Density float64
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:           30,
		ResetOnFailure: true,
		StepsPerTick:   defaultStepsPerTick,
		Layout:         "empty",
		Density:        0.25,
		Seed:           42,
	}
}

// Board owns the grid and the endpoints for one interactive session and runs
// searches on behalf of the shells. It is not safe for concurrent use.
type Board struct {
	cfg    Config
	grid   *core.Grid
	logger *slog.Logger

	start, end       core.Coord
	hasStart, hasEnd bool

	stepper   *search.Stepper
	path      []core.Coord
	result    search.Result
	hasResult bool
	runs      int

	status string
	cells  []uint8
}

// New creates an empty board. A nil logger discards log output.
func New(cfg Config, logger *slog.Logger) *Board {
	if cfg.Size <= 0 {
		cfg.Size = DefaultConfig().Size
	}
	if cfg.StepsPerTick <= 0 {
		cfg.StepsPerTick = defaultStepsPerTick
	}
	if logger == nil {
		logger = logging.Discard()
	}
	g := core.NewGrid(cfg.Size)
	return &Board{
		cfg:    cfg,
		grid:   g,
		logger: logger,
		status: StatusReady,
		cells:  make([]uint8, g.Size()*g.Size()),
	}
}

// Config returns the current configuration.
func (b *Board) Config() Config { return b.cfg }

// Grid exposes the grid for read access. Callers must not mutate it directly.
func (b *Board) Grid() *core.Grid { return b.grid }

// Size returns the grid dimension.
func (b *Board) Size() int { return b.grid.Size() }

// Start returns the start cell, if set.
func (b *Board) Start() (core.Coord, bool) { return b.start, b.hasStart }

// End returns the end cell, if set.
func (b *Board) End() (core.Coord, bool) { return b.end, b.hasEnd }

// Path returns the most recent path, or nil.
func (b *Board) Path() []core.Coord { return b.path }

// Status returns the last user-facing message.
func (b *Board) Status() string { return b.status }

// Result returns the statistics of the most recent finished search.
func (b *Board) Result() (search.Result, bool) { return b.result, b.hasResult }

// Stepper returns the active or last finished search, or nil.
func (b *Board) Stepper() *search.Stepper { return b.stepper }

// Searching reports whether an animated search is in progress.
func (b *Board) Searching() bool { return b.stepper != nil && !b.stepper.Done() }

func (b *Board) editable() bool {
	if b.Searching() {
		b.status = StatusBusy
		return false
	}
	return true
}

// invalidate drops the previous search so stale overlays are not drawn over
// an edited grid.
func (b *Board) invalidate() {
	b.stepper = nil
	b.path = nil
	b.hasResult = false
}

// SetStart places the start cell. It is ignored on obstacles, on the end cell
// and outside the grid.
func (b *Board) SetStart(c core.Coord) bool {
	if !b.editable() || !b.grid.InBounds(c) || b.grid.IsBlocked(c) || (b.hasEnd && c == b.end) {
		return false
	}
	b.start, b.hasStart = c, true
	b.invalidate()
	return true
}

// SetEnd places the end cell. It is ignored on obstacles, on the start cell
// and outside the grid.
func (b *Board) SetEnd(c core.Coord) bool {
	if !b.editable() || !b.grid.InBounds(c) || b.grid.IsBlocked(c) || (b.hasStart && c == b.start) {
		return false
	}
	b.end, b.hasEnd = c, true
	b.invalidate()
	return true
}

func (b *Board) isEndpoint(c core.Coord) bool {
	return (b.hasStart && c == b.start) || (b.hasEnd && c == b.end)
}

// AddObstacle blocks c unless it is an endpoint.
func (b *Board) AddObstacle(c core.Coord) bool {
	if !b.editable() || !b.grid.InBounds(c) || b.isEndpoint(c) || b.grid.IsBlocked(c) {
		return false
	}
	b.grid.AddObstacle(c)
	b.invalidate()
	return true
}

// RemoveObstacle unblocks c.
func (b *Board) RemoveObstacle(c core.Coord) bool {
	if !b.editable() || !b.grid.IsBlocked(c) {
		return false
	}
	b.grid.RemoveObstacle(c)
	b.invalidate()
	return true
}

// ToggleObstacle flips the obstacle state of c.
func (b *Board) ToggleObstacle(c core.Coord) bool {
	if b.grid.IsBlocked(c) {
		return b.RemoveObstacle(c)
	}
	return b.AddObstacle(c)
}

// Reset clears obstacles, endpoints and any search state.
func (b *Board) Reset() {
	b.grid.Clear()
	b.hasStart, b.hasEnd = false, false
	b.invalidate()
	b.status = StatusReset
}

// ClearPath drops the path and search overlay but keeps the grid.
func (b *Board) ClearPath() {
	if b.stepper == nil && b.path == nil {
		return
	}
	b.invalidate()
	b.status = StatusPathCleared
}

// ApplyLayout replaces the obstacles with a registered layout. Endpoints are
// kept and any obstacle generated on top of them is removed.
func (b *Board) ApplyLayout(name string, seed int64) error {
	layout, ok := core.Layouts()[name]
	if !ok {
		return fmt.Errorf("unknown layout %q", name)
	}
	if !b.editable() {
		return nil
	}
	layout(b.grid, core.NewRNG(seed), core.LayoutParams{Density: b.cfg.Density})
	if b.hasStart {
		b.grid.RemoveObstacle(b.start)
	}
	if b.hasEnd {
		b.grid.RemoveObstacle(b.end)
	}
	b.cfg.Layout = name
	b.cfg.Seed = seed
	b.invalidate()
	b.status = fmt.Sprintf(statusLayoutFmt, name)
	b.logger.Info("layout applied", "layout", name, "seed", seed, "obstacles", b.grid.ObstacleCount())
	return nil
}

// Begin starts an animated search. It reports false when endpoints are
// missing.
func (b *Board) Begin() bool {
	if !b.hasStart || !b.hasEnd {
		b.status = StatusNeedEndpoints
		b.logger.Warn("search requested without endpoints", "has_start", b.hasStart, "has_end", b.hasEnd)
		return false
	}
	b.invalidate()
	b.stepper = search.NewStepper(b.grid, b.start, b.end)
	b.status = StatusSearching
	b.logger.Debug("search started", "start", b.start, "end", b.end, "obstacles", b.grid.ObstacleCount())
	return true
}

// Advance performs up to n expansions of the active search and reports
// whether the search is finished. With n <= 0 the configured StepsPerTick is
// used.
func (b *Board) Advance(n int) bool {
	if b.stepper == nil {
		return true
	}
	if b.stepper.Done() {
		return true
	}
	if n <= 0 {
		n = b.cfg.StepsPerTick
	}
	for i := 0; i < n; i++ {
		if b.stepper.Step().Done {
			b.finish()
			return true
		}
	}
	return false
}

// Run performs a complete search and reports whether a path was found.
func (b *Board) Run() bool {
	if !b.Begin() {
		return false
	}
	for !b.stepper.Step().Done {
	}
	return b.finish()
}

func (b *Board) finish() bool {
	r := b.stepper.Result()
	b.runs++
	if r.Found {
		b.path = r.Path
		b.result, b.hasResult = r, true
		b.status = fmt.Sprintf(statusPathFoundFmt, r.Cost, r.Expanded)
		b.logger.Info("path found",
			"start", b.start,
			"end", b.end,
			"moves", r.Cost,
			"expanded", r.Expanded,
			"pushed", r.Pushed,
			"stale", r.Stale,
		)
		return true
	}

	b.logger.Warn("no path found", "start", b.start, "end", b.end, "expanded", r.Expanded, "reset", b.cfg.ResetOnFailure)
	if b.cfg.ResetOnFailure {
		b.Reset()
		b.status = StatusNoPathReset
	} else {
		b.status = StatusNoPath
	}
	b.result, b.hasResult = r, true
	return false
}
