package board

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"gridpath/internal/core"
	_ "gridpath/internal/layouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, size int, resetOnFailure bool) *Board {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.ResetOnFailure = resetOnFailure
	return New(cfg, nil)
}

func TestEndpointRules(t *testing.T) {
	b := newBoard(t, 5, true)

	require.True(t, b.SetStart(core.Coord{X: 0, Y: 0}))
	require.True(t, b.SetEnd(core.Coord{X: 4, Y: 4}))

	assert.False(t, b.SetEnd(core.Coord{X: 0, Y: 0}), "end cannot sit on start")
	assert.False(t, b.SetStart(core.Coord{X: 4, Y: 4}), "start cannot sit on end")
	assert.False(t, b.SetStart(core.Coord{X: 5, Y: 0}), "out of bounds")

	require.True(t, b.AddObstacle(core.Coord{X: 2, Y: 2}))
	assert.False(t, b.SetStart(core.Coord{X: 2, Y: 2}), "start cannot sit on an obstacle")
	assert.False(t, b.AddObstacle(core.Coord{X: 0, Y: 0}), "obstacles cannot cover start")
	assert.False(t, b.AddObstacle(core.Coord{X: 4, Y: 4}), "obstacles cannot cover end")

	start, ok := b.Start()
	require.True(t, ok)
	assert.Equal(t, core.Coord{X: 0, Y: 0}, start)
}

func TestToggleObstacle(t *testing.T) {
	b := newBoard(t, 4, true)
	c := core.Coord{X: 1, Y: 2}

	assert.True(t, b.ToggleObstacle(c))
	assert.True(t, b.Grid().IsBlocked(c))
	assert.True(t, b.ToggleObstacle(c))
	assert.False(t, b.Grid().IsBlocked(c))
	assert.False(t, b.RemoveObstacle(c))
}

func TestRunRequiresEndpoints(t *testing.T) {
	b := newBoard(t, 5, true)
	assert.False(t, b.Run())
	assert.Equal(t, StatusNeedEndpoints, b.Status())

	b.SetStart(core.Coord{X: 0, Y: 0})
	assert.False(t, b.Run())
	assert.Equal(t, StatusNeedEndpoints, b.Status())
}

func TestRunFindsPath(t *testing.T) {
	b := newBoard(t, 5, true)
	for y := 0; y < 4; y++ {
		b.AddObstacle(core.Coord{X: 2, Y: y})
	}
	b.SetStart(core.Coord{X: 0, Y: 0})
	b.SetEnd(core.Coord{X: 4, Y: 0})

	require.True(t, b.Run())
	path := b.Path()
	require.Len(t, path, 13)
	assert.Contains(t, path, core.Coord{X: 2, Y: 4})
	assert.Contains(t, b.Status(), "Path found: 12 moves")

	r, ok := b.Result()
	require.True(t, ok)
	assert.True(t, r.Found)
	assert.Equal(t, 12, r.Cost)
}

func TestRunFailureResetsBoard(t *testing.T) {
	b := newBoard(t, 5, true)
	b.SetStart(core.Coord{X: 0, Y: 0})
	b.SetEnd(core.Coord{X: 2, Y: 2})
	for _, c := range []core.Coord{{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 3}} {
		require.True(t, b.AddObstacle(c))
	}

	assert.False(t, b.Run())
	assert.Equal(t, StatusNoPathReset, b.Status())
	assert.Zero(t, b.Grid().ObstacleCount())
	_, hasStart := b.Start()
	_, hasEnd := b.End()
	assert.False(t, hasStart)
	assert.False(t, hasEnd)

	r, ok := b.Result()
	require.True(t, ok)
	assert.False(t, r.Found)
}

func TestRunFailureKeepsBoardWhenPolicyDisabled(t *testing.T) {
	b := newBoard(t, 5, false)
	b.SetStart(core.Coord{X: 0, Y: 0})
	b.SetEnd(core.Coord{X: 2, Y: 2})
	for _, c := range []core.Coord{{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 3}} {
		b.AddObstacle(c)
	}

	assert.False(t, b.Run())
	assert.Equal(t, StatusNoPath, b.Status())
	assert.Equal(t, 4, b.Grid().ObstacleCount())
	assert.Nil(t, b.Path())
}

func TestAnimatedSearchMatchesRun(t *testing.T) {
	build := func() *Board {
		b := newBoard(t, 12, true)
		require.NoError(t, b.ApplyLayout("walls", 1))
		b.SetStart(core.Coord{X: 0, Y: 0})
		b.SetEnd(core.Coord{X: 11, Y: 11})
		return b
	}

	oneShot := build()
	require.True(t, oneShot.Run())

	animated := build()
	require.True(t, animated.Begin())
	assert.True(t, animated.Searching())
	assert.Equal(t, StatusSearching, animated.Status())

	frames := 0
	for !animated.Advance(3) {
		frames++
		require.Less(t, frames, 10000)
	}
	assert.False(t, animated.Searching())
	assert.Equal(t, oneShot.Path(), animated.Path())
	assert.Greater(t, frames, 1)
}

func TestEditsIgnoredWhileSearching(t *testing.T) {
	b := newBoard(t, 10, true)
	b.SetStart(core.Coord{X: 0, Y: 0})
	b.SetEnd(core.Coord{X: 9, Y: 9})
	require.True(t, b.Begin())
	b.Advance(1)

	assert.False(t, b.AddObstacle(core.Coord{X: 5, Y: 5}))
	assert.Equal(t, StatusBusy, b.Status())
	assert.False(t, b.SetStart(core.Coord{X: 1, Y: 1}))
	assert.Zero(t, b.Grid().ObstacleCount())
}

func TestEditInvalidatesPath(t *testing.T) {
	b := newBoard(t, 5, true)
	b.SetStart(core.Coord{X: 0, Y: 0})
	b.SetEnd(core.Coord{X: 4, Y: 4})
	require.True(t, b.Run())
	require.NotNil(t, b.Path())

	b.AddObstacle(core.Coord{X: 2, Y: 0})
	assert.Nil(t, b.Path())
	assert.Nil(t, b.Stepper())
}

func TestClearPathKeepsGrid(t *testing.T) {
	b := newBoard(t, 5, true)
	b.AddObstacle(core.Coord{X: 1, Y: 1})
	b.SetStart(core.Coord{X: 0, Y: 0})
	b.SetEnd(core.Coord{X: 4, Y: 4})
	require.True(t, b.Run())

	b.ClearPath()
	assert.Nil(t, b.Path())
	assert.Equal(t, StatusPathCleared, b.Status())
	assert.Equal(t, 1, b.Grid().ObstacleCount())
	_, ok := b.Start()
	assert.True(t, ok)
}

func TestApplyLayoutKeepsEndpointsOpen(t *testing.T) {
	b := newBoard(t, 9, true)
	b.SetStart(core.Coord{X: 1, Y: 1})
	b.SetEnd(core.Coord{X: 8, Y: 8})

	require.NoError(t, b.ApplyLayout("maze", 3))
	assert.False(t, b.Grid().IsBlocked(core.Coord{X: 1, Y: 1}))
	assert.False(t, b.Grid().IsBlocked(core.Coord{X: 8, Y: 8}))
	assert.Equal(t, "maze", b.Config().Layout)
	assert.Equal(t, int64(3), b.Config().Seed)

	assert.Error(t, b.ApplyLayout("does-not-exist", 1))
}

func TestCellsLayering(t *testing.T) {
	b := newBoard(t, 3, true)
	b.AddObstacle(core.Coord{X: 1, Y: 1})
	b.SetStart(core.Coord{X: 0, Y: 0})
	b.SetEnd(core.Coord{X: 2, Y: 2})
	require.True(t, b.Run())

	cells := b.Cells()
	require.Len(t, cells, 9)
	assert.Equal(t, CellStart, cells[0])
	assert.Equal(t, CellEnd, cells[8])
	assert.Equal(t, CellObstacle, cells[4])

	onPath := 0
	for _, c := range b.Path()[1 : len(b.Path())-1] {
		assert.Equal(t, CellPath, cells[c.Y*3+c.X])
		onPath++
	}
	assert.Equal(t, 3, onPath)
}

func TestCellsShowSearchOverlay(t *testing.T) {
	b := newBoard(t, 5, true)
	b.SetStart(core.Coord{X: 2, Y: 2})
	b.SetEnd(core.Coord{X: 4, Y: 4})
	require.True(t, b.Begin())
	b.Advance(1)

	cells := b.Cells()
	assert.Equal(t, CellStart, cells[2*5+2])
	assert.Equal(t, CellOpen, cells[2*5+1])
	assert.Equal(t, CellOpen, cells[1*5+2])
	assert.Equal(t, CellEmpty, cells[0])
}

func TestParameterControls(t *testing.T) {
	b := newBoard(t, 5, true)

	assert.True(t, b.SetIntParameter("steps_per_tick", 10))
	assert.Equal(t, 10, b.Config().StepsPerTick)
	assert.True(t, b.SetIntParameter("steps_per_tick", 0))
	assert.Equal(t, 1, b.Config().StepsPerTick)
	assert.True(t, b.SetIntParameter("density", 150))
	assert.InDelta(t, 0.9, b.Config().Density, 1e-9)
	assert.False(t, b.SetIntParameter("unknown", 1))

	p, ok := b.Parameters().Lookup("density")
	require.True(t, ok)
	assert.Equal(t, "90", p.Value)

	p, ok = b.Parameters().Lookup("start")
	require.True(t, ok)
	assert.Equal(t, "--", p.Value)
}

func TestRunLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := DefaultConfig()
	cfg.Size = 4
	b := New(cfg, logger)
	b.SetStart(core.Coord{X: 0, Y: 0})
	b.SetEnd(core.Coord{X: 3, Y: 0})

	require.True(t, b.Run())
	assert.Contains(t, buf.String(), "path found")
	assert.Contains(t, buf.String(), "moves=3")
}

func TestNilLoggerDiscards(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 4
	b := New(cfg, nil)
	require.NotNil(t, b.logger)
	assert.False(t, b.logger.Enabled(context.Background(), slog.LevelError))

	b.SetStart(core.Coord{X: 0, Y: 0})
	b.SetEnd(core.Coord{X: 3, Y: 0})
	assert.True(t, b.Run())
}
