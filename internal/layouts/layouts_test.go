package layouts

import (
	"testing"

	"gridpath/internal/core"
	"gridpath/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"empty", "scatter", "walls", "maze"} {
		_, ok := core.Layouts()[name]
		assert.True(t, ok, "layout %q not registered", name)
	}
}

func TestEmptyClearsGrid(t *testing.T) {
	g := core.NewGrid(6)
	g.AddObstacle(core.Coord{X: 1, Y: 1})
	Empty(g, core.NewRNG(1), core.LayoutParams{})
	assert.Zero(t, g.ObstacleCount())
}

func TestScatterDeterministic(t *testing.T) {
	a := core.NewGrid(20)
	b := core.NewGrid(20)
	Scatter(a, core.NewRNG(11), core.LayoutParams{Density: 0.3})
	Scatter(b, core.NewRNG(11), core.LayoutParams{Density: 0.3})
	assert.Equal(t, a.Obstacles(), b.Obstacles())

	c := core.NewGrid(20)
	Scatter(c, core.NewRNG(12), core.LayoutParams{Density: 0.3})
	assert.NotEqual(t, a.Obstacles(), c.Obstacles())
}

func TestScatterDensity(t *testing.T) {
	g := core.NewGrid(40)
	Scatter(g, core.NewRNG(3), core.LayoutParams{Density: 0.3})
	ratio := float64(g.ObstacleCount()) / float64(40*40)
	assert.InDelta(t, 0.3, ratio, 0.05)

	Scatter(g, core.NewRNG(3), core.LayoutParams{Density: 0})
	assert.Zero(t, g.ObstacleCount())
}

func TestWallsLeaveARoute(t *testing.T) {
	for _, size := range []int{12, 30} {
		g := core.NewGrid(size)
		Walls(g, nil, core.LayoutParams{})
		require.NotZero(t, g.ObstacleCount())

		start, end := core.Coord{X: 0, Y: 0}, core.Coord{X: size - 1, Y: size - 1}
		require.False(t, g.IsBlocked(start))
		require.False(t, g.IsBlocked(end))
		path, ok := search.FindPath(g, start, end)
		require.True(t, ok, "size %d", size)
		assert.Greater(t, len(path), search.Manhattan(start, end)+1, "walls should force a detour")
	}
}

func TestMazeConnectsAllCells(t *testing.T) {
	g := core.NewGrid(15)
	Maze(g, core.NewRNG(5), core.LayoutParams{})

	origin := core.Coord{X: 0, Y: 0}
	require.False(t, g.IsBlocked(origin))
	for y := 0; y < 15; y += 2 {
		for x := 0; x < 15; x += 2 {
			c := core.Coord{X: x, Y: y}
			require.False(t, g.IsBlocked(c), "cell %v should be a passage", c)
			_, ok := search.FindPath(g, origin, c)
			assert.True(t, ok, "cell %v unreachable", c)
		}
	}
	for y := 1; y < 15; y += 2 {
		for x := 1; x < 15; x += 2 {
			assert.True(t, g.IsBlocked(core.Coord{X: x, Y: y}), "pillar %d,%d should stay blocked", x, y)
		}
	}
}

func TestMazeEvenSizeReachesFarCorner(t *testing.T) {
	const size = 30
	g := core.NewGrid(size)
	Maze(g, core.NewRNG(5), core.LayoutParams{})

	origin, corner := core.Coord{X: 0, Y: 0}, core.Coord{X: size - 1, Y: size - 1}
	require.False(t, g.IsBlocked(origin))
	require.False(t, g.IsBlocked(corner))
	_, ok := search.FindPath(g, origin, corner)
	require.True(t, ok)

	for i := 0; i < size; i++ {
		assert.False(t, g.IsBlocked(core.Coord{X: size - 1, Y: i}), "edge column %d", i)
		assert.False(t, g.IsBlocked(core.Coord{X: i, Y: size - 1}), "edge row %d", i)
	}
	for y := 0; y < size-1; y += 2 {
		for x := 0; x < size-1; x += 2 {
			c := core.Coord{X: x, Y: y}
			require.False(t, g.IsBlocked(c), "cell %v should be a passage", c)
			_, ok := search.FindPath(g, origin, c)
			assert.True(t, ok, "cell %v unreachable", c)
		}
	}
	for y := 1; y < size-1; y += 2 {
		for x := 1; x < size-1; x += 2 {
			assert.True(t, g.IsBlocked(core.Coord{X: x, Y: y}), "pillar %d,%d should stay blocked", x, y)
		}
	}
}

func TestMazeBraidingOpensWalls(t *testing.T) {
	perfect := core.NewGrid(21)
	Maze(perfect, core.NewRNG(9), core.LayoutParams{})
	braided := core.NewGrid(21)
	Maze(braided, core.NewRNG(9), core.LayoutParams{Density: 1})

	assert.Less(t, braided.ObstacleCount(), perfect.ObstacleCount())
}
