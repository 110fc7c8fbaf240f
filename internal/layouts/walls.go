package layouts

import "gridpath/internal/core"

// Walls draws vertical walls on every fourth column, each with a single gap.
// Gaps alternate between the bottom and the top row so routes snake across the
// grid; the rng is not used.
func Walls(g *core.Grid, _ *core.RNG, _ core.LayoutParams) {
	g.Clear()
	n := g.Size()
	for i, x := 0, 2; x < n-1; i, x = i+1, x+4 {
		gap := n - 1
		if i%2 == 1 {
			gap = 0
		}
		for y := 0; y < n; y++ {
			if y == gap {
				continue
			}
			g.AddObstacle(core.Coord{X: x, Y: y})
		}
	}
}

func init() {
	core.RegisterLayout("walls", Walls)
}
