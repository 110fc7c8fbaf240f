package layouts

import "gridpath/internal/core"

// Scatter blocks each cell independently with probability p.Density.
// A zero density leaves the grid empty; densities above 0.9 are capped.
func Scatter(g *core.Grid, rng *core.RNG, p core.LayoutParams) {
	g.Clear()
	density := p.Density
	if density > 0.9 {
		density = 0.9
	}
	n := g.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if rng.Chance(density) {
				g.AddObstacle(core.Coord{X: x, Y: y})
			}
		}
	}
}

func init() {
	core.RegisterLayout("scatter", Scatter)
}
