package layouts

import "gridpath/internal/core"

// Empty leaves the grid without obstacles.
func Empty(g *core.Grid, _ *core.RNG, _ core.LayoutParams) {
	g.Clear()
}

func init() {
	core.RegisterLayout("empty", Empty)
}
