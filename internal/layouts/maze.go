package layouts

import "gridpath/internal/core"

// Maze carves a perfect maze with a randomized depth-first backtracker.
// Passages sit on even coordinates so the top-left corner is always open.
// On even sizes the maze fills the odd n-1 square and the last row and
// column are left open as a corridor, so the bottom-right corner is reachable.
// p.Density is used as a braiding probability: every remaining wall between
// two passages is knocked out with probability Density/2, adding loops.
func Maze(g *core.Grid, rng *core.RNG, p core.LayoutParams) {
	n := g.Size()
	m := n
	if m%2 == 0 {
		m--
	}
	inMaze := func(c core.Coord) bool {
		return c.X >= 0 && c.Y >= 0 && c.X < m && c.Y < m
	}
	g.Clear()
	for y := 0; y < m; y++ {
		for x := 0; x < m; x++ {
			g.AddObstacle(core.Coord{X: x, Y: y})
		}
	}

	start := core.Coord{}
	g.RemoveObstacle(start)
	stack := []core.Coord{start}
	steps := [4]core.Coord{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
	candidates := make([]core.Coord, 0, 4)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]
		for _, d := range steps {
			next := curr.Add(d.X, d.Y)
			if inMaze(next) && g.IsBlocked(next) {
				candidates = append(candidates, d)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := candidates[rng.IntN(len(candidates))]
		g.RemoveObstacle(curr.Add(d.X/2, d.Y/2))
		next := curr.Add(d.X, d.Y)
		g.RemoveObstacle(next)
		stack = append(stack, next)
	}

	braid(g, rng, p.Density/2)
}

// braid removes walls that separate two passages horizontally or vertically.
func braid(g *core.Grid, rng *core.RNG, chance float64) {
	if chance <= 0 {
		return
	}
	n := g.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := core.Coord{X: x, Y: y}
			if !g.IsBlocked(c) {
				continue
			}
			horizontal := x%2 == 1 && y%2 == 0 && isPassage(g, c.Add(-1, 0)) && isPassage(g, c.Add(1, 0))
			vertical := x%2 == 0 && y%2 == 1 && isPassage(g, c.Add(0, -1)) && isPassage(g, c.Add(0, 1))
			if (horizontal || vertical) && rng.Chance(chance) {
				g.RemoveObstacle(c)
			}
		}
	}
}

func isPassage(g *core.Grid, c core.Coord) bool {
	return g.InBounds(c) && !g.IsBlocked(c)
}

func init() {
	core.RegisterLayout("maze", Maze)
}
