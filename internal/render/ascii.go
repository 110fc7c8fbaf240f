package render

import (
	"strings"

	"gridpath/internal/core"
)

// ASCII draws g as text: '#' obstacles, '*' path cells, 'S' and 'E' for the
// endpoints and '.' for open cells. Rows end with a newline.
func ASCII(g *core.Grid, path []core.Coord, start, end core.Coord) string {
	n := g.Size()
	rows := make([][]byte, n)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", n))
	}
	for _, c := range g.Obstacles() {
		rows[c.Y][c.X] = '#'
	}
	for _, c := range path {
		if g.InBounds(c) {
			rows[c.Y][c.X] = '*'
		}
	}
	if g.InBounds(start) {
		rows[start.Y][start.X] = 'S'
	}
	if g.InBounds(end) {
		rows[end.Y][end.X] = 'E'
	}

	var sb strings.Builder
	sb.Grow(n * (n + 1))
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
