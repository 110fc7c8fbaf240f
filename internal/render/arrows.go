package render

import (
	"math"

	"gridpath/internal/core"
)

// Segment is a line in screen pixels.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Arrow returns the shaft and the two head strokes of an arrow that starts in
// the centre of cell from and points towards the centre of cell to. The arrow
// spans most of one cell so neighbouring arrows do not overlap.
func Arrow(from, to core.Coord, cell int) [3]Segment {
	const (
		lengthScale = 0.8
		headScale   = 0.3
		headAngle   = math.Pi / 6
	)
	scale := float64(cell)
	sx := (float64(from.X) + 0.5) * scale
	sy := (float64(from.Y) + 0.5) * scale
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return [3]Segment{}
	}
	nx, ny := dx/dist, dy/dist

	length := scale * lengthScale
	tailX := sx - nx*length*0.5
	tailY := sy - ny*length*0.5
	tipX := sx + nx*length*0.5
	tipY := sy + ny*length*0.5

	head := length * headScale
	angle := math.Atan2(ny, nx)
	leftX := tipX - math.Cos(angle+headAngle)*head
	leftY := tipY - math.Sin(angle+headAngle)*head
	rightX := tipX - math.Cos(angle-headAngle)*head
	rightY := tipY - math.Sin(angle-headAngle)*head

	return [3]Segment{
		{X1: tailX, Y1: tailY, X2: tipX, Y2: tipY},
		{X1: tipX, Y1: tipY, X2: leftX, Y2: leftY},
		{X1: tipX, Y1: tipY, X2: rightX, Y2: rightY},
	}
}
