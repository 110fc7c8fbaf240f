package core

// Coord addresses a single grid cell. It is a plain value and can be used as a
// map key.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// Grid is a square cell space with a set of blocked cells stored in row-major
// order. Blocked cells are always in bounds.
type Grid struct {
	size    int
	blocked []uint8
	count   int
}

// NewGrid allocates an empty grid with size*size cells.
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = 1
	}
	return &Grid{size: size, blocked: make([]uint8, size*size)}
}

// Size returns the grid dimension.
func (g *Grid) Size() int { return g.size }

// Index returns the linear slice index for c. Callers must check InBounds first.
func (g *Grid) Index(c Coord) int { return c.Y*g.size + c.X }

// InBounds reports whether 0 <= x,y < size.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.size && c.Y < g.size
}

// IsBlocked reports whether c holds an obstacle. Out-of-range cells are not
// blocked; they are simply not part of the grid.
func (g *Grid) IsBlocked(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.blocked[g.Index(c)] != 0
}

// AddObstacle marks c as blocked. Out-of-range coordinates are ignored.
func (g *Grid) AddObstacle(c Coord) {
	if !g.InBounds(c) {
		return
	}
	idx := g.Index(c)
	if g.blocked[idx] == 0 {
		g.blocked[idx] = 1
		g.count++
	}
}

// RemoveObstacle clears the obstacle at c, if any.
func (g *Grid) RemoveObstacle(c Coord) {
	if !g.InBounds(c) {
		return
	}
	idx := g.Index(c)
	if g.blocked[idx] != 0 {
		g.blocked[idx] = 0
		g.count--
	}
}

// Clear removes every obstacle.
func (g *Grid) Clear() {
	for i := range g.blocked {
		g.blocked[i] = 0
	}
	g.count = 0
}

// ObstacleCount returns the number of blocked cells.
func (g *Grid) ObstacleCount() int { return g.count }

// Obstacles lists blocked cells in row-major order.
func (g *Grid) Obstacles() []Coord {
	out := make([]Coord, 0, g.count)
	for i, b := range g.blocked {
		if b != 0 {
			out = append(out, Coord{X: i % g.size, Y: i / g.size})
		}
	}
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		size:    g.size,
		blocked: append([]uint8(nil), g.blocked...),
		count:   g.count,
	}
}
