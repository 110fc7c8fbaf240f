package board

import "gridpath/internal/core"

// Display values written by Cells, one per grid cell in row-major order.
const (
	CellEmpty uint8 = iota
	CellObstacle
	CellOpen
	CellClosed
	CellPath
	CellStart
	CellEnd

	CellKinds
)

// Cells returns the display buffer for the current state. Layers are drawn in
// order: obstacles, search overlay, path, endpoints. The slice is reused
// between calls.
func (b *Board) Cells() []uint8 {
	n := b.grid.Size()
	for i := range b.cells {
		b.cells[i] = CellEmpty
	}
	for _, c := range b.grid.Obstacles() {
		b.cells[c.Y*n+c.X] = CellObstacle
	}
	if b.stepper != nil {
		for c := range b.stepper.Closed() {
			b.cells[c.Y*n+c.X] = CellClosed
		}
		b.stepper.ForEachOpen(func(c core.Coord) {
			b.cells[c.Y*n+c.X] = CellOpen
		})
	}
	for _, c := range b.path {
		b.cells[c.Y*n+c.X] = CellPath
	}
	if b.hasStart {
		b.cells[b.start.Y*n+b.start.X] = CellStart
	}
	if b.hasEnd {
		b.cells[b.end.Y*n+b.end.X] = CellEnd
	}
	return b.cells
}
