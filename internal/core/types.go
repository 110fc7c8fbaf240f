package core

import "sort"

// Size describes the pixel or cell dimensions of a view.
type Size struct {
	W int
	H int
}

// LayoutParams tunes how densely a layout fills the grid. Layouts that do not
// use randomness ignore it.
type LayoutParams struct {
	Density float64
}

// Layout fills a grid with obstacles. Layouts must only touch in-bounds cells
// and should be deterministic for a given RNG seed.
type Layout func(g *Grid, rng *RNG, p LayoutParams)

var layouts = map[string]Layout{}

// RegisterLayout adds an obstacle layout under the provided name.
func RegisterLayout(name string, l Layout) {
	if name == "" || l == nil {
		return
	}
	layouts[name] = l
}

// Layouts exposes the registry of available obstacle layouts.
func Layouts() map[string]Layout {
	return layouts
}

// LayoutNames returns the registered layout names in sorted order.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
