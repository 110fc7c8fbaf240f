package search

import "gridpath/internal/core"

const noParent int32 = -1

// node is one expansion candidate. f is fixed at construction; a cheaper route
// to the same coordinate gets a new node instead of mutating this one.
type node struct {
	pos    core.Coord
	g      int
	h      int
	f      int
	parent int32
}

// nodeArena owns every node created during a single search.
type nodeArena struct {
	nodes []node
}

func (a *nodeArena) add(pos core.Coord, g, h int, parent int32) int32 {
	a.nodes = append(a.nodes, node{pos: pos, g: g, h: h, f: g + h, parent: parent})
	return int32(len(a.nodes) - 1)
}

func (a *nodeArena) at(idx int32) *node { return &a.nodes[idx] }

func (a *nodeArena) len() int { return len(a.nodes) }
