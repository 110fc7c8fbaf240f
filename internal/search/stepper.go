package search

import (
	"container/heap"

	"gridpath/internal/core"
)

// Graph is the read-only view of a grid the search needs.
type Graph interface {
	InBounds(c core.Coord) bool
	IsBlocked(c core.Coord) bool
}

// directions lists neighbour offsets in expansion order.
var directions = [4]core.Coord{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1}}

// Options defines parameters for the search.
type Options struct {
	Heuristic Heuristic
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the Manhattan heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// Snapshot exposes the state after one call to Step.
type Snapshot struct {
	Current    core.Coord
	HasCurrent bool
	Done       bool
	Found      bool
	Path       []core.Coord
	Expanded   int
	StepIndex  int
}

// Stepper runs an A* search one expansion at a time.
type Stepper struct {
	graph     Graph
	start     core.Coord
	goal      core.Coord
	heuristic Heuristic

	arena        nodeArena
	open         frontier
	closed       map[core.Coord]bool
	predecessors map[core.Coord]int32
	seq          uint64

	expanded int
	pushed   int
	stale    int
	steps    int

	done  bool
	found bool
	path  []core.Coord
	cost  int
}

// NewStepper prepares a search from start to goal. The grid must not change
// until the stepper is done or discarded.
func NewStepper(g Graph, start, goal core.Coord, options ...Option) *Stepper {
	opts := Options{Heuristic: Manhattan}
	for _, o := range options {
		o(&opts)
	}

	s := &Stepper{
		graph:        g,
		start:        start,
		goal:         goal,
		heuristic:    opts.Heuristic,
		open:         make(frontier, 0, 64),
		closed:       make(map[core.Coord]bool),
		predecessors: make(map[core.Coord]int32),
	}
	heap.Init(&s.open)
	s.push(start, 0, noParent)
	return s
}

func (s *Stepper) push(pos core.Coord, g int, parent int32) {
	idx := s.arena.add(pos, g, s.heuristic(pos, s.goal), parent)
	heap.Push(&s.open, frontierItem{f: s.arena.at(idx).f, seq: s.seq, idx: idx})
	s.seq++
	s.pushed++
	if parent != noParent {
		s.predecessors[pos] = parent
	}
}

// Step pops the next live frontier node. If it is the goal the search
// finishes with a path, otherwise its open neighbours are pushed. Once the
// frontier is exhausted the snapshot reports Done without Found.
func (s *Stepper) Step() Snapshot {
	if s.done {
		return s.snapshot(core.Coord{}, false)
	}

	for s.open.Len() > 0 {
		item := heap.Pop(&s.open).(frontierItem)
		current := s.arena.at(item.idx)
		if s.closed[current.pos] {
			s.stale++
			continue
		}
		s.steps++
		s.expanded++

		if current.pos == s.goal {
			s.done = true
			s.found = true
			s.cost = current.g
			s.path = reconstructPath(&s.arena, item.idx)
			return s.snapshot(current.pos, true)
		}

		s.closed[current.pos] = true
		pos, g := current.pos, current.g
		for _, d := range directions {
			nb := pos.Add(d.X, d.Y)
			if !s.graph.InBounds(nb) || s.graph.IsBlocked(nb) || s.closed[nb] {
				continue
			}
			s.push(nb, g+1, item.idx)
		}
		return s.snapshot(pos, true)
	}

	s.done = true
	return s.snapshot(core.Coord{}, false)
}

func (s *Stepper) snapshot(current core.Coord, has bool) Snapshot {
	return Snapshot{
		Current:    current,
		HasCurrent: has,
		Done:       s.done,
		Found:      s.found,
		Path:       s.path,
		Expanded:   s.expanded,
		StepIndex:  s.steps,
	}
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.done }

// Start returns the search origin.
func (s *Stepper) Start() core.Coord { return s.start }

// Goal returns the search target.
func (s *Stepper) Goal() core.Coord { return s.goal }

// Result summarises the search so far.
func (s *Stepper) Result() Result {
	return Result{
		Path:     s.path,
		Cost:     s.cost,
		Expanded: s.expanded,
		Pushed:   s.pushed,
		Stale:    s.stale,
		Nodes:    s.arena.len(),
		Found:    s.found,
	}
}

// IsClosed reports whether c has been expanded.
func (s *Stepper) IsClosed(c core.Coord) bool { return s.closed[c] }

// ForEachOpen calls fn once for every coordinate with a live frontier entry.
func (s *Stepper) ForEachOpen(fn func(c core.Coord)) {
	seen := make(map[core.Coord]bool, len(s.open))
	for _, item := range s.open {
		pos := s.arena.at(item.idx).pos
		if s.closed[pos] || seen[pos] {
			continue
		}
		seen[pos] = true
		fn(pos)
	}
}

// Open returns a copy of the set of coordinates waiting in the frontier.
func (s *Stepper) Open() map[core.Coord]bool {
	out := make(map[core.Coord]bool)
	s.ForEachOpen(func(c core.Coord) { out[c] = true })
	return out
}

// Closed returns a copy of the closed set.
func (s *Stepper) Closed() map[core.Coord]bool {
	out := make(map[core.Coord]bool, len(s.closed))
	for c := range s.closed {
		out[c] = true
	}
	return out
}

// Predecessor returns the coordinate of the node that most recently proposed c.
func (s *Stepper) Predecessor(c core.Coord) (core.Coord, bool) {
	idx, ok := s.predecessors[c]
	if !ok {
		return core.Coord{}, false
	}
	return s.arena.at(idx).pos, true
}

// Predecessors returns a copy of the proposal map as coordinate pairs.
func (s *Stepper) Predecessors() map[core.Coord]core.Coord {
	out := make(map[core.Coord]core.Coord, len(s.predecessors))
	for c, idx := range s.predecessors {
		out[c] = s.arena.at(idx).pos
	}
	return out
}
