// Package sweep runs corner-to-corner searches over many generated layouts
// on a pool of workers and aggregates the results.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"gridpath/internal/core"
	"gridpath/internal/search"

	"golang.org/x/sync/errgroup"
)

// Scenario is one generated grid to search.
type Scenario struct {
	Layout  string
	Seed    int64
	Size    int
	Density float64
}

func (s Scenario) String() string {
	return fmt.Sprintf("layout=%s seed=%d size=%d density=%.2f", s.Layout, s.Seed, s.Size, s.Density)
}

// Outcome is the result of searching one scenario.
type Outcome struct {
	Scenario Scenario
	Found    bool
	Moves    int
	Expanded int
	Pushed   int
	Elapsed  time.Duration
}

// Scenarios builds seeds scenarios per layout with consecutive seeds starting
// at base.
func Scenarios(layouts []string, seeds int, base int64, size int, density float64) []Scenario {
	out := make([]Scenario, 0, len(layouts)*seeds)
	for _, name := range layouts {
		for i := 0; i < seeds; i++ {
			out = append(out, Scenario{Layout: name, Seed: base + int64(i), Size: size, Density: density})
		}
	}
	return out
}

// RunOne generates the scenario grid and searches from the top-left to the
// bottom-right corner. Obstacles generated on the corners are removed.
func RunOne(sc Scenario) (Outcome, error) {
	layout, ok := core.Layouts()[sc.Layout]
	if !ok {
		return Outcome{}, fmt.Errorf("unknown layout %q", sc.Layout)
	}
	g := core.NewGrid(sc.Size)
	layout(g, core.NewRNG(sc.Seed), core.LayoutParams{Density: sc.Density})
	start, end := core.Coord{}, core.Coord{X: g.Size() - 1, Y: g.Size() - 1}
	g.RemoveObstacle(start)
	g.RemoveObstacle(end)

	began := time.Now()
	r := search.Search(g, start, end)
	return Outcome{
		Scenario: sc,
		Found:    r.Found,
		Moves:    r.Cost,
		Expanded: r.Expanded,
		Pushed:   r.Pushed,
		Elapsed:  time.Since(began),
	}, nil
}

// Run searches every scenario using at most workers goroutines. Outcomes are
// returned in scenario order. The first failing scenario or a cancelled ctx
// stops the sweep.
func Run(ctx context.Context, scenarios []Scenario, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	outcomes := make([]Outcome, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := RunOne(sc)
			if err != nil {
				return fmt.Errorf("%s: %w", sc, err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// Summary aggregates the outcomes of one layout.
type Summary struct {
	Layout       string
	Runs         int
	Found        int
	MeanMoves    float64
	MeanExpanded float64
	MaxExpanded  int
	Elapsed      time.Duration
}

// FoundRatio returns the share of runs that reached the goal.
func (s Summary) FoundRatio() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Found) / float64(s.Runs)
}

// Summarize groups outcomes per layout, sorted by layout name. Mean moves
// only count runs that found a path.
func Summarize(outcomes []Outcome) []Summary {
	byLayout := map[string]*Summary{}
	moves := map[string]int{}
	expanded := map[string]int{}
	for _, o := range outcomes {
		name := o.Scenario.Layout
		s, ok := byLayout[name]
		if !ok {
			s = &Summary{Layout: name}
			byLayout[name] = s
		}
		s.Runs++
		s.Elapsed += o.Elapsed
		expanded[name] += o.Expanded
		if o.Expanded > s.MaxExpanded {
			s.MaxExpanded = o.Expanded
		}
		if o.Found {
			s.Found++
			moves[name] += o.Moves
		}
	}

	out := make([]Summary, 0, len(byLayout))
	for name, s := range byLayout {
		s.MeanExpanded = float64(expanded[name]) / float64(s.Runs)
		if s.Found > 0 {
			s.MeanMoves = float64(moves[name]) / float64(s.Found)
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Layout < out[j].Layout })
	return out
}
