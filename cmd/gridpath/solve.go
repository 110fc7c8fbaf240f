package main

import (
	"fmt"
	"strconv"
	"strings"

	"gridpath/internal/board"
	"gridpath/internal/core"
	"gridpath/internal/render"

	"github.com/spf13/cobra"
)

func newSolveCmd(opts *options) *cobra.Command {
	var startFlag, endFlag, colorMode string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a layout, run one search and print the grid",
		Example: `  gridpath solve --layout maze --grid 21 --seed 7
  gridpath solve --layout walls --start 0,0 --end 29,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			out := cmd.OutOrStdout()
			color, err := useColor(colorMode, out)
			if err != nil {
				return err
			}

			n := opts.cfg.Grid
			start, err := parseCoord(startFlag, core.Coord{})
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			end, err := parseCoord(endFlag, core.Coord{X: n - 1, Y: n - 1})
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			cfg := opts.cfg.BoardConfig()
			cfg.ResetOnFailure = false
			b := board.New(cfg, logger)
			if !b.SetStart(start) {
				return fmt.Errorf("start %d,%d is outside the %dx%d grid", start.X, start.Y, n, n)
			}
			if !b.SetEnd(end) {
				return fmt.Errorf("end %d,%d is outside the grid or equals the start", end.X, end.Y)
			}
			if err := b.ApplyLayout(opts.cfg.Layout, opts.cfg.Seed); err != nil {
				return err
			}

			found := b.Run()
			grid := render.ASCII(b.Grid(), b.Path(), start, end)
			if color {
				grid = colorize(grid)
			}
			fmt.Fprint(out, grid)
			r, _ := b.Result()
			if found {
				fmt.Fprintf(out, "path: %d moves, %d expanded, %d pushed, %d stale\n", r.Cost, r.Expanded, r.Pushed, r.Stale)
			} else {
				fmt.Fprintf(out, "no path: %d expanded, %d pushed\n", r.Expanded, r.Pushed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&startFlag, "start", "", "start cell as x,y (default top-left corner)")
	cmd.Flags().StringVar(&endFlag, "end", "", "end cell as x,y (default bottom-right corner)")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "color the map: auto, always or never")
	return cmd
}

// parseCoord parses "x,y". An empty string yields def.
func parseCoord(s string, def core.Coord) (core.Coord, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Coord{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Coord{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Coord{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return core.Coord{X: x, Y: y}, nil
}
