package main

import (
	"fmt"
	"runtime"
	"time"

	"gridpath/internal/core"
	"gridpath/internal/sweep"

	"github.com/spf13/cobra"
)

func newSweepCmd(opts *options) *cobra.Command {
	var (
		layouts []string
		seeds   int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Search corner to corner over many seeded layouts and report statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := opts.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			if len(layouts) == 0 {
				layouts = core.LayoutNames()
			}
			if seeds <= 0 {
				return fmt.Errorf("--seeds must be positive, got %d", seeds)
			}
			scenarios := sweep.Scenarios(layouts, seeds, opts.cfg.Seed, opts.cfg.Grid, opts.cfg.Density)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sweeping %d scenarios (%d workers, grid %d)\n", len(scenarios), workers, opts.cfg.Grid)

			began := time.Now()
			outcomes, err := sweep.Run(cmd.Context(), scenarios, workers)
			if err != nil {
				return err
			}
			elapsed := time.Since(began)
			logger.Info("sweep finished", "scenarios", len(outcomes), "elapsed", elapsed)

			fmt.Fprintf(out, "\n%-10s %5s %7s %9s %12s %12s\n", "layout", "runs", "found", "moves", "expanded", "max-expanded")
			for _, s := range sweep.Summarize(outcomes) {
				fmt.Fprintf(out, "%-10s %5d %6.1f%% %9.1f %12.1f %12d\n",
					s.Layout, s.Runs, 100*s.FoundRatio(), s.MeanMoves, s.MeanExpanded, s.MaxExpanded)
			}
			fmt.Fprintf(out, "\nelapsed %s\n", elapsed.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&layouts, "layouts", nil, "layouts to sweep (default all registered)")
	cmd.Flags().IntVar(&seeds, "seeds", 10, "seeds per layout, starting at --seed")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}
