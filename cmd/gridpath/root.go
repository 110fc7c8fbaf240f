package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gridpath/internal/app"
	"gridpath/internal/logging"

	"github.com/spf13/cobra"
)

// options carries the configuration shared by every subcommand.
type options struct {
	configPath string
	cfg        *app.Config
}

// logger builds the command logger. Records go to the configured log file
// when set, otherwise to fallback. The returned func closes the file.
func (o *options) logger(fallback io.Writer) (*slog.Logger, func(), error) {
	if o.cfg.LogFile == "" {
		return logging.New(o.cfg.LogConfig(fallback)), func() {}, nil
	}
	f, err := os.OpenFile(o.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(o.cfg.LogConfig(f)), func() { f.Close() }, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: app.NewConfig()}

	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Interactive A* pathfinding on a square grid",
		Long: `gridpath places a start and an end cell on a square grid, lets you draw
obstacles and finds the shortest 4-connected route with A* and the Manhattan
heuristic. Run it in a window (gui), in the terminal (tui) or headless
(solve, sweep).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.cfg.Resolve(opts.configPath, cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file; explicit flags override it")
	pf.StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel, "log level: debug, info, warn, error")
	opts.cfg.Bind(pf)

	root.AddCommand(
		newGUICmd(opts),
		newTUICmd(opts),
		newSolveCmd(opts),
		newSweepCmd(opts),
	)
	return root
}
