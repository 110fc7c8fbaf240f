package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"gridpath/internal/app"
	"gridpath/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive grid in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errors.New("tui needs an interactive terminal; use `gridpath solve` for piped output")
			}
			// The screen owns the terminal, so logs are dropped unless a
			// log file is configured.
			logger, closeLog, err := opts.logger(io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()

			session, err := app.NewSession(opts.cfg, logger)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}
			defer screen.Fini()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err = term.New(screen, session, opts.cfg.TPS).Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
