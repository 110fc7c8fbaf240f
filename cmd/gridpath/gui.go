//go:build ebiten

package main

import (
	"errors"
	"os"

	"gridpath/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the interactive window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := opts.logger(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			session, err := app.NewSession(opts.cfg, logger)
			if err != nil {
				return err
			}
			game := app.New(session, opts.cfg.Cell)

			ebiten.SetWindowTitle("gridpath - A* pathfinding")
			ebiten.SetTPS(opts.cfg.TPS)
			ebiten.SetWindowSize(game.WindowSize())

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
}
