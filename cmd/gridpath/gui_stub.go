//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newGUICmd(*options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the interactive window (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the window shell requires the ebiten build tag; rebuild with `go build -tags ebiten ./cmd/gridpath` or use `gridpath tui`")
		},
	}
}
