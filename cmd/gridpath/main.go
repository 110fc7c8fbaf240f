package main

import (
	"fmt"
	"os"

	_ "gridpath/internal/layouts"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}
