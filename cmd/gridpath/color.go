package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var mapStyles = map[rune]lipgloss.Style{
	'.': lipgloss.NewStyle().Faint(true),
	'#': lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
	'*': lipgloss.NewStyle().Foreground(lipgloss.Color("#00D75F")).Bold(true),
	'S': lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87FF")).Bold(true),
	'E': lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true),
}

// colorize styles every map character of an ASCII grid.
func colorize(ascii string) string {
	var sb strings.Builder
	for _, r := range ascii {
		if st, ok := mapStyles[r]; ok {
			sb.WriteString(st.Render(string(r)))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useColor resolves the --color mode for output w.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		return isTerminal(w), nil
	default:
		return false, fmt.Errorf("--color must be auto, always or never, got %q", mode)
	}
}
