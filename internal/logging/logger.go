// Package logging builds the structured logger shared by the gridpath shells.
//
// It is a thin layer over log/slog:
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug})
//	logger.Info("path found", "moves", 12, "expanded", 40)
//
// The GUI and terminal shells own the terminal or the window, so they log to
// stderr (GUI) or to a file / io.Discard (TUI) depending on configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity levels.
//
// Levels are ordered by severity: Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for search internals such as per-run frontier sizes.
	LevelDebug Level = iota
	// LevelInfo is for normal events: layouts applied, paths found.
	LevelInfo
	// LevelWarn is for expected failures such as unreachable goals.
	LevelWarn
	// LevelError is for shell failures.
	LevelError
)

// String returns the human-readable name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel converts a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Config configures the logger. The zero value logs Info and above to stderr
// in text format.
type Config struct {
	Level Level

	// JSON switches to JSON output.
	JSON bool

	// Output overrides the destination. Default: os.Stderr.
	Output io.Writer

	// Service is attached to every record as the "service" attribute when set.
	Service string
}

// New builds a slog.Logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
