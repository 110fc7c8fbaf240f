package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gridpath/internal/board"
	"gridpath/internal/core"
	"gridpath/internal/logging"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config represents the parameters shared by every gridpath shell.
type Config struct {
	Grid           int     `yaml:"grid"`
	Cell           int     `yaml:"cell"`
	TPS            int     `yaml:"tps"`
	StepsPerTick   int     `yaml:"steps_per_tick"`
	Animate        bool    `yaml:"animate"`
	ResetOnFailure bool    `yaml:"reset_on_failure"`
	Layout         string  `yaml:"layout"`
	Density        float64 `yaml:"density"`
	Seed           int64   `yaml:"seed"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
	LogFile  string `yaml:"log_file"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Grid:           30,
		Cell:           20,
		TPS:            60,
		StepsPerTick:   4,
		ResetOnFailure: true,
		Layout:         "empty",
		Density:        0.25,
		Seed:           42,
		LogLevel:       "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Grid, "grid", c.Grid, "cells per side of the square grid")
	fs.IntVar(&c.Cell, "cell", c.Cell, "pixel size of one cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.StepsPerTick, "steps-per-tick", c.StepsPerTick, "expansions per tick in animated mode")
	fs.BoolVar(&c.Animate, "animate", c.Animate, "step the search one tick at a time")
	fs.BoolVar(&c.ResetOnFailure, "reset-on-failure", c.ResetOnFailure, "clear the board when no path exists")
	fs.StringVar(&c.Layout, "layout", c.Layout, "obstacle layout applied with L")
	fs.Float64Var(&c.Density, "density", c.Density, "obstacle density for random layouts")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for layout generation")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "emit JSON log records")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file instead of stderr")
}

// LoadFile reads a YAML file into c. Keys absent from the file keep their
// current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Resolve applies the optional config file underneath the flags explicitly
// set on fs, then validates the result. Flags always win over the file.
func (c *Config) Resolve(path string, fs *pflag.FlagSet) error {
	if path != "" {
		changed := map[string]string{}
		if fs != nil {
			fs.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })
		}
		if err := c.LoadFile(path); err != nil {
			return err
		}
		for name, value := range changed {
			if err := fs.Set(name, value); err != nil {
				return fmt.Errorf("reapply --%s: %w", name, err)
			}
		}
	}
	return c.Validate()
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2, got %d", c.Grid))
	}
	if c.Cell < 2 {
		errs = append(errs, fmt.Errorf("cell must be at least 2 pixels, got %d", c.Cell))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.StepsPerTick <= 0 {
		errs = append(errs, fmt.Errorf("steps-per-tick must be positive, got %d", c.StepsPerTick))
	}
	if c.Density < 0 || c.Density > 0.9 {
		errs = append(errs, fmt.Errorf("density must be within [0, 0.9], got %g", c.Density))
	}
	if _, ok := core.Layouts()[c.Layout]; !ok {
		errs = append(errs, fmt.Errorf("unknown layout %q (available: %v)", c.Layout, core.LayoutNames()))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// BoardConfig converts c into the board session settings.
func (c *Config) BoardConfig() board.Config {
	return board.Config{
		Size:           c.Grid,
		ResetOnFailure: c.ResetOnFailure,
		StepsPerTick:   c.StepsPerTick,
		Layout:         c.Layout,
		Density:        c.Density,
		Seed:           c.Seed,
	}
}

// LogConfig converts c into logger settings writing to out.
func (c *Config) LogConfig(out io.Writer) logging.Config {
	level, _ := logging.ParseLevel(c.LogLevel)
	return logging.Config{Level: level, JSON: c.LogJSON, Output: out, Service: "gridpath"}
}
