package app

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"mad-eca/internal/core"
)

// Config represents the parameters of a single run.
type Config struct {
	Rule        core.Rule
	Initial     core.Generation
	Sim         string
	Style       string
	Generations int
	Seed        int64
	LogLevel    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Initial:     core.DefaultGeneration,
		Sim:         "elementary",
		Style:       "inverse",
		Generations: core.MaxGenerations,
		LogLevel:    "warn",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "edge handling: "+strings.Join(core.Names(), ", "))
	fs.StringVar(&c.Style, "style", c.Style, "glyph style: inverse or plus")
	fs.IntVar(&c.Generations, "generations", c.Generations, "maximum rows to print")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for a random initial generation")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logging level: debug, info, warn, error")
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	return lvl, nil
}
