// Package app drives an automaton and prints one row per generation.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"mad-eca/internal/core"
	"mad-eca/internal/render"
)

// ErrNoGenerations is returned when a run is asked to print nothing.
var ErrNoGenerations = errors.New("generations must be positive")

// Run prints the evolution described by cfg to w and returns the number of
// rows written. Rule 0 prints the initial generation once. Any other rule
// prints until a fixed point is reached or cfg.Generations rows are out.
func Run(w io.Writer, cfg *Config) (int, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return 0, fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	glyphs, ok := render.Lookup(cfg.Style)
	if !ok {
		return 0, fmt.Errorf("unknown style %q", cfg.Style)
	}
	if cfg.Generations <= 0 {
		return 0, ErrNoGenerations
	}

	sim := factory(cfg.Rule)
	sim.Reset(cfg.Initial)
	slog.Info("Starting run.", "sim", sim.Name(), "rule", cfg.Rule, "initial", fmt.Sprintf("%#x", uint64(cfg.Initial)))

	if cfg.Rule == 0 {
		if err := glyphs.WriteRow(w, sim.Current()); err != nil {
			return 0, fmt.Errorf("write generation 0: %w", err)
		}
		return 1, nil
	}

	rows := 0
	for rows < cfg.Generations {
		gen := sim.Current()
		if err := glyphs.WriteRow(w, gen); err != nil {
			return rows, fmt.Errorf("write generation %d: %w", rows, err)
		}
		rows++
		slog.Debug("Generation drawn.", "index", rows-1, "population", gen.Population())
		if !sim.Step() {
			slog.Info("Fixed point reached.", "rows", rows)
			break
		}
	}
	return rows, nil
}
