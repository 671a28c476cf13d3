package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"mad-eca/internal/app"
	"mad-eca/internal/cli"
	_ "mad-eca/internal/sims/elementary"
)

func main() {
	// Use a minimal logger until the configured level is known.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "eca:", exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "eca:", err)
		os.Exit(1)
	}
}

// run parses args, configures logging on errW and prints the automaton to outW.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(errW, &slog.HandlerOptions{Level: level})))

	if _, err := app.Run(outW, cfg); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
