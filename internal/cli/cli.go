package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"mad-eca/internal/app"
	"mad-eca/internal/core"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) *ExitError {
	return &ExitError{Code: 1, Message: fmt.Sprintf(format, args...)}
}

// ConvertArg parses str as an unsigned integer with an optional base prefix
// (0x, 0b, or a leading 0 for octal) and checks it lies in [low, high].
func ConvertArg(str string, low, high uint64, argname string) (uint64, error) {
	n, err := strconv.ParseUint(str, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, invalid("%s %s is not in range [%#x, %#x]", argname, str, low, high)
		}
		return 0, invalid("Invalid number '%s' for %s", str, argname)
	}
	if n < low || n > high {
		return 0, invalid("%s %s is not in range [%#x, %#x]", argname, str, low, high)
	}
	return n, nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	cfg := app.NewConfig()
	flagSet := flag.NewFlagSet("eca", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
eca - draw an elementary cellular automaton on a 64-cell register.

Usage:
  eca [options] RULESET [INITIAL_GENERATION]

Arguments:
  RULESET
    Wolfram code in [0, 255].
  INITIAL_GENERATION
    64-bit start pattern, default 1<<32. Accepts 0x, 0b and 0 prefixes.

Options:
`)
		flagSet.PrintDefaults()
	}
	cfg.Bind(flagSet)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() < 1 {
		return nil, false, invalid("Missing argument. Please supply ruleset and optional initial generation.")
	}
	if flagSet.NArg() > 2 {
		return nil, false, invalid("Too many arguments: %v", flagSet.Args()[2:])
	}

	rule, err := ConvertArg(flagSet.Arg(0), 0, math.MaxUint8, "ruleset")
	if err != nil {
		return nil, false, err
	}
	cfg.Rule = core.Rule(rule)

	seeded := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seeded = true
		}
	})

	if flagSet.NArg() > 1 {
		if seeded {
			return nil, false, invalid("-seed cannot be combined with an initial generation")
		}
		gen, err := ConvertArg(flagSet.Arg(1), 0, math.MaxUint64, "initial generation")
		if err != nil {
			return nil, false, err
		}
		cfg.Initial = core.Generation(gen)
	} else if seeded {
		cfg.Initial = core.RandomGeneration(cfg.Seed)
	}

	if _, ok := core.Sims()[cfg.Sim]; !ok {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown sim %q", cfg.Sim)}
	}
	if cfg.Generations <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "generations must be positive"}
	}
	if _, err := cfg.Level(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "rule", cfg.Rule, "sim", cfg.Sim)
	return cfg, false, nil
}
