package cli

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"mad-eca/internal/core"
	_ "mad-eca/internal/sims/elementary"
)

func requireExit(t *testing.T, err error, code int, msg string) {
	t.Helper()
	exitErr, ok := err.(*ExitError)
	require.True(t, ok, "expected *ExitError, got %T (%v)", err, err)
	require.Equal(t, code, exitErr.Code)
	require.Equal(t, msg, exitErr.Message)
}

func TestConvertArg(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"110", 110},
		{"0xff", 255},
		{"0XFF", 255},
		{"017", 15},
		{"0b101", 5},
	}
	for _, tc := range tests {
		got, err := ConvertArg(tc.in, 0, 255, "ruleset")
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	got, err := ConvertArg("18446744073709551615", 0, math.MaxUint64, "initial generation")
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), got)
}

func TestConvertArgErrors(t *testing.T) {
	_, err := ConvertArg("xyz", 0, 255, "ruleset")
	requireExit(t, err, 1, "Invalid number 'xyz' for ruleset")

	_, err = ConvertArg("12abc", 0, 255, "ruleset")
	requireExit(t, err, 1, "Invalid number '12abc' for ruleset")

	_, err = ConvertArg("256", 0, 255, "ruleset")
	requireExit(t, err, 1, "ruleset 256 is not in range [0x0, 0xff]")

	_, err = ConvertArg("18446744073709551616", 0, math.MaxUint64, "initial generation")
	requireExit(t, err, 1, "initial generation 18446744073709551616 is not in range [0x0, 0xffffffffffffffff]")
}

func TestParseDefaults(t *testing.T) {
	cfg, exit, err := Parse([]string{"90"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, core.Rule(90), cfg.Rule)
	require.Equal(t, core.DefaultGeneration, cfg.Initial)
	require.Equal(t, "elementary", cfg.Sim)
	require.Equal(t, "inverse", cfg.Style)
	require.Equal(t, core.MaxGenerations, cfg.Generations)
}

func TestParseInitialGeneration(t *testing.T) {
	cfg, _, err := Parse([]string{"-style", "plus", "-sim", "torus", "30", "0x8000000000000001"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, core.Rule(30), cfg.Rule)
	require.Equal(t, core.Generation(0x8000000000000001), cfg.Initial)
	require.Equal(t, "plus", cfg.Style)
	require.Equal(t, "torus", cfg.Sim)
}

func TestParseSeed(t *testing.T) {
	cfg, _, err := Parse([]string{"-seed", "9", "30"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, core.RandomGeneration(9), cfg.Initial)

	_, _, err = Parse([]string{"-seed", "9", "30", "1"}, &bytes.Buffer{})
	requireExit(t, err, 1, "-seed cannot be combined with an initial generation")
}

func TestParseErrors(t *testing.T) {
	_, _, err := Parse(nil, &bytes.Buffer{})
	requireExit(t, err, 1, "Missing argument. Please supply ruleset and optional initial generation.")

	_, _, err = Parse([]string{"xyz"}, &bytes.Buffer{})
	requireExit(t, err, 1, "Invalid number 'xyz' for ruleset")

	_, _, err = Parse([]string{"30", "nope"}, &bytes.Buffer{})
	requireExit(t, err, 1, "Invalid number 'nope' for initial generation")

	_, _, err = Parse([]string{"30", "1", "2"}, &bytes.Buffer{})
	requireExit(t, err, 1, "Too many arguments: [2]")

	_, _, err = Parse([]string{"-sim", "hex", "30"}, &bytes.Buffer{})
	requireExit(t, err, 2, `unknown sim "hex"`)

	_, _, err = Parse([]string{"-generations", "0", "30"}, &bytes.Buffer{})
	requireExit(t, err, 2, "generations must be positive")

	_, _, err = Parse([]string{"-log-level", "loud", "30"}, &bytes.Buffer{})
	require.Error(t, err)
	require.Equal(t, 2, err.(*ExitError).Code)

	_, _, err = Parse([]string{"--bogus"}, &bytes.Buffer{})
	requireExit(t, err, 2, "flag provided but not defined: -bogus")
}

func TestParseHelp(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "-generations")
}
