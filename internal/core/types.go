package core

import (
	"math/bits"
	"sort"
)

// Width is the number of cells in a generation.
const Width = 64

const (
	// DefaultGeneration seeds a single live cell at bit 32.
	DefaultGeneration Generation = 1 << 32
	// MaxGenerations caps how many rows a run prints.
	MaxGenerations = 32
)

// Generation is a snapshot of all cells. Bit i holds cell i; 1 is alive.
type Generation uint64

// Alive reports whether cell i is set. Indices outside [0, Width) are dead.
func (g Generation) Alive(i int) bool {
	if i < 0 || i >= Width {
		return false
	}
	return g>>uint(i)&1 == 1
}

// Population counts the live cells.
func (g Generation) Population() int { return bits.OnesCount64(uint64(g)) }

// Rule is a Wolfram code: bit k is the next state for neighbourhood code k.
type Rule uint8

// Next returns the state the rule assigns to a 3-bit neighbourhood code.
func (r Rule) Next(code uint8) bool {
	return (r>>(code&0x7))&1 == 1
}

// Sim defines the minimal contract a one-dimensional automaton must implement.
type Sim interface {
	Name() string
	Reset(gen Generation)
	// Step advances one generation and reports whether the state changed.
	Step() bool
	Current() Generation
}

// Factory constructs a Sim running the given rule.
type Factory func(rule Rule) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
