package elementary

import (
	"mad-eca/internal/core"
)

// Advance computes the generation that follows cur under rule.
//
// Cell 0 reads a dead neighbour past the right edge. The remaining cells are
// produced by sliding a 3-bit window across cur while shifting it right, so
// nothing re-enters from the left edge. The loop runs Width times; the last
// iteration targets bit 64 and is lost to the register width.
func Advance(cur core.Generation, rule core.Rule) core.Generation {
	var next core.Generation

	code := uint8(cur<<1) & 0x7
	if rule.Next(code) {
		next |= 1
	}

	work := cur
	for i := 1; i <= core.Width; i++ {
		code = uint8(work & 0x7)
		if rule.Next(code) {
			next |= 1 << uint(i)
		}
		work >>= 1
	}
	return next
}

// AdvanceTorus computes the next generation treating cells 0 and 63 as
// neighbours.
func AdvanceTorus(cur core.Generation, rule core.Rule) core.Generation {
	var next core.Generation
	for i := 0; i < core.Width; i++ {
		left := cur >> uint((i+1)%core.Width) & 1
		center := cur >> uint(i) & 1
		right := cur >> uint((i+core.Width-1)%core.Width) & 1
		code := uint8(left<<2 | center<<1 | right)
		if rule.Next(code) {
			next |= 1 << uint(i)
		}
	}
	return next
}

// StepFunc computes a successor generation.
type StepFunc func(core.Generation, core.Rule) core.Generation

// Elementary implements a one-dimensional Wolfram code over a 64-bit register.
type Elementary struct {
	name string
	rule core.Rule
	step StepFunc
	cur  core.Generation
}

// New creates an automaton with the open-edge transition.
func New(rule core.Rule) *Elementary {
	return &Elementary{name: "elementary", rule: rule, step: Advance, cur: core.DefaultGeneration}
}

// NewTorus creates an automaton with the wrapping transition.
func NewTorus(rule core.Rule) *Elementary {
	return &Elementary{name: "torus", rule: rule, step: AdvanceTorus, cur: core.DefaultGeneration}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return e.name }

// Rule returns the configured Wolfram code.
func (e *Elementary) Rule() core.Rule { return e.rule }

// Current returns the live generation.
func (e *Elementary) Current() core.Generation { return e.cur }

// Reset replaces the current generation.
func (e *Elementary) Reset(gen core.Generation) { e.cur = gen }

// Step computes the next generation and reports whether it differs.
func (e *Elementary) Step() bool {
	next := e.step(e.cur, e.rule)
	changed := next != e.cur
	e.cur = next
	return changed
}

func init() {
	core.Register("elementary", func(rule core.Rule) core.Sim { return New(rule) })
	core.Register("torus", func(rule core.Rule) core.Sim { return NewTorus(rule) })
}
