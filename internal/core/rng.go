package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Generation returns a random start pattern.
func (r *RNG) Generation() Generation {
	return Generation(r.r.Uint64())
}

// RandomGeneration is shorthand for NewRNG(seed).Generation().
func RandomGeneration(seed int64) Generation {
	return NewRNG(seed).Generation()
}
