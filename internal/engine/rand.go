package engine

import "math/rand/v2"

// Rand is the randomness the engine draws on: archetypes, modifiers,
// extra ghosts, item spawns and frightened wandering. *rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a reproducible generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
