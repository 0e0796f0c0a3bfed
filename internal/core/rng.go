package core

import "math/rand/v2"

// NewRand creates a deterministic source for the given seed. Grids built with
// the same seed draw the same sequence.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Chance reports true with probability p.
func Chance(r *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}
