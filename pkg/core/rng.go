// Package core holds small helpers shared by the simulation packages.
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

// Chance returns true with probability p. p <= 0 never fires, p >= 1 always does.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Scatter calls set for every coordinate of a w*h area that wins a Chance(p)
// draw, visiting rows top to bottom.
func (r *RNG) Scatter(w, h int, p float64, set func(x, y int)) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Chance(p) {
				set(x, y)
			}
		}
	}
}
