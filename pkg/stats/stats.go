// Package stats derives per-generation metrics from an automaton and keeps an
// ordered log of them.
package stats

import "math"

// Record captures the metrics of one generation.
type Record struct {
	Generation int
	LiveCells  int
	Entropy    float64
}

// Compute builds the Record for a generation with liveCells alive out of
// totalCells.
func Compute(generation, liveCells, totalCells int) Record {
	return Record{
		Generation: generation,
		LiveCells:  liveCells,
		Entropy:    Entropy(liveCells, totalCells),
	}
}

// Entropy returns the binary Shannon entropy, in bits, of the fraction of
// live cells. A uniform grid (all dead or all alive) has zero entropy.
func Entropy(live, total int) float64 {
	if live <= 0 || live >= total {
		return 0
	}
	pAlive := float64(live) / float64(total)
	pDead := 1 - pAlive
	return -pAlive*math.Log2(pAlive) - pDead*math.Log2(pDead)
}
