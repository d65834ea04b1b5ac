package engine

import "math/rand"

// RNG is a seeded source of the uniform draws the game rules need.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a generator; equal seeds produce equal sequences.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform integer in [lo, hi] inclusive.
func (g *RNG) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// Pick returns a uniform index in [0, n). n must be positive.
func (g *RNG) Pick(n int) int {
	return g.r.Intn(n)
}
