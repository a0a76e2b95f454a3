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

// Bool returns a fair random boolean.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// UniformBool returns true with the given probability. The boundaries
// are exact rather than approximate: p <= 0 never returns true and
// p >= 1 always does, so degenerate "always dead" and "always alive"
// configurations stay reproducible. Interior probabilities compare a
// 53-bit uniform draw against p.
func (r *RNG) UniformBool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// FillBool fills buf with cells alive at density p using the RNG.
func FillBool(r *RNG, buf []bool, p float64) {
	for i := range buf {
		buf[i] = r.UniformBool(p)
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
