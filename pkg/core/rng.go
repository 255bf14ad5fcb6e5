package core

import "math/rand/v2"

// BoolSource yields one uniformly random boolean per call.
type BoolSource interface {
	Bool() bool
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

type entropy struct{}

func (entropy) Bool() bool { return rand.IntN(2) == 1 }

// Entropy returns a BoolSource backed by the process-wide, randomly seeded
// generator. Use NewRNG when reproducibility matters.
func Entropy() BoolSource { return entropy{} }

// BoolFunc adapts an ordinary function to a BoolSource.
type BoolFunc func() bool

// Bool calls f.
func (f BoolFunc) Bool() bool { return f() }
