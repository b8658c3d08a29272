package engine

import "math/rand"

// Rand is the randomness the engine consumes. *rand.Rand satisfies it, which
// lets tests pin outcomes with a fixed seed.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }

// DefaultRand uses the math/rand top-level source, which is safe for
// concurrent use.
func DefaultRand() Rand { return globalRand{} }

// NewRand returns a seeded generator. It is not safe for concurrent use;
// each battle owns its own.
func NewRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }
