package ga

import (
	"math/rand/v2"
)

// Source is the random stream threaded through every stochastic operation.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a PCG-backed generator. Equal seeds yield equal streams.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
