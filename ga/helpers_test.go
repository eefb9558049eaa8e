package ga

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countingSource wraps a real generator and counts the calls made to it.
type countingSource struct {
	inner        Source
	intNCalls    int
	float64Calls int
	lastIntN     int
}

func newCountingSource(seed uint64) *countingSource {
	return &countingSource{inner: NewSource(seed)}
}

func (s *countingSource) IntN(n int) int {
	s.intNCalls++
	s.lastIntN = s.inner.IntN(n)
	return s.lastIntN
}

func (s *countingSource) Float64() float64 {
	s.float64Calls++
	return s.inner.Float64()
}

// fixedSource returns the queued IntN values in order, then zero.
type fixedSource struct {
	ints   []int
	floats []float64
}

func (s *fixedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *fixedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func mustTarget(t *testing.T, s, alphabet string) Target {
	t.Helper()
	var a *Alphabet
	if alphabet != "" {
		var err error
		a, err = NewAlphabet(alphabet)
		require.NoError(t, err)
	}
	target, err := NewTarget(s, a)
	require.NoError(t, err)
	return target
}

func chromosome(t *testing.T, genes string, target Target) Chromosome {
	t.Helper()
	return NewChromosome(Genes(genes), target)
}
