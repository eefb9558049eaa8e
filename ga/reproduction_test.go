package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossoverSingleSplit(t *testing.T) {
	target := mustTarget(t, "AAAAAAAAAA", "AB")
	parent1 := chromosome(t, "AAAAAAAAAA", target)
	parent2 := chromosome(t, "BBBBBBBBBB", target)
	rng := newCountingSource(5)

	for i := 0; i < 200; i++ {
		child := Crossover(rng, parent1, parent2)
		require.Len(t, child, parent1.Len())

		split := rng.lastIntN
		assert.GreaterOrEqual(t, split, 0)
		assert.Less(t, split, parent1.Len())
		for pos, g := range child {
			if pos < split {
				assert.Equal(t, Gene('A'), g, "position %d before split %d", pos, split)
			} else {
				assert.Equal(t, Gene('B'), g, "position %d after split %d", pos, split)
			}
		}
	}
}

func TestCrossoverAtZeroCopiesSecondParent(t *testing.T) {
	target := mustTarget(t, "abcd", "")
	parent1 := chromosome(t, "abcd", target)
	parent2 := chromosome(t, "wxyz", target)

	child := Crossover(&fixedSource{ints: []int{0}}, parent1, parent2)
	assert.Equal(t, "wxyz", child.String())

	child = Crossover(&fixedSource{ints: []int{3}}, parent1, parent2)
	assert.Equal(t, "abcz", child.String())
}

func TestCrossoverDoesNotShareParentStorage(t *testing.T) {
	target := mustTarget(t, "abcd", "")
	parent1 := chromosome(t, "abcd", target)
	parent2 := chromosome(t, "wxyz", target)

	child := Crossover(&fixedSource{ints: []int{2}}, parent1, parent2)
	child[0] = 'Q'
	child[3] = 'Q'

	assert.Equal(t, "abcd", parent1.String())
	assert.Equal(t, "wxyz", parent2.String())
}

func TestMutateZeroRateIsNoOp(t *testing.T) {
	genes := Genes("Generative AI")
	rng := newCountingSource(9)

	mutated := Mutate(rng, PrintableAlphabet(), genes, 0)

	assert.Equal(t, genes, mutated)
	assert.Equal(t, 0, rng.intNCalls)
}

func TestMutateFullRateResamplesEveryPosition(t *testing.T) {
	genes := Genes("Generative AI")
	rng := newCountingSource(9)

	mutated := Mutate(rng, PrintableAlphabet(), genes, 1)

	require.Len(t, mutated, len(genes))
	assert.Equal(t, len(genes), rng.float64Calls, "one trial per gene")
	assert.Equal(t, len(genes), rng.intNCalls, "one resample per gene")
	assert.Equal(t, "Generative AI", genes.String(), "input must not change")
}

func TestMutateRateIsPerGene(t *testing.T) {
	alphabet, err := NewAlphabet("AB")
	require.NoError(t, err)
	genes := Genes("AAAA")

	// Trials below the rate mutate; resampling always yields 'B' (IntN -> 1).
	rng := &fixedSource{floats: []float64{0.1, 0.9, 0.2, 0.95}, ints: []int{1, 1}}
	mutated := Mutate(rng, alphabet, genes, 0.5)

	assert.Equal(t, "BABA", mutated.String())
}

func TestReproduce(t *testing.T) {
	target := mustTarget(t, "Generative AI", "")
	population := CreateInitialPopulation(NewSource(4), 100, target)
	elite := SelectTheFittest(population, 50)

	next := Reproduce(NewSource(5), elite, 100, 0.01, target)

	require.Len(t, next, 100)
	assert.Equal(t, elite, next[:50], "elites are carried over unchanged")
	for _, c := range next[50:] {
		require.Equal(t, target.Len(), c.Len())
		assert.Equal(t, CalculateFitness(c.Genes(), target), c.Fitness())
	}
}

func TestReproduceWithFullElite(t *testing.T) {
	target := mustTarget(t, "abc", "")
	population := CreateInitialPopulation(NewSource(4), 10, target)
	elite := SelectTheFittest(population, 10)

	next := Reproduce(NewSource(5), elite, 10, 0.5, target)
	assert.Equal(t, elite, next)
}

func TestReproduceChildrenComeFromElite(t *testing.T) {
	target := mustTarget(t, "AAAA", "AB")
	elite := Population{chromosome(t, "ABAB", target)}

	next := Reproduce(NewSource(6), elite, 20, 0, target)

	require.Len(t, next, 20)
	for _, c := range next {
		assert.Equal(t, "ABAB", c.String())
		assert.Equal(t, 2, c.Fitness())
	}
}
