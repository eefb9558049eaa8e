package ga

import (
	"fmt"
)

// Crossover builds child genes from a single split point chosen uniformly in
// [0, length): the prefix comes from parent1 and the rest from parent2.
// The caller scores the result, typically after Mutate, via NewChromosome.
func Crossover(rng Source, parent1, parent2 Chromosome) Genes {
	if parent1.Len() != parent2.Len() {
		panic(fmt.Sprintf("cannot cross chromosomes of length %d and %d", parent1.Len(), parent2.Len()))
	}
	splitPoint := rng.IntN(parent1.Len())
	child := make(Genes, 0, parent1.Len())
	child = append(child, parent1.genes[:splitPoint]...)
	child = append(child, parent2.genes[splitPoint:]...)
	return child
}

// Mutate returns a copy of genes where every position was independently
// resampled from alphabet with probability mutationRate. A resample may pick
// the symbol that was already there.
func Mutate(rng Source, alphabet *Alphabet, genes Genes, mutationRate float64) Genes {
	mutated := genes.Clone()
	for i := range mutated {
		if rng.Float64() < mutationRate {
			mutated[i] = alphabet.Random(rng)
		}
	}
	return mutated
}

// Reproduce creates the next generation. Every chromosome of elite is carried
// over unchanged, keeping its fitness. The remainder, up to size, is bred from
// two parents drawn uniformly with replacement from elite: crossover, then
// mutation, then scoring.
func Reproduce(rng Source, elite Population, size int, mutationRate float64, target Target) Population {
	if len(elite) == 0 {
		panic("cannot reproduce from an empty elite")
	}
	// Transfer elites. They keep the fitness they were scored with.
	next := make(Population, 0, max(size, len(elite)))
	next = append(next, elite...)

	// Produce offspring until the population is full.
	for len(next) < size {
		// Select parents randomly from the elite, with replacement.
		parent1 := elite[rng.IntN(len(elite))]
		parent2 := elite[rng.IntN(len(elite))]

		// Create child genes, mutate them, then score the result.
		child := Crossover(rng, parent1, parent2)
		child = Mutate(rng, target.Alphabet(), child, mutationRate)
		next = append(next, NewChromosome(child, target))
	}
	return next
}
