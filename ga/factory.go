package ga

// CreateRandomGenes samples length symbols independently and uniformly from alphabet.
func CreateRandomGenes(rng Source, alphabet *Alphabet, length int) Genes {
	genes := make(Genes, length)
	for i := range genes {
		genes[i] = alphabet.Random(rng)
	}
	return genes
}

// CreateInitialPopulation creates size random chromosomes, each scored against target.
func CreateInitialPopulation(rng Source, size int, target Target) Population {
	population := make(Population, 0, size)
	for i := 0; i < size; i++ {
		genes := CreateRandomGenes(rng, target.Alphabet(), target.Len())
		population = append(population, NewChromosome(genes, target))
	}
	return population
}
