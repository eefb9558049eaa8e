package ga

import (
	"fmt"
)

// Genes is an ordered, fixed-length sequence of symbols.
type Genes []Gene

func (g Genes) String() string {
	b := make([]byte, len(g))
	for i, s := range g {
		b[i] = byte(s)
	}
	return string(b)
}

// Clone returns a copy that does not share storage with g.
func (g Genes) Clone() Genes {
	c := make(Genes, len(g))
	copy(c, g)
	return c
}

// Target is the immutable string the population evolves towards.
type Target struct {
	genes    Genes
	alphabet *Alphabet
}

// NewTarget validates s against the alphabet. The target must be non-empty and
// every symbol must be a member, otherwise it could never be reached.
func NewTarget(s string, alphabet *Alphabet) (Target, error) {
	if s == "" {
		return Target{}, fmt.Errorf("target must not be empty")
	}
	if alphabet == nil {
		alphabet = PrintableAlphabet()
	}
	genes := make(Genes, len(s))
	for i := 0; i < len(s); i++ {
		if !alphabet.Contains(Gene(s[i])) {
			return Target{}, fmt.Errorf("target symbol %q at offset %d is not in the alphabet", s[i], i)
		}
		genes[i] = Gene(s[i])
	}
	return Target{genes: genes, alphabet: alphabet}, nil
}

// Len is the chromosome length every member of the population shares.
func (t Target) Len() int { return len(t.genes) }

// Alphabet returns the alphabet genes are drawn from.
func (t Target) Alphabet() *Alphabet { return t.alphabet }

func (t Target) String() string { return t.genes.String() }

// Chromosome is one candidate solution. Its fitness is computed once, when it is
// built, and genes can't change afterwards, so the score never goes stale.
type Chromosome struct {
	genes   Genes
	fitness int
}

// NewChromosome takes ownership of genes and scores them against target.
func NewChromosome(genes Genes, target Target) Chromosome {
	return Chromosome{genes: genes, fitness: CalculateFitness(genes, target)}
}

// Genes returns a copy of the chromosome's genes.
func (c Chromosome) Genes() Genes { return c.genes.Clone() }

// Fitness is the Hamming distance to the target. Zero is an exact match.
func (c Chromosome) Fitness() int { return c.fitness }

// Len returns the number of genes.
func (c Chromosome) Len() int { return len(c.genes) }

func (c Chromosome) String() string { return c.genes.String() }

// CalculateFitness counts the positions where genes differ from the target.
// A length mismatch is a programming error and panics.
func CalculateFitness(genes Genes, target Target) int {
	if len(genes) != len(target.genes) {
		panic(fmt.Sprintf("chromosome length %d does not match target length %d", len(genes), len(target.genes)))
	}
	fitness := 0
	for i, g := range genes {
		if g != target.genes[i] {
			fitness++
		}
	}
	return fitness
}

// Population is the set of chromosomes of one generation.
type Population []Chromosome

// Fitnesses returns the fitness of every member, in population order.
func (p Population) Fitnesses() []float64 {
	values := make([]float64, len(p))
	for i, c := range p {
		values[i] = float64(c.fitness)
	}
	return values
}
