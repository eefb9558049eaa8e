package ga

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarises the fitness values of one evaluated generation.
type GenerationStats struct {
	Generation  int
	BestFitness int
	BestGenes   string
	Worst       int
	Mean        float64
	StdDev      float64
	Median      float64
}

// Summarize computes statistics over the population of the given generation.
// The population must not be empty.
func Summarize(generation int, population Population) GenerationStats {
	values := population.Fitnesses()
	sort.Float64s(values)

	best := population[0]
	for _, c := range population[1:] {
		if c.fitness < best.fitness {
			best = c
		}
	}

	s := GenerationStats{
		Generation:  generation,
		BestFitness: best.fitness,
		BestGenes:   best.String(),
		Worst:       int(values[len(values)-1]),
		Mean:        stat.Mean(values, nil),
		Median:      median(values),
	}
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil) // Sample standard deviation
	}
	return s
}

// median of an already sorted, non-empty slice. Even counts average the two
// middle values.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return stat.Mean(sorted[n/2-1:n/2+1], nil)
}
