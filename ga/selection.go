package ga

import (
	"fmt"
	"sort"
)

// SelectTheFittest returns the numToSelect members with the lowest fitness, best first.
// The population itself is not reordered; a sorted copy is made. Members keep
// the fitness they were scored with, so the result doubles as the elite set
// carried into the next generation.
func SelectTheFittest(population Population, numToSelect int) Population {
	if numToSelect < 1 || numToSelect > len(population) {
		panic(fmt.Sprintf("cannot select %d of %d chromosomes", numToSelect, len(population)))
	}
	sorted := make(Population, len(population))
	copy(sorted, population)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].fitness < sorted[j].fitness
	})
	return sorted[:numToSelect:numToSelect]
}
