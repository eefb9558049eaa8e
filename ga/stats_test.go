package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	target := mustTarget(t, "aaaaa", "")
	population := Population{
		chromosome(t, "aabbb", target),
		chromosome(t, "aaaaa", target),
		chromosome(t, "aaaab", target),
	}

	s := Summarize(7, population)

	assert.Equal(t, 7, s.Generation)
	assert.Equal(t, 0, s.BestFitness)
	assert.Equal(t, "aaaaa", s.BestGenes)
	assert.Equal(t, 3, s.Worst)
	assert.InDelta(t, 4.0/3.0, s.Mean, 1e-9)
	assert.InDelta(t, 1.0, s.Median, 1e-9)
	assert.InDelta(t, 1.5275, s.StdDev, 1e-4)
}

func TestSummarizeSingleMember(t *testing.T) {
	target := mustTarget(t, "ab", "")
	s := Summarize(0, Population{chromosome(t, "ax", target)})

	assert.Equal(t, 1, s.BestFitness)
	assert.Equal(t, 1, s.Worst)
	assert.Equal(t, 1.0, s.Mean)
	assert.Zero(t, s.StdDev)
}

func TestSummarizeEvenCountAveragesMiddleValues(t *testing.T) {
	target := mustTarget(t, "aaa", "")
	population := Population{
		chromosome(t, "bbb", target),
		chromosome(t, "aaa", target),
		chromosome(t, "abb", target),
		chromosome(t, "aab", target),
	}

	s := Summarize(0, population)

	assert.Equal(t, 0, s.BestFitness)
	assert.Equal(t, 3, s.Worst)
	assert.InDelta(t, 1.5, s.Median, 1e-9)
	assert.InDelta(t, 1.5, s.Mean, 1e-9)
}
