package ga

import (
	"fmt"
	"io"
)

// Reporter observes a run. Reporters never influence the evolution.
type Reporter interface {
	// PostEvaluate is called once per executed generation, after selection,
	// with the evaluated population and its best member.
	PostEvaluate(generation int, population Population, best Chromosome)
	// Complete is called once when the run stops.
	Complete(result Result)
}

// ReporterSet fans events out to several reporters, in order.
type ReporterSet []Reporter

func (rs ReporterSet) PostEvaluate(generation int, population Population, best Chromosome) {
	for _, r := range rs {
		r.PostEvaluate(generation, population, best)
	}
}

func (rs ReporterSet) Complete(result Result) {
	for _, r := range rs {
		r.Complete(result)
	}
}

// StdOutReporter prints progress lines and the final solution.
type StdOutReporter struct {
	Out   io.Writer
	Quiet bool // Suppresses the per-generation lines
}

// NewStdOutReporter returns a reporter writing to w.
func NewStdOutReporter(w io.Writer, quiet bool) *StdOutReporter {
	return &StdOutReporter{Out: w, Quiet: quiet}
}

func (r *StdOutReporter) PostEvaluate(generation int, _ Population, best Chromosome) {
	if r.Quiet {
		return
	}
	fmt.Fprintf(r.Out, "Generation: %d, Best fitness: %d, Genes: %s\n", generation, best.Fitness(), best)
}

func (r *StdOutReporter) Complete(result Result) {
	fmt.Fprintf(r.Out, "Found solution in %d generations and %d ms\n", result.Generations, result.Elapsed.Milliseconds())
	fmt.Fprintf(r.Out, "Solution: %s\n", result.Best)
}

// StatisticsReporter records GenerationStats for every executed generation.
type StatisticsReporter struct {
	Generations []GenerationStats
	Result      *Result
}

func (r *StatisticsReporter) PostEvaluate(generation int, population Population, _ Chromosome) {
	r.Generations = append(r.Generations, Summarize(generation, population))
}

func (r *StatisticsReporter) Complete(result Result) {
	r.Result = &result
}

// BestFitnesses returns the best fitness of each recorded generation.
func (r *StatisticsReporter) BestFitnesses() []int {
	out := make([]int, len(r.Generations))
	for i, s := range r.Generations {
		out[i] = s.BestFitness
	}
	return out
}
