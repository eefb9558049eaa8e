package ga

import (
	"context"
	"fmt"
	"time"
)

// State is the position of an Evolution in its lifecycle.
type State int

const (
	Running State = iota
	Converged
	Exhausted
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the outcome of a run.
type Result struct {
	State       State
	Generations int // Generations executed
	Elapsed     time.Duration
	Best        Chromosome
}

// Evolution holds the state of the evolutionary process.
type Evolution struct {
	Config     *Config
	Target     Target
	Population Population // Current generation
	Generation int        // Generations executed so far; index of the next one
	Best       Chromosome // Best of the last evaluated generation
	State      State
	Reporters  ReporterSet

	rng Source
}

// NewEvolution validates config and creates generation 0 from rng.
func NewEvolution(config *Config, rng Source, reporters ...Reporter) (*Evolution, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	target, err := config.NewTarget()
	if err != nil {
		return nil, fmt.Errorf("failed to build target: %w", err)
	}

	population := CreateInitialPopulation(rng, config.PopulationSize, target)
	e := &Evolution{
		Config:     config,
		Target:     target,
		Population: population,
		Best:       SelectTheFittest(population, 1)[0],
		State:      Running,
		Reporters:  reporters,
		rng:        rng,
	}
	if config.MaxGenerations == 0 {
		e.State = Exhausted
	}
	return e, nil
}

// RunGeneration executes a single generation: selection, reporting, the
// termination check and, unless the run stops here, reproduction.
// It returns the state after the generation; on a stopped run it is a no-op.
func (e *Evolution) RunGeneration() State {
	if e.State != Running {
		return e.State
	}

	// 1. Select the fittest; the first of them is this generation's best.
	fittest := SelectTheFittest(e.Population, e.Config.NumToSelect)
	e.Best = fittest[0]

	// 2. Report before deciding whether to stop, so the last generation shows up too.
	e.Reporters.PostEvaluate(e.Generation, e.Population, e.Best)
	e.Generation++

	// 3. Check termination. A stopped run breeds no successor population.
	if e.Best.Fitness() == 0 {
		e.State = Converged
		return e.State
	}
	if e.Generation >= e.Config.MaxGenerations {
		e.State = Exhausted
		return e.State
	}

	// 4. Reproduce. The new population replaces the old one wholesale.
	e.Population = Reproduce(e.rng, fittest, e.Config.PopulationSize, e.Config.MutationRate, e.Target)
	return e.State
}

// Run evolves until convergence or until the generation budget is spent.
// ctx is checked between generations; on cancellation the partial result is
// returned with ctx.Err().
func (e *Evolution) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var err error
	for e.State == Running {
		if err = ctx.Err(); err != nil {
			e.State = Cancelled
			break
		}
		e.RunGeneration()
	}

	result := Result{
		State:       e.State,
		Generations: e.Generation,
		Elapsed:     time.Since(start),
		Best:        e.Best,
	}
	e.Reporters.Complete(result)
	return result, err
}
