// Package history keeps a record of finished runs: their configuration,
// outcome and per-generation statistics. Populations are not stored.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/baldhumanity/strmatch-go/ga"
)

// Run is one finished evolution.
type Run struct {
	ID             string
	StartedAt      time.Time
	Seed           uint64
	Target         string
	Alphabet       string
	PopulationSize int
	MutationRate   float64
	MaxGenerations int
	NumToSelect    int
	State          string
	Generations    int
	ElapsedMillis  int64
	Solution       string
	BestFitness    int
	Stats          []ga.GenerationStats
}

// NewRun builds a record with a fresh identifier.
func NewRun(config *ga.Config, seed uint64, startedAt time.Time, stats []ga.GenerationStats, result ga.Result) Run {
	return Run{
		ID:             uuid.NewString(),
		StartedAt:      startedAt.UTC(),
		Seed:           seed,
		Target:         config.Target,
		Alphabet:       config.Alphabet,
		PopulationSize: config.PopulationSize,
		MutationRate:   config.MutationRate,
		MaxGenerations: config.MaxGenerations,
		NumToSelect:    config.NumToSelect,
		State:          result.State.String(),
		Generations:    result.Generations,
		ElapsedMillis:  result.Elapsed.Milliseconds(),
		Solution:       result.Best.String(),
		BestFitness:    result.Best.Fitness(),
		Stats:          stats,
	}
}

// Store persists runs.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]Run, error)
}

// NewStore returns the backend named by kind.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

// CloseIfSupported closes stores that hold resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
