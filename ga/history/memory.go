package history

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/baldhumanity/strmatch-go/ga"
)

type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]Run
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]Run)}
}

func (s *MemoryStore) Init(context.Context) error {
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run Run) error {
	if run.ID == "" {
		return errors.New("run id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = cloneRun(run)
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id string) (Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return Run{}, false, nil
	}
	return cloneRun(run), true, nil
}

func (s *MemoryStore) ListRuns(context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Run, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, cloneRun(run))
	}
	sortRuns(out)
	return out, nil
}

func cloneRun(run Run) Run {
	if run.Stats != nil {
		stats := make([]ga.GenerationStats, len(run.Stats))
		copy(stats, run.Stats)
		run.Stats = stats
	}
	return run
}

// sortRuns orders runs oldest first, by id on ties.
func sortRuns(runs []Run) {
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].StartedAt.Before(runs[j].StartedAt)
		}
		return runs[i].ID < runs[j].ID
	})
}
