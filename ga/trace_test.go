package ga

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceSaveLoad(t *testing.T) {
	config := DefaultConfig()
	config.MaxGenerations = 25

	stats := &StatisticsReporter{}
	evolution, err := NewEvolution(config, NewSource(77), stats)
	require.NoError(t, err)
	result, err := evolution.Run(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.trace.gz")
	require.NoError(t, SaveTrace(path, NewTrace(config, 77, stats.Generations, result)))

	loaded, err := LoadTrace(path)
	require.NoError(t, err)

	assert.Equal(t, *config, loaded.Config)
	assert.Equal(t, uint64(77), loaded.Seed)
	assert.Equal(t, stats.Generations, loaded.Stats)
	assert.Equal(t, result.State.String(), loaded.State)
	assert.Equal(t, result.Generations, loaded.Generations)
	assert.Equal(t, result.Best.String(), loaded.Solution)
	assert.Equal(t, result.Best.Fitness(), loaded.BestFitness)
}

func TestLoadTraceRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o644))

	_, err := LoadTrace(path)
	assert.Error(t, err)

	_, err = LoadTrace(filepath.Join(t.TempDir(), "missing.gz"))
	assert.Error(t, err)
}
