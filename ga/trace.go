package ga

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
)

// Trace is the record of a finished run written to disk: the configuration,
// the per-generation statistics and the outcome. It is a report, not a
// checkpoint; a run can't be resumed from it.
type Trace struct {
	Config        Config
	Seed          uint64
	Stats         []GenerationStats
	State         string
	Generations   int
	ElapsedMillis int64
	Solution      string
	BestFitness   int
}

// NewTrace assembles a trace from a run's configuration, statistics and result.
func NewTrace(config *Config, seed uint64, stats []GenerationStats, result Result) *Trace {
	return &Trace{
		Config:        *config,
		Seed:          seed,
		Stats:         stats,
		State:         result.State.String(),
		Generations:   result.Generations,
		ElapsedMillis: result.Elapsed.Milliseconds(),
		Solution:      result.Best.String(),
		BestFitness:   result.Best.Fitness(),
	}
}

// SaveTrace writes the trace to a gzip compressed gob file.
func SaveTrace(filePath string, trace *Trace) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	if err := gob.NewEncoder(gzWriter).Encode(trace); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	// Close flushes the gzip footer; an error here means a truncated file.
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to finish trace file '%s': %w", filePath, err)
	}
	return nil
}

// LoadTrace reads a trace written by SaveTrace.
func LoadTrace(filePath string) (*Trace, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for trace: %w", err)
	}
	defer gzReader.Close()

	trace := &Trace{}
	if err := gob.NewDecoder(gzReader).Decode(trace); err != nil {
		return nil, fmt.Errorf("failed to decode trace from '%s': %w", filePath, err)
	}
	return trace, nil
}
