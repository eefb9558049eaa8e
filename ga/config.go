package ga

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/ini.v1"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("config error")

// Default run parameters.
const (
	DefaultTarget         = "Generative AI"
	DefaultPopulationSize = 100
	DefaultMutationRate   = 0.01
	DefaultMaxGenerations = 1000
	DefaultNumToSelect    = 50
)

// Config stores the parameters of one run. They are fixed for its whole duration.
type Config struct {
	Target         string  `ini:"target"`
	Alphabet       string  `ini:"alphabet"` // Empty means the full printable range
	PopulationSize int     `ini:"population_size"`
	MutationRate   float64 `ini:"mutation_rate"` // Per-gene probability
	MaxGenerations int     `ini:"max_generations"`
	NumToSelect    int     `ini:"num_to_select"` // Size of the elite / parent pool
}

// DefaultConfig returns the demo configuration.
func DefaultConfig() *Config {
	return &Config{
		Target:         DefaultTarget,
		PopulationSize: DefaultPopulationSize,
		MutationRate:   DefaultMutationRate,
		MaxGenerations: DefaultMaxGenerations,
		NumToSelect:    DefaultNumToSelect,
	}
}

// LoadConfig loads the [GA] section of an INI file on top of DefaultConfig
// and validates the result. Keys missing from the file keep their default value.
func LoadConfig(filePath string) (*Config, error) {
	config, err := ReadConfig(filePath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ReadConfig is LoadConfig without validation. Callers that layer further
// overrides on top of the file (command line flags) validate once at the end.
func ReadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true, // Targets may contain # or ;
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := DefaultConfig()
	if err := cfg.Section("GA").MapTo(config); err != nil {
		return nil, fmt.Errorf("failed to map [GA] section: %w", err)
	}
	return config, nil
}

// Validate rejects configurations that would make a run undefined.
func (c *Config) Validate() error {
	alphabet, err := c.alphabet()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := NewTarget(c.Target, alphabet); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.PopulationSize <= 0 {
		return fmt.Errorf("%w: population_size must be positive", ErrInvalidConfig)
	}
	if c.NumToSelect < 1 || c.NumToSelect > c.PopulationSize {
		return fmt.Errorf("%w: num_to_select must be between 1 and population_size (%d)", ErrInvalidConfig, c.PopulationSize)
	}
	if math.IsNaN(c.MutationRate) || c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("%w: mutation_rate must be between 0 and 1", ErrInvalidConfig)
	}
	if c.MaxGenerations < 0 {
		return fmt.Errorf("%w: max_generations cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// NewTarget builds the run's target over the configured alphabet.
func (c *Config) NewTarget() (Target, error) {
	alphabet, err := c.alphabet()
	if err != nil {
		return Target{}, err
	}
	return NewTarget(c.Target, alphabet)
}

func (c *Config) alphabet() (*Alphabet, error) {
	if c.Alphabet == "" {
		return PrintableAlphabet(), nil
	}
	return NewAlphabet(c.Alphabet)
}
