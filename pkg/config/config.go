// Package config loads and validates engine configuration from YAML files.
// Every setting has a default equal to the engine's contract value, so an
// empty or missing file yields the standard behavior.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrhapile/symptom-triage/pkg/selector"
	"github.com/mrhapile/symptom-triage/pkg/types"
)

// Config is the top-level engine configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Selector SelectorConfig `yaml:"selector"`
	Genetic  GeneticConfig  `yaml:"genetic"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SelectorConfig holds strategy dispatch settings.
type SelectorConfig struct {
	// DefaultMethod is the strategy used when the caller passes no
	// preference: "greedy", "exhaustive", or "genetic".
	DefaultMethod string `yaml:"defaultMethod"`

	// ExhaustiveMaxPool caps the pool the exhaustive strategy enumerates
	// over. Zero means no cap; enumeration cost is then fully the caller's
	// responsibility.
	ExhaustiveMaxPool int `yaml:"exhaustiveMaxPool"`
}

// GeneticConfig holds the genetic strategy's hyperparameters. The defaults
// are the fixed contract values; override them only for experiments.
type GeneticConfig struct {
	PopulationSize int     `yaml:"populationSize"`
	Generations    int     `yaml:"generations"`
	MutationRate   float64 `yaml:"mutationRate"`
	MutationFloor  float64 `yaml:"mutationFloor"`
	MutationDecay  float64 `yaml:"mutationDecay"`
	EliteSize      int     `yaml:"eliteSize"`
	TournamentSize int     `yaml:"tournamentSize"`

	// PadPopulation breeds one extra child per generation when the breeding
	// slot count is odd, keeping the population at PopulationSize instead of
	// one short.
	PadPopulation bool `yaml:"padPopulation"`

	// Seed seeds the strategy's random generator. Zero means a time-based
	// seed; set a nonzero value for reproducible proposals.
	Seed int64 `yaml:"seed"`
}

// Params converts the config into selector hyperparameters.
func (g GeneticConfig) Params() selector.GeneticParams {
	return selector.GeneticParams{
		PopulationSize: g.PopulationSize,
		Generations:    g.Generations,
		MutationRate:   g.MutationRate,
		MutationFloor:  g.MutationFloor,
		MutationDecay:  g.MutationDecay,
		EliteSize:      g.EliteSize,
		TournamentSize: g.TournamentSize,
		PadPopulation:  g.PadPopulation,
	}
}

// Default returns a Config holding the contract values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Selector: SelectorConfig{
			DefaultMethod:     selector.MethodGreedy,
			ExhaustiveMaxPool: 0,
		},
		Genetic: GeneticConfig{
			PopulationSize: types.DefaultPopulationSize,
			Generations:    types.DefaultGenerations,
			MutationRate:   types.DefaultMutationRate,
			MutationFloor:  types.DefaultMutationFloor,
			MutationDecay:  types.DefaultMutationDecay,
			EliteSize:      types.DefaultEliteSize,
			TournamentSize: types.DefaultTournamentSize,
		},
	}
}

// Load reads a YAML config file (if provided) on top of the defaults and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting's range.
func (c *Config) Validate() error {
	switch c.Selector.DefaultMethod {
	case selector.MethodGreedy, selector.MethodExhaustive, selector.MethodGenetic:
	default:
		return fmt.Errorf("selector.defaultMethod: unknown method %q", c.Selector.DefaultMethod)
	}
	if c.Selector.ExhaustiveMaxPool < 0 {
		return fmt.Errorf("selector.exhaustiveMaxPool: must be >= 0, got %d", c.Selector.ExhaustiveMaxPool)
	}
	g := c.Genetic
	if g.PopulationSize <= 0 {
		return fmt.Errorf("genetic.populationSize: must be > 0, got %d", g.PopulationSize)
	}
	if g.Generations <= 0 {
		return fmt.Errorf("genetic.generations: must be > 0, got %d", g.Generations)
	}
	if g.MutationRate < 0 || g.MutationRate > 1 {
		return fmt.Errorf("genetic.mutationRate: must be in [0,1], got %g", g.MutationRate)
	}
	if g.MutationFloor < 0 || g.MutationFloor > g.MutationRate {
		return fmt.Errorf("genetic.mutationFloor: must be in [0, mutationRate], got %g", g.MutationFloor)
	}
	if g.MutationDecay <= 0 || g.MutationDecay > 1 {
		return fmt.Errorf("genetic.mutationDecay: must be in (0,1], got %g", g.MutationDecay)
	}
	if g.EliteSize < 0 || g.EliteSize > g.PopulationSize {
		return fmt.Errorf("genetic.eliteSize: must be in [0, populationSize], got %d", g.EliteSize)
	}
	if g.TournamentSize <= 0 {
		return fmt.Errorf("genetic.tournamentSize: must be > 0, got %d", g.TournamentSize)
	}
	return nil
}
