// Package config loads the gridroute YAML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/search"
	"github.com/katalvlaran/gridroute/tsp"
)

// Config is the unified configuration file.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Store   StoreConfig   `yaml:"store"`
	Planner PlannerConfig `yaml:"planner"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GridConfig describes the grid used when no store is configured.
type GridConfig struct {
	Rows      int   `yaml:"rows"`
	Cols      int   `yaml:"cols"`
	Obstacles []int `yaml:"obstacles,omitempty"`
}

// StoreConfig points at the badger directory. An empty Path disables the store.
type StoreConfig struct {
	Path string `yaml:"path,omitempty"`
}

// PlannerConfig selects the search and ordering strategies.
type PlannerConfig struct {
	Algorithm     string        `yaml:"algorithm"`
	Finder        string        `yaml:"finder"`
	Seed          int64         `yaml:"seed"`
	CacheCapacity int           `yaml:"cache_capacity"`
	Genetic       GeneticConfig `yaml:"genetic"`
}

// GeneticConfig mirrors the genetic fields of tsp.Options.
type GeneticConfig struct {
	PopulationSize int     `yaml:"population_size"`
	MaxGenerations int     `yaml:"max_generations"`
	Patience       int     `yaml:"patience"`
	MutationRate   float64 `yaml:"mutation_rate"`
	MutationDecay  float64 `yaml:"mutation_decay"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	d := tsp.DefaultOptions()

	return &Config{
		Grid: GridConfig{Rows: 10, Cols: 10},
		Planner: PlannerConfig{
			Algorithm:     tsp.Genetic.String(),
			Finder:        string(search.KindBidirectional),
			CacheCapacity: 4096,
			Genetic: GeneticConfig{
				PopulationSize: d.PopulationSize,
				MaxGenerations: d.MaxGenerations,
				Patience:       d.Patience,
				MutationRate:   d.MutationRate,
				MutationDecay:  d.MutationDecay,
			},
		},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks every field and names the first offending one.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
			return fmt.Errorf("grid.rows and grid.cols must be positive, got %dx%d", c.Grid.Rows, c.Grid.Cols)
		}
		size := c.Grid.Rows * c.Grid.Cols
		for i, id := range c.Grid.Obstacles {
			if id < 1 || id > size {
				return fmt.Errorf("grid.obstacles[%d] = %d not in [1,%d]", i, id, size)
			}
		}
	}
	if _, err := tsp.ParseAlgo(c.Planner.Algorithm); err != nil {
		return fmt.Errorf("planner.algorithm %q: %w", c.Planner.Algorithm, err)
	}
	if _, err := search.New(search.Kind(c.Planner.Finder)); err != nil {
		return fmt.Errorf("planner.finder: %w", err)
	}
	if c.Planner.CacheCapacity < 0 {
		return fmt.Errorf("planner.cache_capacity must not be negative, got %d", c.Planner.CacheCapacity)
	}
	if _, err := c.TSPOptions(); err != nil {
		return fmt.Errorf("planner.genetic: %w", err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// TSPOptions converts the planner section to tsp.Options.
func (c *Config) TSPOptions() (tsp.Options, error) {
	algo, err := tsp.ParseAlgo(c.Planner.Algorithm)
	if err != nil {
		return tsp.Options{}, err
	}
	g := c.Planner.Genetic
	o := tsp.Options{
		Algo:           algo,
		PopulationSize: g.PopulationSize,
		MaxGenerations: g.MaxGenerations,
		Patience:       g.Patience,
		MutationRate:   g.MutationRate,
		MutationDecay:  g.MutationDecay,
		Seed:           c.Planner.Seed,
	}

	return o, o.Validate()
}

// Finder builds the configured search strategy.
func (c *Config) Finder() (search.Finder, error) {
	return search.New(search.Kind(c.Planner.Finder))
}

// NewGrid builds the grid described by the grid section.
func (c *Config) NewGrid() (*grid.Grid, error) {
	g, err := grid.New(c.Grid.Rows, c.Grid.Cols)
	if err != nil {
		return nil, err
	}
	ids := make([]grid.CellID, len(c.Grid.Obstacles))
	for i, id := range c.Grid.Obstacles {
		ids[i] = grid.CellID(id)
	}
	if err := g.SetObstacles(ids, true); err != nil {
		return nil, err
	}

	return g, nil
}

// ParseLevel maps debug|info|warn|error (case-insensitive, "" = info) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}
