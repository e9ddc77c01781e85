package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/tsp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	return path
}

func TestLoad_NotExists(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "config file not found")
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `grid:
  rows: 5
  cols: 6
  obstacles: [2, 9]
planner:
  algorithm: auto
  seed: 7
  genetic:
    patience: 40
log:
  level: debug
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Grid.Rows)
	require.Equal(t, 6, cfg.Grid.Cols)
	require.Equal(t, []int{2, 9}, cfg.Grid.Obstacles)
	require.Equal(t, "bidirectional", cfg.Planner.Finder, "default kept")
	require.Equal(t, ":8080", cfg.Server.Addr, "default kept")

	opts, err := cfg.TSPOptions()
	require.NoError(t, err)
	require.Equal(t, tsp.Auto, opts.Algo)
	require.Equal(t, int64(7), opts.Seed)
	require.Equal(t, 40, opts.Patience)
	require.Equal(t, 500, opts.MaxGenerations)

	g, err := cfg.NewGrid()
	require.NoError(t, err)
	require.Equal(t, []grid.CellID{2, 9}, g.Obstacles())

	lvl, err := config.ParseLevel(cfg.Log.Level)
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "grid: [unterminated"))
	require.ErrorContains(t, err, "parsing config YAML")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"zero rows", func(c *config.Config) { c.Grid.Rows = 0 }, "grid.rows"},
		{"obstacle out of range", func(c *config.Config) { c.Grid.Obstacles = []int{101} }, "grid.obstacles[0]"},
		{"algorithm", func(c *config.Config) { c.Planner.Algorithm = "annealing" }, "planner.algorithm"},
		{"finder", func(c *config.Config) { c.Planner.Finder = "rrt" }, "planner.finder"},
		{"cache", func(c *config.Config) { c.Planner.CacheCapacity = -1 }, "planner.cache_capacity"},
		{"patience", func(c *config.Config) { c.Planner.Genetic.Patience = 0 }, "planner.genetic"},
		{"level", func(c *config.Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			require.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}
}

func TestValidate_StoreSkipsGridSection(t *testing.T) {
	cfg := config.Default()
	cfg.Grid = config.GridConfig{}
	cfg.Store.Path = "/var/lib/gridroute"
	require.NoError(t, cfg.Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Obstacles = []int{3, 4}
	cfg.Planner.Seed = 11
	path := filepath.Join(t.TempDir(), "out.yaml")

	require.NoError(t, config.Save(path, cfg))
	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	f, err := cfg.Finder()
	require.NoError(t, err)
	require.NotNil(t, f)
}
