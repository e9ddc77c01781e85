package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/config"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/store"
)

// app carries state shared by every subcommand.
type app struct {
	cfgPath  string
	logLevel string

	cfg *config.Config
	log *slog.Logger
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "gridroute",
		Short:         "Plan shortest routes through mandatory waypoints on an occupancy grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "path to YAML config (defaults apply when empty)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides log.level)")

	root.AddCommand(
		newPlanCmd(a),
		newServeCmd(a),
		newInitCmd(a),
		newObstacleCmd(a),
		newShowCmd(a),
	)

	return root
}

// setup loads the config and builds a logger writing to logOut.
func (a *app) setup(logOut io.Writer) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	lvl, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: lvl}))

	return nil
}

// openStore opens the configured badger store; nil when none is configured.
func (a *app) openStore() (*store.Store, error) {
	if a.cfg.Store.Path == "" {
		return nil, nil
	}
	cfg := store.DefaultConfig(a.cfg.Store.Path)
	cfg.Logger = a.log.With(slog.String("component", "badger"))

	return store.Open(cfg)
}

// requireStore is openStore for commands that only make sense with persistence.
func (a *app) requireStore() (*store.Store, error) {
	st, err := a.openStore()
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("this command needs store.path in the config")
	}

	return st, nil
}

// loadGrid returns the stored grid when a store is configured, otherwise the
// grid section of the config. The returned store (possibly nil) stays open.
func (a *app) loadGrid() (*grid.Grid, *store.Store, error) {
	st, err := a.openStore()
	if err != nil {
		return nil, nil, err
	}
	if st == nil {
		g, err := a.cfg.NewGrid()
		return g, nil, err
	}

	g, err := st.LoadGrid()
	if err != nil {
		return nil, nil, errors.Join(err, st.Close())
	}

	return g, st, nil
}

// closeStore closes st and logs a failed close.
func (a *app) closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		a.log.Error("close store", slog.String("error", err.Error()))
	}
}

// parseIDs accepts ids as separate args and/or comma-separated lists.
func parseIDs(args []string) ([]grid.CellID, error) {
	var ids []grid.CellID
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("cell id %q: %w", part, err)
			}
			ids = append(ids, grid.CellID(n))
		}
	}

	return ids, nil
}
