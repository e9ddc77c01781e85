package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/export"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/planner"
)

type planFlags struct {
	start     int
	end       int
	waypoints []int
	format    string
	draw      bool
	plain     bool
	seed      int64
}

func newPlanCmd(a *app) *cobra.Command {
	var f planFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a route from --start to --end through --waypoints",
		Example: `  gridroute plan --start 1 --end 25 --waypoints 7,13
  gridroute plan -c grid.yaml --start 1 --end 100 --format geojson`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				f.seed = a.cfg.Planner.Seed
			}
			return runPlan(cmd, a, f)
		},
	}
	cmd.Flags().IntVar(&f.start, "start", 0, "start cell id (1-based)")
	cmd.Flags().IntVar(&f.end, "end", 0, "end cell id (1-based)")
	cmd.Flags().IntSliceVar(&f.waypoints, "waypoints", nil, "comma-separated waypoint cell ids")
	cmd.Flags().StringVar(&f.format, "format", "text", "output format: text|json|geojson")
	cmd.Flags().BoolVar(&f.draw, "draw", false, "print a map of the route (text format only)")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "draw without colors or frame")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "ordering seed (overrides planner.seed)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runPlan(cmd *cobra.Command, a *app, f planFlags) error {
	g, st, err := a.loadGrid()
	if err != nil {
		return err
	}
	if st != nil {
		defer a.closeStore(st)
	}

	p, err := newPlanner(a, g, f.seed)
	if err != nil {
		return err
	}

	wps := make([]grid.CellID, len(f.waypoints))
	for i, w := range f.waypoints {
		wps[i] = grid.CellID(w)
	}
	pl, err := p.Plan(cmd.Context(), grid.CellID(f.start), grid.CellID(f.end), wps)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch f.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"route":       pl.Route,
			"order":       pl.Order,
			"steps":       pl.Steps,
			"version":     pl.Version,
			"generations": pl.Generations,
		})
	case "geojson":
		raw, err := export.GeoJSON(pl.View, pl.Route, pl.Order).MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(raw))
		return err
	case "text", "":
		fmt.Fprintf(out, "steps: %d\n", pl.Steps)
		fmt.Fprintf(out, "order: %s\n", joinIDs(pl.Order))
		fmt.Fprintf(out, "turns: %s\n", joinIDs(export.Turns(pl.View, pl.Route)))
		fmt.Fprintf(out, "route: %s\n", joinIDs(pl.Route))
		if f.draw {
			var opts []export.DrawOption
			if f.plain {
				opts = append(opts, export.Plain())
			}
			fmt.Fprintln(out, export.Draw(pl.View, pl.Route, pl.Order, opts...))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or geojson)", f.format)
	}
}

// newPlanner builds a Planner from the config section.
func newPlanner(a *app, g *grid.Grid, seed int64) (*planner.Planner, error) {
	finder, err := a.cfg.Finder()
	if err != nil {
		return nil, err
	}
	opts, err := a.cfg.TSPOptions()
	if err != nil {
		return nil, err
	}
	opts.Seed = seed

	return planner.New(g,
		planner.WithFinder(finder),
		planner.WithCacheCapacity(a.cfg.Planner.CacheCapacity),
		planner.WithTSPOptions(opts),
		planner.WithLogger(a.log),
	)
}

func joinIDs(ids []grid.CellID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(int(id))
	}

	return "[" + strings.Join(parts, " ") + "]"
}
