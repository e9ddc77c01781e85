package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/export"
)

func newInitCmd(a *app) *cobra.Command {
	var rows, cols int
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a blank rows×cols grid into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.requireStore()
			if err != nil {
				return err
			}
			defer a.closeStore(st)

			if err := st.Init(rows, cols); err != nil {
				return err
			}
			a.log.Info("grid initialized",
				slog.Int("rows", rows),
				slog.Int("cols", cols),
				slog.String("path", a.cfg.Store.Path),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %dx%d grid\n", rows, cols)
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 10, "row count")
	cmd.Flags().IntVar(&cols, "cols", 10, "column count")

	return cmd
}

func newObstacleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "obstacle",
		Short: "Edit stored obstacle cells",
	}
	for _, blocked := range []bool{true, false} {
		use, short := "add IDS...", "Mark cells as obstacles"
		if !blocked {
			use, short = "remove IDS...", "Clear obstacle cells"
		}
		cmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ids, err := parseIDs(args)
				if err != nil {
					return err
				}
				st, err := a.requireStore()
				if err != nil {
					return err
				}
				defer a.closeStore(st)

				if err := st.SetObstacles(ids, blocked); err != nil {
					return err
				}
				obs, err := st.Obstacles()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "obstacles: %s\n", joinIDs(obs))
				return nil
			},
		})
	}

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the grid map",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, st, err := a.loadGrid()
			if err != nil {
				return err
			}
			if st != nil {
				defer a.closeStore(st)
			}

			var opts []export.DrawOption
			if plain {
				opts = append(opts, export.Plain())
			}
			fmt.Fprintln(cmd.OutOrStdout(), export.Draw(g.Snapshot(), nil, nil, opts...))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "draw without colors or frame")

	return cmd
}
