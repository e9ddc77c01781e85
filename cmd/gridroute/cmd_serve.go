package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridroute/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planner over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			g, st, err := a.loadGrid()
			if err != nil {
				return err
			}
			p, err := newPlanner(a, g, a.cfg.Planner.Seed)
			if err != nil {
				return err
			}

			opts := []server.Option{server.WithLogger(a.log)}
			if st != nil {
				defer a.closeStore(st)
				opts = append(opts, server.WithStore(st))
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(g, p, opts...).Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
