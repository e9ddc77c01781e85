// Package gridroute plans shortest routes on a 2-D occupancy grid that start
// at one cell, end at another and visit every mandatory waypoint in between.
//
// The module is organized as one concern per package:
//
//	grid/      rows×cols occupancy grid, versioned obstacles, immutable snapshots
//	search/    pairwise path finders behind one Finder interface:
//	             bidirectional best-first (default), A*, BFS
//	pathcache/ memoized pairwise paths keyed by grid version and unordered pair
//	tsp/       waypoint ordering between fixed endpoints: genetic, Held–Karp
//	planner/   validation, pairwise precomputation, ordering and assembly
//	config/    YAML configuration
//	store/     BadgerDB persistence of grid dimensions and obstacles
//	export/    GeoJSON (paulmach/orb) and terminal maps (lipgloss)
//	server/    HTTP API (gin) with tracing and Prometheus metrics
//	cmd/gridroute: the command-line tool
//
// Quick start:
//
//	g, _ := grid.New(5, 5)
//	_ = g.SetObstacle(7, true)
//	p, _ := planner.New(g, planner.WithSeed(1))
//	route, err := p.PlanRoute(1, 25, []grid.CellID{13})
//
// Every planning call works on its own grid snapshot, so obstacles may be
// edited concurrently. With a fixed seed, identical inputs give identical routes.
package gridroute
