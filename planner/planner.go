package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/pathcache"
	"github.com/katalvlaran/gridroute/search"
	"github.com/katalvlaran/gridroute/tsp"
)

var tracer = otel.Tracer("github.com/katalvlaran/gridroute/planner")

// Source provides consistent grid snapshots. *grid.Grid implements it.
type Source interface {
	Snapshot() *grid.View
}

// Plan is a planned route.
type Plan struct {
	// Route is the contiguous cell sequence from start to end.
	Route []grid.CellID
	// Order is the waypoints in visiting order, after de-duplication.
	Order []grid.CellID
	// Steps is len(Route)-1.
	Steps int
	// Version is the grid version the plan was computed on.
	Version uint64
	// Generations is the number of genetic generations run (0 when unused).
	Generations int
	// View is the snapshot the plan was computed on.
	View *grid.View
}

// Planner plans routes against a Source. Construct with New.
type Planner struct {
	src           Source
	finder        search.Finder
	cache         *pathcache.Cache
	cacheCapacity int
	tsp           tsp.Options
	log           *slog.Logger
}

// New returns a Planner over src. By default it uses a Bidirectional finder,
// its own pathcache.Cache with the default capacity and tsp.DefaultOptions.
func New(src Source, opts ...Option) (*Planner, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	p := &Planner{
		src:    src,
		finder: search.NewBidirectional(),
		tsp:    tsp.DefaultOptions(),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.tsp.Validate(); err != nil {
		return nil, err
	}
	if p.cache == nil {
		p.cache = pathcache.New(p.finder, pathcache.WithCapacity(p.cacheCapacity))
	}

	return p, nil
}

// Cache exposes the Planner's path cache.
func (p *Planner) Cache() *pathcache.Cache { return p.cache }

// PlanRoute returns the route only. See Plan.
func (p *Planner) PlanRoute(start, end grid.CellID, waypoints []grid.CellID) ([]grid.CellID, error) {
	pl, err := p.Plan(context.Background(), start, end, waypoints)
	if err != nil {
		return nil, err
	}

	return pl.Route, nil
}

// Plan computes a shortest-known route from start to end visiting every
// waypoint, on a snapshot of the grid taken at call time.
//
// Errors (match with errors.Is / errors.As):
//   - *InvalidCellError (ErrInvalidCell): some id outside [1, rows·cols];
//   - *ValidationError (ErrValidation): some id is an obstacle;
//   - *UnreachableError (ErrUnreachable): a required pair is disconnected;
//   - ctx.Err() if ctx is done before the search starts.
//
// The context is not polled inside the search or the ordering loop, which are
// both bounded.
func (p *Planner) Plan(ctx context.Context, start, end grid.CellID, waypoints []grid.CellID) (*Plan, error) {
	ctx, span := tracer.Start(ctx, "planner.Plan", trace.WithAttributes(
		attribute.Int("plan.start", int(start)),
		attribute.Int("plan.end", int(end)),
		attribute.Int("plan.waypoints", len(waypoints)),
	))
	defer span.End()

	began := time.Now()
	pl, err := p.plan(ctx, start, end, waypoints)
	planDuration.Observe(time.Since(began).Seconds())
	plansTotal.WithLabelValues(outcome(err)).Inc()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.log.Warn("plan failed",
			slog.Int("start", int(start)),
			slog.Int("end", int(end)),
			slog.Int("waypoints", len(waypoints)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	span.SetAttributes(attribute.Int("plan.steps", pl.Steps), attribute.Int64("grid.version", int64(pl.Version)))
	p.log.Debug("plan ready",
		slog.Int("start", int(start)),
		slog.Int("end", int(end)),
		slog.Int("waypoints", len(pl.Order)),
		slog.Int("steps", pl.Steps),
		slog.Int("generations", pl.Generations),
		slog.Uint64("version", pl.Version),
		slog.Duration("took", time.Since(began)),
	)

	return pl, nil
}

func (p *Planner) plan(ctx context.Context, start, end grid.CellID, waypoints []grid.CellID) (*Plan, error) {
	v := p.src.Snapshot()

	requested := make([]grid.CellID, 0, len(waypoints)+2)
	requested = append(requested, start, end)
	requested = append(requested, waypoints...)
	if err := checkRange(v, requested); err != nil {
		return nil, err
	}
	if err := checkObstacles(v, requested); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wps := normalizeWaypoints(start, end, waypoints)
	if len(wps) == 0 {
		route, err := p.segment(v, start, end)
		if err != nil {
			return nil, err
		}
		return &Plan{Route: route, Order: []grid.CellID{}, Steps: len(route) - 1, Version: v.Version(), View: v}, nil
	}

	nodes := make([]grid.CellID, 0, len(wps)+2)
	nodes = append(nodes, start)
	nodes = append(nodes, wps...)
	nodes = append(nodes, end)
	if err := checkConnected(v, nodes); err != nil {
		return nil, err
	}

	dist, paths, err := p.pairwise(v, nodes)
	if err != nil {
		return nil, err
	}

	res, err := tsp.Solve(dist, p.tsp)
	if err != nil {
		return nil, fmt.Errorf("planner: ordering waypoints: %w", err)
	}

	order := make([]grid.CellID, len(res.Order))
	segments := make([][]grid.CellID, 0, len(res.Order)+1)
	prev := 0
	for i, idx := range res.Order {
		order[i] = nodes[idx]
		segments = append(segments, paths.get(prev, idx))
		prev = idx
	}
	segments = append(segments, paths.get(prev, len(nodes)-1))

	route := Assemble(segments)

	return &Plan{
		Route:       route,
		Order:       order,
		Steps:       len(route) - 1,
		Version:     v.Version(),
		Generations: res.Generations,
		View:        v,
	}, nil
}

// segment fetches one pairwise path and names the pair on failure.
func (p *Planner) segment(v *grid.View, a, b grid.CellID) ([]grid.CellID, error) {
	path, err := p.cache.Get(v, a, b)
	if err != nil {
		return nil, wrapPairErr(a, b, err)
	}

	return path, nil
}

// pairTable holds the path for every i < j; get reverses on demand.
type pairTable struct {
	m     int
	paths [][]grid.CellID
}

func (t *pairTable) get(i, j int) []grid.CellID {
	if i < j {
		return t.paths[i*t.m+j]
	}
	rev := slices.Clone(t.paths[j*t.m+i])
	slices.Reverse(rev)

	return rev
}

// pairwise fills the step-count matrix for nodes and keeps the paths for assembly.
func (p *Planner) pairwise(v *grid.View, nodes []grid.CellID) ([][]int, *pairTable, error) {
	m := len(nodes)
	dist := make([][]int, m)
	for i := range dist {
		dist[i] = make([]int, m)
	}
	table := &pairTable{m: m, paths: make([][]grid.CellID, m*m)}

	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			path, err := p.segment(v, nodes[i], nodes[j])
			if err != nil {
				return nil, nil, err
			}
			table.paths[i*m+j] = path
			dist[i][j] = len(path) - 1
			dist[j][i] = len(path) - 1
		}
	}

	return dist, table, nil
}

func wrapPairErr(a, b grid.CellID, err error) error {
	if errors.Is(err, ErrUnreachable) {
		return &UnreachableError{From: a, To: b}
	}

	return fmt.Errorf("planner: path %d→%d: %w", a, b, err)
}
