// Package server exposes the planner over HTTP with gin.
//
// Routes:
//
//	GET  /healthz
//	GET  /v1/grid
//	PUT  /v1/grid/obstacles   {"cells":[...],"blocked":true}
//	POST /v1/plan             {"start":1,"end":25,"waypoints":[13]}  (?format=geojson)
//	GET  /metrics
//
// Planning runs on the request goroutine against its own grid snapshot, so
// obstacle edits may proceed concurrently.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/planner"
	"github.com/katalvlaran/gridroute/store"
)

const serviceName = "gridroute"

// ObstacleStore persists obstacle edits. *store.Store implements it.
type ObstacleStore interface {
	SetObstacles(ids []grid.CellID, blocked bool) error
}

var _ ObstacleStore = (*store.Store)(nil)

// Server wires the grid, the planner and an optional store to a gin engine.
type Server struct {
	grid    *grid.Grid
	planner *planner.Planner
	store   ObstacleStore
	log     *slog.Logger
	router  *gin.Engine

	editMu sync.Mutex // orders obstacle edits across store and grid
}

// Option configures a Server.
type Option func(*Server)

// WithStore persists obstacle edits before applying them in memory.
func WithStore(s ObstacleStore) Option {
	return func(srv *Server) { srv.store = s }
}

// WithLogger sets the request and error logger. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(srv *Server) {
		if l != nil {
			srv.log = l
		}
	}
}

// New builds a Server. p must plan against g.
func New(g *grid.Grid, p *planner.Planner, opts ...Option) *Server {
	s := &Server{
		grid:    g,
		planner: p,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.initRouter()

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) initRouter() {
	s.router = gin.New()
	s.router.Use(gin.Recovery(), requestLogger(s.log), otelgin.Middleware(serviceName))

	s.router.GET("/healthz", healthz)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.GET("/grid", getGrid(s.grid))
	v1.PUT("/grid/obstacles", putObstacles(s.grid, s.store, &s.editMu, s.log))
	v1.POST("/plan", postPlan(s.planner, s.log))
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()
		log.Debug("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(began)),
		)
	}
}
