package server

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/export"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/planner"
)

// GridResponse describes the current grid.
type GridResponse struct {
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	Version   uint64        `json:"version"`
	Obstacles []grid.CellID `json:"obstacles"`
}

// ObstaclesRequest marks or clears a batch of cells.
type ObstaclesRequest struct {
	Cells   []grid.CellID `json:"cells" binding:"required"`
	Blocked bool          `json:"blocked"`
}

// PlanRequest asks for a route.
type PlanRequest struct {
	Start     grid.CellID   `json:"start" binding:"required"`
	End       grid.CellID   `json:"end" binding:"required"`
	Waypoints []grid.CellID `json:"waypoints"`
}

// PlanResponse is a planned route.
type PlanResponse struct {
	PlanID      string        `json:"plan_id"`
	Route       []grid.CellID `json:"route"`
	Order       []grid.CellID `json:"order"`
	Steps       int           `json:"steps"`
	Version     uint64        `json:"version"`
	Generations int           `json:"generations"`
}

// ErrorResponse carries a failure and, when known, the cells at fault.
type ErrorResponse struct {
	Error string        `json:"error"`
	Cells []grid.CellID `json:"cells,omitempty"`
	Pair  []grid.CellID `json:"pair,omitempty"`
}

func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func gridResponse(v *grid.View) GridResponse {
	obs := v.Obstacles()
	if obs == nil {
		obs = []grid.CellID{}
	}

	return GridResponse{Rows: v.Rows(), Cols: v.Cols(), Version: v.Version(), Obstacles: obs}
}

func getGrid(g *grid.Grid) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gridResponse(g.Snapshot()))
	}
}

func putObstacles(g *grid.Grid, st ObstacleStore, mu *sync.Mutex, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ObstaclesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
			return
		}
		for _, id := range req.Cells {
			if !g.Valid(id) {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cell out of range", Cells: []grid.CellID{id}})
				return
			}
		}
		mu.Lock()
		defer mu.Unlock()
		if st != nil {
			if err := st.SetObstacles(req.Cells, req.Blocked); err != nil {
				log.Error("persist obstacles", slog.String("error", err.Error()))
				writeError(c, err)
				return
			}
		}
		if err := g.SetObstacles(req.Cells, req.Blocked); err != nil {
			writeError(c, err)
			return
		}
		log.Info("obstacles updated",
			slog.Int("cells", len(req.Cells)),
			slog.Bool("blocked", req.Blocked),
			slog.Uint64("version", g.Version()),
		)
		c.JSON(http.StatusOK, gridResponse(g.Snapshot()))
	}
}

func postPlan(p *planner.Planner, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
			return
		}

		id := uuid.New().String()
		ctx := c.Request.Context()
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("plan.id", id))

		pl, err := p.Plan(ctx, req.Start, req.End, req.Waypoints)
		if err != nil {
			log.Warn("plan rejected", slog.String("plan_id", id), slog.String("error", err.Error()))
			writeError(c, err)
			return
		}

		if c.Query("format") == "geojson" {
			fc := export.GeoJSON(pl.View, pl.Route, pl.Order)
			fc.ExtraMembers = geojson.Properties{"plan_id": id}
			c.JSON(http.StatusOK, fc)
			return
		}
		c.JSON(http.StatusOK, PlanResponse{
			PlanID:      id,
			Route:       pl.Route,
			Order:       pl.Order,
			Steps:       pl.Steps,
			Version:     pl.Version,
			Generations: pl.Generations,
		})
	}
}

// writeError maps planner and grid errors to status codes.
func writeError(c *gin.Context, err error) {
	var (
		cellErr  *planner.InvalidCellError
		valErr   *planner.ValidationError
		unreachE *planner.UnreachableError
	)
	switch {
	case errors.As(err, &cellErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Cells: cellErr.Cells})
	case errors.As(err, &valErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Cells: valErr.Cells})
	case errors.As(err, &unreachE):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: err.Error(),
			Pair:  []grid.CellID{unreachE.From, unreachE.To},
		})
	case errors.Is(err, grid.ErrCellOutOfRange):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
