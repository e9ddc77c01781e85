package planner

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	planDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridroute_plan_duration_seconds",
		Help:    "Route planning duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	})

	plansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridroute_plans_total",
		Help: "Planning calls by outcome",
	}, []string{"outcome"})
)

// outcome maps a Plan error to its metric label.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidCell):
		return "invalid_cell"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrUnreachable):
		return "unreachable"
	default:
		return "error"
	}
}
