package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/search"
)

var (
	// ErrValidation matches *ValidationError.
	ErrValidation = errors.New("planner: blocked cells in request")

	// ErrInvalidCell matches *InvalidCellError.
	ErrInvalidCell = grid.ErrCellOutOfRange

	// ErrUnreachable matches *UnreachableError.
	ErrUnreachable = search.ErrUnreachable

	// ErrNilSource is returned by New for a nil Source.
	ErrNilSource = errors.New("planner: nil grid source")
)

// InvalidCellError lists every requested id outside [1, Size].
type InvalidCellError struct {
	Cells []grid.CellID
	Size  int
}

func (e *InvalidCellError) Error() string {
	return fmt.Sprintf("planner: cells %v not in [1,%d]", e.Cells, e.Size)
}

func (e *InvalidCellError) Unwrap() error { return ErrInvalidCell }

// ValidationError lists every requested cell that is an obstacle.
type ValidationError struct {
	Cells []grid.CellID
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("planner: cells %v are obstacles", e.Cells)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// UnreachableError names a pair of requested cells with no path between them.
type UnreachableError struct {
	From, To grid.CellID
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("planner: no path between %d and %d", e.From, e.To)
}

func (e *UnreachableError) Unwrap() error { return ErrUnreachable }
