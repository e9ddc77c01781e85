package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors returned by finders.
var (
	// ErrUnreachable indicates no path connects the two cells.
	ErrUnreachable = errors.New("search: no path between cells")

	// ErrNilSpace indicates a nil Space was passed to FindPath.
	ErrNilSpace = errors.New("search: space is nil")

	// ErrUnknownKind indicates New was asked for a strategy it does not know.
	ErrUnknownKind = errors.New("search: unknown finder kind")
)

// Space is the read-only grid capability a Finder needs. *grid.View implements it.
type Space interface {
	// Size is the number of cells; valid ids are 1..Size.
	Size() int
	// Valid reports whether id addresses a cell.
	Valid(id grid.CellID) bool
	// IsObstacle reports whether id is impassable.
	IsObstacle(id grid.CellID) bool
	// Neighbors appends the passable orthogonal neighbors of id to buf.
	Neighbors(id grid.CellID, buf []grid.CellID) []grid.CellID
	// Manhattan is an admissible, consistent step estimate between a and b.
	Manhattan(a, b grid.CellID) int
}

var _ Space = (*grid.View)(nil)

// Finder computes a shortest path between two cells.
// The returned slice starts with from and ends with to.
type Finder interface {
	FindPath(s Space, from, to grid.CellID) ([]grid.CellID, error)
}

// Kind names a Finder strategy.
type Kind string

const (
	// KindBidirectional selects Bidirectional.
	KindBidirectional Kind = "bidirectional"
	// KindAStar selects AStar.
	KindAStar Kind = "astar"
	// KindBFS selects BFS.
	KindBFS Kind = "bfs"
	// KindDijkstra also selects BFS: with unit step costs the two settle
	// cells in the same order.
	KindDijkstra Kind = "dijkstra"
)

// Options configures a Finder.
type Options struct {
	// OnExpand is called each time a cell is closed (popped and expanded).
	// Bidirectional calls it for both frontiers.
	OnExpand func(id grid.CellID)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{OnExpand: func(grid.CellID) {}}
}

// WithOnExpand registers an expansion hook. A nil fn is ignored.
func WithOnExpand(fn func(id grid.CellID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// New returns the Finder registered under kind.
func New(kind Kind, opts ...Option) (Finder, error) {
	switch kind {
	case KindBidirectional, "":
		return NewBidirectional(opts...), nil
	case KindAStar:
		return NewAStar(opts...), nil
	case KindBFS, KindDijkstra:
		return NewBFS(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
