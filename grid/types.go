package grid

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrCellOutOfRange indicates a cell index outside [1, rows·cols].
	ErrCellOutOfRange = errors.New("grid: cell index out of range")
)

// CellID is the 1-based sequential index of a cell: row*cols + col + 1.
type CellID int

// Cell addresses a cell by its zero-based row and column.
type Cell struct {
	Row, Col int
}

// serials hands out Grid identities; the first Grid gets 1.
var serials atomic.Uint64

// offsets lists orthogonal moves in N, E, S, W order as {dRow, dCol}.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a rows×cols occupancy grid whose obstacle set may be edited
// between planning calls. Dimensions never change after New.
// All methods are safe for concurrent use.
type Grid struct {
	rows, cols int
	serial     uint64

	mu        sync.RWMutex
	obstacles []bool // indexed by CellID; slot 0 unused
	version   uint64
}

// View is an immutable snapshot of a Grid. It is safe for concurrent reads.
type View struct {
	rows, cols int
	serial     uint64
	version    uint64
	obstacles  []bool

	compOnce sync.Once
	labels   []int // component label per CellID; -1 for obstacles
}
