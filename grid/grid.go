package grid

import "fmt"

// New returns an obstacle-free rows×cols grid at version 0.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(R×C).
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		rows:      rows,
		cols:      cols,
		serial:    serials.Add(1),
		obstacles: make([]bool, rows*cols+1),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells, rows·cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// Serial returns the process-unique identity of g. Two grids never share a
// Serial, even when their versions coincide.
func (g *Grid) Serial() uint64 { return g.serial }

// Version returns the current obstacle version stamp.
func (g *Grid) Version() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}

// Valid reports whether id addresses a cell of this grid.
func (g *Grid) Valid(id CellID) bool {
	return id >= 1 && int(id) <= g.rows*g.cols
}

// ID converts a (row, col) cell into its CellID. The cell is not range-checked.
func (g *Grid) ID(c Cell) CellID {
	return CellID(c.Row*g.cols + c.Col + 1)
}

// CellOf converts a CellID back into its (row, col) cell.
func (g *Grid) CellOf(id CellID) Cell {
	i := int(id) - 1
	return Cell{Row: i / g.cols, Col: i % g.cols}
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsObstacle reports whether id is currently blocked.
// Out-of-range ids are reported as not blocked.
func (g *Grid) IsObstacle(id CellID) bool {
	if !g.Valid(id) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.obstacles[id]
}

// SetObstacle marks id as blocked or passable. The version is bumped only
// when the state actually changes.
func (g *Grid) SetObstacle(id CellID, blocked bool) error {
	return g.SetObstacles([]CellID{id}, blocked)
}

// SetObstacles applies the same state to every id atomically: either all ids
// are valid and applied, or none is and ErrCellOutOfRange is returned.
func (g *Grid) SetObstacles(ids []CellID, blocked bool) error {
	for _, id := range ids {
		if !g.Valid(id) {
			return fmt.Errorf("%w: %d not in [1,%d]", ErrCellOutOfRange, id, g.Size())
		}
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	changed := false
	for _, id := range ids {
		if g.obstacles[id] != blocked {
			g.obstacles[id] = blocked
			changed = true
		}
	}
	if changed {
		g.version++
	}

	return nil
}

// Obstacles returns all blocked cells in ascending order.
func (g *Grid) Obstacles() []CellID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return collectObstacles(g.obstacles)
}

// Snapshot copies the current obstacle state into an immutable View.
// Complexity: O(R×C).
func (g *Grid) Snapshot() *View {
	g.mu.RLock()
	obs := make([]bool, len(g.obstacles))
	copy(obs, g.obstacles)
	ver := g.version
	g.mu.RUnlock()

	return &View{rows: g.rows, cols: g.cols, serial: g.serial, version: ver, obstacles: obs}
}

func collectObstacles(obs []bool) []CellID {
	var out []CellID
	for i := 1; i < len(obs); i++ {
		if obs[i] {
			out = append(out, CellID(i))
		}
	}

	return out
}
