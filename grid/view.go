package grid

// Rows returns the number of rows.
func (v *View) Rows() int { return v.rows }

// Cols returns the number of columns.
func (v *View) Cols() int { return v.cols }

// Size returns the number of cells, rows·cols.
func (v *View) Size() int { return v.rows * v.cols }

// Serial returns the identity of the Grid this View was taken from.
func (v *View) Serial() uint64 { return v.serial }

// Version returns the grid version this View was taken at.
func (v *View) Version() uint64 { return v.version }

// Valid reports whether id addresses a cell of this grid.
func (v *View) Valid(id CellID) bool {
	return id >= 1 && int(id) <= v.rows*v.cols
}

// ID converts a (row, col) cell into its CellID.
func (v *View) ID(c Cell) CellID {
	return CellID(c.Row*v.cols + c.Col + 1)
}

// CellOf converts a CellID back into its (row, col) cell.
func (v *View) CellOf(id CellID) Cell {
	i := int(id) - 1
	return Cell{Row: i / v.cols, Col: i % v.cols}
}

// InBounds reports whether (row, col) lies inside the grid.
func (v *View) InBounds(row, col int) bool {
	return row >= 0 && row < v.rows && col >= 0 && col < v.cols
}

// IsObstacle reports whether id was blocked when the View was taken.
func (v *View) IsObstacle(id CellID) bool {
	return v.Valid(id) && v.obstacles[id]
}

// Obstacles returns all blocked cells in ascending order.
func (v *View) Obstacles() []CellID {
	return collectObstacles(v.obstacles)
}

// Neighbors appends to buf the in-bounds, passable orthogonal neighbors of id
// in N, E, S, W order and returns the extended slice. Pass buf[:0] to reuse
// storage across calls.
// Complexity: O(1).
func (v *View) Neighbors(id CellID, buf []CellID) []CellID {
	c := v.CellOf(id)
	for _, d := range offsets {
		r, col := c.Row+d[0], c.Col+d[1]
		if !v.InBounds(r, col) {
			continue
		}
		n := CellID(r*v.cols + col + 1)
		if v.obstacles[n] {
			continue
		}
		buf = append(buf, n)
	}

	return buf
}

// Manhattan returns |Δrow| + |Δcol| between a and b, the exact step count on
// an empty grid and an admissible estimate otherwise.
func (v *View) Manhattan(a, b CellID) int {
	ca, cb := v.CellOf(a), v.CellOf(b)
	return abs(ca.Row-cb.Row) + abs(ca.Col-cb.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
