// Package export renders planned routes for people and map tools.
//
// GeoJSON places cell (row, col) at the unit square [col, col+1] × [R-row-1, R-row]
// for a grid of R rows, so north is up and one cell is one coordinate unit.
// Draw produces a fixed-width terminal map styled with lipgloss.
package export
