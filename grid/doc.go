// Package grid models a rectangular occupancy grid as a graph of
// orthogonally connected cells, the substrate every planner component queries.
//
// What:
//
//   - Grid holds fixed dimensions plus a mutable obstacle set guarded by a
//     sync.RWMutex. Every effective mutation bumps a version stamp.
//   - View is an immutable snapshot of a Grid taken at one instant. Planning
//     calls work on a View so that concurrent map edits never leak into a
//     half-finished search.
//   - Cells are addressed by a 1-based CellID (index = row*cols + col + 1) or
//     by a (row, col) Cell; ID and CellOf convert between the two.
//   - Neighbors resolves up to four passable orthogonal neighbors on demand;
//     nothing is cached, so there is nothing to invalidate.
//   - Components labels connected passable regions so that unreachable pairs
//     can be rejected without running a search.
//
// Complexity:
//
//   - Snapshot:   O(R×C) time and memory (obstacle copy).
//   - Neighbors:  O(1).
//   - Components: O(R×C) on first call per View, O(1) afterwards.
//
// Errors:
//
//   - ErrEmptyGrid:      rows or cols is not positive.
//   - ErrCellOutOfRange: a CellID lies outside [1, rows·cols].
package grid
