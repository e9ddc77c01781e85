// Package search finds shortest step-count paths between two cells of an
// occupancy grid.
//
// Overview:
//
//   - Finder is the single capability every strategy implements:
//     FindPath(space, from, to) returns the cells from..to inclusive or
//     ErrUnreachable. Callers such as the path cache and the planner depend
//     only on this interface.
//   - Bidirectional runs two best-first frontiers at once, one rooted at each
//     endpoint and each ordered by f = g + Manhattan distance to the opposite
//     endpoint. Frontiers advance one expansion each per iteration.
//   - AStar is the classic single-frontier variant and BFS the uninformed one.
//     Both return paths of the same length as Bidirectional and serve as
//     drop-in alternatives and cross-checks.
//
// Termination of Bidirectional:
//
//   - Every relaxation that touches a cell already labelled by the other
//     frontier proposes a meeting cost mu = gF + gB; the best one is kept.
//   - The search stops once mu <= max(min f forward, min f backward). Each
//     minimum is a lower bound on any route not yet found, so the meeting
//     path is a shortest one.
//   - If either frontier runs dry without a meeting, the endpoints lie in
//     different components and ErrUnreachable is returned.
//
// Tie-break: lower f, then lower h, then lower CellID. Equal-length paths may
// still differ between strategies; compare lengths, not cell sequences.
//
// Complexity (N = rows·cols):
//
//   - Time:  O(N log N) worst case for every strategy, usually far less for
//     Bidirectional and AStar on open grids.
//   - Space: O(N) dense arrays per call.
//
// Thread safety: finders hold no per-call state and may be shared across
// goroutines; the Space must not change during a call (use a grid.View).
package search
