// Package planner plans routes on an occupancy grid that start at one cell,
// end at another and visit every mandatory waypoint in between.
//
// A call to Plan runs these stages on a single grid snapshot:
//
//  1. range check: every id must address a cell (InvalidCellError);
//  2. obstacle check: no id may be blocked (ValidationError, listing every
//     offending cell);
//  3. connectivity: every pair drawn from {start} ∪ waypoints ∪ {end} must lie
//     in one passable component (UnreachableError naming the first bad pair);
//  4. pairwise paths through the shared pathcache.Cache;
//  5. waypoint ordering by tsp.Solve on the step-count matrix;
//  6. assembly of the ordered segments into one contiguous route.
//
// No path search runs before stages 1 and 2 pass. The grid may be edited
// concurrently; each call works on its own snapshot. A Planner is safe for
// concurrent use.
package planner
