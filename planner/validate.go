package planner

import "github.com/katalvlaran/gridroute/grid"

// checkRange reports every id outside the grid, de-duplicated, in input order.
func checkRange(v *grid.View, ids []grid.CellID) error {
	bad := collect(ids, func(id grid.CellID) bool { return !v.Valid(id) })
	if len(bad) > 0 {
		return &InvalidCellError{Cells: bad, Size: v.Size()}
	}

	return nil
}

// checkObstacles reports every blocked id, de-duplicated, in input order.
// ids must already be in range.
func checkObstacles(v *grid.View, ids []grid.CellID) error {
	bad := collect(ids, v.IsObstacle)
	if len(bad) > 0 {
		return &ValidationError{Cells: bad}
	}

	return nil
}

// checkConnected names the first pair (i < j, row-major) that lies in
// different passable components.
func checkConnected(v *grid.View, nodes []grid.CellID) error {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if !v.Connected(nodes[i], nodes[j]) {
				return &UnreachableError{From: nodes[i], To: nodes[j]}
			}
		}
	}

	return nil
}

// normalizeWaypoints drops duplicates and any waypoint equal to start or end,
// keeping first-seen order.
func normalizeWaypoints(start, end grid.CellID, waypoints []grid.CellID) []grid.CellID {
	seen := map[grid.CellID]struct{}{start: {}, end: {}}
	out := make([]grid.CellID, 0, len(waypoints))
	for _, w := range waypoints {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	return out
}

func collect(ids []grid.CellID, bad func(grid.CellID) bool) []grid.CellID {
	var (
		out  []grid.CellID
		seen = make(map[grid.CellID]struct{}, len(ids))
	)
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if bad(id) {
			out = append(out, id)
		}
	}

	return out
}
