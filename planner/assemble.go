package planner

import "github.com/katalvlaran/gridroute/grid"

// Assemble joins consecutive path segments into one route. The first segment
// is appended whole; every later segment drops its leading cell, which is the
// junction already emitted by the previous one.
func Assemble(segments [][]grid.CellID) []grid.CellID {
	if len(segments) == 0 {
		return nil
	}
	total := 0
	for _, s := range segments {
		total += len(s)
	}

	route := make([]grid.CellID, 0, total)
	route = append(route, segments[0]...)
	for _, s := range segments[1:] {
		if len(s) == 0 {
			continue
		}
		route = append(route, s[1:]...)
	}

	return route
}
