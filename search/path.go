package search

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridroute/grid"
)

// noParent marks a frontier root; CellIDs start at 1.
const noParent grid.CellID = 0

// checkEndpoints validates a FindPath request. It returns done=true with the
// trivial single-cell path when from == to.
func checkEndpoints(s Space, from, to grid.CellID) (trivial []grid.CellID, done bool, err error) {
	if s == nil {
		return nil, true, ErrNilSpace
	}
	for _, id := range [2]grid.CellID{from, to} {
		if !s.Valid(id) {
			return nil, true, fmt.Errorf("%w: %d not in [1,%d]", grid.ErrCellOutOfRange, id, s.Size())
		}
		if s.IsObstacle(id) {
			return nil, true, fmt.Errorf("%w: cell %d is blocked", ErrUnreachable, id)
		}
	}
	if from == to {
		return []grid.CellID{from}, true, nil
	}

	return nil, false, nil
}

// walkBack follows parent links from id to the root and returns root..id.
func walkBack(parent []grid.CellID, id grid.CellID) []grid.CellID {
	var path []grid.CellID
	for cur := id; cur != noParent; cur = parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}

// newLabels returns a dense g-array of size n+1 with every entry unseen (-1).
func newLabels(n int) []int {
	g := make([]int, n+1)
	for i := range g {
		g[i] = -1
	}

	return g
}
