package search

import (
	"container/heap"

	"github.com/katalvlaran/gridroute/grid"
)

// AStar is the single-frontier best-first Finder.
type AStar struct {
	opts Options
}

// NewAStar returns an AStar finder.
func NewAStar(opts ...Option) *AStar {
	return &AStar{opts: buildOptions(opts)}
}

// FindPath returns a shortest path from..to or ErrUnreachable.
// Validation mirrors Bidirectional.FindPath.
func (a *AStar) FindPath(s Space, from, to grid.CellID) ([]grid.CellID, error) {
	if path, done, err := checkEndpoints(s, from, to); done {
		return path, err
	}

	f := newFrontier(s, from, to)
	var nbuf []grid.CellID
	for {
		f.prune()
		if f.pq.Len() == 0 {
			return nil, ErrUnreachable
		}
		u := heap.Pop(&f.pq).(*nodeItem).id
		f.closed[u] = true
		a.opts.OnExpand(u)
		if u == to {
			return walkBack(f.parent, to), nil
		}

		nbuf = s.Neighbors(u, nbuf[:0])
		for _, v := range nbuf {
			ng := f.g[u] + 1
			if f.g[v] >= 0 && ng >= f.g[v] {
				continue
			}
			f.g[v] = ng
			f.parent[v] = u
			heap.Push(&f.pq, &nodeItem{id: v, g: ng, h: s.Manhattan(v, to)})
		}
	}
}
