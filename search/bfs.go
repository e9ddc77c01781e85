package search

import "github.com/katalvlaran/gridroute/grid"

// BFS is the uninformed breadth-first Finder. On a unit-cost grid it is
// equivalent to Dijkstra.
type BFS struct {
	opts Options
}

// NewBFS returns a BFS finder.
func NewBFS(opts ...Option) *BFS {
	return &BFS{opts: buildOptions(opts)}
}

// FindPath returns a shortest path from..to or ErrUnreachable.
// Validation mirrors Bidirectional.FindPath.
func (b *BFS) FindPath(s Space, from, to grid.CellID) ([]grid.CellID, error) {
	if path, done, err := checkEndpoints(s, from, to); done {
		return path, err
	}

	n := s.Size()
	seen := make([]bool, n+1)
	parent := make([]grid.CellID, n+1)
	queue := make([]grid.CellID, 0, n)
	queue = append(queue, from)
	seen[from] = true

	var nbuf []grid.CellID
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		b.opts.OnExpand(u)
		nbuf = s.Neighbors(u, nbuf[:0])
		for _, v := range nbuf {
			if seen[v] {
				continue
			}
			seen[v] = true
			parent[v] = u
			if v == to {
				return walkBack(parent, to), nil
			}
			queue = append(queue, v)
		}
	}

	return nil, ErrUnreachable
}
