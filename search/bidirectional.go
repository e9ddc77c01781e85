package search

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridroute/grid"
)

// Bidirectional is the two-frontier best-first Finder. The zero value is not
// usable; construct it with NewBidirectional.
type Bidirectional struct {
	opts Options
}

// NewBidirectional returns a Bidirectional finder.
func NewBidirectional(opts ...Option) *Bidirectional {
	return &Bidirectional{opts: buildOptions(opts)}
}

// FindPath returns a shortest path from..to or ErrUnreachable.
//
// Preconditions and validation (in order):
//  1. s must be non-nil (ErrNilSpace).
//  2. from and to must be valid ids (grid.ErrCellOutOfRange).
//  3. from and to must be passable (ErrUnreachable).
//
// Complexity: O(N log N) time, O(N) memory.
func (b *Bidirectional) FindPath(s Space, from, to grid.CellID) ([]grid.CellID, error) {
	if path, done, err := checkEndpoints(s, from, to); done {
		return path, err
	}

	r := &bidirRunner{
		space: s,
		opts:  b.opts,
		fwd:   newFrontier(s, from, to),
		bwd:   newFrontier(s, to, from),
		mu:    math.MaxInt,
	}
	if !r.run() {
		return nil, ErrUnreachable
	}

	return r.path(), nil
}

// frontier is one direction of the search: rooted at root, aiming at goal.
type frontier struct {
	root, goal grid.CellID
	g          []int
	parent     []grid.CellID
	closed     []bool
	pq         nodePQ
}

func newFrontier(s Space, root, goal grid.CellID) *frontier {
	n := s.Size()
	f := &frontier{
		root:   root,
		goal:   goal,
		g:      newLabels(n),
		parent: make([]grid.CellID, n+1),
		closed: make([]bool, n+1),
		pq:     make(nodePQ, 0, 64),
	}
	f.g[root] = 0
	heap.Push(&f.pq, &nodeItem{id: root, g: 0, h: s.Manhattan(root, goal)})

	return f
}

// prune drops stale and already closed entries from the top of the heap.
func (f *frontier) prune() {
	for f.pq.Len() > 0 {
		top := f.pq[0]
		if !f.closed[top.id] && top.g == f.g[top.id] {
			return
		}
		heap.Pop(&f.pq)
	}
}

// minF is the smallest f among live entries, or MaxInt when exhausted.
func (f *frontier) minF() int {
	f.prune()
	if f.pq.Len() == 0 {
		return math.MaxInt
	}

	return f.pq[0].f()
}

// bidirRunner holds the mutable state of one Bidirectional call.
type bidirRunner struct {
	space    Space
	opts     Options
	fwd, bwd *frontier
	mu       int         // best known meeting cost
	meet     grid.CellID // cell realising mu
	nbuf     []grid.CellID
}

// run alternates one forward and one backward expansion until the meeting
// cost is provably optimal. It reports whether a meeting was found.
func (r *bidirRunner) run() bool {
	for {
		if r.settled() {
			return true
		}
		if !r.step(r.fwd, r.bwd) {
			return r.mu != math.MaxInt
		}
		if r.settled() {
			return true
		}
		if !r.step(r.bwd, r.fwd) {
			return r.mu != math.MaxInt
		}
	}
}

// settled reports whether mu can no longer be improved.
func (r *bidirRunner) settled() bool {
	if r.mu == math.MaxInt {
		return false
	}
	bound := max(r.fwd.minF(), r.bwd.minF())

	return r.mu <= bound
}

// step expands the best live node of f. It returns false when f is exhausted.
func (r *bidirRunner) step(f, other *frontier) bool {
	f.prune()
	if f.pq.Len() == 0 {
		return false
	}
	u := heap.Pop(&f.pq).(*nodeItem).id
	f.closed[u] = true
	r.opts.OnExpand(u)

	// A cell closed by both frontiers is a meeting point.
	if other.closed[u] {
		r.propose(u, f.g[u]+other.g[u])
	}

	r.nbuf = r.space.Neighbors(u, r.nbuf[:0])
	for _, v := range r.nbuf {
		ng := f.g[u] + 1
		if f.g[v] >= 0 && ng >= f.g[v] {
			continue
		}
		f.g[v] = ng
		f.parent[v] = u
		heap.Push(&f.pq, &nodeItem{id: v, g: ng, h: r.space.Manhattan(v, f.goal)})
		if other.g[v] >= 0 {
			r.propose(v, ng+other.g[v])
		}
	}

	return true
}

func (r *bidirRunner) propose(id grid.CellID, cost int) {
	if cost < r.mu {
		r.mu = cost
		r.meet = id
	}
}

// path joins root..meet from the forward tree with meet..goal from the backward tree.
func (r *bidirRunner) path() []grid.CellID {
	out := walkBack(r.fwd.parent, r.meet)
	for cur := r.bwd.parent[r.meet]; cur != noParent; cur = r.bwd.parent[cur] {
		out = append(out, cur)
	}

	return out
}
