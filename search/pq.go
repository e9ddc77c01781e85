package search

import "github.com/katalvlaran/gridroute/grid"

// nodeItem is one frontier entry. Entries are never updated in place: a
// better g pushes a fresh item and the stale one is skipped when popped.
type nodeItem struct {
	id grid.CellID
	g  int // steps from the frontier root
	h  int // estimate to the opposite endpoint
}

func (n *nodeItem) f() int { return n.g + n.h }

// nodePQ is a min-heap of *nodeItem ordered by f, then h, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.id < b.id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
