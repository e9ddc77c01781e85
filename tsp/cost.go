package tsp

import "fmt"

// PathCost returns dist[0][order[0]] + … + dist[order[n-1]][m-1], the cost of
// visiting order between the fixed endpoints. An empty order costs dist[0][m-1].
// order must be a permutation of 1..m-2.
//
// Complexity: O(n).
func PathCost(dist [][]int, order []int) (int, error) {
	n, err := validateDist(dist)
	if err != nil {
		return 0, err
	}
	if len(order) != n {
		return 0, fmt.Errorf("%w: order has %d entries, want %d", ErrDimensionMismatch, len(order), n)
	}
	seen := make([]bool, n+1)
	for _, w := range order {
		if w < 1 || w > n || seen[w] {
			return 0, fmt.Errorf("%w: order is not a permutation of 1..%d", ErrDimensionMismatch, n)
		}
		seen[w] = true
	}

	return pathCost(dist, order), nil
}

// pathCost is PathCost without validation; hot path of the genetic loop.
func pathCost(dist [][]int, order []int) int {
	var (
		last = len(dist) - 1
		prev = 0
		sum  int
	)
	for _, w := range order {
		sum += dist[prev][w]
		prev = w
	}

	return sum + dist[prev][last]
}
