package tsp

import "math"

// Exact solves the open-path ordering exactly with the Held–Karp dynamic program.
//
// dp[mask][j] is the minimum cost to leave S, visit exactly the waypoints in
// mask (bit k ⇔ waypoint k+1) and stand on waypoint j+1. The path is closed
// by the final hop to E instead of a return to S.
//
// Ties are broken toward the lower waypoint index, so the result is a pure
// function of dist.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// Errors: validation sentinels, ErrTooLarge when n > MaxExactWaypoints.
func Exact(dist [][]int) (Result, error) {
	n, err := validateDist(dist)
	if err != nil {
		return Result{}, err
	}
	if n > MaxExactWaypoints {
		return Result{}, ErrTooLarge
	}

	return exact(dist, n), nil
}

func exact(dist [][]int, n int) Result {
	last := n + 1
	if n == 0 {
		return Result{Order: []int{}, Cost: dist[0][last]}
	}

	const inf = math.MaxInt / 4
	var (
		full   = 1<<n - 1
		dp     = make([]int, (full+1)*n)
		parent = make([]int8, (full+1)*n)
	)
	for i := range dp {
		dp[i] = inf
		parent[i] = -1
	}
	// Base case: S straight to waypoint j.
	for j := 0; j < n; j++ {
		dp[(1<<j)*n+j] = dist[0][j+1]
	}

	for mask := 1; mask <= full; mask++ {
		for j := 0; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prevMask := mask ^ (1 << j)
			if prevMask == 0 {
				continue
			}
			for k := 0; k < n; k++ {
				if prevMask&(1<<k) == 0 {
					continue
				}
				pc := dp[prevMask*n+k]
				if pc >= inf {
					continue
				}
				cand := pc + dist[k+1][j+1]
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = int8(k)
				}
			}
		}
	}

	// Close with the hop to E.
	best, end := inf, -1
	for j := 0; j < n; j++ {
		total := dp[full*n+j] + dist[j+1][last]
		if total < best {
			best, end = total, j
		}
	}

	// Reconstruct backwards from the last waypoint.
	order := make([]int, n)
	mask, j := full, end
	for i := n - 1; i >= 0; i-- {
		order[i] = j + 1
		p := int(parent[mask*n+j])
		mask ^= 1 << j
		j = p
	}

	return Result{Order: order, Cost: best}
}
