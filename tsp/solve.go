package tsp

// Solve validates dist and opts and routes to the chosen algorithm.
//
// Contracts:
//   - dist is (n+2)×(n+2): index 0 is the start, n+1 the end, 1..n waypoints;
//   - the returned Order is a permutation of 1..n;
//   - with the same dist and Seed (and Rand == nil) the Result is identical.
//
// Complexity: validation O(n²); the rest per algorithm (see doc.go).
func Solve(dist [][]int, opts Options) (Result, error) {
	n, err := validateDist(dist)
	if err != nil {
		return Result{}, err
	}
	if err = validateOptions(opts); err != nil {
		return Result{}, err
	}

	switch opts.Algo {
	case ExactHeldKarp:
		if n > MaxExactWaypoints {
			return Result{}, ErrTooLarge
		}
		return exact(dist, n), nil
	case Auto:
		if n <= AutoExactLimit {
			return exact(dist, n), nil
		}
	}

	return genetic(dist, n, opts, rngFor(opts)), nil
}
