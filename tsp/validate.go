package tsp

import "fmt"

// validateDist checks the shape and values of dist and returns n, the number
// of waypoints (rows minus the two endpoints).
//
// Contract:
//   - at least 2 rows (start and end);
//   - square;
//   - zero diagonal;
//   - no negative entries.
//
// Complexity: O(m²) for an m×m matrix.
func validateDist(dist [][]int) (int, error) {
	var m int
	m = len(dist)
	if m < 2 {
		return 0, ErrDimensionMismatch
	}

	var i, j int
	for i = 0; i < m; i++ {
		if len(dist[i]) != m {
			return 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(dist[i]), m)
		}
	}
	for i = 0; i < m; i++ {
		if dist[i][i] != 0 {
			return 0, fmt.Errorf("%w: dist[%d][%d]=%d", ErrNonZeroDiagonal, i, i, dist[i][i])
		}
		for j = 0; j < m; j++ {
			if dist[i][j] < 0 {
				return 0, fmt.Errorf("%w: dist[%d][%d]=%d", ErrNegativeWeight, i, j, dist[i][j])
			}
		}
	}

	return m - 2, nil
}

// validateOptions checks Options independently of any matrix.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Algo {
	case Genetic, ExactHeldKarp, Auto:
	default:
		return ErrUnsupportedAlgorithm
	}
	if opts.PopulationSize < 0 || opts.PopulationSize == 1 {
		return fmt.Errorf("%w: population size %d", ErrInvalidOptions, opts.PopulationSize)
	}
	if opts.MaxGenerations < 1 {
		return fmt.Errorf("%w: max generations %d", ErrInvalidOptions, opts.MaxGenerations)
	}
	if opts.Patience < 1 {
		return fmt.Errorf("%w: patience %d", ErrInvalidOptions, opts.Patience)
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		return fmt.Errorf("%w: mutation rate %v not in [0,1]", ErrInvalidOptions, opts.MutationRate)
	}
	if opts.MutationDecay <= 0 || opts.MutationDecay > 1 {
		return fmt.Errorf("%w: mutation decay %v not in (0,1]", ErrInvalidOptions, opts.MutationDecay)
	}

	return nil
}

// Validate reports whether opts is usable by Solve.
func (o Options) Validate() error { return validateOptions(o) }
