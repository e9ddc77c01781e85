package tsp

import (
	"errors"
	"math/rand"
)

// Sentinel errors.
var (
	// ErrNonSquare is returned when a row length differs from the row count.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch is returned for a nil or too small matrix (fewer than 2 rows).
	ErrDimensionMismatch = errors.New("tsp: distance matrix must have at least start and end")

	// ErrNonZeroDiagonal is returned when dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero diagonal entry")

	// ErrNegativeWeight is returned for any negative entry.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrTooLarge is returned by Exact when n exceeds MaxExactWaypoints.
	ErrTooLarge = errors.New("tsp: too many waypoints for exact solver")

	// ErrUnsupportedAlgorithm is returned for an unknown Algo.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidOptions is returned when Options fail validation.
	ErrInvalidOptions = errors.New("tsp: invalid options")
)

// Algo selects the solver used by Solve.
type Algo int

const (
	// Genetic is the population-based heuristic.
	Genetic Algo = iota
	// ExactHeldKarp is the exact dynamic program.
	ExactHeldKarp
	// Auto picks ExactHeldKarp for small instances and Genetic otherwise.
	Auto
)

// String implements fmt.Stringer.
func (a Algo) String() string {
	switch a {
	case Genetic:
		return "genetic"
	case ExactHeldKarp:
		return "exact"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseAlgo maps a name ("genetic", "exact", "auto") to an Algo.
// The empty string maps to Genetic.
func ParseAlgo(name string) (Algo, error) {
	switch name {
	case "", "genetic":
		return Genetic, nil
	case "exact":
		return ExactHeldKarp, nil
	case "auto":
		return Auto, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

const (
	// MaxExactWaypoints bounds the Held–Karp table to 2^16 subsets.
	MaxExactWaypoints = 16

	// AutoExactLimit is the largest n for which Auto runs the exact solver.
	AutoExactLimit = 8

	// MinPopulation is the floor of the default population size.
	MinPopulation = 50
)

// Options configures Solve.
type Options struct {
	// Algo selects the solver.
	Algo Algo

	// PopulationSize is the genetic population; 0 ⇒ max(MinPopulation, 10·n).
	PopulationSize int

	// MaxGenerations caps the genetic loop.
	MaxGenerations int

	// Patience is the number of generations without improvement before stopping.
	Patience int

	// MutationRate is p0 in p(gen) = p0 · MutationDecay^gen.
	MutationRate float64

	// MutationDecay is the per-generation decay factor, in (0, 1].
	MutationDecay float64

	// Seed drives the generator when Rand is nil; 0 ⇒ fixed default seed.
	Seed int64

	// Rand, if non-nil, is used instead of a generator built from Seed.
	// A *rand.Rand is not goroutine-safe; do not share it across calls in flight.
	Rand *rand.Rand
}

// DefaultOptions returns the standard genetic configuration.
func DefaultOptions() Options {
	return Options{
		Algo:           Genetic,
		PopulationSize: 0,
		MaxGenerations: 500,
		Patience:       20,
		MutationRate:   0.1,
		MutationDecay:  0.995,
	}
}

// Result is the outcome of a solver.
type Result struct {
	// Order is the visiting order of waypoint indices (1..n), S and E excluded.
	Order []int

	// Cost is the total step count S → Order… → E.
	Cost int

	// Generations is the number of genetic generations evaluated (0 for Exact).
	Generations int

	// BestGeneration is the generation that produced Cost (0 for Exact).
	BestGeneration int
}
