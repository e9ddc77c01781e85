// Package tsp orders mandatory waypoints between two fixed endpoints.
//
// The problem is the open-path variant of the Travelling Salesman Problem:
// given an (n+2)×(n+2) matrix of pairwise step counts where index 0 is the
// start S, index n+1 is the end E and 1..n are waypoints, find the permutation
// π of 1..n minimizing
//
//	dist[0][π1] + dist[π1][π2] + … + dist[πn][n+1].
//
// Algorithms:
//
//   - Genetic: population max(50, 10n), elitist top-half survival, order
//     crossover, swap mutation with a decaying rate, patience-based early
//     stop. Complexity O(G·P·n) for G generations and population P.
//   - ExactHeldKarp: Held–Karp dynamic programming over waypoint subsets.
//     Complexity O(n²·2ⁿ) time, O(n·2ⁿ) memory; limited to MaxExactWaypoints.
//   - Auto: ExactHeldKarp when n ≤ AutoExactLimit, otherwise Genetic.
//
// Determinism: all randomness comes from Options.Rand or a generator seeded
// from Options.Seed (0 ⇒ a fixed default seed). Same seed, same matrix,
// same result.
//
// Errors are sentinels from types.go; match them with errors.Is.
package tsp
