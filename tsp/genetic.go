package tsp

import (
	"math"
	"math/rand"
	"slices"
	"sort"
)

// chromosome is one candidate visiting order with its cached fitness.
type chromosome struct {
	order []int
	cost  int
}

// SolveGenetic runs the genetic search directly, ignoring opts.Algo.
func SolveGenetic(dist [][]int, opts Options) (Result, error) {
	n, err := validateDist(dist)
	if err != nil {
		return Result{}, err
	}
	if err = validateOptions(opts); err != nil {
		return Result{}, err
	}

	return genetic(dist, n, opts, rngFor(opts)), nil
}

// genetic evolves permutations of 1..n.
//
// Each generation:
//  1. sort by cost ascending (stable, so equal costs keep their order);
//  2. record the best; stop after opts.Patience generations without improvement;
//  3. keep the top half;
//  4. refill with order-crossover children of random survivors, each mutated
//     with probability MutationRate·MutationDecay^gen.
//
// Complexity: O(G · P · n) plus O(G · P log P) for sorting.
func genetic(dist [][]int, n int, opts Options, rng *rand.Rand) Result {
	if n <= 1 {
		order := waypointPerm(n, rng)
		return Result{Order: order, Cost: pathCost(dist, order)}
	}

	size := opts.PopulationSize
	if size == 0 {
		size = max(MinPopulation, 10*n)
	}

	pop := make([]chromosome, size)
	for i := range pop {
		order := waypointPerm(n, rng)
		pop[i] = chromosome{order: order, cost: pathCost(dist, order)}
	}

	var (
		best     chromosome
		bestGen  int
		stale    int
		gen      int
		keep     = max(1, size/2)
		used     = make([]bool, n+1)
		improved bool
	)
	best.cost = math.MaxInt
	for gen = 0; gen < opts.MaxGenerations; gen++ {
		sort.SliceStable(pop, func(i, j int) bool { return pop[i].cost < pop[j].cost })

		improved = pop[0].cost < best.cost
		if improved {
			best = chromosome{order: slices.Clone(pop[0].order), cost: pop[0].cost}
			bestGen = gen
			stale = 0
		} else {
			stale++
			if stale >= opts.Patience {
				gen++
				break
			}
		}

		rate := opts.MutationRate * math.Pow(opts.MutationDecay, float64(gen))
		for i := keep; i < size; i++ {
			p1 := pop[rng.Intn(keep)].order
			p2 := pop[rng.Intn(keep)].order
			child := orderCrossover(p1, p2, pop[i].order, used, rng)
			if rng.Float64() < rate {
				swapMutate(child, rng)
			}
			pop[i] = chromosome{order: child, cost: pathCost(dist, child)}
		}
	}

	return Result{
		Order:          best.order,
		Cost:           best.cost,
		Generations:    gen,
		BestGeneration: bestGen,
	}
}

// orderCrossover copies p1[i..j] into the child at the same positions and
// fills the rest with p2's genes in p2's relative order, skipping genes
// already present. dst is reused as the child buffer when it has length n and
// must not alias either parent; used is scratch of length n+1.
// With n ≤ 1 the child is a copy of p1.
//
// Complexity: O(n).
func orderCrossover(p1, p2, dst []int, used []bool, rng *rand.Rand) []int {
	n := len(p1)
	child := dst
	if child == nil || len(child) != n {
		child = make([]int, n)
	}
	if n <= 1 {
		copy(child, p1)
		return child
	}

	i, j := rng.Intn(n), rng.Intn(n)
	if i > j {
		i, j = j, i
	}

	clear(used)
	for k := i; k <= j; k++ {
		child[k] = p1[k]
		used[p1[k]] = true
	}

	pos := 0
	for _, g := range p2 {
		if used[g] {
			continue
		}
		if pos == i {
			pos = j + 1
		}
		child[pos] = g
		pos++
	}

	return child
}

// swapMutate exchanges two distinct random positions.
func swapMutate(order []int, rng *rand.Rand) {
	n := len(order)
	if n < 2 {
		return
	}
	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}
	order[a], order[b] = order[b], order[a]
}
