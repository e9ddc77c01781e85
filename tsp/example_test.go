package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/tsp"
)

// ExampleSolve orders three waypoints lying between S at 0 and E at 9 on a line.
func ExampleSolve() {
	// Index 0 = S, 1..3 = waypoints at 6, 3, 7, index 4 = E.
	pos := []int{0, 6, 3, 7, 9}
	dist := make([][]int, len(pos))
	for i := range dist {
		dist[i] = make([]int, len(pos))
		for j := range dist[i] {
			d := pos[i] - pos[j]
			if d < 0 {
				d = -d
			}
			dist[i][j] = d
		}
	}

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.ExactHeldKarp
	res, err := tsp.Solve(dist, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order:", res.Order)
	fmt.Println("cost:", res.Cost)
	// Output:
	// order: [2 1 3]
	// cost: 9
}
