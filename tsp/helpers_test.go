package tsp_test

import "math/rand"

// lineDist builds |pos[i]-pos[j]|; pos[0] is the start, pos[len-1] the end.
func lineDist(pos ...int) [][]int {
	m := len(pos)
	d := make([][]int, m)
	for i := range d {
		d[i] = make([]int, m)
		for j := range d[i] {
			d[i][j] = abs(pos[i] - pos[j])
		}
	}
	return d
}

// manhattanDist builds a random instance of m points on a size×size grid.
func manhattanDist(m, size int, seed int64) [][]int {
	r := rand.New(rand.NewSource(seed))
	xs, ys := make([]int, m), make([]int, m)
	for i := 0; i < m; i++ {
		xs[i], ys[i] = r.Intn(size), r.Intn(size)
	}
	d := make([][]int, m)
	for i := range d {
		d[i] = make([]int, m)
		for j := range d[i] {
			d[i][j] = abs(xs[i]-xs[j]) + abs(ys[i]-ys[j])
		}
	}
	return d
}

// flatDist has every off-diagonal entry equal to 1.
func flatDist(m int) [][]int {
	d := make([][]int, m)
	for i := range d {
		d[i] = make([]int, m)
		for j := range d[i] {
			if i != j {
				d[i][j] = 1
			}
		}
	}
	return d
}

// bruteForce enumerates every order of 1..n and returns the minimum cost.
func bruteForce(dist [][]int) int {
	n := len(dist) - 2
	order := make([]int, n)
	for i := range order {
		order[i] = i + 1
	}
	best := -1
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			c, prev := 0, 0
			for _, w := range order {
				c += dist[prev][w]
				prev = w
			}
			c += dist[prev][n+1]
			if best < 0 || c < best {
				best = c
			}
			return
		}
		for i := k; i < n; i++ {
			order[k], order[i] = order[i], order[k]
			rec(k + 1)
			order[k], order[i] = order[i], order[k]
		}
	}
	rec(0)
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
