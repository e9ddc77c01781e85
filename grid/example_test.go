package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// ExampleView_Components shows a wall splitting a 3×4 grid into two regions.
//
//	1  2  #  4
//	5  6  #  8
//	9  10 #  12
func ExampleView_Components() {
	g, _ := grid.New(3, 4)
	_ = g.SetObstacles([]grid.CellID{3, 7, 11}, true)

	v := g.Snapshot()
	for i, comp := range v.Components() {
		fmt.Printf("component %d: %v\n", i, comp)
	}
	fmt.Println("1↔4 connected:", v.Connected(1, 4))

	// Output:
	// component 0: [1 2 5 6 9 10]
	// component 1: [4 8 12]
	// 1↔4 connected: false
}
