package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/search"
)

// ExampleBidirectional_FindPath routes around a blocked cell on a 3×3 grid.
//
//	1 # 3
//	4 5 6
//	7 8 9
func ExampleBidirectional_FindPath() {
	g, _ := grid.New(3, 3)
	_ = g.SetObstacle(2, true)

	path, err := search.NewBidirectional().FindPath(g.Snapshot(), 1, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", len(path)-1)
	fmt.Println("path:", path)

	// Output:
	// steps: 4
	// path: [1 4 5 6 3]
}
