package planner_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/planner"
)

// ExamplePlanner_Plan plans across a 5×5 grid through its center cell.
func ExamplePlanner_Plan() {
	g, _ := grid.New(5, 5)
	p, _ := planner.New(g, planner.WithSeed(1))

	pl, err := p.Plan(context.Background(), 1, 25, []grid.CellID{13})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", pl.Steps)
	fmt.Println("order:", pl.Order)

	_ = g.SetObstacle(13, true)
	_, err = p.Plan(context.Background(), 1, 25, []grid.CellID{13})
	var verr *planner.ValidationError
	fmt.Println("blocked:", errors.As(err, &verr), verr.Cells)
	// Output:
	// steps: 8
	// order: [13]
	// blocked: true [13]
}
