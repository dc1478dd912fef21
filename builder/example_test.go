package builder_test

import (
	"fmt"

	"github.com/katalvlaran/isolator/builder"
)

// ExampleBuildGraph composes a disjoint union of a triangle and a 4-cycle.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil,
		builder.Disjoint(builder.Complete(3), builder.Cycle(4)),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices(), g.EdgeCount())
	// Output:
	// [0 1 2 3 4 5 6] 7
}

// ExampleGrid shows row-major numbering.
func ExampleGrid() {
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(2, 2))
	for _, v := range g.Vertices() {
		nbrs, _ := g.Neighbors(v)
		fmt.Println(v, nbrs)
	}
	// Output:
	// 0 [1 2]
	// 1 [0 3]
	// 2 [0 3]
	// 3 [1 2]
}
