package core_test

import (
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

// ExampleGraph_AddEdge builds a triangle and prints every neighbor list.
func ExampleGraph_AddEdge() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 0)

	for v := 0; v < g.VertexCount(); v++ {
		fmt.Println(v, g.NeighborsOf(v))
	}
	// Output:
	// 0 [1 2]
	// 1 [0 2]
	// 2 [1 0]
}

// ExampleGraph_Resize grows an empty graph before loading edges, the way the
// text loader does.
func ExampleGraph_Resize() {
	g, _ := core.NewGraph(0)
	_ = g.Resize(2)
	_ = g.AddEdge(0, 1)
	err := g.AddEdge(0, 2)

	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(err)
	// Output:
	// 2 1
	// core: vertex out of range: endpoint v=2 not in [0,2)
}
