package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hopdist/bfs"
	"github.com/katalvlaran/hopdist/core"
)

// ExampleFindDistances computes hop counts on a small graph with an isolated vertex.
func ExampleFindDistances() {
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(0, 3)
	// vertex 4 has no edges

	dist, err := bfs.FindDistances(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output:
	// [0 1 2 1 -1]
}

// ExampleResult_PathTo finds the fewest-hop route when two routes compete.
func ExampleResult_PathTo() {
	// Route 1: 0–1–2–3–6 (4 hops), Route 2: 0–4–5–6 (3 hops)
	g, _ := core.NewGraph(7)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 6}, {0, 4}, {4, 5}, {5, 6}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(6)
	fmt.Println(path, res.Dist[6])
	// Output:
	// [0 4 5 6] 3
}
