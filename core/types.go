package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates a structural precondition was violated by
	// the caller, e.g. a negative vertex count. Other packages wrap it for
	// their own argument checks (bfs wraps it for a bad start vertex).
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrOutOfRange indicates a vertex id outside [0, VertexCount()).
	ErrOutOfRange = errors.New("core: vertex out of range")
)

// Edge is one undirected connection as it was passed to AddEdge.
type Edge struct {
	From, To int
}

// Graph is an undirected, unweighted adjacency list over vertices 0..N-1.
//
// adjacency[v] holds the neighbors of v in insertion order; edges keeps the
// AddEdge log so each undirected edge can be reported exactly once.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edges

	adjacency [][]int
	edges     []Edge
}

// NewGraph creates a graph with vertexCount vertices and no edges.
// Returns ErrInvalidArgument if vertexCount is negative.
// Complexity: O(vertexCount).
func NewGraph(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, invalidCount(vertexCount)
	}

	return &Graph{adjacency: make([][]int, vertexCount)}, nil
}
