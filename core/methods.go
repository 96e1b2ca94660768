// Package core: Graph method implementations.
//
// Adjacency is an arena of neighbor slices indexed by vertex id, so lookups
// and insertions never touch a map. A single RWMutex guards both the arena
// and the edge log.

package core

import "fmt"

// VertexCount returns the number of vertices; valid ids are [0, VertexCount()).
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of successful AddEdge calls.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.adjacency)
}

// Resize sets the vertex count to vertexCount.
//
// Growing keeps every existing neighbor list and appends empty ones.
// Shrinking drops the lists of the removed vertices; edges that still point
// at removed ids from surviving vertices are left as they are, so callers
// should only shrink graphs whose removed vertices carry no edges.
// Returns ErrInvalidArgument if vertexCount is negative.
// Complexity: O(vertexCount) when growing, O(1) otherwise.
func (g *Graph) Resize(vertexCount int) error {
	if vertexCount < 0 {
		return invalidCount(vertexCount)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if vertexCount <= len(g.adjacency) {
		// clear dropped lists so they can be collected
		for i := vertexCount; i < len(g.adjacency); i++ {
			g.adjacency[i] = nil
		}
		g.adjacency = g.adjacency[:vertexCount]
		return nil
	}
	grown := make([][]int, vertexCount)
	copy(grown, g.adjacency)
	g.adjacency = grown

	return nil
}

// AddEdge connects u and v: v is appended to u's neighbor list and u to v's.
// A self-loop (u == v) appends u to its own list twice.
// Returns ErrOutOfRange, leaving the graph untouched, if either endpoint is
// outside [0, VertexCount()).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adjacency)
	if u < 0 || u >= n {
		return fmt.Errorf("%w: endpoint u=%d not in [0,%d)", ErrOutOfRange, u, n)
	}
	if v < 0 || v >= n {
		return fmt.Errorf("%w: endpoint v=%d not in [0,%d)", ErrOutOfRange, v, n)
	}
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
	g.edges = append(g.edges, Edge{From: u, To: v})

	return nil
}

// NeighborsOf returns the neighbors of v in edge-insertion order.
//
// The returned slice aliases internal storage and must be treated as
// read-only. No bounds check is done beyond the slice index itself, so an
// invalid v panics; use HasVertex first when v is untrusted.
// Complexity: O(1).
func (g *Graph) NeighborsOf(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[v]
}

// Degree returns len(NeighborsOf(v)); a self-loop counts twice.
// Returns ErrOutOfRange for an invalid v.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adjacency) {
		return 0, fmt.Errorf("%w: vertex %d not in [0,%d)", ErrOutOfRange, v, len(g.adjacency))
	}

	return len(g.adjacency[v]), nil
}

// Edges returns a copy of the AddEdge log in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// invalidCount wraps ErrInvalidArgument for a negative vertex count.
func invalidCount(n int) error {
	return fmt.Errorf("%w: vertex count %d is negative", ErrInvalidArgument, n)
}
