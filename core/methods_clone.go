// File: methods_clone.go
// Role: snapshotting graph instances.
// Concurrency:
//   - Read lock for the whole copy; the source graph is never mutated.

package core

// Clone returns a deep copy of the graph: vertex range, neighbor lists and
// edge log. Later mutations of either graph are invisible to the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make([][]int, len(g.adjacency)),
		edges:     make([]Edge, len(g.edges)),
	}
	for v, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			continue
		}
		clone.adjacency[v] = append([]int(nil), nbrs...)
	}
	copy(clone.edges, g.edges)

	return clone
}
