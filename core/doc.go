// Package core defines the integer-indexed Graph used by every other hopdist
// package, together with the sentinel errors shared across the module.
//
// What
//
//   - Undirected, unweighted adjacency list over vertices 0..N-1.
//   - Neighbor lists keep edge-insertion order; nothing is sorted or deduplicated.
//   - Self-loops and parallel edges are stored exactly as given.
//
// Symmetric insertion
//
//	AddEdge(u, v) appends v to adj[u] and u to adj[v], once each. A self-loop
//	AddEdge(u, u) therefore leaves u twice in its own list.
//
// Lifecycle
//
//	g, _ := core.NewGraph(0) // empty graph, typically grown later
//	_ = g.Resize(4)          // vertices 0..3
//	_ = g.AddEdge(0, 1)
//	nbrs := g.NeighborsOf(0) // [1], read-only view
//
// Errors
//
//   - ErrInvalidArgument  negative vertex count (NewGraph, Resize).
//   - ErrOutOfRange       edge endpoint outside [0, VertexCount()).
//
// Concurrency
//
//	All methods are safe for concurrent use: mutations take the write lock,
//	queries the read lock. Slices returned by NeighborsOf alias internal
//	storage and must not be modified; take a Clone when a stable snapshot is
//	required while other goroutines keep writing.
//
// Complexity
//
//   - AddEdge:     O(1) amortized.
//   - NeighborsOf: O(1).
//   - Resize:      O(|Δ|) when growing, O(1) when shrinking.
//   - Clone:       O(V + E).
package core
