// Package bfs computes unweighted shortest-path (hop) distances over a
// core.Graph with breadth-first search.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - FindDistances returns just the distance array: Dist[v] is the length of
//     a shortest start→v path, Unreachable (-1) when no path exists, and
//     Dist[start] is always 0.
//   - BFS returns a Result with Dist, Parent links and the visit Order, and
//     accepts functional hooks:
//   - OnEnqueue (when a vertex is first discovered)
//   - OnVisit   (when it is dequeued; may abort with an error)
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - DistancesFrom runs several starts concurrently over one graph snapshot.
//
// Determinism
//
//	Neighbors are scanned in edge-insertion order and the first discovery of
//	a vertex wins, so Order and Parent are fully reproducible for a given
//	sequence of AddEdge calls.
//
// Loops and parallel edges
//
//	A self-loop or a repeated edge only ever points at a vertex that already
//	has a distance, so it is skipped; each vertex is enqueued at most once.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Dist and Parent.
//
// Usage
//
//	dist, err := bfs.FindDistances(g, 0)
//	if errors.Is(err, core.ErrInvalidArgument) {
//		// start outside [0, g.VertexCount())
//	}
//
//	res, err := bfs.BFS(g, 0,
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(3),
//		bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//	path, err := res.PathTo(7)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrInvalidStart     if start is out of range (matches core.ErrInvalidArgument).
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           from Result.PathTo for unreached vertices.
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
