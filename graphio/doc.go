// Package graphio reads and writes the plain-text graph format consumed by
// hopdist:
//
//	N M          vertex count, edge count
//	u1 v1        M edge lines (any whitespace separates tokens)
//	...
//	S            start vertex
//
// Read rejects malformed input up front: N must be in [1, MaxVertices], M
// non-negative, every edge endpoint in [0,N) and the start vertex present
// and in range. Write emits each undirected edge once, in insertion order,
// so Write followed by Read reproduces the same neighbor lists.
//
// Errors
//
//   - ErrIO               umbrella for every input failure (errors.Is).
//   - ErrFileNotFound     the path could not be opened because it does not exist.
//   - ErrInvalidInput     missing or invalid N / M, or N above MaxVertices.
//   - ErrEdgeRead         an edge line is truncated or not an integer pair.
//   - ErrInvalidStart     the start vertex is missing, malformed or out of range.
//   - core.ErrOutOfRange  an edge endpoint outside [0,N); also matches ErrIO.
package graphio
