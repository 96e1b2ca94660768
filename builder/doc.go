// Package builder provides deterministic graph constructors for core.Graph:
// fixtures for tests, benchmarks and the `hopdist generate` command.
//
// Every Constructor appends a new connected block of vertices at the current
// end of the graph (ids base..base+n-1, base = VertexCount() before the call),
// so BuildGraph(nil, Path(3), Cycle(4)) yields the disjoint union P_3 ∪ C_4
// over vertices 0..6. This is the easiest way to get graphs with unreachable
// regions for distance tests.
//
// Constructors:
//
//   - Path(n)          n ≥ 1, edges i–(i+1).
//   - Cycle(n)         n ≥ 3, Path(n) plus (n-1)–0.
//   - Star(n)          n ≥ 2, hub base connected to every leaf.
//   - Complete(n)      n ≥ 1, every unordered pair once.
//   - Grid(rows, cols) rows, cols ≥ 1, 4-connected lattice, row-major ids.
//   - RandomSparse(n,p) n ≥ 1, each unordered pair independently with probability p.
//
// Options:
//
//   - WithSeed(seed) / WithRand(r): RNG for RandomSparse; required when 0 < p < 1.
//
// Errors (check with errors.Is):
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
//
// Determinism: same options, seed and constructor order ⇒ identical edge logs.
package builder
