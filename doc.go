// Package hopdist computes unweighted shortest-path (hop) distances over
// undirected graphs with integer vertex ids.
//
// What is hopdist?
//
//	A small, dependency-light toolkit built around one question: how many
//	edges separate a start vertex from every other vertex?
//		• core/    - the Graph store: adjacency lists over vertices 0..N-1
//		• bfs/     - breadth-first distances, parent links, multi-start search
//		• builder/ - deterministic fixtures (path, cycle, star, grid, random)
//		• graphio/ - the "N M / u v ... / start" text format
//		• report/  - text, JSON and YAML renderers
//		• cmd/hopdist - the command line tool
//
// Quick ASCII example:
//
//	0───1───2      3
//
//	distances from 0: [0 1 2 -1]
//
// Vertex 3 has no path from 0 and is reported with the Unreachable sentinel.
//
//	go install github.com/katalvlaran/hopdist/cmd/hopdist@latest
package hopdist
