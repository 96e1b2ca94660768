// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and cancellation.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

// walker encapsulates mutable BFS state.
// The queue is a slice with a moving head so dequeue never shifts memory.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	head  int
	res   *Result
}

// FindDistances returns, for every vertex of g, the minimum number of edges
// on a path from start, or Unreachable when there is none. Dist[start] is 0.
// Returns ErrGraphNil for a nil graph and ErrInvalidStart (which matches
// core.ErrInvalidArgument) when start is outside [0, g.VertexCount()).
// A graph with no vertices therefore always fails.
// Complexity: O(V + E).
func FindDistances(g *core.Graph, start int) ([]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrInvalidStart for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. On error no Result is returned.
//
// The graph is only read. Callers must not mutate g while the search runs;
// DistancesFrom takes a snapshot for that reason.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidStart, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Dist:   make([]int, n),
			Parent: make([]int, n),
			Order:  make([]int, 0, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Dist[v] = Unreachable
		w.res.Parent[v] = Unreachable
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unreachable)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue records v's distance and parent, calls OnEnqueue and appends v.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Dist[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur := w.queue[w.head]
		w.head++
		if err := w.visit(cur); err != nil {
			return err
		}
		w.enqueueNeighbors(cur)
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Dist[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}
	return nil
}

// enqueueNeighbors scans cur's adjacency in insertion order and enqueues
// every neighbor seen for the first time. Loops and parallel edges hit
// already-distanced vertices and are skipped.
func (w *walker) enqueueNeighbors(cur int) {
	next := w.res.Dist[cur] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.NeighborsOf(cur) {
		if w.res.Dist[nbr] == Unreachable {
			w.enqueue(nbr, next, cur)
		}
	}
}
