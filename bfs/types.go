// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hopdist/core"
)

// Unreachable is the distance reported for vertices with no path from the
// start vertex. It is also the Parent of the start and of every unreached vertex.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrInvalidStart is returned when the start vertex is outside
	// [0, VertexCount()). It wraps core.ErrInvalidArgument.
	ErrInvalidStart = fmt.Errorf("bfs: invalid start vertex: %w", core.ErrInvalidArgument)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a destination that was not reached.
	ErrNoPath = errors.New("bfs: no path to vertex")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is discovered and enqueued.
	// Receives the vertex and its distance from the start.
	OnEnqueue func(v, depth int)

	// OnVisit is called when a vertex is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth; vertices farther
	// away stay Unreachable. A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: vertices up to d edges away are reported
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start:  the vertex the search began at.
//   - Dist:   Dist[v] is the edge count of a shortest start→v path, or Unreachable.
//   - Parent: predecessor of v in the BFS tree, Unreachable for the start and unreached vertices.
//   - Order:  vertices in visit sequence.
type Result struct {
	Start  int
	Dist   []int
	Parent []int
	Order  []int
}

// Reached reports whether v was discovered by the search.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreachable
}

// PathTo reconstructs the path from the start vertex to dest, both included.
// Returns core.ErrOutOfRange for an invalid dest and ErrNoPath if dest was
// not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: vertex %d not in [0,%d)", core.ErrOutOfRange, dest, len(r.Dist))
	}
	if r.Dist[dest] == Unreachable {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	path := make([]int, r.Dist[dest]+1)
	// walk parents backwards, filling from the tail
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
