package bfs

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hopdist/core"
)

// DistancesFrom runs one BFS per start vertex and returns the distance
// arrays in the order of starts.
//
// The graph is cloned once before any search begins, so every pass sees the
// graph as it was when DistancesFrom was called even if the caller keeps
// adding edges. At most limit searches run at once; limit <= 0 means
// GOMAXPROCS. All starts are validated up front; the first failing search
// cancels the rest and its error is returned.
//
// Hooks passed through opts may be invoked from several goroutines.
// Complexity: O(V + E) for the snapshot plus O(k·(V + E)) for k starts.
func DistancesFrom(ctx context.Context, g *core.Graph, starts []int, limit int, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	snapshot := g.Clone()
	n := snapshot.VertexCount()
	for _, s := range starts {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidStart, s, n)
		}
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	out := make([][]int, len(starts))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(limit)
	// shared by every pass; built once so no goroutine appends to opts
	passOpts := make([]Option, 0, len(opts)+1)
	passOpts = append(passOpts, opts...)
	passOpts = append(passOpts, WithContext(groupCtx))
	for i, s := range starts {
		i, s := i, s
		group.Go(func() error {
			res, err := BFS(snapshot, s, passOpts...)
			if err != nil {
				return fmt.Errorf("bfs: start %d: %w", s, err)
			}
			out[i] = res.Dist
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
