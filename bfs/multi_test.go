package bfs_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopdist/bfs"
	"github.com/katalvlaran/hopdist/core"
)

// TestDistancesFrom_MatchesSingleStart checks every pass equals a standalone search.
func TestDistancesFrom_MatchesSingleStart(t *testing.T) {
	g := newGraph(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 4})
	starts := []int{0, 1, 3, 5, 0}

	for _, limit := range []int{0, 1, 3} {
		got, err := bfs.DistancesFrom(context.Background(), g, starts, limit)
		require.NoError(t, err)
		require.Len(t, got, len(starts))
		for i, s := range starts {
			want, err := bfs.FindDistances(g, s)
			require.NoError(t, err)
			assert.Equal(t, want, got[i], "limit=%d start=%d", limit, s)
		}
	}
}

// TestDistancesFrom_Snapshot verifies passes see the graph as of the call.
func TestDistancesFrom_Snapshot(t *testing.T) {
	g := newGraph(t, 3, [2]int{0, 1})
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	done := make(chan [][]int, 1)
	go func() {
		out, err := bfs.DistancesFrom(context.Background(), g, []int{0}, 1,
			bfs.WithOnEnqueue(func(int, int) { once.Do(func() { close(started) }) }),
			bfs.WithOnVisit(func(int, int) error { <-release; return nil }))
		assert.NoError(t, err)
		done <- out
	}()
	// the snapshot is taken before the first enqueue
	<-started
	require.NoError(t, g.AddEdge(1, 2))
	close(release)

	out := <-done
	assert.Equal(t, []int{0, 1, -1}, out[0])
}

// TestDistancesFrom_Errors covers nil graph, bad starts and hook failures.
func TestDistancesFrom_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := bfs.DistancesFrom(ctx, nil, []int{0}, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := newGraph(t, 2, [2]int{0, 1})
	_, err = bfs.DistancesFrom(ctx, g, []int{0, 2}, 0)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	boom := errors.New("boom")
	_, err = bfs.DistancesFrom(ctx, g, []int{0, 1}, 2,
		bfs.WithOnVisit(func(v, _ int) error {
			if v == 1 {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)

	out, err := bfs.DistancesFrom(ctx, g, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}
