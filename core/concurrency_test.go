// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/hopdist/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g, err := core.NewGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	// hub vertex num is connected to every other vertex
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(num, id))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.NeighborsOf(num), num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentCloneAndWrite mixes readers taking snapshots with a writer.
func TestConcurrentCloneAndWrite(t *testing.T) {
	const num = 100
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < num; i++ {
			_ = g.AddEdge(0, 1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < num; i++ {
			c := g.Clone()
			// a snapshot is always internally consistent
			require.Equal(t, c.EdgeCount(), len(c.NeighborsOf(0)))
		}
	}()
	wg.Wait()

	require.Equal(t, num, g.EdgeCount())
}
