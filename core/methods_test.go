// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in symmetric insertion and edge-insertion ordering of neighbor lists.
//   - Validate range checks and that a rejected AddEdge leaves the graph untouched.

package core_test

import (
	"testing"

	"github.com/katalvlaran/hopdist/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGraph_Counts checks the initial vertex range and rejects negatives.
func TestNewGraph_Counts(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	for v := 0; v < 3; v++ {
		assert.Empty(t, g.NeighborsOf(v), "vertex %d should start isolated", v)
	}

	empty, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.VertexCount())

	_, err = core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestGraph_AddEdgeSymmetric verifies both endpoints see each other once per call.
func TestGraph_AddEdgeSymmetric(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(3, 0))

	// insertion order, not sorted
	assert.Equal(t, []int{1, 2, 3}, g.NeighborsOf(0))
	assert.Equal(t, []int{0}, g.NeighborsOf(1))
	assert.Equal(t, []int{0}, g.NeighborsOf(2))
	assert.Equal(t, []int{0}, g.NeighborsOf(3))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 3, To: 0}}, g.Edges())
}

// TestGraph_SelfLoopAndParallel keeps loops and parallel edges as given.
func TestGraph_SelfLoopAndParallel(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 0))
	assert.Equal(t, []int{0, 0}, g.NeighborsOf(0))

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))
	assert.Equal(t, []int{0, 0, 1, 1}, g.NeighborsOf(0))
	assert.Equal(t, []int{0, 0}, g.NeighborsOf(1))

	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 4, deg)
}

// TestGraph_AddEdgeOutOfRange rejects bad endpoints atomically.
func TestGraph_AddEdgeOutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	cases := []struct {
		name string
		u, v int
	}{
		{"u negative", -1, 0},
		{"v negative", 0, -1},
		{"u too large", 2, 0},
		{"v too large", 1, 2},
		{"both invalid", 5, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.u, tc.v)
			assert.ErrorIs(t, err, core.ErrOutOfRange)
			// valid endpoint must not have been touched
			assert.Equal(t, []int{1}, g.NeighborsOf(0))
			assert.Equal(t, []int{0}, g.NeighborsOf(1))
			assert.Equal(t, 1, g.EdgeCount())
		})
	}

	_, err = g.Degree(9)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

// TestGraph_Resize covers growing from empty, keeping lists, and shrinking.
func TestGraph_Resize(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddEdge(0, 0), core.ErrOutOfRange)

	require.NoError(t, g.Resize(2))
	require.NoError(t, g.AddEdge(0, 1))

	require.NoError(t, g.Resize(5))
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, []int{1}, g.NeighborsOf(0), "growing keeps existing lists")
	assert.Empty(t, g.NeighborsOf(4))
	require.NoError(t, g.AddEdge(4, 0))

	require.NoError(t, g.Resize(2))
	assert.Equal(t, 2, g.VertexCount())
	assert.False(t, g.HasVertex(2))
	assert.True(t, g.HasVertex(1))
	assert.ErrorIs(t, g.AddEdge(0, 4), core.ErrOutOfRange)

	assert.ErrorIs(t, g.Resize(-3), core.ErrInvalidArgument)
	assert.Equal(t, 2, g.VertexCount(), "failed resize leaves the count alone")
}

// TestGraph_Clone verifies the snapshot is independent of the source.
func TestGraph_Clone(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	c := g.Clone()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, c.Resize(4))
	require.NoError(t, c.AddEdge(0, 3))

	assert.Equal(t, []int{0, 2}, g.NeighborsOf(1))
	assert.Equal(t, []int{0}, c.NeighborsOf(1))
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 4, c.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.Equal(t, []int{1}, g.NeighborsOf(0))
	assert.Equal(t, []int{1, 3}, c.NeighborsOf(0))
}
