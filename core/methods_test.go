// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomatch/core"
)

func TestAddVertex_EmptyAndIdempotent(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
}

func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "B", 0, core.WithEdgeDirected(true))
	assert.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected B-A duplicates A-B")

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"), "undirected edges are mirrored")
}

func TestAddEdge_DirectedAntiParallel(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 0)
	require.NoError(t, err, "opposite arcs are distinct in a directed graph")

	assert.True(t, g.HasDirectedEdges())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestMultiEdgesAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	e1, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	e2, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.NotEqual(t, e1, e2)

	_, err = g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	in, out, und, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 0, in)
	assert.Equal(t, 0, out)
	assert.Equal(t, 4, und, "two parallel edges plus a loop counted twice")
}

func TestRemoveEdgeAndVertex(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	assert.False(t, g.HasEdge("B", "A"))
	assert.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveVertex("C"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveVertex("C"), core.ErrVertexNotFound)
}

func TestDeterministicEnumeration(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, p := range [][2]string{{"C", "A"}, {"B", "C"}, {"A", "B"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	ids := make([]string, 0, 3)
	for _, e := range g.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e1", "e2", "e3"}, ids)

	succ, err := g.NeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, succ)

	pred, err := g.InNeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, pred)
}

func TestVertexMetadata(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.SetVertexMetadata("A", "label", "red"))

	v, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, "red", v.Metadata["label"])

	assert.ErrorIs(t, g.SetVertexMetadata("Z", "label", "x"), core.ErrVertexNotFound)
	_, err = g.Vertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGetEdgeAndNeighbors(t *testing.T) {
	g := core.NewMixedGraph(core.WithWeighted(), core.WithMultiEdges())
	assert.True(t, g.MixedEdges())
	assert.True(t, g.Multigraph())
	assert.False(t, g.Looped())

	eid, err := g.AddEdge("A", "B", 7)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 0, core.WithEdgeDirected(true))
	require.NoError(t, err)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, int64(7), e.Weight)
	assert.False(t, e.Directed)
	_, err = g.GetEdge("e99")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	// C->A is incoming for A, so only the undirected edge leaves A.
	out, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, eid, out[0].ID)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
