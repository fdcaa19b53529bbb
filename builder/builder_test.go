// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomatch/builder"
	"github.com/katalvlaran/isomatch/core"
)

func TestConstructors_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctor     builder.Constructor
		directed bool
		wantV    int
		wantE    int
	}{
		{"Cycle(5)", builder.Cycle(5), false, 5, 5},
		{"Cycle(4) directed", builder.Cycle(4), true, 4, 4},
		{"Path(4)", builder.Path(4), false, 4, 3},
		{"Star(4)", builder.Star(4), false, 4, 3},
		{"Star(4) directed", builder.Star(4), true, 4, 6},
		{"Wheel(5)", builder.Wheel(5), false, 5, 8},
		{"Complete(4)", builder.Complete(4), false, 4, 6},
		{"Complete(4) directed", builder.Complete(4), true, 4, 12},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), false, 5, 6},
		{"Grid(2,3)", builder.Grid(2, 3), false, 6, 7},
		{"RandomSparse(5,1)", builder.RandomSparse(5, 1), false, 5, 10},
		{"RandomSparse(5,0)", builder.RandomSparse(5, 0), true, 5, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(tc.directed)}, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestConstructors_Minima(t *testing.T) {
	for name, c := range map[string]builder.Constructor{
		"Cycle(2)":               builder.Cycle(2),
		"Path(1)":                builder.Path(1),
		"Star(1)":                builder.Star(1),
		"Wheel(3)":               builder.Wheel(3),
		"Complete(0)":            builder.Complete(0),
		"CompleteBipartite(0,2)": builder.CompleteBipartite(0, 2),
		"Grid(0,2)":              builder.Grid(0, 2),
		"RandomSparse(0,0.5)":    builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, nil, c)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestRandomSparse_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	build := func() []string {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		var out []string
		for _, e := range g.Edges() {
			out = append(out, e.ID+":"+e.From+"-"+e.To)
		}

		return out
	}
	assert.Equal(t, build(), build())
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestApply_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)

	require.NoError(t, builder.Apply(g, builder.Path(2), builder.WithPrefixIDs("p")))
	assert.Equal(t, []string{"0", "1", "2", "p0", "p1"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("p1", "p0"))

	assert.ErrorIs(t, builder.Apply(nil, builder.Path(2)), builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Apply(g, nil), builder.ErrConstructFailed)
}

func TestOptions(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithPrefixIDs("v")}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1"}, g.Vertices())

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithPartitionPrefix("P", "")},
		builder.CompleteBipartite(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"P0", "R0"}, g.Vertices())

	g, err = builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithWeightFn(func(*rand.Rand) int64 { return 9 })},
		builder.Cycle(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, int64(9), e.Weight)
	}

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec         string
		wantV, wantE int
	}{
		{"cycle:5", 5, 5},
		{"Path:3", 3, 2},
		{"star:4", 4, 3},
		{"wheel:5", 5, 8},
		{"complete:4", 4, 6},
		{"bipartite:2,3", 5, 6},
		{"grid:2x3", 6, 7},
		{"random:6,1", 6, 15},
		{"random:8,0.3,42", 8, -1},
	}
	for _, tc := range tests {
		g, err := builder.Parse(tc.spec)
		require.NoError(t, err, tc.spec)
		assert.Equal(t, tc.wantV, g.VertexCount(), tc.spec)
		if tc.wantE >= 0 {
			assert.Equal(t, tc.wantE, g.EdgeCount(), tc.spec)
		}
	}

	for _, bad := range []string{"cycle", "hexagon:6", "grid:2,3", "cycle:x", "random:5", "random:5,0.5,s"} {
		_, err := builder.Parse(bad)
		assert.ErrorIs(t, err, builder.ErrBadSpec, bad)
	}

	_, err := builder.Parse("cycle:2")
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.Parse("cycle:3", core.WithDirected(true))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("0", "1"))
	assert.False(t, g.HasEdge("1", "0"))
}
