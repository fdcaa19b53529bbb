// SPDX-License-Identifier: MIT
package vf2_test

import (
	"testing"

	"github.com/katalvlaran/isomatch/builder"
	"github.com/katalvlaran/isomatch/core"
	"github.com/katalvlaran/isomatch/vf2"
)

func benchGraph(b *testing.B, c builder.Constructor, bopts ...builder.BuilderOption) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil, bopts, c)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkAutomorphisms_Grid4x4(b *testing.B) {
	g := benchGraph(b, builder.Grid(4, 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, _ := vf2.Automorphisms(g)
		if vf2.Count(m) != 8 {
			b.Fatal("grid 4x4 has 8 automorphisms")
		}
	}
}

func BenchmarkSubgraph_CycleInRandom(b *testing.B) {
	pattern := benchGraph(b, builder.Cycle(5), builder.WithPrefixIDs("p"))
	target := benchGraph(b, builder.RandomSparse(40, 0.15), builder.WithSeed(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, _ := vf2.NewMatcher(pattern, target, vf2.ModeSubgraph)
		vf2.Count(m)
	}
}

func BenchmarkFirst_SparseView(b *testing.B) {
	pattern := benchGraph(b, builder.Path(6), builder.WithPrefixIDs("p"))
	target := benchGraph(b, builder.Grid(30, 30))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok, _ := vf2.First(pattern, target, vf2.ModeInducedSubgraph,
			vf2.WithViewOptions(vf2.WithDenseLimit(0))); !ok {
			b.Fatal("a path embeds in a grid")
		}
	}
}
