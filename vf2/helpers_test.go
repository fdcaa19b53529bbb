// SPDX-License-Identifier: MIT
package vf2_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomatch/core"
)

// mk builds a graph from "a-b b-c" style edge lists plus isolated vertices.
// A "->" separator is accepted for readability; direction comes from opts.
func mk(t testing.TB, edges string, isolated []string, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, tok := range strings.Fields(edges) {
		tok = strings.ReplaceAll(tok, "->", "-")
		u, v, ok := strings.Cut(tok, "-")
		require.True(t, ok, tok)
		_, err := g.AddEdge(u, v, 0)
		require.NoError(t, err)
	}
	for _, id := range isolated {
		require.NoError(t, g.AddVertex(id))
	}

	return g
}

func directed() core.GraphOption { return core.WithDirected(true) }

// rawGraph implements vf2.Graph without the core invariants.
type rawGraph struct {
	ids      []string
	edges    []*core.Edge
	directed bool
}

func (r rawGraph) Vertices() []string  { return r.ids }
func (r rawGraph) Edges() []*core.Edge { return r.edges }
func (r rawGraph) Directed() bool      { return r.directed }

// bruteCount enumerates every injection pattern→target and counts those
// valid for mode ("exact", "subgraph", "induced").
func bruteCount(p, t *core.Graph, mode string) int {
	pv, tv := p.Vertices(), t.Vertices()
	if mode == "exact" && len(pv) != len(tv) {
		return 0
	}
	img := make(map[string]string, len(pv))
	used := make(map[string]bool, len(tv))

	valid := func() bool {
		for _, a := range pv {
			for _, b := range pv {
				pe, te := p.HasEdge(a, b), t.HasEdge(img[a], img[b])
				if mode == "subgraph" && pe && !te {
					return false
				}
				if mode != "subgraph" && pe != te {
					return false
				}
			}
		}

		return true
	}

	var rec func(k int) int
	rec = func(k int) int {
		if k == len(pv) {
			if valid() {
				return 1
			}

			return 0
		}
		n := 0
		for _, x := range tv {
			if used[x] {
				continue
			}
			used[x] = true
			img[pv[k]] = x
			n += rec(k + 1)
			used[x] = false
		}

		return n
	}

	return rec(0)
}
