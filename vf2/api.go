// SPDX-License-Identifier: MIT
// File: api.go
// Role: One-call entry points and ready-made comparators.

package vf2

import (
	"reflect"

	"github.com/katalvlaran/isomatch/core"
)

// Isomorphic reports whether pattern and target are isomorphic.
func Isomorphic(pattern, target Graph, opts ...Option) (bool, error) {
	_, ok, err := First(pattern, target, ModeIsomorphism, opts...)

	return ok, err
}

// SubgraphIsomorphic reports whether pattern is isomorphic to a (not
// necessarily induced) subgraph of target.
func SubgraphIsomorphic(pattern, target Graph, opts ...Option) (bool, error) {
	_, ok, err := First(pattern, target, ModeSubgraph, opts...)

	return ok, err
}

// First returns the first mapping in search order. A size mismatch in exact
// mode is reported as "no mapping", not as an error.
func First(pattern, target Graph, mode Mode, opts ...Option) (*Mapping, bool, error) {
	m, err := NewMatcher(pattern, target, mode, opts...)
	if err != nil {
		return nil, false, err
	}
	mp, ok := m.Next()

	return mp, ok, nil
}

// Collect drains up to limit mappings from m (limit <= 0 means all).
func Collect(m *Matcher, limit int) []*Mapping {
	var out []*Mapping
	for mp := range m.All() {
		out = append(out, mp)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}

// Count drains m and returns how many mappings it produced.
func Count(m *Matcher) int {
	n := 0
	for range m.All() {
		n++
	}

	return n
}

// Automorphisms returns a Matcher enumerating the automorphisms of g. The
// identity is always among them.
func Automorphisms(g Graph, opts ...Option) (*Matcher, error) {
	return NewMatcher(g, g, ModeIsomorphism, opts...)
}

// MatchVertexMetadata accepts a vertex pair when both vertices hold equal
// (reflect.DeepEqual) values under key, or both lack it.
func MatchVertexMetadata(pattern, target *core.Graph, key string) VertexMatchFunc {
	return func(p, t string) bool {
		pv, perr := pattern.Vertex(p)
		tv, terr := target.Vertex(t)
		if perr != nil || terr != nil {
			return false
		}
		a, okA := pv.Metadata[key]
		b, okB := tv.Metadata[key]

		return okA == okB && reflect.DeepEqual(a, b)
	}
}

// MatchEdgeWeight accepts an edge pair with equal weights.
func MatchEdgeWeight(p, t *core.Edge) bool {
	return p.Weight == t.Weight
}
