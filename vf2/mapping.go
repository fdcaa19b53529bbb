// SPDX-License-Identifier: MIT
// File: mapping.go
// Role: Mapping Result: an immutable vertex correspondence handed to the
// caller, with the edge correspondence derived on demand.

package vf2

import (
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/isomatch/core"
)

// Mapping is one complete correspondence found by a Matcher. It owns copies
// of the core arrays; the Matcher keeps no reference to it. Safe for
// concurrent readers.
type Mapping struct {
	g1, g2       *View
	mode         Mode
	core1, core2 []int

	edgeMatch EdgeMatchFunc
	multi     bool

	once  sync.Once
	edges []EdgePair
}

func newMapping(m *Matcher, s *state) *Mapping {
	return &Mapping{
		g1:        m.g1,
		g2:        m.g2,
		mode:      m.mode,
		core1:     append([]int(nil), s.core1...),
		core2:     append([]int(nil), s.core2...),
		edgeMatch: m.opts.EdgeMatch,
		multi:     m.opts.Multiplicity,
	}
}

// ImageOf returns the target vertex that pattern vertex id maps to.
func (mp *Mapping) ImageOf(id string) (string, bool) {
	i, ok := mp.g1.index[id]
	if !ok || mp.core1[i] == unmapped {
		return "", false
	}

	return mp.g2.ids[mp.core1[i]], true
}

// PreimageOf returns the pattern vertex mapped onto target vertex id. Target
// vertices outside the image report false.
func (mp *Mapping) PreimageOf(id string) (string, bool) {
	j, ok := mp.g2.index[id]
	if !ok || mp.core2[j] == unmapped {
		return "", false
	}

	return mp.g1.ids[mp.core2[j]], true
}

// Pairs returns the correspondence in pattern vertex order.
func (mp *Mapping) Pairs() []VertexPair {
	out := make([]VertexPair, 0, len(mp.core1))
	for i, j := range mp.core1 {
		out = append(out, VertexPair{Pattern: mp.g1.ids[i], Target: mp.g2.ids[j]})
	}

	return out
}

// Map returns the correspondence as a fresh pattern→target map.
func (mp *Mapping) Map() map[string]string {
	out := make(map[string]string, len(mp.core1))
	for i, j := range mp.core1 {
		out[mp.g1.ids[i]] = mp.g2.ids[j]
	}

	return out
}

// TargetVertices returns the image set, sorted.
func (mp *Mapping) TargetVertices() []string {
	out := make([]string, 0, len(mp.core1))
	for _, j := range mp.core1 {
		out = append(out, mp.g2.ids[j])
	}
	sort.Strings(out)

	return out
}

// Len returns the number of mapped pairs (the pattern vertex count).
func (mp *Mapping) Len() int { return len(mp.core1) }

// Mode returns the mode of the search that produced the mapping.
func (mp *Mapping) Mode() Mode { return mp.mode }

// EdgeCorrespondence pairs every pattern edge, in pattern edge order, with a
// target edge joining the images of its endpoints and accepted by the edge
// predicate. With multiplicity enabled, parallel pattern edges receive
// distinct target edges. Computed on first call and cached.
func (mp *Mapping) EdgeCorrespondence() []EdgePair {
	mp.once.Do(mp.buildEdges)

	return append([]EdgePair(nil), mp.edges...)
}

type arcKey struct{ c, d int }

func (mp *Mapping) buildEdges() {
	// group pattern edges by image arc; undirected edges share one group per
	// unordered pair
	groups := make(map[arcKey][]int)
	var order []arcKey
	for k, e := range mp.g1.edges {
		c := mp.core1[mp.g1.index[e.From]]
		d := mp.core1[mp.g1.index[e.To]]
		if !e.Directed && c > d {
			c, d = d, c
		}
		key := arcKey{c, d}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], k)
	}

	mp.edges = make([]EdgePair, len(mp.g1.edges))
	for _, key := range order {
		idx := groups[key]
		pe := make([]*core.Edge, len(idx))
		for n, k := range idx {
			pe[n] = mp.g1.edges[k]
		}
		te := mp.g2.EdgesBetween(key.c, key.d)

		assign := assignEdges(pe, te, mp.edgeMatch, mp.multi)
		if assign == nil {
			// parallel pattern edges folded onto fewer target edges
			assign = assignEdges(pe, te, mp.edgeMatch, false)
		}
		for n, k := range idx {
			mp.edges[k] = EdgePair{Pattern: pe[n]}
			if assign != nil {
				mp.edges[k].Target = te[assign[n]]
			}
		}
	}
}

// String renders the mapping as "p1=t1 p2=t2 ..." in pattern vertex order.
func (mp *Mapping) String() string {
	var b strings.Builder
	for i, j := range mp.core1 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(mp.g1.ids[i])
		b.WriteByte('=')
		b.WriteString(mp.g2.ids[j])
	}

	return b.String()
}
