// SPDX-License-Identifier: MIT
// File: view.go
// Role: Indexed Graph View: a frozen, integer-indexed snapshot of a Graph.
//
// Numbering:
//   - Vertex index = position in Graph.Vertices(); core.Graph sorts IDs, so
//     the numbering (and with it the search order) is reproducible.
//
// Arcs:
//   - A directed edge u→v contributes arc (u,v). An undirected edge
//     contributes (u,v) and (v,u); an undirected loop contributes (u,u) once.
//   - Multiplicity(i,j) counts edges realizing arc (i,j).
//   - Storage is a dense n×n count matrix up to the dense limit and a map
//     keyed by i*n+j above it. Both answer Multiplicity in O(1).
//
// Immutability:
//   - Nothing mutates a View after NewView returns; Views are safe to share
//     between Matchers and goroutines.

package vf2

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isomatch/core"
)

// DefaultDenseLimit is the largest vertex count stored as a dense matrix.
const DefaultDenseLimit = 1024

// ViewOption configures NewView.
type ViewOption func(*viewConfig)

type viewConfig struct {
	denseLimit int
}

// WithDenseLimit overrides DefaultDenseLimit. limit < 0 panics; 0 forces
// sparse storage.
func WithDenseLimit(limit int) ViewOption {
	if limit < 0 {
		panic("vf2: WithDenseLimit(limit<0)")
	}

	return func(c *viewConfig) { c.denseLimit = limit }
}

// View is the Indexed Graph View of one input graph.
type View struct {
	n        int
	directed bool
	ids      []string
	index    map[string]int
	edges    []*core.Edge

	succ [][]int // distinct successors, ascending
	pred [][]int // distinct predecessors, ascending

	dense   []int32       // n*n multiplicities, nil when sparse
	sparse  map[int]int32 // i*n+j → multiplicity, nil when dense
	between map[int][]*core.Edge

	arcCount int // distinct arcs
	arcTotal int // sum of multiplicities
}

// NewView indexes g.
//
// Errors (all wrapping ErrInvalidGraph):
//   - g is nil, including a typed-nil *core.Graph.
//   - g has no vertices or lists a vertex ID twice.
//   - an edge is nil or has an endpoint missing from Vertices().
//
// Complexity: O(V + E log E), plus O(V²) memory when dense.
func NewView(g Graph, opts ...ViewOption) (*View, error) {
	if g == nil {
		return nil, errors.Wrap(ErrInvalidGraph, "vf2: NewView: nil graph")
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return nil, errors.Wrap(ErrInvalidGraph, "vf2: NewView: nil *core.Graph")
	}

	cfg := viewConfig{denseLimit: DefaultDenseLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return nil, errors.Wrap(ErrInvalidGraph, "vf2: NewView: graph has no vertices")
	}

	v := &View{
		n:        n,
		directed: g.Directed(),
		ids:      append([]string(nil), ids...),
		index:    make(map[string]int, n),
		succ:     make([][]int, n),
		pred:     make([][]int, n),
		between:  make(map[int][]*core.Edge),
	}
	for i, id := range v.ids {
		if _, dup := v.index[id]; dup {
			return nil, errors.Wrapf(ErrInvalidGraph, "vf2: NewView: vertex %q listed twice", id)
		}
		v.index[id] = i
	}
	if n <= cfg.denseLimit {
		v.dense = make([]int32, n*n)
	} else {
		v.sparse = make(map[int]int32)
	}

	for _, e := range g.Edges() {
		if e == nil {
			return nil, errors.Wrap(ErrInvalidGraph, "vf2: NewView: nil edge")
		}
		from, okFrom := v.index[e.From]
		to, okTo := v.index[e.To]
		if !okFrom || !okTo {
			return nil, errors.Wrapf(ErrInvalidGraph,
				"vf2: NewView: edge %s (%s→%s) references an unknown vertex", e.ID, e.From, e.To)
		}
		if e.Directed {
			v.directed = true
		}
		v.edges = append(v.edges, e)
		v.addArc(from, to, e)
		if !e.Directed && from != to {
			v.addArc(to, from, e)
		}
	}
	for i := 0; i < n; i++ {
		sort.Ints(v.succ[i])
		sort.Ints(v.pred[i])
	}

	return v, nil
}

func (v *View) addArc(i, j int, e *core.Edge) {
	k := i*v.n + j
	var prev int32
	if v.dense != nil {
		prev = v.dense[k]
		v.dense[k]++
	} else {
		prev = v.sparse[k]
		v.sparse[k] = prev + 1
	}
	if prev == 0 {
		v.arcCount++
		v.succ[i] = append(v.succ[i], j)
		v.pred[j] = append(v.pred[j], i)
	}
	v.arcTotal++
	v.between[k] = append(v.between[k], e)
}

// VertexCount returns n.
func (v *View) VertexCount() int { return v.n }

// Directed reports whether the graph is directed or carries any directed edge.
func (v *View) Directed() bool { return v.directed }

// Multiplicity returns the number of edges realizing arc i→j.
func (v *View) Multiplicity(i, j int) int {
	k := i*v.n + j
	if v.dense != nil {
		return int(v.dense[k])
	}

	return int(v.sparse[k])
}

// IsAdjacent reports whether arc i→j exists.
func (v *View) IsAdjacent(i, j int) bool { return v.Multiplicity(i, j) > 0 }

// HasLoop reports whether i carries a self-loop.
func (v *View) HasLoop(i int) bool { return v.Multiplicity(i, i) > 0 }

// OutDegree returns the number of distinct successors of i (i itself counts
// when looped).
func (v *View) OutDegree(i int) int { return len(v.succ[i]) }

// InDegree returns the number of distinct predecessors of i.
func (v *View) InDegree(i int) int { return len(v.pred[i]) }

// Degree returns the distinct-neighbour count for undirected views and
// OutDegree+InDegree for directed ones.
func (v *View) Degree(i int) int {
	if !v.directed {
		return len(v.succ[i])
	}

	return len(v.succ[i]) + len(v.pred[i])
}

// Successors returns the distinct successors of i in ascending order. The
// slice is shared; do not modify it.
func (v *View) Successors(i int) []int { return v.succ[i] }

// Predecessors returns the distinct predecessors of i in ascending order.
// The slice is shared; do not modify it.
func (v *View) Predecessors(i int) []int { return v.pred[i] }

// OriginalVertexFor returns the vertex ID with index i.
func (v *View) OriginalVertexFor(i int) string { return v.ids[i] }

// IndexOf returns the index of vertex id.
func (v *View) IndexOf(id string) (int, bool) {
	i, ok := v.index[id]

	return i, ok
}

// ArcCount returns the number of distinct arcs. For undirected graphs each
// non-loop edge counts twice.
func (v *View) ArcCount() int { return v.arcCount }

// ArcTotal returns the sum of all arc multiplicities.
func (v *View) ArcTotal() int { return v.arcTotal }

// EdgeCount returns the number of input edges.
func (v *View) EdgeCount() int { return len(v.edges) }

// EdgesBetween returns the edges realizing arc i→j in Graph.Edges() order.
// The slice is shared; do not modify it.
func (v *View) EdgesBetween(i, j int) []*core.Edge { return v.between[i*v.n+j] }
