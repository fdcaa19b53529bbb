// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating derived graphs (clone, induced subgraph, relabelled copy).
// Determinism:
//   - Edge IDs and directedness are preserved.
// Concurrency:
//   - Read locks on the source; each result is a fresh graph.

package core

import (
	"fmt"
	"sync/atomic"
)

// Clone returns a deep copy of g: configuration, vertices, edges and adjacency.
// Vertex Metadata maps are shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return derive(g, func(id string) (string, bool) { return id, true })
}

// InducedSubgraph returns the subgraph of g induced by the vertex IDs in keep:
// kept vertices and every edge whose endpoints are both kept.
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return derive(g, func(id string) (string, bool) { return id, keep[id] })
}

// Relabel returns a copy of g with every vertex ID replaced by rename[id].
// Vertices absent from rename keep their ID. The resulting graph is
// isomorphic to g by construction.
//
// Errors:
//   - ErrEmptyVertexID: rename maps a vertex to "".
//   - ErrDuplicateVertexID (wrapped): two vertices collapse onto one ID.
func Relabel(g *Graph, rename map[string]string) (*Graph, error) {
	seen := make(map[string]string, len(rename))
	for _, id := range g.Vertices() {
		to, ok := rename[id]
		if !ok {
			to = id
		}
		if to == "" {
			return nil, ErrEmptyVertexID
		}
		if prev, dup := seen[to]; dup {
			return nil, fmt.Errorf("core: Relabel: %q and %q both map to %q: %w", prev, id, to, ErrDuplicateVertexID)
		}
		seen[to] = id
	}

	return derive(g, func(id string) (string, bool) {
		if to, ok := rename[id]; ok {
			return to, true
		}

		return id, true
	}), nil
}

// derive copies g through a vertex filter/renamer. mapID returns the new ID
// and whether the vertex survives.
func derive(g *Graph, mapID func(string) (string, bool)) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.options()...)
	for id, v := range g.vertices {
		nid, ok := mapID(id)
		if !ok {
			continue
		}
		out.vertices[nid] = &Vertex{ID: nid, Metadata: v.Metadata}
		out.adjacency[nid] = make(map[string]map[string]struct{})
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		from, okFrom := mapID(e.From)
		to, okTo := mapID(e.To)
		if !okFrom || !okTo {
			continue
		}
		ne := &Edge{ID: eid, From: from, To: to, Weight: e.Weight, Directed: e.Directed}
		out.edges[eid] = ne
		linkEdge(out, ne)
	}
	g.muEdgeAdj.RUnlock()

	// Carry the counter so later AddEdge calls cannot collide with copied IDs.
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
