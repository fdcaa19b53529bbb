// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs()/InNeighborIDs() return unique IDs sorted lex asc.

package core

import "sort"

// Neighbors returns the edges leaving id: directed edges with From == id and
// every undirected edge incident to id (a loop appears once).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique successors of id (outgoing side for directed
// edges, both sides for undirected ones), sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else {
			seen[e.From] = struct{}{}
		}
	}

	return sortedKeys(seen), nil
}

// InNeighborIDs returns the unique predecessors of id, sorted ascending. For
// undirected edges predecessors and successors coincide.
//
// Complexity: O(E) since incoming directed edges are not indexed.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	for _, e := range g.edges {
		switch {
		case e.To == id:
			seen[e.From] = struct{}{}
		case !e.Directed && e.From == id:
			seen[e.To] = struct{}{}
		}
	}

	return sortedKeys(seen), nil
}

func sortedKeys(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for v := range set {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}
