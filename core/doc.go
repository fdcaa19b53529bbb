// SPDX-License-Identifier: MIT
// Package core provides the in-memory host graph that the isomatch matchers
// consume.
//
// The Graph type supports directed and undirected edges (and mixed graphs
// with per-edge overrides), optional weights, self-loops and parallel edges.
// All methods are safe for concurrent use: muVert guards the vertex catalog,
// muEdgeAdj guards edges and adjacency, and they are always acquired in that
// order.
//
// Enumeration is deterministic:
//
//	Vertices():  IDs sorted lexicographically
//	Edges():     edges sorted by Edge.ID
//	Neighbors(): incident edges sorted by Edge.ID
//
// The vf2 package numbers vertices by Vertices() order, so the same graph
// always produces the same search order.
//
// Derived graphs (Clone, InducedSubgraph, Relabel) never mutate the source.
package core
