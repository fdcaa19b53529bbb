// SPDX-License-Identifier: MIT
// File: api.go
// Role: BuildGraph orchestrator and the shared emission helpers used by impl_*.go.
//
// Determinism:
//   - Same GraphOptions, BuilderOptions (including seed) and constructor order
//     produce identical graphs, edge IDs included.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

// Constructor adds one topology to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph from gopts, resolves bopts once, and applies
// every constructor in order. The first failure aborts the build.
//
// Errors:
//   - ErrConstructFailed (wrapped): nil constructor.
//   - Any constructor error, wrapped with "BuildGraph: ".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs the constructor on an existing graph.
func Apply(g *core.Graph, c Constructor, opts ...BuilderOption) error {
	if g == nil || c == nil {
		return fmt.Errorf("Apply: nil graph or constructor: %w", ErrConstructFailed)
	}

	return c(g, newBuilderConfig(opts...))
}

// addVertices inserts ids in order.
func addVertices(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// indexIDs returns cfg.idFn(from..to-1).
func indexIDs(cfg builderConfig, from, to int) []string {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, cfg.idFn(i))
	}

	return ids
}

// addEdge emits u→v and, when mirror is set on a directed graph, v→u with
// the same weight.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string, mirror bool) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}
	if mirror && g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, v, u, w, err)
		}
	}

	return nil
}
