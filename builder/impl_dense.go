// SPDX-License-Identifier: MIT
// File: impl_dense.go
// Role: Complete, CompleteBipartite and Grid.
//
// All three mirror every edge on directed graphs, so the directed variant is
// the symmetric digraph of the undirected shape.
//
// Complexity:
//   - Complete O(n²), CompleteBipartite O(a·b), Grid O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	minCompleteNodes        = 1
	minPartitionSize        = 1
	minGridDim              = 1
	gridIDFmt               = "%d,%d"
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodComplete, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, ids[i], ids[j], true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{a,b} with left IDs
// leftPrefix+i and right IDs rightPrefix+j.
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if a < minPartitionSize || b < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}
		left := PrefixIDFn(cfg.leftPrefix)
		right := PrefixIDFn(cfg.rightPrefix)
		for i := 0; i < a; i++ {
			if err := addVertices(g, methodCompleteBipartite, []string{left(i)}); err != nil {
				return err
			}
		}
		for j := 0; j < b; j++ {
			if err := addVertices(g, methodCompleteBipartite, []string{right(j)}); err != nil {
				return err
			}
		}
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err := addEdge(g, cfg, methodCompleteBipartite, left(i), right(j), true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighbour lattice. Vertex IDs
// are fixed coordinates "r,c" regardless of the ID scheme.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		cell := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addVertices(g, methodGrid, []string{cell(r, c)}); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, cell(r, c), cell(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, cell(r, c), cell(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
