// SPDX-License-Identifier: MIT
// File: impl_ring.go
// Role: Cycle and Path, the one-way chain shapes.
//
// Determinism:
//   - Vertices idFn(0..n-1) in index order; edges emitted by increasing i.
// Complexity:
//   - O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor for the n-vertex cycle C_n with edges
// i → (i+1) mod n. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodCycle, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor for the path P_n with edges i → i+1.
// Requires n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodPath, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, ids[i-1], ids[i], false); err != nil {
				return err
			}
		}

		return nil
	}
}
