// SPDX-License-Identifier: MIT
// File: impl_hub.go
// Role: Star and Wheel, the shapes with a CenterVertexID hub.
//
// Contract:
//   - Leaves / rim use idFn: Star uses idFn(1..n-1), Wheel uses idFn(0..n-2).
//   - Spokes are emitted Center → leaf and mirrored on directed graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // rim is C_{n-1}
)

// Star returns a Constructor for the star S_n: a center plus n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		leaves := indexIDs(cfg, 1, n)
		if err := addVertices(g, methodStar, append([]string{CenterVertexID}, leaves...)); err != nil {
			return err
		}

		return spokes(g, cfg, methodStar, leaves)
	}
}

// Wheel returns a Constructor for W_n: Cycle(n-1) plus a hub joined to every
// rim vertex.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		if err := addVertices(g, methodWheel, []string{CenterVertexID}); err != nil {
			return err
		}

		return spokes(g, cfg, methodWheel, indexIDs(cfg, 0, n-1))
	}
}

func spokes(g *core.Graph, cfg builderConfig, method string, rim []string) error {
	for _, id := range rim {
		if err := addEdge(g, cfg, method, CenterVertexID, id, true); err != nil {
			return err
		}
	}

	return nil
}
