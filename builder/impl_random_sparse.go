// SPDX-License-Identifier: MIT
// File: impl_random_sparse.go
// Role: RandomSparse(n, p), an Erdős–Rényi G(n,p) sampler.
//
// Contract:
//   - Undirected: unordered pairs {i,j}, i<j. Directed: ordered pairs (i,j),
//     loops (i,i) only when g.Looped().
//   - p ∈ {0,1} needs no RNG; 0<p<1 requires WithSeed/WithRand.
//
// Determinism:
//   - Trials are drawn in (i asc, j asc) order, so a fixed seed fixes the graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor sampling each admissible edge with
// probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodRandomSparse, ids); err != nil {
			return err
		}

		directed, loops := g.Directed(), g.Looped()
		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}

			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !keep() {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, ids[i], ids[j], false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
