// SPDX-License-Identifier: MIT
// Package builder produces deterministic fixture graphs for tests, benchmarks
// and the isomatch CLI.
//
// Every topology is a Constructor: a closure that receives the target graph
// and the resolved builderConfig. BuildGraph creates a core.Graph from
// GraphOptions, resolves BuilderOptions, and runs constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(false)},
//		[]builder.BuilderOption{builder.WithSymbolIDs()},
//		builder.Cycle(5),
//	)
//
// Constructors:
//
//	Cycle(n)               n ≥ 3, ring i → (i+1) mod n
//	Path(n)                n ≥ 2, chain i → i+1
//	Star(n)                n ≥ 2, "Center" plus leaves idFn(1..n-1)
//	Wheel(n)               n ≥ 4, Cycle(n-1) plus "Center" hub
//	Complete(n)            n ≥ 1, every unordered pair
//	CompleteBipartite(a,b) a,b ≥ 1, partitions "L0.."/"R0.."
//	Grid(r,c)              r,c ≥ 1, IDs "r,c", right and bottom neighbours
//	RandomSparse(n,p)      n ≥ 1, Bernoulli(p) per admissible pair
//
// Symmetric shapes (Star, Wheel spokes, Complete, CompleteBipartite, Grid)
// mirror each edge in directed graphs; Cycle and Path stay one-way so that a
// directed Cycle is a directed ring.
//
// Parse turns short textual descriptions ("cycle:5", "grid:2x3") into
// graphs; the CLI uses it for gen: sources.
//
// Option constructors panic on programmer errors (nil functions); runtime
// parameter errors are returned as wrapped sentinels.
package builder
