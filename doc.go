// Package isomatch finds where one graph lives inside another: whole-graph
// isomorphism, subgraph monomorphism and induced subgraph isomorphism, all
// driven by a resumable VF2 search.
//
// 🚀 What is inside?
//
//	core/       thread-safe Graph, Vertex, Edge primitives (directed, mixed, multi, loops)
//	builder/    deterministic shape constructors: cycle, path, star, wheel, complete, grid, random
//	graphfmt/   a tiny text notation ("a - b - c", "x:red -> y") to load and dump graphs
//	vf2/        the matcher: View indexing, feasibility rules, lazy mapping enumeration
//	cmd/isomatch  command-line front end
//
// ✨ Highlights
//
//   - Mappings come out one at a time in a fixed, reproducible order; stop whenever you like.
//   - Vertex and edge comparators plug in semantic checks (labels, weights).
//   - Per-search statistics, with Prometheus counters for long-running hosts.
//
// Quick ASCII example:
//
//	pattern      target
//	 u───v       a───b───c
//
//	subgraph mode yields u=a v=b, u=b v=a, u=b v=c, u=c v=b.
//
//	go get github.com/katalvlaran/isomatch
package isomatch
