// SPDX-License-Identifier: MIT
// Package vf2 finds graph and subgraph isomorphisms with the VF2 algorithm.
//
// A search session is a Matcher built from a pattern graph, a target graph
// and a Mode:
//
//	ModeIsomorphism      bijection, arcs preserved both ways
//	ModeSubgraph         injection, pattern arcs preserved (monomorphism)
//	ModeInducedSubgraph  injection, arcs among mapped vertices agree both ways
//
// Matchers are pull-based and resumable. Each Next call performs only the
// search needed to reach the next complete correspondence and then pauses;
// nothing is precomputed and no goroutine is started:
//
//	m, err := vf2.NewMatcher(pattern, target, vf2.ModeSubgraph)
//	if err != nil {
//		return err
//	}
//	for mp := range m.All() {
//		fmt.Println(mp)
//	}
//
// The search is an explicit stack of immutable Match States. Candidate pairs
// are drawn from the out-frontier, then the in-frontier, then all unmapped
// vertices, with the pattern vertex fixed per state and target vertices in
// ascending index order, so every mapping is produced exactly once and two
// runs over the same input enumerate the same sequence.
//
// Semantic constraints layer on top of structure: WithVertexMatch and
// WithEdgeMatch install predicates (see MatchVertexMetadata and
// MatchEdgeWeight). Self-loops are always structural; parallel edges collapse
// to one arc unless WithMultiplicity(true) is given.
//
// Matchers log through klog at V(2) (session start, short-circuit,
// exhaustion) and V(4) (every mapping), and publish isomatch_vf2_* counters
// to the default Prometheus registry.
package vf2
