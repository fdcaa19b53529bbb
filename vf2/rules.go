// SPDX-License-Identifier: MIT
// File: rules.go
// Role: Feasibility Rules. One rules value is selected per session from the
// Mode and never changes; the hot path is a flat switch on r.mode.
//
// Checks, cheapest first:
//  1. degree bounds (equal in exact mode, ≤ otherwise),
//  2. self-loop agreement,
//  3. vertex predicate,
//  4. arcs between the candidate and already-mapped vertices,
//  5. 1-look-ahead over unmapped neighbours.
//
// Look-ahead categories for a candidate's unmapped neighbours:
//
//	out   in T_out (successor of a mapped vertex)
//	in    in T_in  (predecessor of a mapped vertex)
//	fresh in neither
//	total all of them
//
// Exact mode requires out, in and fresh equal. Induced mode requires each
// pattern count ≤ its target count. Subgraph (monomorphism) mode compares
// out, in and total with ≤: a fresh pattern neighbour may legally land on a
// frontier target vertex there, so fresh alone proves nothing.

package vf2

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isomatch/core"
)

type rules struct {
	mode        Mode
	multi       bool
	vertexMatch VertexMatchFunc
	edgeMatch   EdgeMatchFunc
}

func newRules(mode Mode, o Options) (*rules, error) {
	if !mode.valid() {
		return nil, errors.Wrapf(ErrUnknownMode, "vf2: rules for %v", mode)
	}

	return &rules{
		mode:        mode,
		multi:       o.Multiplicity,
		vertexMatch: o.VertexMatch,
		edgeMatch:   o.EdgeMatch,
	}, nil
}

// fits compares a pattern quantity with a target quantity.
func (r *rules) fits(p, t int) bool {
	if r.mode == ModeIsomorphism {
		return p == t
	}

	return p <= t
}

// arcFits compares arc multiplicities p (pattern) and t (target).
func (r *rules) arcFits(p, t int) bool {
	if r.multi {
		if r.mode == ModeSubgraph {
			return p <= t
		}

		return p == t
	}
	if r.mode == ModeSubgraph {
		return p == 0 || t > 0
	}

	return (p > 0) == (t > 0)
}

func (r *rules) feasible(s *state, i, j int) bool {
	g1, g2 := s.g1, s.g2

	if !r.fits(g1.OutDegree(i), g2.OutDegree(j)) || !r.fits(g1.InDegree(i), g2.InDegree(j)) {
		return false
	}
	if !r.arcOK(g1, g2, i, i, j, j) {
		return false
	}
	if r.vertexMatch != nil && !r.vertexMatch(g1.ids[i], g2.ids[j]) {
		return false
	}
	if !r.adjacencyOK(s, i, j) {
		return false
	}

	return r.lookAheadOK(s, i, j)
}

// adjacencyOK checks every arc between the candidate pair and the mapped
// core. Pattern arcs must be present on the image arcs; in exact and induced
// mode target arcs must also be present on the preimage arcs.
func (r *rules) adjacencyOK(s *state, i, j int) bool {
	g1, g2 := s.g1, s.g2

	for _, w := range g1.succ[i] {
		if m := s.core1[w]; w != i && m != unmapped && !r.arcOK(g1, g2, i, w, j, m) {
			return false
		}
	}
	if g1.directed {
		for _, w := range g1.pred[i] {
			if m := s.core1[w]; w != i && m != unmapped && !r.arcOK(g1, g2, w, i, m, j) {
				return false
			}
		}
	}
	if r.mode == ModeSubgraph {
		return true
	}

	for _, w := range g2.succ[j] {
		if q := s.core2[w]; w != j && q != unmapped && !g1.IsAdjacent(i, q) {
			return false
		}
	}
	if g2.directed {
		for _, w := range g2.pred[j] {
			if q := s.core2[w]; w != j && q != unmapped && !g1.IsAdjacent(q, i) {
				return false
			}
		}
	}

	return true
}

// arcOK compares pattern arc a→b with target arc c→d, structurally and then
// through the edge predicate.
func (r *rules) arcOK(g1, g2 *View, a, b, c, d int) bool {
	p, t := g1.Multiplicity(a, b), g2.Multiplicity(c, d)
	if !r.arcFits(p, t) {
		return false
	}
	if p == 0 || r.edgeMatch == nil {
		return true
	}

	return assignEdges(g1.EdgesBetween(a, b), g2.EdgesBetween(c, d), r.edgeMatch, r.multi) != nil
}

type tally struct{ out, in, fresh, total int }

func count(nbrs []int, self int, core []int, out, in []bool) tally {
	var c tally
	for _, w := range nbrs {
		if w == self || core[w] != unmapped {
			continue
		}
		c.total++
		switch {
		case out[w] && in[w]:
			c.out++
			c.in++
		case out[w]:
			c.out++
		case in[w]:
			c.in++
		default:
			c.fresh++
		}
	}

	return c
}

func (r *rules) tallyFits(p, t tally) bool {
	switch r.mode {
	case ModeIsomorphism:
		return p.out == t.out && p.in == t.in && p.fresh == t.fresh
	case ModeInducedSubgraph:
		return p.out <= t.out && p.in <= t.in && p.fresh <= t.fresh
	}

	return p.out <= t.out && p.in <= t.in && p.total <= t.total
}

func (r *rules) lookAheadOK(s *state, i, j int) bool {
	g1, g2 := s.g1, s.g2

	ps := count(g1.succ[i], i, s.core1, s.out1, s.in1)
	ts := count(g2.succ[j], j, s.core2, s.out2, s.in2)
	if !r.tallyFits(ps, ts) {
		return false
	}
	if !g1.directed {
		return true
	}
	pp := count(g1.pred[i], i, s.core1, s.out1, s.in1)
	tp := count(g2.pred[j], j, s.core2, s.out2, s.in2)

	return r.tallyFits(pp, tp)
}

// assignEdges pairs every pattern edge with an accepted target edge. With
// distinct set the target edges are pairwise different (bipartite matching
// by augmenting paths); otherwise each pattern edge takes the first accepted
// target edge. It returns nil when no assignment exists. A nil match accepts
// everything.
func assignEdges(pe, te []*core.Edge, match EdgeMatchFunc, distinct bool) []int {
	accept := func(p, t int) bool { return match == nil || match(pe[p], te[t]) }
	assign := make([]int, len(pe))

	if !distinct {
		for p := range pe {
			assign[p] = unmapped
			for t := range te {
				if accept(p, t) {
					assign[p] = t
					break
				}
			}
			if assign[p] == unmapped {
				return nil
			}
		}

		return assign
	}

	owner := make([]int, len(te))
	for t := range owner {
		owner[t] = unmapped
	}
	// free targets first keeps the assignment close to edge order
	var augment func(p int, seen []bool) bool
	augment = func(p int, seen []bool) bool {
		for t := range te {
			if !seen[t] && owner[t] == unmapped && accept(p, t) {
				seen[t] = true
				owner[t], assign[p] = p, t

				return true
			}
		}
		for t := range te {
			if seen[t] || !accept(p, t) {
				continue
			}
			seen[t] = true
			if augment(owner[t], seen) {
				owner[t], assign[p] = p, t

				return true
			}
		}

		return false
	}
	for p := range pe {
		if !augment(p, make([]bool, len(te))) {
			return nil
		}
	}

	return assign
}
