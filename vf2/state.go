// SPDX-License-Identifier: MIT
// File: state.go
// Role: Match State: one immutable snapshot of a partial correspondence plus
// its frontier bookkeeping and candidate cursor.
//
// Invariants:
//   - core1[i] == j  ⇔  core2[j] == i; unmapped entries hold unmapped (-1).
//   - depth == number of mapped entries in core1.
//   - out1[v] ⇔ v unmapped and v is a successor of a mapped pattern vertex;
//     in1[v] ⇔ v unmapped and v is a predecessor of one. Likewise for 2.
//   - nOut1 etc. are the population counts of those sets.
//
// Only the cursor fields change after addPair returns a child; the core and
// frontier slices are never written again, so a parent stays valid while
// any of its children live.

package vf2

import "github.com/pkg/errors"

const unmapped = -1

// candidate tiers, in the order they are tried
const (
	tierUnset = iota
	tierOut
	tierIn
	tierAll
	tierNone
)

type state struct {
	g1, g2 *View

	core1, core2 []int
	depth        int

	out1, in1, out2, in2     []bool
	nOut1, nIn1, nOut2, nIn2 int

	// cursor: the pattern vertex fixed for this state, its tier, and the next
	// target index to try
	tier    int
	pv      int
	nextTgt int
}

func newState(g1, g2 *View) *state {
	s := &state{
		g1:    g1,
		g2:    g2,
		core1: make([]int, g1.n),
		core2: make([]int, g2.n),
		out1:  make([]bool, g1.n),
		in1:   make([]bool, g1.n),
		out2:  make([]bool, g2.n),
		in2:   make([]bool, g2.n),
	}
	for i := range s.core1 {
		s.core1[i] = unmapped
	}
	for j := range s.core2 {
		s.core2[j] = unmapped
	}

	return s
}

// nextCandidatePair returns the next untried (pattern, target) pair of this
// state.
//
// Tiers: T1out×T2out when both are non-empty, else T1in×T2in when both are
// non-empty, else every unmapped pair. The pattern vertex is the smallest
// index in the chosen pattern-side set and stays fixed for the life of the
// state; target vertices are visited in ascending index order. Every
// completion must map that pattern vertex somewhere in the tier's target
// set, so fixing it loses no mapping and yields none twice.
func (s *state) nextCandidatePair() (int, int, bool) {
	if s.tier == tierUnset {
		s.chooseTier()
	}
	if s.tier == tierNone {
		return 0, 0, false
	}
	for j := s.nextTgt; j < s.g2.n; j++ {
		if s.core2[j] != unmapped || !s.targetInTier(j) {
			continue
		}
		s.nextTgt = j + 1

		return s.pv, j, true
	}
	s.nextTgt = s.g2.n

	return 0, 0, false
}

func (s *state) chooseTier() {
	switch {
	case s.nOut1 > 0 && s.nOut2 > 0:
		s.tier, s.pv = tierOut, firstSet(s.out1)
	case s.nIn1 > 0 && s.nIn2 > 0:
		s.tier, s.pv = tierIn, firstSet(s.in1)
	default:
		s.tier, s.pv = tierAll, unmapped
		for i, m := range s.core1 {
			if m == unmapped {
				s.pv = i
				break
			}
		}
		if s.pv == unmapped {
			s.tier = tierNone
		}
	}
}

func (s *state) targetInTier(j int) bool {
	switch s.tier {
	case tierOut:
		return s.out2[j]
	case tierIn:
		return s.in2[j]
	}

	return true
}

func firstSet(set []bool) int {
	for i, ok := range set {
		if ok {
			return i
		}
	}

	return unmapped
}

// isFeasible asks r whether (i, j) may extend s. It never mutates s.
func (s *state) isFeasible(r *rules, i, j int) bool {
	return r.feasible(s, i, j)
}

// addPair returns a child snapshot with i↦j added and the frontier sets
// extended by the unmapped neighbours of i and j. A pair touching an
// already-mapped vertex panics with ErrInternalConsistency.
//
// Complexity: O(n1 + n2) for the copy plus O(deg i + deg j).
func (s *state) addPair(i, j int) *state {
	if s.core1[i] != unmapped || s.core2[j] != unmapped {
		panic(errors.Wrapf(ErrInternalConsistency, "addPair(%d,%d): core1[%d]=%d core2[%d]=%d",
			i, j, i, s.core1[i], j, s.core2[j]))
	}

	c := &state{
		g1:    s.g1,
		g2:    s.g2,
		core1: append([]int(nil), s.core1...),
		core2: append([]int(nil), s.core2...),
		depth: s.depth + 1,
		out1:  append([]bool(nil), s.out1...),
		in1:   append([]bool(nil), s.in1...),
		out2:  append([]bool(nil), s.out2...),
		in2:   append([]bool(nil), s.in2...),
		nOut1: s.nOut1, nIn1: s.nIn1, nOut2: s.nOut2, nIn2: s.nIn2,
	}
	c.core1[i] = j
	c.core2[j] = i

	c.nOut1, c.nIn1 = grow(c.g1, c.core1, i, c.out1, c.in1, c.nOut1, c.nIn1)
	c.nOut2, c.nIn2 = grow(c.g2, c.core2, j, c.out2, c.in2, c.nOut2, c.nIn2)

	return c
}

// grow removes the newly mapped v from the frontier and adds its unmapped
// neighbours; it returns the updated set sizes.
func grow(g *View, core []int, v int, out, in []bool, nOut, nIn int) (int, int) {
	if out[v] {
		out[v] = false
		nOut--
	}
	if in[v] {
		in[v] = false
		nIn--
	}
	for _, w := range g.succ[v] {
		if core[w] == unmapped && !out[w] {
			out[w] = true
			nOut++
		}
	}
	for _, w := range g.pred[v] {
		if core[w] == unmapped && !in[w] {
			in[w] = true
			nIn++
		}
	}

	return nOut, nIn
}

// isGoal reports whether s is a complete correspondence for mode.
func (s *state) isGoal(mode Mode) bool {
	if s.depth != s.g1.n {
		return false
	}

	return mode != ModeIsomorphism || s.depth == s.g2.n
}
