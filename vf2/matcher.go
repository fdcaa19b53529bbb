// SPDX-License-Identifier: MIT
// File: matcher.go
// Role: Search Driver: explicit-stack DFS over Match States producing one
// Mapping per Next call.
//
// Phases:
//
//	Exploring ──goal──▶ Yielded ──Next──▶ Exploring
//	    └──stack empty──▶ Exhausted (terminal)
//
// The stack holds immutable snapshots; a state's only mutable part is its
// candidate cursor, so popping a child resumes the parent exactly where it
// stopped.

package vf2

import (
	"iter"

	"github.com/plan-systems/klog"
	"github.com/pkg/errors"
)

// Matcher enumerates the correspondences between a pattern and a target.
// It is not safe for concurrent use; build one Matcher per goroutine.
// Dropping a Matcher at any point releases everything it holds.
type Matcher struct {
	g1, g2 *View
	mode   Mode
	rules  *rules
	opts   Options

	stack []*state
	phase Phase
	err   error

	stats   Stats
	flushed Stats
}

// NewMatcher indexes both graphs and prepares a search session.
//
// In exact mode a vertex-count or arc-count difference short-circuits the
// session: the Matcher starts Exhausted, Err reports ErrSizeMismatch, and no
// feasibility check is ever run. A pattern larger than the target in the
// subgraph modes is not an error; the search simply finds nothing.
//
// Errors:
//   - ErrInvalidGraph (wrapped): see NewView; also when the pattern and
//     target disagree on directedness.
//   - ErrUnknownMode (wrapped).
func NewMatcher(pattern, target Graph, mode Mode, opts ...Option) (*Matcher, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r, err := newRules(mode, o)
	if err != nil {
		return nil, err
	}

	g1, err := NewView(pattern, o.ViewOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "pattern")
	}
	g2, err := NewView(target, o.ViewOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "target")
	}

	return newMatcherFromViews(g1, g2, mode, r, o)
}

// NewMatcherFromViews runs a session over already-built Views, so one View
// can serve many searches.
func NewMatcherFromViews(pattern, target *View, mode Mode, opts ...Option) (*Matcher, error) {
	if pattern == nil || target == nil {
		return nil, errors.Wrap(ErrInvalidGraph, "vf2: NewMatcherFromViews: nil view")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r, err := newRules(mode, o)
	if err != nil {
		return nil, err
	}

	return newMatcherFromViews(pattern, target, mode, r, o)
}

func newMatcherFromViews(g1, g2 *View, mode Mode, r *rules, o Options) (*Matcher, error) {
	if g1.directed != g2.directed {
		return nil, errors.Wrapf(ErrInvalidGraph,
			"vf2: pattern directed=%t, target directed=%t", g1.directed, g2.directed)
	}

	m := &Matcher{g1: g1, g2: g2, mode: mode, rules: r, opts: o}
	searchesTotal.WithLabelValues(mode.String()).Inc()
	klog.V(2).Infof("vf2: %s search: pattern n=%d arcs=%d, target n=%d arcs=%d",
		mode, g1.n, g1.arcCount, g2.n, g2.arcCount)

	if mode == ModeIsomorphism {
		if err := sizeCheck(g1, g2, o.Multiplicity); err != nil {
			m.err = err
			m.phase = PhaseExhausted
			klog.V(2).Infof("vf2: short-circuit: %v", err)

			return m, nil
		}
	}
	m.stack = []*state{newState(g1, g2)}

	return m, nil
}

func sizeCheck(g1, g2 *View, multi bool) error {
	switch {
	case g1.n != g2.n:
		return errors.Wrapf(ErrSizeMismatch, "vertices %d vs %d", g1.n, g2.n)
	case g1.arcCount != g2.arcCount:
		return errors.Wrapf(ErrSizeMismatch, "arcs %d vs %d", g1.arcCount, g2.arcCount)
	case multi && g1.arcTotal != g2.arcTotal:
		return errors.Wrapf(ErrSizeMismatch, "edge multiplicity %d vs %d", g1.arcTotal, g2.arcTotal)
	}

	return nil
}

// Next advances the search to the next mapping. It returns false once the
// search is exhausted; every later call returns false too.
func (m *Matcher) Next() (*Mapping, bool) {
	defer m.flushMetrics()

	if m.phase == PhaseExhausted {
		return nil, false
	}
	if m.phase == PhaseYielded {
		// the reported goal has no candidates left; resume in its parent
		m.pop()
		m.phase = PhaseExploring
	}

	for len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		i, j, ok := top.nextCandidatePair()
		if !ok {
			m.pop()
			continue
		}
		m.stats.FeasibilityChecks++
		if !top.isFeasible(m.rules, i, j) {
			continue
		}

		child := top.addPair(i, j)
		m.stack = append(m.stack, child)
		m.stats.States++
		if child.isGoal(m.mode) {
			m.phase = PhaseYielded
			m.stats.Mappings++
			mp := newMapping(m, child)
			klog.V(4).Infof("vf2: mapping #%d: %v", m.stats.Mappings, mp)

			return mp, true
		}
	}

	m.phase = PhaseExhausted
	klog.V(2).Infof("vf2: %s search exhausted: %+v", m.mode, m.stats)

	return nil, false
}

func (m *Matcher) pop() {
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]
	m.stats.Backtracks++
}

// All returns a single-use sequence over the remaining mappings.
func (m *Matcher) All() iter.Seq[*Mapping] {
	return func(yield func(*Mapping) bool) {
		for {
			mp, ok := m.Next()
			if !ok || !yield(mp) {
				return
			}
		}
	}
}

// Err returns ErrSizeMismatch (wrapped) when exact mode was short-circuited
// at construction, nil otherwise. Exhaustion is not an error.
func (m *Matcher) Err() error { return m.err }

// Stats returns the counters accumulated so far.
func (m *Matcher) Stats() Stats { return m.stats }

// Phase returns the current lifecycle phase.
func (m *Matcher) Phase() Phase { return m.phase }

// Mode returns the session mode.
func (m *Matcher) Mode() Mode { return m.mode }

// Pattern returns the pattern View.
func (m *Matcher) Pattern() *View { return m.g1 }

// Target returns the target View.
func (m *Matcher) Target() *View { return m.g2 }
