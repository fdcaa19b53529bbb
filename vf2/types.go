// SPDX-License-Identifier: MIT
// File: types.go
// Role: Modes, phases, comparators, options and sentinel errors of vf2.

package vf2

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isomatch/core"
)

var (
	// ErrInvalidGraph indicates a nil graph, a graph without vertices, an
	// edge whose endpoint is not a listed vertex, or a pattern/target pair
	// whose directedness differs.
	ErrInvalidGraph = errors.New("vf2: invalid graph")

	// ErrSizeMismatch is reported by Matcher.Err when exact mode was
	// short-circuited because the two graphs cannot be isomorphic.
	ErrSizeMismatch = errors.New("vf2: size mismatch")

	// ErrInternalConsistency marks a broken search invariant. It is only
	// ever raised as a panic value.
	ErrInternalConsistency = errors.New("vf2: internal consistency violated")

	// ErrUnknownMode indicates a Mode value or mode name outside the known set.
	ErrUnknownMode = errors.New("vf2: unknown mode")
)

// Graph is the read-only capability set the matcher needs. *core.Graph
// satisfies it. Both slices must be returned in a deterministic order.
type Graph interface {
	Vertices() []string
	Edges() []*core.Edge
	Directed() bool
}

// Mode selects the feasibility regime of a search session.
type Mode int

const (
	// ModeIsomorphism finds bijections preserving adjacency both ways.
	ModeIsomorphism Mode = iota
	// ModeSubgraph finds injections preserving pattern adjacency into the
	// target (monomorphisms); the target may have extra arcs.
	ModeSubgraph
	// ModeInducedSubgraph finds injections onto induced subgraphs of the
	// target: arcs among mapped vertices must agree both ways.
	ModeInducedSubgraph
)

var modeNames = map[Mode]string{
	ModeIsomorphism:     "exact",
	ModeSubgraph:        "subgraph",
	ModeInducedSubgraph: "induced",
}

// String returns "exact", "subgraph" or "induced".
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool {
	_, ok := modeNames[m]

	return ok
}

// ParseMode maps a case-insensitive name to a Mode. Accepted names are
// "exact"/"isomorphism", "subgraph"/"mono"/"monomorphism" and "induced".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "isomorphism", "iso":
		return ModeIsomorphism, nil
	case "subgraph", "mono", "monomorphism":
		return ModeSubgraph, nil
	case "induced":
		return ModeInducedSubgraph, nil
	}

	return 0, errors.Wrapf(ErrUnknownMode, "vf2: ParseMode(%q)", s)
}

// Phase is the position of a Matcher in its lifecycle.
type Phase int

const (
	// PhaseExploring: searching; the initial phase.
	PhaseExploring Phase = iota
	// PhaseYielded: paused right after returning a mapping.
	PhaseYielded
	// PhaseExhausted: terminal, no further mappings.
	PhaseExhausted
)

func (p Phase) String() string {
	switch p {
	case PhaseExploring:
		return "exploring"
	case PhaseYielded:
		return "yielded"
	case PhaseExhausted:
		return "exhausted"
	}

	return fmt.Sprintf("Phase(%d)", int(p))
}

// VertexMatchFunc reports whether pattern vertex patternID may map to
// target vertex targetID.
type VertexMatchFunc func(patternID, targetID string) bool

// EdgeMatchFunc reports whether a pattern edge may correspond to a target
// edge.
type EdgeMatchFunc func(pattern, target *core.Edge) bool

// Options holds the semantic and structural knobs of a search session.
type Options struct {
	// VertexMatch, if non-nil, must accept every mapped vertex pair.
	VertexMatch VertexMatchFunc

	// EdgeMatch, if non-nil, must accept, for every pattern edge on a mapped
	// arc, at least one target edge on the image arc.
	EdgeMatch EdgeMatchFunc

	// Multiplicity makes parallel edges significant: arc multiplicities must
	// be equal (exact, induced) or not exceed the target's (subgraph). When
	// false, parallel edges collapse to a single arc.
	Multiplicity bool

	// ViewOptions are applied to both Views built by NewMatcher.
	ViewOptions []ViewOption
}

// Option configures a search session.
type Option func(*Options)

// DefaultOptions returns structural-only matching with parallel edges
// collapsed.
func DefaultOptions() Options {
	return Options{}
}

// WithVertexMatch installs a vertex-equivalence predicate. nil clears it.
func WithVertexMatch(fn VertexMatchFunc) Option {
	return func(o *Options) { o.VertexMatch = fn }
}

// WithEdgeMatch installs an edge-equivalence predicate. nil clears it.
func WithEdgeMatch(fn EdgeMatchFunc) Option {
	return func(o *Options) { o.EdgeMatch = fn }
}

// WithMultiplicity toggles parallel-edge counting.
func WithMultiplicity(on bool) Option {
	return func(o *Options) { o.Multiplicity = on }
}

// WithViewOptions forwards options to NewView for both graphs.
func WithViewOptions(opts ...ViewOption) Option {
	return func(o *Options) { o.ViewOptions = append(o.ViewOptions, opts...) }
}

// Stats counts the work done by a Matcher so far.
type Stats struct {
	States            int64 // child states pushed
	FeasibilityChecks int64 // candidate pairs tested
	Mappings          int64 // mappings yielded
	Backtracks        int64 // states popped
}

func (s Stats) sub(o Stats) Stats {
	return Stats{
		States:            s.States - o.States,
		FeasibilityChecks: s.FeasibilityChecks - o.FeasibilityChecks,
		Mappings:          s.Mappings - o.Mappings,
		Backtracks:        s.Backtracks - o.Backtracks,
	}
}

// VertexPair is one pattern→target vertex correspondence.
type VertexPair struct {
	Pattern string
	Target  string
}

// EdgePair is one pattern→target edge correspondence.
type EdgePair struct {
	Pattern *core.Edge
	Target  *core.Edge
}
