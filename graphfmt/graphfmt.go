// SPDX-License-Identifier: MIT
// Package graphfmt reads and writes a compact text notation for small graphs:
//
//	digraph            # optional header: graph | digraph
//	a:start -> b       # vertex labels follow a colon
//	b -(3) c           # weights sit in parentheses after the operator
//	c <- d; d - d      # "-" is undirected, loops are allowed
//	lonely
//
// Without a header the graph is directed iff some statement uses an arrow.
// Inside a digraph "-" produces an undirected edge of a mixed graph; an
// arrow inside an explicit "graph" is an error. Parallel edges and loops are
// always accepted. Labels land in Vertex.Metadata["label"]; any weight makes
// the graph weighted.
package graphfmt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isomatch/core"
)

// LabelKey is the metadata key that receives vertex labels.
const LabelKey = "label"

var (
	// ErrSyntax wraps every lexer or grammar failure.
	ErrSyntax = errors.New("graphfmt: syntax error")

	// ErrArrowInUndirected indicates "->" or "<-" inside a "graph" document.
	ErrArrowInUndirected = errors.New("graphfmt: arrow in undirected graph")

	// ErrLabelConflict indicates one vertex given two different labels.
	ErrLabelConflict = errors.New("graphfmt: conflicting vertex labels")
)

const (
	opUndirected = "-"
	opForward    = "->"
	opBackward   = "<-"
)

// Parse builds a core.Graph from src.
func Parse(src string) (*core.Graph, error) {
	doc, err := documentParser.ParseString("", src)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%v", err)
	}

	arrows, plain, weighted := false, false, false
	for _, st := range doc.Statements {
		for _, s := range st.Steps {
			if s.Op == opUndirected {
				plain = true
			} else {
				arrows = true
			}
			if s.Weight != nil {
				weighted = true
			}
		}
	}
	if doc.Kind == "graph" && arrows {
		return nil, ErrArrowInUndirected
	}

	directed := doc.Kind == "digraph" || (doc.Kind == "" && arrows)
	opts := []core.GraphOption{core.WithDirected(directed), core.WithLoops(), core.WithMultiEdges()}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	mixed := directed && plain
	var g *core.Graph
	if mixed {
		g = core.NewMixedGraph(opts...)
	} else {
		g = core.NewGraph(opts...)
	}

	b := &loader{g: g, mixed: mixed, labels: make(map[string]string)}
	for _, st := range doc.Statements {
		if err := b.statement(st); err != nil {
			return nil, err
		}
	}

	return g, nil
}

type loader struct {
	g      *core.Graph
	mixed  bool
	labels map[string]string
}

func (b *loader) statement(st *statement) error {
	prev, err := b.vertex(st.Head)
	if err != nil {
		return err
	}
	for _, s := range st.Steps {
		next, err := b.vertex(s.To)
		if err != nil {
			return err
		}
		var w int64
		if s.Weight != nil {
			if w, err = strconv.ParseInt(*s.Weight, 10, 64); err != nil {
				return errors.Wrapf(ErrSyntax, "weight %q: %v", *s.Weight, err)
			}
		}

		from, to := prev, next
		if s.Op == opBackward {
			from, to = next, prev
		}
		var eopts []core.EdgeOption
		if b.mixed {
			eopts = append(eopts, core.WithEdgeDirected(s.Op != opUndirected))
		}
		if _, err := b.g.AddEdge(from, to, w, eopts...); err != nil {
			return errors.Wrapf(err, "graphfmt: edge %s %s %s", prev, s.Op, next)
		}
		prev = next
	}

	return nil
}

func (b *loader) vertex(ref *vertexRef) (string, error) {
	if err := b.g.AddVertex(ref.ID); err != nil {
		return "", errors.Wrapf(err, "graphfmt: vertex %q", ref.ID)
	}
	if ref.Label == nil {
		return ref.ID, nil
	}
	if have, ok := b.labels[ref.ID]; ok && have != *ref.Label {
		return "", errors.Wrapf(ErrLabelConflict, "vertex %q: %q vs %q", ref.ID, have, *ref.Label)
	}
	b.labels[ref.ID] = *ref.Label

	return ref.ID, b.g.SetVertexMetadata(ref.ID, LabelKey, *ref.Label)
}

var bareToken = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.]*$`)

// QuoteID returns s bare when the lexer reads it back as one Ident or Int,
// and as a Go-quoted string otherwise.
func QuoteID(s string) string {
	if bareToken.MatchString(s) && s != "graph" && s != "digraph" {
		return s
	}

	return strconv.Quote(s)
}

// Format renders g so that Parse(Format(g)) rebuilds the same vertices,
// labels, weights and edges (edge IDs are reassigned). Labelled and isolated
// vertices get their own line; edges follow in Edges() order.
func Format(g *core.Graph) string {
	var sb strings.Builder
	directed := g.Directed() || g.HasDirectedEdges()
	if directed {
		sb.WriteString("digraph\n")
	} else {
		sb.WriteString("graph\n")
	}

	touched := make(map[string]bool)
	for _, e := range g.Edges() {
		touched[e.From], touched[e.To] = true, true
	}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			continue
		}
		label, hasLabel := v.Metadata[LabelKey].(string)
		if !hasLabel && touched[id] {
			continue
		}
		sb.WriteString(QuoteID(id))
		if hasLabel {
			sb.WriteByte(':')
			sb.WriteString(QuoteID(label))
		}
		sb.WriteByte('\n')
	}

	weighted := g.Weighted()
	for _, e := range g.Edges() {
		sb.WriteString(QuoteID(e.From))
		if e.Directed {
			sb.WriteString(" " + opForward)
		} else {
			sb.WriteString(" " + opUndirected)
		}
		if weighted {
			sb.WriteString("(" + strconv.FormatInt(e.Weight, 10) + ")")
		}
		sb.WriteString(" " + QuoteID(e.To) + "\n")
	}

	return sb.String()
}
