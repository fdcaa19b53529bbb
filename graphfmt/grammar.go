// SPDX-License-Identifier: MIT
// File: grammar.go
// Role: participle lexer and grammar of the text format.
//
//	document  := ("graph" | "digraph")? statement*
//	statement := vertex step* ";"?
//	step      := ("-" | "->" | "<-") weight? vertex
//	weight    := "(" "-"? Int ")"
//	vertex    := (Ident | Int | String) (":" (Ident | Int | String))?
//
// "#" starts a comment running to the end of the line.

package graphfmt

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var graphLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `->|<-`},
	// Ident precedes Int so that "1a" stays one token; bare digits fall
	// through to Int.
	{Name: "Ident", Pattern: `\d+[A-Za-z_.][A-Za-z0-9_.]*|[A-Za-z_][A-Za-z0-9_.]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[-();:]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var documentParser = participle.MustBuild[document](
	participle.Lexer(graphLexer),
	participle.Elide("comment", "whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

type document struct {
	Kind       string       `parser:"@(\"graph\" | \"digraph\")?"`
	Statements []*statement `parser:"@@*"`
}

type statement struct {
	Head  *vertexRef `parser:"@@"`
	Steps []*step    `parser:"@@* \";\"?"`
}

type step struct {
	Op     string     `parser:"@(\"->\" | \"<-\" | \"-\")"`
	Weight *string    `parser:"(\"(\" @(\"-\"? Int) \")\")?"`
	To     *vertexRef `parser:"@@"`
}

type vertexRef struct {
	ID    string  `parser:"@(Ident | Int | String)"`
	Label *string `parser:"(\":\" @(Ident | Int | String))?"`
}
