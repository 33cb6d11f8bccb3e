// Package dsl parses the vellum document-description language: a small
// text format whose nodes mirror the combinator layer, so layout
// behaviour can be scripted without writing Go.
//
// Example:
//
//	doc demo v1 {
//	    vsep {
//	        text "lorem ipsum"
//	        hang 4 { vsep { text "dolor" text "sit" } }
//	        group { text "a" line text "b" }
//	    }
//	}
package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Number", Pattern: `-?\d+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment"),
	)
)

// Document is the root AST node of a vellum DSL file.
type Document struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"Newline* 'doc' @Ident"`
	Version string         `parser:"@Ident"`
	Nodes   []*Node        `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Node is one layout instruction: a leaf like `line`, a string node like
// `text "..."`, or a block combinator like `vsep { ... }`. Numeric and
// string arguments and the child block are all optional; the builder
// checks that each node name got the shape it requires.
type Node struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Name   string         `parser:"@Ident"`
	Number *int           `parser:"( @Number"`
	String *StringLiteral `parser:"| @String )?"`
	Block  []*Node        `parser:"( '{' Newline* ( @@ Newline* )* '}' )?"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses DSL content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses DSL content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

// CountNodes reports how many layout nodes the document holds, block
// contents included.
func (d *Document) CountNodes() int {
	var count func(ns []*Node) int
	count = func(ns []*Node) int {
		n := 0
		for _, node := range ns {
			n += 1 + count(node.Block)
		}
		return n
	}
	return count(d.Nodes)
}
