// Package doc defines the document algebra of the vellum pretty printer.
//
// A Doc[A] is not a single rendering but a set of possible line layouts
// with alternatives; the layout package picks one concrete layout under a
// page-width constraint. The type parameter A carries user annotations
// through layout untouched; the plain-text renderer ignores them.
//
// The variant structs (DFail, DEmpty, DChar, ...) are the thirteen
// constructors of the algebra. They are exported so the layout engine can
// dispatch on them, but most callers should build documents through the
// combinators in this package, which maintain the algebra's invariants:
// no newline ever appears inside DChar or DText, a DText always holds at
// least two runes, and the wide (flat) branch of a DUnion never has a
// narrower first line than its narrow alternative.
package doc

import (
	"strings"
	"unicode/utf8"
)

// Doc is a document with annotations of type A: a persistent, immutable
// tree that may be freely shared between layouts.
type Doc[A any] interface {
	isDoc(A)
}

// DFail rejects every layout containing it on its first line.
type DFail[A any] struct{}

// DEmpty is the unit of concatenation: height one, width zero.
type DEmpty[A any] struct{}

// DChar holds a single rune. Invariant: Ch is never '\n'.
type DChar[A any] struct {
	Ch rune
}

// DText holds a run of text. Invariant: at least two runes, no '\n'.
// Single-rune runs use DChar for a cheaper output path.
type DText[A any] struct {
	Text string
}

// DLine is a hard line break; output after it is indented to the current
// nesting level.
type DLine[A any] struct{}

// DFlatAlt renders Default normally; under Group the Flat branch is
// preferred when it fits. Caller contract: the first line of Default must
// not be wider than the first line of the flattened Flat branch.
type DFlatAlt[A any] struct {
	Default, Flat Doc[A]
}

// DCat concatenates two documents.
type DCat[A any] struct {
	First, Second Doc[A]
}

// DNest adds Indent to the nesting level while laying out Doc.
// Negative values are allowed.
type DNest[A any] struct {
	Indent int
	Doc    Doc[A]
}

// DUnion is the alternative of two layouts. Invariant: every first line
// of Wide is at least as wide as the corresponding first line of Narrow;
// the layout engine relies on this when it probes Wide first.
type DUnion[A any] struct {
	Wide, Narrow Doc[A]
}

// DColumn produces a document from the current output column (0-based).
// The producer must be referentially transparent; it is invoked at most
// once per context, possibly never.
type DColumn[A any] struct {
	F func(column int) Doc[A]
}

// DPageWidth produces a document from the page width in effect.
type DPageWidth[A any] struct {
	F func(pw PageWidth) Doc[A]
}

// DNesting produces a document from the current nesting level.
type DNesting[A any] struct {
	F func(level int) Doc[A]
}

// DAnn attaches a user annotation to a subtree.
type DAnn[A any] struct {
	Ann A
	Doc Doc[A]
}

func (DFail[A]) isDoc(A)      {}
func (DEmpty[A]) isDoc(A)     {}
func (DChar[A]) isDoc(A)      {}
func (DText[A]) isDoc(A)      {}
func (DLine[A]) isDoc(A)      {}
func (DFlatAlt[A]) isDoc(A)   {}
func (DCat[A]) isDoc(A)       {}
func (DNest[A]) isDoc(A)      {}
func (DUnion[A]) isDoc(A)     {}
func (DColumn[A]) isDoc(A)    {}
func (DPageWidth[A]) isDoc(A) {}
func (DNesting[A]) isDoc(A)   {}
func (DAnn[A]) isDoc(A)       {}

// Fail is the always-failing document.
func Fail[A any]() Doc[A] { return DFail[A]{} }

// Empty is the empty document.
func Empty[A any]() Doc[A] { return DEmpty[A]{} }

// Char builds a single-character document. A '\n' is converted to a hard
// line break so the DChar invariant always holds.
func Char[A any](r rune) Doc[A] {
	if r == '\n' {
		return DLine[A]{}
	}
	return DChar[A]{Ch: r}
}

// Text builds a document from a string. Newlines split the string into
// Line breaks, which always break unless an enclosing Group flattens them
// to a space; each remaining run becomes DEmpty, DChar or DText
// depending on its length, so the DText invariants always hold.
func Text[A any](s string) Doc[A] {
	if !strings.ContainsRune(s, '\n') {
		return textRun[A](s)
	}
	parts := strings.Split(s, "\n")
	d := textRun[A](parts[0])
	for _, part := range parts[1:] {
		d = DCat[A]{First: d, Second: DCat[A]{First: Line[A](), Second: textRun[A](part)}}
	}
	return d
}

// textRun builds the cheapest representation of a newline-free string.
func textRun[A any](s string) Doc[A] {
	switch utf8.RuneCountInString(s) {
	case 0:
		return DEmpty[A]{}
	case 1:
		r, _ := utf8.DecodeRuneInString(s)
		return DChar[A]{Ch: r}
	default:
		return DText[A]{Text: s}
	}
}

// HardLine is a line break that survives flattening. Grouping a document
// containing it never produces a single-line alternative.
func HardLine[A any]() Doc[A] { return DLine[A]{} }

// Line is a line break that flattens to a single space.
func Line[A any]() Doc[A] {
	return DFlatAlt[A]{Default: DLine[A]{}, Flat: DChar[A]{Ch: ' '}}
}

// LineBreak is a line break that flattens to nothing.
func LineBreak[A any]() Doc[A] {
	return DFlatAlt[A]{Default: DLine[A]{}, Flat: DEmpty[A]{}}
}

// SoftLine renders as a space if the result fits, a line break otherwise.
func SoftLine[A any]() Doc[A] { return Group(Line[A]()) }

// SoftLineBreak renders as nothing if the result fits, a line break
// otherwise.
func SoftLineBreak[A any]() Doc[A] { return Group(LineBreak[A]()) }

// FlatAlt renders def by default and flat when flattened under Group.
// The caller is responsible for the width contract documented on DFlatAlt.
func FlatAlt[A any](def, flat Doc[A]) Doc[A] {
	return DFlatAlt[A]{Default: def, Flat: flat}
}

// Concat joins two documents. Empty operands vanish so the tree stays
// small; DEmpty is the unit of concatenation either way.
func Concat[A any](x, y Doc[A]) Doc[A] {
	if _, ok := x.(DEmpty[A]); ok {
		return y
	}
	if _, ok := y.(DEmpty[A]); ok {
		return x
	}
	return DCat[A]{First: x, Second: y}
}

// Nest lays out d with the nesting level raised by indent. Zero is the
// identity; negative indents un-indent.
func Nest[A any](indent int, d Doc[A]) Doc[A] {
	if indent == 0 {
		return d
	}
	return DNest[A]{Indent: indent, Doc: d}
}

// Column reacts to the column the cursor is at when the document is
// reached.
func Column[A any](f func(column int) Doc[A]) Doc[A] {
	return DColumn[A]{F: f}
}

// WithPageWidth reacts to the page width the layout runs under.
func WithPageWidth[A any](f func(pw PageWidth) Doc[A]) Doc[A] {
	return DPageWidth[A]{F: f}
}

// Nesting reacts to the nesting level in effect when the document is
// reached.
func Nesting[A any](f func(level int) Doc[A]) Doc[A] {
	return DNesting[A]{F: f}
}

// Annotate attaches ann to d. Annotations travel through layout into the
// output stream; the plain-text renderer skips them.
func Annotate[A any](ann A, d Doc[A]) Doc[A] {
	return DAnn[A]{Ann: ann, Doc: d}
}
