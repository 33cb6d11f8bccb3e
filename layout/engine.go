package layout

import (
	"unicode/utf8"

	"github.com/ByLCY/vellum/doc"
)

// Options configures a layout run.
type Options struct {
	PageWidth doc.PageWidth
}

// DefaultOptions lays out against an 80-column page with the full width
// available as ribbon.
var DefaultOptions = Options{
	PageWidth: doc.AvailablePerLine{LineWidth: 80, RibbonFraction: 1.0},
}

// FittingPredicate decides whether a prospective stream fits, given the
// nesting level of the current line, the current column, and the initial
// indentation of the discarded alternative. The indentation is supplied
// as a deferred lookup so predicates that ignore it never force the
// alternative's first line.
type FittingPredicate[A any] func(lineIndent, currentColumn int, altIndent func() (int, bool), s Stream[A]) bool

// WadlerLeijen runs the best-fit layout algorithm over d with the given
// fitness predicate. Pretty, Smart and Unbounded are thin wrappers that
// plug in their predicate; Compact bypasses it entirely.
func WadlerLeijen[A any](fits FittingPredicate[A], pageWidth doc.PageWidth, d doc.Doc[A]) Stream[A] {
	e := &engine[A]{fits: fits, pageWidth: pageWidth}
	return e.best(0, 0, Cons[A]{Indent: 0, Doc: d, Rest: Nil[A]{}})
}

type engine[A any] struct {
	fits      FittingPredicate[A]
	pageWidth doc.PageWidth
}

// best lays out the head of the work list at nesting level nl and column
// cc. Structural nodes are unfolded iteratively onto the pipeline; each
// emitted event suspends the remainder, so the stream is produced one
// event per Force and a discarded union branch costs nothing beyond the
// prefix its fitness probe examined.
func (e *engine[A]) best(nl, cc int, plo Pipeline[A]) Stream[A] {
	for {
		switch p := plo.(type) {
		case Nil[A]:
			return SEmpty[A]{}
		case UndoAnn[A]:
			return SAnnPop[A]{Rest: Suspend(func() Stream[A] { return e.best(nl, cc, p.Rest) })}
		case Cons[A]:
			switch d := p.Doc.(type) {
			case doc.DFail[A]:
				return SFail[A]{}
			case doc.DEmpty[A]:
				plo = p.Rest
			case doc.DChar[A]:
				return SChar[A]{Ch: d.Ch, Rest: Suspend(func() Stream[A] { return e.best(nl, cc+1, p.Rest) })}
			case doc.DText[A]:
				w := utf8.RuneCountInString(d.Text)
				return SText[A]{Text: d.Text, Rest: Suspend(func() Stream[A] { return e.best(nl, cc+w, p.Rest) })}
			case doc.DLine[A]:
				x := e.best(p.Indent, p.Indent, p.Rest)
				// Collapse indentation that would be trailing
				// whitespace on an otherwise empty line.
				indent := p.Indent
				switch x.(type) {
				case SEmpty[A], SLine[A]:
					indent = 0
				}
				return SLine[A]{Indent: indent, Rest: Emitted(x)}
			case doc.DFlatAlt[A]:
				// Flattening is Group's job; the engine always
				// takes the default branch.
				plo = Cons[A]{Indent: p.Indent, Doc: d.Default, Rest: p.Rest}
			case doc.DCat[A]:
				plo = Cons[A]{Indent: p.Indent, Doc: d.First, Rest: Cons[A]{Indent: p.Indent, Doc: d.Second, Rest: p.Rest}}
			case doc.DNest[A]:
				plo = Cons[A]{Indent: p.Indent + d.Indent, Doc: d.Doc, Rest: p.Rest}
			case doc.DUnion[A]:
				x := e.best(nl, cc, Cons[A]{Indent: p.Indent, Doc: d.Wide, Rest: p.Rest})
				y := Suspend(func() Stream[A] {
					return e.best(nl, cc, Cons[A]{Indent: p.Indent, Doc: d.Narrow, Rest: p.Rest})
				})
				return e.selectNicer(nl, cc, x, y)
			case doc.DColumn[A]:
				plo = Cons[A]{Indent: p.Indent, Doc: d.F(cc), Rest: p.Rest}
			case doc.DPageWidth[A]:
				plo = Cons[A]{Indent: p.Indent, Doc: d.F(e.pageWidth), Rest: p.Rest}
			case doc.DNesting[A]:
				plo = Cons[A]{Indent: p.Indent, Doc: d.F(p.Indent), Rest: p.Rest}
			case doc.DAnn[A]:
				return SAnnPush[A]{Ann: d.Ann, Rest: Suspend(func() Stream[A] {
					return e.best(nl, cc, Cons[A]{Indent: p.Indent, Doc: d.Doc, Rest: UndoAnn[A]{Rest: p.Rest}})
				})}
			default:
				panic("vellum: unknown Doc variant in layout")
			}
		default:
			panic("vellum: unknown pipeline variant in layout")
		}
	}
}

// selectNicer keeps x when the fitness predicate accepts it, otherwise
// forces and returns the alternative.
func (e *engine[A]) selectNicer(nl, cc int, x Stream[A], y *Tail[A]) Stream[A] {
	altIndent := func() (int, bool) { return initialIndentation(y.Force()) }
	if e.fits(nl, cc, altIndent, x) {
		return x
	}
	return y.Force()
}

// Unbounded lays out d without a width limit: the wide branch of every
// alternative wins unless its first line fails.
func Unbounded[A any](d doc.Doc[A]) Stream[A] {
	fits := func(_, _ int, _ func() (int, bool), s Stream[A]) bool {
		return !failsOnFirstLine(s)
	}
	return WadlerLeijen(fits, doc.Unbounded{}, d)
}

// Pretty lays out d choosing the wide branch of each alternative
// whenever its first line fits in the remaining width. This is the
// default layout algorithm.
func Pretty[A any](opts Options, d doc.Doc[A]) Stream[A] {
	pw, ok := opts.PageWidth.(doc.AvailablePerLine)
	if !ok {
		return Unbounded(d)
	}
	lw := pw.LineWidth
	rf := doc.ClampRibbon(pw.RibbonFraction)
	fits := func(nl, cc int, _ func() (int, bool), s Stream[A]) bool {
		return fitsOnFirstLine(s, doc.RemainingWidth(lw, rf, nl, cc))
	}
	return WadlerLeijen(fits, pw, d)
}

// Smart is Pretty with deeper lookahead: the fitness check continues
// past line breaks while the indentation stays strictly greater than the
// level the alternative would return to. This catches layouts whose
// first line fits but which then march off the right margin.
func Smart[A any](opts Options, d doc.Doc[A]) Stream[A] {
	pw, ok := opts.PageWidth.(doc.AvailablePerLine)
	if !ok {
		return Unbounded(d)
	}
	lw := pw.LineWidth
	rf := doc.ClampRibbon(pw.RibbonFraction)
	fits := func(nl, cc int, altIndent func() (int, bool), s Stream[A]) bool {
		minNestingLevel := cc
		if i, ok := altIndent(); ok && i < cc {
			minNestingLevel = i
		}
		w := doc.RemainingWidth(lw, rf, nl, cc)
		for {
			if w < 0 {
				return false
			}
			switch n := s.(type) {
			case SFail[A]:
				return false
			case SEmpty[A]:
				return true
			case SChar[A]:
				w--
				s = n.Rest.Force()
			case SText[A]:
				w -= utf8.RuneCountInString(n.Text)
				s = n.Rest.Force()
			case SLine[A]:
				if minNestingLevel >= n.Indent {
					return true
				}
				// The next line starts at column n.Indent,
				// leaving lw - n.Indent columns.
				w = lw - n.Indent
				s = n.Rest.Force()
			case SAnnPush[A]:
				s = n.Rest.Force()
			case SAnnPop[A]:
				s = n.Rest.Force()
			default:
				panic("vellum: unknown stream variant in Smart fitness check")
			}
		}
	}
	return WadlerLeijen(fits, pw, d)
}

// fitsOnFirstLine reports whether the first line of s needs at most w
// columns and does not fail.
func fitsOnFirstLine[A any](s Stream[A], w int) bool {
	for {
		if w < 0 {
			return false
		}
		switch n := s.(type) {
		case SFail[A]:
			return false
		case SEmpty[A]:
			return true
		case SLine[A]:
			return true
		case SChar[A]:
			w--
			s = n.Rest.Force()
		case SText[A]:
			w -= utf8.RuneCountInString(n.Text)
			s = n.Rest.Force()
		case SAnnPush[A]:
			s = n.Rest.Force()
		case SAnnPop[A]:
			s = n.Rest.Force()
		default:
			panic("vellum: unknown stream variant in fitness check")
		}
	}
}

// failsOnFirstLine reports whether the first line of s contains SFail.
func failsOnFirstLine[A any](s Stream[A]) bool {
	for {
		switch n := s.(type) {
		case SFail[A]:
			return true
		case SEmpty[A]:
			return false
		case SLine[A]:
			return false
		case SChar[A]:
			s = n.Rest.Force()
		case SText[A]:
			s = n.Rest.Force()
		case SAnnPush[A]:
			s = n.Rest.Force()
		case SAnnPop[A]:
			s = n.Rest.Force()
		default:
			panic("vellum: unknown stream variant in failure check")
		}
	}
}
