package layout

import (
	"unicode/utf8"

	"github.com/ByLCY/vellum/doc"
)

// Compact lays out d with no regard for page width: alternatives always
// take their narrow branch, nesting is ignored, every line starts at
// column zero, and annotations are dropped. Useful when the output is
// for machines rather than people.
func Compact[A any](d doc.Doc[A]) Stream[A] {
	return compactScan(0, []doc.Doc[A]{d})
}

// compactScan consumes the document stack top-first, tracking only the
// output column, which reactive producers still observe.
func compactScan[A any](col int, stack []doc.Doc[A]) Stream[A] {
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		rest := stack[:len(stack)-1]
		switch d := top.(type) {
		case doc.DFail[A]:
			return SFail[A]{}
		case doc.DEmpty[A]:
			stack = rest
		case doc.DChar[A]:
			return SChar[A]{Ch: d.Ch, Rest: Suspend(func() Stream[A] { return compactScan(col+1, rest) })}
		case doc.DText[A]:
			w := utf8.RuneCountInString(d.Text)
			return SText[A]{Text: d.Text, Rest: Suspend(func() Stream[A] { return compactScan(col+w, rest) })}
		case doc.DLine[A]:
			return SLine[A]{Indent: 0, Rest: Suspend(func() Stream[A] { return compactScan(0, rest) })}
		case doc.DFlatAlt[A]:
			stack = append(rest, d.Default)
		case doc.DCat[A]:
			stack = append(rest, d.Second, d.First)
		case doc.DNest[A]:
			stack = append(rest, d.Doc)
		case doc.DUnion[A]:
			stack = append(rest, d.Narrow)
		case doc.DColumn[A]:
			stack = append(rest, d.F(col))
		case doc.DPageWidth[A]:
			stack = append(rest, d.F(doc.Unbounded{}))
		case doc.DNesting[A]:
			stack = append(rest, d.F(0))
		case doc.DAnn[A]:
			stack = append(rest, d.Doc)
		default:
			panic("vellum: unknown Doc variant in Compact")
		}
	}
	return SEmpty[A]{}
}
