package doc

import "strings"

// Group tries to lay out d on a single line, falling back to the default
// layout when the flat form does not fit. The union it builds always
// carries the flat (wider first line) alternative on the left, which is
// the invariant the layout engine's fitness probe depends on.
func Group[A any](d Doc[A]) Doc[A] {
	switch t := d.(type) {
	case DUnion[A]:
		// Already a choice.
		return d
	case DFlatAlt[A]:
		switch r := ChangesUponFlattening(t.Flat).(type) {
		case Flattened[A]:
			return DUnion[A]{Wide: r.Doc, Narrow: t.Default}
		case AlreadyFlat[A]:
			return DUnion[A]{Wide: t.Flat, Narrow: t.Default}
		default: // NeverFlat
			return t.Default
		}
	default:
		switch r := ChangesUponFlattening(d).(type) {
		case Flattened[A]:
			return DUnion[A]{Wide: r.Doc, Narrow: d}
		default: // AlreadyFlat, NeverFlat
			return d
		}
	}
}

// Align lays out d with the nesting level set to the current column, so
// line breaks inside d return to the column where d started.
func Align[A any](d Doc[A]) Doc[A] {
	return Column(func(c int) Doc[A] {
		return Nesting(func(n int) Doc[A] {
			return Nest(c-n, d)
		})
	})
}

// Hang lays out d with the nesting level set to the current column plus
// indent. Unlike Indent it emits nothing itself.
func Hang[A any](indent int, d Doc[A]) Doc[A] {
	return Align(Nest(indent, d))
}

// Indent prefixes d with indent spaces and hangs subsequent lines under
// them.
func Indent[A any](indent int, d Doc[A]) Doc[A] {
	return Hang(indent, Concat(Spaces[A](indent), d))
}

// Width lays out d and appends f of the column where d ended minus the
// column where it started. For a d without line breaks that is its width.
func Width[A any](d Doc[A], f func(width int) Doc[A]) Doc[A] {
	return Column(func(start int) Doc[A] {
		return Concat(d, Column(func(end int) Doc[A] {
			return f(end - start)
		}))
	})
}

// Fill lays out d and pads with spaces until the content spans at least
// width columns. Wider content is left alone.
func Fill[A any](width int, d Doc[A]) Doc[A] {
	return Width(d, func(w int) Doc[A] {
		return Spaces[A](width - w)
	})
}

// FillBreak is Fill, except content wider than width forces a line break
// nested to width instead of running on.
func FillBreak[A any](width int, d Doc[A]) Doc[A] {
	return Width(d, func(w int) Doc[A] {
		if w > width {
			return Nest(width, LineBreak[A]())
		}
		return Spaces[A](width - w)
	})
}

// Spaces builds a run of n spaces; zero or negative n is empty.
func Spaces[A any](n int) Doc[A] {
	switch {
	case n <= 0:
		return DEmpty[A]{}
	case n == 1:
		return DChar[A]{Ch: ' '}
	default:
		return DText[A]{Text: strings.Repeat(" ", n)}
	}
}

// concatWith folds ds together with sep between adjacent documents.
func concatWith[A any](sep func() Doc[A], ds []Doc[A]) Doc[A] {
	if len(ds) == 0 {
		return DEmpty[A]{}
	}
	d := ds[0]
	for _, next := range ds[1:] {
		d = Concat(d, Concat(sep(), next))
	}
	return d
}

// HCat concatenates ds with nothing in between.
func HCat[A any](ds ...Doc[A]) Doc[A] {
	d := Empty[A]()
	for _, next := range ds {
		d = Concat(d, next)
	}
	return d
}

// HSep concatenates ds with a space in between.
func HSep[A any](ds ...Doc[A]) Doc[A] {
	return concatWith(func() Doc[A] { return DChar[A]{Ch: ' '} }, ds)
}

// VSep concatenates ds with a line in between; under Group the lines
// become spaces.
func VSep[A any](ds ...Doc[A]) Doc[A] {
	return concatWith(Line[A], ds)
}

// VCat concatenates ds with a line break in between; under Group the
// breaks vanish.
func VCat[A any](ds ...Doc[A]) Doc[A] {
	return concatWith(LineBreak[A], ds)
}

// Sep lays out ds on one line separated by spaces when that fits, and
// vertically otherwise.
func Sep[A any](ds ...Doc[A]) Doc[A] {
	return Group(VSep(ds...))
}

// Cat lays out ds on one line with no separation when that fits, and
// vertically otherwise.
func Cat[A any](ds ...Doc[A]) Doc[A] {
	return Group(VCat(ds...))
}

// FillSep concatenates ds with soft lines: as many documents per line as
// fit, separated by spaces, breaking where the page ends.
func FillSep[A any](ds ...Doc[A]) Doc[A] {
	return concatWith(SoftLine[A], ds)
}

// FillCat is FillSep without the spaces.
func FillCat[A any](ds ...Doc[A]) Doc[A] {
	return concatWith(SoftLineBreak[A], ds)
}

// Enclose wraps d in l and r.
func Enclose[A any](l, r, d Doc[A]) Doc[A] {
	return Concat(l, Concat(d, r))
}

// EncloseSep lays out ds between l and r with sep between elements. In
// the broken form each element after the first is prefixed by sep, which
// yields the leading-separator style used by List and Tupled.
func EncloseSep[A any](l, r, sep Doc[A], ds ...Doc[A]) Doc[A] {
	switch len(ds) {
	case 0:
		return Concat(l, r)
	case 1:
		return Concat(l, Concat(ds[0], r))
	default:
		prefixed := make([]Doc[A], len(ds))
		prefixed[0] = Concat(l, ds[0])
		for i, d := range ds[1:] {
			prefixed[i+1] = Concat(sep, d)
		}
		return Concat(Cat(prefixed...), r)
	}
}

// List renders ds Haskell-style: "[1, 20, 300]" on one line, or one
// element per line with leading commas when broken. The broken lines start
// at the current nesting level, not under the opening bracket.
func List[A any](ds ...Doc[A]) Doc[A] {
	return Group(EncloseSep(
		FlatAlt(Text[A]("[ "), Char[A]('[')),
		FlatAlt(Text[A](" ]"), Char[A](']')),
		Text[A](", "),
		ds...,
	))
}

// Tupled renders ds as "(a, b, c)" with the same breaking behaviour as
// List.
func Tupled[A any](ds ...Doc[A]) Doc[A] {
	return Group(EncloseSep(
		FlatAlt(Text[A]("( "), Char[A]('(')),
		FlatAlt(Text[A](" )"), Char[A](')')),
		Text[A](", "),
		ds...,
	))
}

// Punctuate appends sep to every document but the last.
func Punctuate[A any](sep Doc[A], ds []Doc[A]) []Doc[A] {
	out := make([]Doc[A], len(ds))
	for i, d := range ds {
		if i == len(ds)-1 {
			out[i] = d
		} else {
			out[i] = Concat(d, sep)
		}
	}
	return out
}

// Parens wraps d in parentheses.
func Parens[A any](d Doc[A]) Doc[A] { return Enclose(Char[A]('('), Char[A](')'), d) }

// Brackets wraps d in square brackets.
func Brackets[A any](d Doc[A]) Doc[A] { return Enclose(Char[A]('['), Char[A](']'), d) }

// Braces wraps d in curly braces.
func Braces[A any](d Doc[A]) Doc[A] { return Enclose(Char[A]('{'), Char[A]('}'), d) }

// Angles wraps d in angle brackets.
func Angles[A any](d Doc[A]) Doc[A] { return Enclose(Char[A]('<'), Char[A]('>'), d) }

// SQuotes wraps d in single quotes.
func SQuotes[A any](d Doc[A]) Doc[A] { return Enclose(Char[A]('\''), Char[A]('\''), d) }

// DQuotes wraps d in double quotes.
func DQuotes[A any](d Doc[A]) Doc[A] { return Enclose(Char[A]('"'), Char[A]('"'), d) }

// Words splits s on whitespace into word documents.
func Words[A any](s string) []Doc[A] {
	fields := strings.Fields(s)
	ds := make([]Doc[A], len(fields))
	for i, f := range fields {
		ds[i] = Text[A](f)
	}
	return ds
}

// Reflow fills s word by word across lines.
func Reflow[A any](s string) Doc[A] {
	return FillSep(Words[A](s)...)
}
