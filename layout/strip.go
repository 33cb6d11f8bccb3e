package layout

import "strings"

// StripTrailingSpace removes spaces that would end up at the end of a
// line (or of the whole output). It is a separate pass over the stream:
// the engine itself emits whatever whitespace a literal rendering yields.
//
// Space characters are withheld until either printable content follows
// (they are flushed) or a line break or the end of the stream follows
// (they are dropped). Annotation events between withheld spaces and the
// break are kept in order, so push/pop balance is untouched.
func StripTrailingSpace[A any](s Stream[A]) Stream[A] {
	return strip(nil, s)
}

// withheld is an event buffered while deciding whether pending spaces
// are trailing.
type withheld[A any] interface {
	isWithheld(A)
}

type wSpaces[A any] struct{ n int }
type wPush[A any] struct{ ann A }
type wPop[A any] struct{}

func (wSpaces[A]) isWithheld(A) {}
func (wPush[A]) isWithheld(A)   {}
func (wPop[A]) isWithheld(A)    {}

func strip[A any](pending []withheld[A], s Stream[A]) Stream[A] {
	switch n := s.(type) {
	case SFail[A]:
		return SFail[A]{}
	case SEmpty[A]:
		return replay[A](pending, true, func() Stream[A] { return SEmpty[A]{} })
	case SChar[A]:
		if n.Ch == ' ' {
			return strip(withholdSpaces(pending, 1), n.Rest.Force())
		}
		return replay[A](pending, false, func() Stream[A] {
			return SChar[A]{Ch: n.Ch, Rest: Suspend(func() Stream[A] { return strip(nil, n.Rest.Force()) })}
		})
	case SText[A]:
		body := strings.TrimRight(n.Text, " ")
		spaces := len(n.Text) - len(body)
		if body == "" {
			return strip(withholdSpaces(pending, spaces), n.Rest.Force())
		}
		return replay[A](pending, false, func() Stream[A] {
			next := Suspend(func() Stream[A] { return strip(withholdSpaces[A](nil, spaces), n.Rest.Force()) })
			if len(body) == 1 {
				return SChar[A]{Ch: rune(body[0]), Rest: next}
			}
			return SText[A]{Text: body, Rest: next}
		})
	case SLine[A]:
		return replay[A](pending, true, func() Stream[A] {
			return SLine[A]{Indent: n.Indent, Rest: Suspend(func() Stream[A] { return strip(nil, n.Rest.Force()) })}
		})
	case SAnnPush[A]:
		return strip(append(pending, wPush[A]{ann: n.Ann}), n.Rest.Force())
	case SAnnPop[A]:
		return strip(append(pending, wPop[A]{}), n.Rest.Force())
	default:
		panic("vellum: unknown stream variant in StripTrailingSpace")
	}
}

// withholdSpaces adds n pending spaces, merging with a trailing space run.
func withholdSpaces[A any](pending []withheld[A], n int) []withheld[A] {
	if n == 0 {
		return pending
	}
	if len(pending) > 0 {
		if sp, ok := pending[len(pending)-1].(wSpaces[A]); ok {
			pending[len(pending)-1] = wSpaces[A]{n: sp.n + n}
			return pending
		}
	}
	return append(pending, wSpaces[A]{n: n})
}

// replay emits the buffered events in order, dropping the spaces when
// they turned out to be trailing, then continues with rest.
func replay[A any](pending []withheld[A], dropSpaces bool, rest func() Stream[A]) Stream[A] {
	if len(pending) == 0 {
		return rest()
	}
	head, tail := pending[0], pending[1:]
	next := func() Stream[A] { return replay[A](tail, dropSpaces, rest) }
	switch w := head.(type) {
	case wPush[A]:
		return SAnnPush[A]{Ann: w.ann, Rest: Suspend(next)}
	case wPop[A]:
		return SAnnPop[A]{Rest: Suspend(next)}
	case wSpaces[A]:
		if dropSpaces {
			return next()
		}
		if w.n == 1 {
			return SChar[A]{Ch: ' ', Rest: Suspend(next)}
		}
		return SText[A]{Text: strings.Repeat(" ", w.n), Rest: Suspend(next)}
	default:
		panic("vellum: unknown withheld event in StripTrailingSpace")
	}
}
