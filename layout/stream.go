// Package layout turns a document tree into a concrete stream of output
// events under a page-width constraint. The engine implements the
// Wadler/Leijen "best" algorithm parameterised by a fitness predicate;
// the entry points Pretty, Smart and Unbounded differ only in that
// predicate and in how they treat the page width. Compact does not use
// the engine; it is a separate traversal that ignores the page width.
package layout

// Stream is the linearised output of a layout: a chain of text, line and
// annotation events ending in SEmpty (success) or SFail (the chosen
// layout is invalid). Tails are produced on demand through Tail cells, so
// the engine can probe one branch of an alternative without ever
// materialising the other.
type Stream[A any] interface {
	isStream(A)
}

// SFail marks a layout rejected by a failing document. A stream that
// reaches the renderer must never contain it.
type SFail[A any] struct{}

// SEmpty terminates a successful stream.
type SEmpty[A any] struct{}

// SChar emits one character.
type SChar[A any] struct {
	Ch   rune
	Rest *Tail[A]
}

// SText emits a run of text that contains no newline.
type SText[A any] struct {
	Text string
	Rest *Tail[A]
}

// SLine emits a newline followed by Indent spaces.
type SLine[A any] struct {
	Indent int
	Rest   *Tail[A]
}

// SAnnPush opens an annotated region. Push and pop events are balanced
// along every stream.
type SAnnPush[A any] struct {
	Ann  A
	Rest *Tail[A]
}

// SAnnPop closes the innermost annotated region.
type SAnnPop[A any] struct {
	Rest *Tail[A]
}

func (SFail[A]) isStream(A)    {}
func (SEmpty[A]) isStream(A)   {}
func (SChar[A]) isStream(A)    {}
func (SText[A]) isStream(A)    {}
func (SLine[A]) isStream(A)    {}
func (SAnnPush[A]) isStream(A) {}
func (SAnnPop[A]) isStream(A)  {}

// Tail is the lazily evaluated remainder of a stream. The computation
// runs at most once; the result is cached. Construction and forcing are
// single-goroutine operations — a fully forced stream is immutable and
// may then be read from anywhere.
type Tail[A any] struct {
	compute func() Stream[A]
	value   Stream[A]
}

// Suspend defers a stream computation until the tail is first forced.
func Suspend[A any](f func() Stream[A]) *Tail[A] {
	return &Tail[A]{compute: f}
}

// Emitted wraps an already-computed stream as a tail.
func Emitted[A any](s Stream[A]) *Tail[A] {
	return &Tail[A]{value: s}
}

// Force evaluates the tail, running the suspended computation on first
// use.
func (t *Tail[A]) Force() Stream[A] {
	if t.compute != nil {
		t.value = t.compute()
		t.compute = nil
	}
	return t.value
}

// initialIndentation walks s past leading text and annotation events and
// reports the indentation of its first line event, if any. It is how the
// smart fitness predicate learns where the discarded alternative would
// put its first break.
func initialIndentation[A any](s Stream[A]) (int, bool) {
	for {
		switch n := s.(type) {
		case SLine[A]:
			return n.Indent, true
		case SChar[A]:
			s = n.Rest.Force()
		case SText[A]:
			s = n.Rest.Force()
		case SAnnPush[A]:
			s = n.Rest.Force()
		case SAnnPop[A]:
			s = n.Rest.Force()
		default: // SFail, SEmpty
			return 0, false
		}
	}
}

// ReAnnotateStream rewrites every annotation in s through f, preserving
// laziness: tails are transformed only when forced.
func ReAnnotateStream[A, B any](f func(A) B, s Stream[A]) Stream[B] {
	switch n := s.(type) {
	case SFail[A]:
		return SFail[B]{}
	case SEmpty[A]:
		return SEmpty[B]{}
	case SChar[A]:
		return SChar[B]{Ch: n.Ch, Rest: Suspend(func() Stream[B] { return ReAnnotateStream(f, n.Rest.Force()) })}
	case SText[A]:
		return SText[B]{Text: n.Text, Rest: Suspend(func() Stream[B] { return ReAnnotateStream(f, n.Rest.Force()) })}
	case SLine[A]:
		return SLine[B]{Indent: n.Indent, Rest: Suspend(func() Stream[B] { return ReAnnotateStream(f, n.Rest.Force()) })}
	case SAnnPush[A]:
		return SAnnPush[B]{Ann: f(n.Ann), Rest: Suspend(func() Stream[B] { return ReAnnotateStream(f, n.Rest.Force()) })}
	case SAnnPop[A]:
		return SAnnPop[B]{Rest: Suspend(func() Stream[B] { return ReAnnotateStream(f, n.Rest.Force()) })}
	default:
		panic("vellum: unknown stream variant in ReAnnotateStream")
	}
}

// UnAnnotateStream drops all annotation events from s.
func UnAnnotateStream[B, A any](s Stream[A]) Stream[B] {
	return AlterAnnotationsStream(func(A) []B { return nil }, s)
}

// AlterAnnotationsStream rewrites each push event into zero or more push
// events and replicates the matching pops, keeping the stream balanced.
func AlterAnnotationsStream[A, B any](f func(A) []B, s Stream[A]) Stream[B] {
	return alterAnn(f, nil, s)
}

// alterAnn carries the number of replacement pushes emitted at each
// open annotation level, so pops can be expanded to match.
func alterAnn[A, B any](f func(A) []B, open []int, s Stream[A]) Stream[B] {
	switch n := s.(type) {
	case SFail[A]:
		return SFail[B]{}
	case SEmpty[A]:
		return SEmpty[B]{}
	case SChar[A]:
		return SChar[B]{Ch: n.Ch, Rest: Suspend(func() Stream[B] { return alterAnn(f, open, n.Rest.Force()) })}
	case SText[A]:
		return SText[B]{Text: n.Text, Rest: Suspend(func() Stream[B] { return alterAnn(f, open, n.Rest.Force()) })}
	case SLine[A]:
		return SLine[B]{Indent: n.Indent, Rest: Suspend(func() Stream[B] { return alterAnn(f, open, n.Rest.Force()) })}
	case SAnnPush[A]:
		bs := f(n.Ann)
		deeper := append(append([]int(nil), open...), len(bs))
		rest := func() Stream[B] { return alterAnn(f, deeper, n.Rest.Force()) }
		return pushChain(bs, rest)
	case SAnnPop[A]:
		if len(open) == 0 {
			panic("vellum: unbalanced SAnnPop in AlterAnnotationsStream")
		}
		count := open[len(open)-1]
		shallower := open[:len(open)-1]
		rest := func() Stream[B] { return alterAnn(f, shallower, n.Rest.Force()) }
		return popChain[B](count, rest)
	default:
		panic("vellum: unknown stream variant in AlterAnnotationsStream")
	}
}

func pushChain[B any](bs []B, rest func() Stream[B]) Stream[B] {
	if len(bs) == 0 {
		return rest()
	}
	return SAnnPush[B]{Ann: bs[0], Rest: Suspend(func() Stream[B] { return pushChain(bs[1:], rest) })}
}

func popChain[B any](count int, rest func() Stream[B]) Stream[B] {
	if count == 0 {
		return rest()
	}
	return SAnnPop[B]{Rest: Suspend(func() Stream[B] { return popChain(count-1, rest) })}
}
