package doc

// FlattenResult classifies what flattening would do to a document.
// It is produced by ChangesUponFlattening and consumed exactly once by
// Group, which uses it to avoid building unions that could never pay off.
type FlattenResult[A any] interface {
	isFlattenResult(A)
}

// Flattened carries the flattened form of a document that flattening
// actually changes.
type Flattened[A any] struct {
	Doc Doc[A]
}

// AlreadyFlat marks a document that flattening leaves untouched.
type AlreadyFlat[A any] struct{}

// NeverFlat marks a document that cannot be flattened, because it
// contains a hard line break with no flat escape.
type NeverFlat[A any] struct{}

func (Flattened[A]) isFlattenResult(A)   {}
func (AlreadyFlat[A]) isFlattenResult(A) {}
func (NeverFlat[A]) isFlattenResult(A)   {}

// Flatten rewrites d with all soft alternatives removed, committing to
// the single-line form: hard lines become failures, flat-alternatives
// take their flat branch, unions take their wide branch. Reactive
// producers are wrapped so their output is flattened on demand.
func Flatten[A any](d Doc[A]) Doc[A] {
	switch t := d.(type) {
	case DLine[A]:
		return DFail[A]{}
	case DFlatAlt[A]:
		return Flatten(t.Flat)
	case DUnion[A]:
		return Flatten(t.Wide)
	case DCat[A]:
		return DCat[A]{First: Flatten(t.First), Second: Flatten(t.Second)}
	case DNest[A]:
		return DNest[A]{Indent: t.Indent, Doc: Flatten(t.Doc)}
	case DAnn[A]:
		return DAnn[A]{Ann: t.Ann, Doc: Flatten(t.Doc)}
	case DColumn[A]:
		return DColumn[A]{F: func(c int) Doc[A] { return Flatten(t.F(c)) }}
	case DPageWidth[A]:
		return DPageWidth[A]{F: func(pw PageWidth) Doc[A] { return Flatten(t.F(pw)) }}
	case DNesting[A]:
		return DNesting[A]{F: func(l int) Doc[A] { return Flatten(t.F(l)) }}
	default:
		// DFail, DEmpty, DChar, DText
		return d
	}
}

// ChangesUponFlattening reports whether flattening d would produce a
// different document, returning the flattened form when it would. Group
// relies on this to skip union construction for documents that cannot
// (NeverFlat) or need not (AlreadyFlat) change, which is what keeps
// grouping from causing exponential blow-up at layout time.
func ChangesUponFlattening[A any](d Doc[A]) FlattenResult[A] {
	switch t := d.(type) {
	case DFail[A], DEmpty[A], DChar[A], DText[A]:
		return AlreadyFlat[A]{}
	case DLine[A]:
		return NeverFlat[A]{}
	case DFlatAlt[A]:
		return Flattened[A]{Doc: Flatten(t.Flat)}
	case DUnion[A]:
		// The wide branch is the flat form by the DUnion invariant.
		return Flattened[A]{Doc: t.Wide}
	case DCat[A]:
		ra := ChangesUponFlattening(t.First)
		rb := ChangesUponFlattening(t.Second)
		if isNeverFlat(ra) || isNeverFlat(rb) {
			return NeverFlat[A]{}
		}
		fa, aChanged := flattenedForm(ra, t.First)
		fb, bChanged := flattenedForm(rb, t.Second)
		if !aChanged && !bChanged {
			return AlreadyFlat[A]{}
		}
		return Flattened[A]{Doc: DCat[A]{First: fa, Second: fb}}
	case DNest[A]:
		return mapFlattened(ChangesUponFlattening(t.Doc), func(d Doc[A]) Doc[A] {
			return DNest[A]{Indent: t.Indent, Doc: d}
		})
	case DAnn[A]:
		return mapFlattened(ChangesUponFlattening(t.Doc), func(d Doc[A]) Doc[A] {
			return DAnn[A]{Ann: t.Ann, Doc: d}
		})
	case DColumn[A]:
		return Flattened[A]{Doc: DColumn[A]{F: func(c int) Doc[A] { return Flatten(t.F(c)) }}}
	case DPageWidth[A]:
		return Flattened[A]{Doc: DPageWidth[A]{F: func(pw PageWidth) Doc[A] { return Flatten(t.F(pw)) }}}
	case DNesting[A]:
		return Flattened[A]{Doc: DNesting[A]{F: func(l int) Doc[A] { return Flatten(t.F(l)) }}}
	default:
		panic("vellum: unknown Doc variant in ChangesUponFlattening")
	}
}

func isNeverFlat[A any](r FlattenResult[A]) bool {
	_, ok := r.(NeverFlat[A])
	return ok
}

// flattenedForm extracts the form a Cat operand takes in the flattened
// concatenation, and whether flattening changed it.
func flattenedForm[A any](r FlattenResult[A], orig Doc[A]) (Doc[A], bool) {
	if f, ok := r.(Flattened[A]); ok {
		return f.Doc, true
	}
	return orig, false
}

func mapFlattened[A any](r FlattenResult[A], wrap func(Doc[A]) Doc[A]) FlattenResult[A] {
	if f, ok := r.(Flattened[A]); ok {
		return Flattened[A]{Doc: wrap(f.Doc)}
	}
	return r
}
