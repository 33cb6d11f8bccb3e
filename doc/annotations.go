package doc

// ReAnnotate rewrites every annotation in d through f. Reactive
// producers are wrapped so their output is rewritten on demand.
func ReAnnotate[A, B any](f func(A) B, d Doc[A]) Doc[B] {
	return AlterAnnotations(func(a A) []B { return []B{f(a)} }, d)
}

// UnAnnotate strips all annotations from d. The target annotation type
// is free; name it explicitly at the call site, e.g. UnAnnotate[string](d).
func UnAnnotate[B, A any](d Doc[A]) Doc[B] {
	return AlterAnnotations(func(A) []B { return nil }, d)
}

// AlterAnnotations rewrites every annotation in d into zero or more
// annotations: an empty result removes the node's annotation, multiple
// results nest. This is the general form behind ReAnnotate and
// UnAnnotate.
func AlterAnnotations[A, B any](f func(A) []B, d Doc[A]) Doc[B] {
	switch t := d.(type) {
	case DFail[A]:
		return DFail[B]{}
	case DEmpty[A]:
		return DEmpty[B]{}
	case DChar[A]:
		return DChar[B]{Ch: t.Ch}
	case DText[A]:
		return DText[B]{Text: t.Text}
	case DLine[A]:
		return DLine[B]{}
	case DFlatAlt[A]:
		return DFlatAlt[B]{
			Default: AlterAnnotations(f, t.Default),
			Flat:    AlterAnnotations(f, t.Flat),
		}
	case DCat[A]:
		return DCat[B]{
			First:  AlterAnnotations(f, t.First),
			Second: AlterAnnotations(f, t.Second),
		}
	case DNest[A]:
		return DNest[B]{Indent: t.Indent, Doc: AlterAnnotations(f, t.Doc)}
	case DUnion[A]:
		return DUnion[B]{
			Wide:   AlterAnnotations(f, t.Wide),
			Narrow: AlterAnnotations(f, t.Narrow),
		}
	case DColumn[A]:
		return DColumn[B]{F: func(c int) Doc[B] { return AlterAnnotations(f, t.F(c)) }}
	case DPageWidth[A]:
		return DPageWidth[B]{F: func(pw PageWidth) Doc[B] { return AlterAnnotations(f, t.F(pw)) }}
	case DNesting[A]:
		return DNesting[B]{F: func(l int) Doc[B] { return AlterAnnotations(f, t.F(l)) }}
	case DAnn[A]:
		inner := AlterAnnotations(f, t.Doc)
		for _, b := range reversed(f(t.Ann)) {
			inner = DAnn[B]{Ann: b, Doc: inner}
		}
		return inner
	default:
		panic("vellum: unknown Doc variant in AlterAnnotations")
	}
}

func reversed[T any](xs []T) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}
