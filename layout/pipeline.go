package layout

import "github.com/ByLCY/vellum/doc"

// Pipeline is the engine's explicit work list: a stack of documents with
// the nesting level each was pushed under, plus markers that close
// annotated regions once a subtree is done. Traversing through it keeps
// the engine from recursing natively through every concatenation.
type Pipeline[A any] interface {
	isPipeline(A)
}

// Nil is the empty work list.
type Nil[A any] struct{}

// Cons is a document to lay out at a given nesting level, followed by
// the rest of the work list.
type Cons[A any] struct {
	Indent int
	Doc    doc.Doc[A]
	Rest   Pipeline[A]
}

// UndoAnn emits an annotation-closing event when reached, marking the
// end of a subtree pushed by an annotated node.
type UndoAnn[A any] struct {
	Rest Pipeline[A]
}

func (Nil[A]) isPipeline(A)     {}
func (Cons[A]) isPipeline(A)    {}
func (UndoAnn[A]) isPipeline(A) {}
