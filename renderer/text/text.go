// Package text renders a layout stream as plain text. Annotation events
// are skipped; what remains is the literal characters, newlines and
// indentation the layout chose.
package text

import (
	"fmt"
	"strings"

	"github.com/ByLCY/vellum/layout"
)

// RenderString folds a stream into its textual form. A stream containing
// SFail is a programmer error — the caller laid out a document whose
// every alternative fails — and panics.
func RenderString[A any](s layout.Stream[A]) string {
	var b strings.Builder
	for {
		switch n := s.(type) {
		case layout.SFail[A]:
			panic("vellum: SFail reached the renderer; the document has no valid layout")
		case layout.SEmpty[A]:
			return b.String()
		case layout.SChar[A]:
			b.WriteRune(n.Ch)
			s = n.Rest.Force()
		case layout.SText[A]:
			b.WriteString(n.Text)
			s = n.Rest.Force()
		case layout.SLine[A]:
			b.WriteByte('\n')
			for i := 0; i < n.Indent; i++ {
				b.WriteByte(' ')
			}
			s = n.Rest.Force()
		case layout.SAnnPush[A]:
			s = n.Rest.Force()
		case layout.SAnnPop[A]:
			s = n.Rest.Force()
		default:
			panic("vellum: unknown stream variant in renderer")
		}
	}
}

// Renderer is the plain-text back end of the pipeline.
type Renderer struct {
	// StripTrailing removes trailing whitespace from every output line
	// before rendering.
	StripTrailing bool
}

// NewRenderer returns a plain-text renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render folds the stream into UTF-8 text. Unlike RenderString it
// reports an invalid layout as an error, so the CLI can fail cleanly.
func (r *Renderer) Render(stream layout.Stream[string]) (out []byte, err error) {
	if r.StripTrailing {
		stream = layout.StripTrailingSpace(stream)
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = nil
			err = fmt.Errorf("render layout: %v", rec)
		}
	}()
	return []byte(RenderString(stream)), nil
}
