package text_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/vellum/doc"
	"github.com/ByLCY/vellum/layout"
	"github.com/ByLCY/vellum/renderer/text"
)

func TestRenderString(t *testing.T) {
	d := doc.Annotate("em", doc.HCat(
		doc.Text[string]("lorem"),
		doc.HardLine[string](),
		doc.Nest(2, doc.HCat(doc.HardLine[string](), doc.Text[string]("ipsum"))),
	))
	got := text.RenderString(layout.Pretty(layout.DefaultOptions, d))
	want := "lorem\n\n  ipsum"
	if got != want {
		t.Errorf("RenderString = %q, want %q", got, want)
	}
}

func TestRenderStringPanicsOnFail(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on SFail")
		}
	}()
	text.RenderString[string](layout.SFail[string]{})
}

func TestRendererReportsInvalidLayout(t *testing.T) {
	r := text.NewRenderer()
	_, err := r.Render(layout.SFail[string]{})
	if err == nil {
		t.Fatal("expected error for a failing stream")
	}
	if !strings.Contains(err.Error(), "render layout") {
		t.Errorf("error %q should name the render stage", err)
	}
}

func TestRendererStripsTrailingSpace(t *testing.T) {
	d := doc.HCat(
		doc.Text[string]("ab"),
		doc.Text[string]("   "),
		doc.HardLine[string](),
		doc.Text[string]("cd"),
	)
	r := &text.Renderer{StripTrailing: true}
	out, err := r.Render(layout.Pretty(layout.DefaultOptions, d))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := string(out); got != "ab\ncd" {
		t.Errorf("stripped output = %q, want %q", got, "ab\ncd")
	}
}

func TestRenderSkipsAnnotations(t *testing.T) {
	d := doc.Annotate("style", doc.Text[string]("plain"))
	got := text.RenderString(layout.Pretty(layout.DefaultOptions, d))
	if got != "plain" {
		t.Errorf("annotated render = %q, want %q", got, "plain")
	}
}
