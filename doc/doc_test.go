package doc

import (
	"reflect"
	"testing"
)

func TestCharNormalisesNewline(t *testing.T) {
	if got := Char[string]('\n'); !reflect.DeepEqual(got, Doc[string](DLine[string]{})) {
		t.Errorf("Char('\\n') = %#v, want hard line", got)
	}
	if got := Char[string]('x'); !reflect.DeepEqual(got, Doc[string](DChar[string]{Ch: 'x'})) {
		t.Errorf("Char('x') = %#v, want DChar", got)
	}
}

func TestTextNormalisation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Doc[string]
	}{
		{name: "empty string", in: "", want: DEmpty[string]{}},
		{name: "single rune", in: "x", want: DChar[string]{Ch: 'x'}},
		{name: "single multibyte rune", in: "é", want: DChar[string]{Ch: 'é'}},
		{name: "run of text", in: "lorem", want: DText[string]{Text: "lorem"}},
		{
			name: "newline splits into lines",
			in:   "ab\ncd",
			want: DCat[string]{
				First: DText[string]{Text: "ab"},
				Second: DCat[string]{
					First:  Line[string](),
					Second: DText[string]{Text: "cd"},
				},
			},
		},
		{
			name: "leading newline",
			in:   "\nab",
			want: DCat[string]{
				First: DEmpty[string]{},
				Second: DCat[string]{
					First:  Line[string](),
					Second: DText[string]{Text: "ab"},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Text[string](tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Text(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConcatDropsEmpty(t *testing.T) {
	a := DText[string]{Text: "ab"}
	if got := Concat[string](Empty[string](), a); !reflect.DeepEqual(got, Doc[string](a)) {
		t.Errorf("Concat(empty, a) = %#v, want a", got)
	}
	if got := Concat[string](a, Empty[string]()); !reflect.DeepEqual(got, Doc[string](a)) {
		t.Errorf("Concat(a, empty) = %#v, want a", got)
	}
}

func TestNestZeroIsIdentity(t *testing.T) {
	a := DText[string]{Text: "ab"}
	if got := Nest[string](0, a); !reflect.DeepEqual(got, Doc[string](a)) {
		t.Errorf("Nest(0, a) = %#v, want a", got)
	}
}

func TestSpaces(t *testing.T) {
	if got := Spaces[string](-1); !reflect.DeepEqual(got, Doc[string](DEmpty[string]{})) {
		t.Errorf("Spaces(-1) = %#v, want empty", got)
	}
	if got := Spaces[string](1); !reflect.DeepEqual(got, Doc[string](DChar[string]{Ch: ' '})) {
		t.Errorf("Spaces(1) = %#v, want space char", got)
	}
	if got := Spaces[string](3); !reflect.DeepEqual(got, Doc[string](DText[string]{Text: "   "})) {
		t.Errorf("Spaces(3) = %#v, want three-space text", got)
	}
}

func TestWords(t *testing.T) {
	got := Words[string]("lorem  ipsum\tdolor")
	want := []Doc[string]{
		DText[string]{Text: "lorem"},
		DText[string]{Text: "ipsum"},
		DText[string]{Text: "dolor"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %#v, want %#v", got, want)
	}
}

func TestPunctuate(t *testing.T) {
	ds := []Doc[string]{
		DChar[string]{Ch: 'a'},
		DChar[string]{Ch: 'b'},
		DChar[string]{Ch: 'c'},
	}
	got := Punctuate[string](DChar[string]{Ch: ','}, ds)
	if len(got) != 3 {
		t.Fatalf("Punctuate returned %d docs, want 3", len(got))
	}
	if _, ok := got[0].(DCat[string]); !ok {
		t.Errorf("first element should carry the separator, got %#v", got[0])
	}
	if !reflect.DeepEqual(got[2], ds[2]) {
		t.Errorf("last element should be untouched, got %#v", got[2])
	}
}

func TestEncloseSepShapes(t *testing.T) {
	l, r, sep := Char[string]('['), Char[string](']'), Text[string](", ")

	if got := EncloseSep(l, r, sep); !reflect.DeepEqual(got, Concat(l, r)) {
		t.Errorf("EncloseSep() = %#v, want bare enclosure", got)
	}

	one := Text[string]("ab")
	if got := EncloseSep(l, r, sep, one); !reflect.DeepEqual(got, Concat(l, Concat(one, r))) {
		t.Errorf("EncloseSep(one) = %#v, want l<>d<>r", got)
	}
}

func TestAlterAnnotations(t *testing.T) {
	d := Annotate("outer", Annotate("drop", Text[string]("ab")))

	dropped := AlterAnnotations(func(a string) []string {
		if a == "drop" {
			return nil
		}
		return []string{a}
	}, d)
	outer, ok := dropped.(DAnn[string])
	if !ok {
		t.Fatalf("outer annotation should survive, got %#v", dropped)
	}
	if _, ok := outer.Doc.(DAnn[string]); ok {
		t.Errorf("dropped annotation should be removed, got %#v", outer.Doc)
	}

	doubled := AlterAnnotations(func(a string) []string {
		return []string{a + "1", a + "2"}
	}, Annotate("x", Text[string]("ab")))
	first, ok := doubled.(DAnn[string])
	if !ok || first.Ann != "x1" {
		t.Fatalf("expansion should nest outermost-first, got %#v", doubled)
	}
	second, ok := first.Doc.(DAnn[string])
	if !ok || second.Ann != "x2" {
		t.Fatalf("expansion should nest second annotation inside, got %#v", first.Doc)
	}
}

func TestReAnnotateAndUnAnnotate(t *testing.T) {
	d := Annotate(1, DCat[int]{First: DChar[int]{Ch: 'a'}, Second: Annotate(2, DChar[int]{Ch: 'b'})})

	re := ReAnnotate(func(n int) string { return string(rune('a' + n)) }, d)
	outer, ok := re.(DAnn[string])
	if !ok || outer.Ann != "b" {
		t.Fatalf("ReAnnotate outer = %#v, want ann \"b\"", re)
	}

	un := UnAnnotate[struct{}](d)
	if _, ok := un.(DAnn[struct{}]); ok {
		t.Errorf("UnAnnotate left an annotation: %#v", un)
	}
}
