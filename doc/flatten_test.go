package doc

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestFlattenRewrites(t *testing.T) {
	tests := []struct {
		name string
		in   Doc[string]
		want Doc[string]
	}{
		{
			name: "hard line becomes fail",
			in:   DLine[string]{},
			want: DFail[string]{},
		},
		{
			name: "flat alt takes flat branch",
			in:   DFlatAlt[string]{Default: DLine[string]{}, Flat: DChar[string]{Ch: ' '}},
			want: DChar[string]{Ch: ' '},
		},
		{
			name: "union takes wide branch",
			in:   DUnion[string]{Wide: DText[string]{Text: "ab"}, Narrow: DLine[string]{}},
			want: DText[string]{Text: "ab"},
		},
		{
			name: "cat recurses both sides",
			in:   DCat[string]{First: DLine[string]{}, Second: DText[string]{Text: "ab"}},
			want: DCat[string]{First: DFail[string]{}, Second: DText[string]{Text: "ab"}},
		},
		{
			name: "nest preserved",
			in:   DNest[string]{Indent: 4, Doc: Line[string]()},
			want: DNest[string]{Indent: 4, Doc: DChar[string]{Ch: ' '}},
		},
		{
			name: "annotation preserved",
			in:   DAnn[string]{Ann: "tag", Doc: Line[string]()},
			want: DAnn[string]{Ann: "tag", Doc: DChar[string]{Ch: ' '}},
		},
		{
			name: "leaves unchanged",
			in:   DText[string]{Text: "lorem"},
			want: DText[string]{Text: "lorem"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Flatten(%#v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestChangesUponFlatteningClassification(t *testing.T) {
	tests := []struct {
		name string
		in   Doc[string]
		want FlattenResult[string]
	}{
		{name: "empty already flat", in: DEmpty[string]{}, want: AlreadyFlat[string]{}},
		{name: "char already flat", in: DChar[string]{Ch: 'x'}, want: AlreadyFlat[string]{}},
		{name: "text already flat", in: DText[string]{Text: "ab"}, want: AlreadyFlat[string]{}},
		{name: "fail already flat", in: DFail[string]{}, want: AlreadyFlat[string]{}},
		{name: "hard line never flat", in: DLine[string]{}, want: NeverFlat[string]{}},
		{
			name: "flat alt flattens to flat branch",
			in:   DFlatAlt[string]{Default: DLine[string]{}, Flat: DChar[string]{Ch: ' '}},
			want: Flattened[string]{Doc: DChar[string]{Ch: ' '}},
		},
		{
			name: "union flattens to wide branch",
			in:   DUnion[string]{Wide: DText[string]{Text: "ab"}, Narrow: DLine[string]{}},
			want: Flattened[string]{Doc: DText[string]{Text: "ab"}},
		},
		{
			name: "cat of flat leaves already flat",
			in:   DCat[string]{First: DChar[string]{Ch: 'a'}, Second: DText[string]{Text: "bc"}},
			want: AlreadyFlat[string]{},
		},
		{
			name: "cat with never flat side never flat",
			in:   DCat[string]{First: DChar[string]{Ch: 'a'}, Second: DLine[string]{}},
			want: NeverFlat[string]{},
		},
		{
			name: "cat with changing side keeps other side",
			in:   DCat[string]{First: DChar[string]{Ch: 'a'}, Second: Line[string]()},
			want: Flattened[string]{Doc: DCat[string]{First: DChar[string]{Ch: 'a'}, Second: DChar[string]{Ch: ' '}}},
		},
		{
			name: "nest wraps result",
			in:   DNest[string]{Indent: 2, Doc: Line[string]()},
			want: Flattened[string]{Doc: DNest[string]{Indent: 2, Doc: DChar[string]{Ch: ' '}}},
		},
		{
			name: "annotation wraps result",
			in:   DAnn[string]{Ann: "tag", Doc: Line[string]()},
			want: Flattened[string]{Doc: DAnn[string]{Ann: "tag", Doc: DChar[string]{Ch: ' '}}},
		},
		{
			name: "annotation over flat stays flat",
			in:   DAnn[string]{Ann: "tag", Doc: DText[string]{Text: "ab"}},
			want: AlreadyFlat[string]{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChangesUponFlattening(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChangesUponFlattening(%#v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestChangesUponFlatteningReactive(t *testing.T) {
	d := DColumn[string]{F: func(int) Doc[string] { return Line[string]() }}
	r, ok := ChangesUponFlattening[string](d).(Flattened[string])
	if !ok {
		t.Fatalf("reactive variant should always report Flattened, got %#v", r)
	}
	col, ok := r.Doc.(DColumn[string])
	if !ok {
		t.Fatalf("flattened reactive should stay reactive, got %#v", r.Doc)
	}
	inner := col.F(0)
	if !reflect.DeepEqual(inner, Doc[string](DChar[string]{Ch: ' '})) {
		t.Errorf("flattened producer output = %#v, want flattened line", inner)
	}
}

func TestGroup(t *testing.T) {
	t.Run("union returned unchanged", func(t *testing.T) {
		u := DUnion[string]{Wide: DChar[string]{Ch: 'a'}, Narrow: DLine[string]{}}
		if got := Group[string](u); !reflect.DeepEqual(got, Doc[string](u)) {
			t.Errorf("Group(union) = %#v, want unchanged", got)
		}
	})

	t.Run("flat alt with flattenable branch", func(t *testing.T) {
		fa := DFlatAlt[string]{Default: DText[string]{Text: "ab"}, Flat: Line[string]()}
		got, ok := Group[string](fa).(DUnion[string])
		if !ok {
			t.Fatalf("Group(flatAlt) = %T, want union", Group[string](fa))
		}
		if !reflect.DeepEqual(got.Wide, Doc[string](DChar[string]{Ch: ' '})) {
			t.Errorf("wide branch = %#v, want flattened flat branch", got.Wide)
		}
		if !reflect.DeepEqual(got.Narrow, Doc[string](DText[string]{Text: "ab"})) {
			t.Errorf("narrow branch = %#v, want default branch", got.Narrow)
		}
	})

	t.Run("flat alt with never flat branch collapses to default", func(t *testing.T) {
		fa := DFlatAlt[string]{Default: DText[string]{Text: "ab"}, Flat: DLine[string]{}}
		if got := Group[string](fa); !reflect.DeepEqual(got, Doc[string](DText[string]{Text: "ab"})) {
			t.Errorf("Group(flatAlt never-flat) = %#v, want default branch", got)
		}
	})

	t.Run("already flat document unchanged", func(t *testing.T) {
		d := DText[string]{Text: "ab"}
		if got := Group[string](d); !reflect.DeepEqual(got, Doc[string](d)) {
			t.Errorf("Group(text) = %#v, want unchanged", got)
		}
	})

	t.Run("never flat document unchanged", func(t *testing.T) {
		d := DCat[string]{First: DText[string]{Text: "ab"}, Second: DLine[string]{}}
		if got := Group[string](d); !reflect.DeepEqual(got, Doc[string](d)) {
			t.Errorf("Group(hard-line cat) = %#v, want unchanged", got)
		}
	})

	t.Run("changing document becomes union", func(t *testing.T) {
		d := DCat[string]{First: DText[string]{Text: "ab"}, Second: Line[string]()}
		got, ok := Group[string](d).(DUnion[string])
		if !ok {
			t.Fatalf("Group = %T, want union", Group[string](d))
		}
		wantWide := DCat[string]{First: DText[string]{Text: "ab"}, Second: DChar[string]{Ch: ' '}}
		if !reflect.DeepEqual(got.Wide, Doc[string](wantWide)) {
			t.Errorf("wide branch = %#v, want %#v", got.Wide, wantWide)
		}
		if !reflect.DeepEqual(got.Narrow, Doc[string](d)) {
			t.Errorf("narrow branch = %#v, want original", got.Narrow)
		}
	})
}

// randomDoc builds a random reactive-free document so trees can be
// compared structurally.
func randomDoc(rng *rand.Rand, depth int) Doc[string] {
	if depth == 0 {
		switch rng.Intn(4) {
		case 0:
			return DEmpty[string]{}
		case 1:
			return DChar[string]{Ch: rune('a' + rng.Intn(26))}
		case 2:
			return DText[string]{Text: "lorem"[:2+rng.Intn(3)]}
		default:
			return DLine[string]{}
		}
	}
	switch rng.Intn(6) {
	case 0:
		return DCat[string]{First: randomDoc(rng, depth-1), Second: randomDoc(rng, depth-1)}
	case 1:
		return DNest[string]{Indent: rng.Intn(8) - 2, Doc: randomDoc(rng, depth-1)}
	case 2:
		return DFlatAlt[string]{Default: randomDoc(rng, depth-1), Flat: randomDoc(rng, depth-1)}
	case 3:
		return DAnn[string]{Ann: "tag", Doc: randomDoc(rng, depth-1)}
	case 4:
		return Group(randomDoc(rng, depth-1))
	default:
		return randomDoc(rng, depth-1)
	}
}

// TestPropertyFlattenIdempotent: Flatten(Flatten(d)) ≡ Flatten(d).
func TestPropertyFlattenIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		d := randomDoc(rng, 4)
		once := Flatten(d)
		twice := Flatten(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("flatten not idempotent on %#v:\nonce:  %#v\ntwice: %#v", d, once, twice)
		}
	}
}
