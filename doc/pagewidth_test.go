package doc

import (
	"math/rand"
	"testing"
)

func TestRemainingWidth(t *testing.T) {
	tests := []struct {
		name       string
		lineLength int
		ribbon     float64
		lineIndent int
		column     int
		want       int
	}{
		{name: "full ribbon at origin", lineLength: 80, ribbon: 1.0, lineIndent: 0, column: 0, want: 80},
		{name: "full ribbon mid line", lineLength: 80, ribbon: 1.0, lineIndent: 0, column: 30, want: 50},
		{name: "half ribbon wins", lineLength: 80, ribbon: 0.5, lineIndent: 0, column: 0, want: 40},
		{name: "indent widens ribbon budget", lineLength: 80, ribbon: 0.5, lineIndent: 20, column: 20, want: 40},
		{name: "line budget wins near margin", lineLength: 80, ribbon: 1.0, lineIndent: 60, column: 70, want: 10},
		{name: "negative when overflowing", lineLength: 10, ribbon: 1.0, lineIndent: 0, column: 15, want: -5},
		{name: "ribbon clamped above one", lineLength: 80, ribbon: 2.5, lineIndent: 0, column: 0, want: 80},
		{name: "ribbon clamped below zero", lineLength: 80, ribbon: -1.0, lineIndent: 10, column: 10, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemainingWidth(tt.lineLength, tt.ribbon, tt.lineIndent, tt.column)
			if got != tt.want {
				t.Errorf("RemainingWidth(%d, %g, %d, %d) = %d, want %d",
					tt.lineLength, tt.ribbon, tt.lineIndent, tt.column, got, tt.want)
			}
		})
	}
}

// TestPropertyRemainingWidthBounds: the remainder never exceeds either
// the absolute line budget or the ribbon budget.
func TestPropertyRemainingWidthBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		lineLength := rng.Intn(200)
		ribbon := rng.Float64()
		lineIndent := rng.Intn(100)
		column := rng.Intn(250)

		got := RemainingWidth(lineLength, ribbon, lineIndent, column)
		if got > lineLength-column {
			t.Fatalf("remainder %d exceeds line budget %d (ll=%d col=%d)",
				got, lineLength-column, lineLength, column)
		}
		ribbonWidth := int(float64(lineLength) * ribbon)
		if got > lineIndent+ribbonWidth-column {
			t.Fatalf("remainder %d exceeds ribbon budget %d (ll=%d rf=%g li=%d col=%d)",
				got, lineIndent+ribbonWidth-column, lineLength, ribbon, lineIndent, column)
		}
	}
}

func TestClampRibbon(t *testing.T) {
	if got := ClampRibbon(0.5); got != 0.5 {
		t.Errorf("ClampRibbon(0.5) = %g, want 0.5", got)
	}
	if got := ClampRibbon(-0.1); got != 0 {
		t.Errorf("ClampRibbon(-0.1) = %g, want 0", got)
	}
	if got := ClampRibbon(1.7); got != 1 {
		t.Errorf("ClampRibbon(1.7) = %g, want 1", got)
	}
}
