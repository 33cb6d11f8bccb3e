package doc

// PageWidth describes the horizontal budget a layout must respect.
// AvailablePerLine limits every line; Unbounded disables the check entirely.
type PageWidth interface {
	isPageWidth()
}

// AvailablePerLine caps each line at LineWidth columns, of which only
// RibbonFraction (0..1) may be occupied by non-indentation content.
type AvailablePerLine struct {
	LineWidth      int
	RibbonFraction float64
}

// Unbounded places no limit on line length.
type Unbounded struct{}

func (AvailablePerLine) isPageWidth() {}
func (Unbounded) isPageWidth()        {}

// ClampRibbon normalises a ribbon fraction into [0, 1]. Out-of-range
// values from callers are clamped rather than rejected.
func ClampRibbon(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// RemainingWidth computes how many columns are still available on the
// current line, as the minimum of the absolute line budget and the ribbon
// budget. The result may be negative; fitness checks treat a negative
// remainder as "does not fit".
func RemainingWidth(lineLength int, ribbonFraction float64, lineIndent, currentColumn int) int {
	columnsLeftInLine := lineLength - currentColumn

	ribbonWidth := int(float64(lineLength) * ClampRibbon(ribbonFraction))
	if ribbonWidth < 0 {
		ribbonWidth = 0
	}
	if ribbonWidth > lineLength {
		ribbonWidth = lineLength
	}
	columnsLeftInRibbon := lineIndent + ribbonWidth - currentColumn

	return min(columnsLeftInLine, columnsLeftInRibbon)
}
