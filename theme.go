package padgui

// ColorPair is a fill color with the content color drawn on top of it.
type ColorPair struct {
	Base    Color
	Content Color
}

// Auto pairs base with black content when base is light and white content
// when it is dark. The threshold is a luminance of 0.5.
func Auto(base Color) ColorPair {
	content := ColorWhite
	if base.Luminance() > 0.5 {
		content = ColorBlack
	}
	return ColorPair{Base: base, Content: content}
}

// Pallet holds the color pairs widgets draw with.
type Pallet struct {
	Background ColorPair
	Widget     ColorPair
	Highlight  ColorPair
}

// AutoPallet derives all pairs from their base colors.
func AutoPallet(background, widget, highlight Color) Pallet {
	return Pallet{
		Background: Auto(background),
		Widget:     Auto(widget),
		Highlight:  Auto(highlight),
	}
}

// DefaultPallet is black widgets on black with a red highlight.
func DefaultPallet() Pallet {
	return AutoPallet(ColorBlack, ColorBlack, ColorRed)
}

// pair returns the highlight pair for focused widgets.
func (p Pallet) pair(focused bool) ColorPair {
	if focused {
		return p.Highlight
	}
	return p.Widget
}
