package padgui

import "github.com/chewxy/math32"

// Length is a placement or size value that resolves against a reference
// dimension: the screen width or height for positions and sizes, or the font
// pixel size for text scales.
//
// The same call site can accept an absolute pixel count or a fraction of the
// reference:
//
//	f.Rect(padgui.Frac(0.5), padgui.Px(120), padgui.Px(200), padgui.Px(40), color)
type Length interface {
	// Absolute converts the value to whole pixels.
	Absolute(reference int) int
	// Relative converts the value to a fraction of reference.
	Relative(reference int) float32
}

// Px is an absolute pixel count.
type Px int

// Absolute returns the pixel count unchanged.
func (p Px) Absolute(int) int { return int(p) }

// Relative returns p as a fraction of reference. A zero reference yields 0.
func (p Px) Relative(reference int) float32 {
	if reference == 0 {
		return 0
	}
	return float32(p) / float32(reference)
}

// Frac is a fraction of the reference dimension.
type Frac float32

// Absolute returns the fraction of reference in pixels, truncated toward zero.
func (f Frac) Absolute(reference int) int {
	return int(math32.Trunc(float32(f) * float32(reference)))
}

// Relative returns the fraction unchanged.
func (f Frac) Relative(int) float32 { return float32(f) }

