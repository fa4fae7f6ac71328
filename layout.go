package padgui

// Layout configures where widgets are placed and how large they are drawn.
type Layout struct {
	// Origin is the top-left corner of the first widget.
	Origin Vec2
	// Gap separates consecutive widgets.
	Gap Vec2
	// Padding is the inner spacing of widget boxes.
	Padding float32
	// TextScale is the line height of widget text in pixels.
	TextScale float32
}

// DefaultLayout starts at (100, 100) with a 10 px gap and 32 px text.
func DefaultLayout() Layout {
	return Layout{
		Origin:    Vec2{X: 100, Y: 100},
		Gap:       Vec2{X: 10, Y: 10},
		Padding:   10,
		TextScale: 32,
	}
}

// LayoutCursor is the pen position of the vertical widget stack.
// y grows downward.
type LayoutCursor struct {
	Origin  Vec2
	Current Vec2
	Gap     Vec2
}

// NewLayoutCursor returns a cursor at origin.
func NewLayoutCursor(origin, gap Vec2) LayoutCursor {
	return LayoutCursor{Origin: origin, Current: origin, Gap: gap}
}

// Advance moves the cursor below a widget of the given height.
func (c *LayoutCursor) Advance(height float32) {
	c.Current.Y += height + c.Gap.Y
}
