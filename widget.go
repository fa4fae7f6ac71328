package padgui

// Widget draws itself into a frame and reports what happened this frame.
// Widget values are declared and drawn once per frame.
//
// Interactive widgets follow the same steps: read IsFocused, claim input with
// TakeAction, update the bound value, draw with the pallet pair for the
// focus state and finish with EndWidget.
type Widget[R any] interface {
	Draw(f *Frame) R
}

// Add draws w and returns its response.
func Add[R any](f *Frame, w Widget[R]) R {
	return w.Draw(f)
}

// valueBox draws a label followed by a box holding "◄  value  ►" and
// returns the widget height.
func (f *Frame) valueBox(label, value string, focused bool) float32 {
	layout := f.Layout()
	pallet := f.Pallet()
	p, s := layout.Padding, layout.TextScale
	pos := f.Cursor()

	boxX := pos.X
	if label != "" {
		size := f.text(label, pos.X, pos.Y+p, s, pallet.Widget.Content)
		boxX += size.X + p
	}

	content := string(TriangleLeft) + "  " + value + "  " + string(TriangleRight)
	size := f.measure(content, s)
	pair := pallet.pair(focused)
	f.rect(boxX, pos.Y, size.X+2*p, size.Y+2*p, pair.Base)
	f.text(content, boxX+p, pos.Y+p, s, pair.Content)
	return size.Y + 2*p
}
