package padgui

// Label is display-only text. It takes no focus index.
type Label struct {
	Text string
}

// Draw implements Widget.
func (w Label) Draw(f *Frame) struct{} {
	layout := f.Layout()
	pos := f.Cursor()
	size := f.text(w.Text, pos.X, pos.Y, layout.TextScale, f.Pallet().Widget.Content)
	f.EndWidget(size.Y, false)
	return struct{}{}
}

// ButtonResponse reports a button press.
type ButtonResponse struct {
	Clicked bool
}

// Button is a padded text box that clicks on accept.
type Button struct {
	Text string
}

// Draw implements Widget.
func (w Button) Draw(f *Frame) ButtonResponse {
	var resp ButtonResponse

	focused := f.IsFocused()
	if focused {
		a := f.TakeAction()
		if !f.Navigate(a) && a == ActionAccept {
			resp.Clicked = true
		}
	}

	layout := f.Layout()
	p, s := layout.Padding, layout.TextScale
	pos := f.Cursor()
	pair := f.Pallet().pair(focused)

	size := f.measure(w.Text, s)
	box := f.rect(pos.X, pos.Y, size.X+2*p, size.Y+2*p, pair.Base)
	f.text(w.Text, pos.X+p, pos.Y+p, s, pair.Content)

	f.EndWidget(box.Y, true)
	return resp
}

// CheckboxResponse reports a toggle.
type CheckboxResponse struct {
	Changed bool
}

// Checkbox toggles a bound bool on accept.
type Checkbox struct {
	Text  string
	Value *bool
}

// Draw implements Widget.
func (w Checkbox) Draw(f *Frame) CheckboxResponse {
	var resp CheckboxResponse

	focused := f.IsFocused()
	if focused {
		a := f.TakeAction()
		if !f.Navigate(a) && a == ActionAccept && w.Value != nil {
			*w.Value = !*w.Value
			resp.Changed = true
		}
	}

	layout := f.Layout()
	pallet := f.Pallet()
	p, s := layout.Padding, layout.TextScale
	pos := f.Cursor()
	pair := pallet.pair(focused)

	label := f.text(w.Text, pos.X, pos.Y+p, s, pallet.Widget.Content)

	boxX := pos.X + label.X + p
	side := s + 2*p
	f.rect(boxX, pos.Y, side, side, pair.Base)
	f.border(boxX+p/2, pos.Y+p/2, side-p, side-p, 2, pair.Content)
	if w.Value != nil && *w.Value {
		f.rect(boxX+p, pos.Y+p, s, s, pair.Content)
	}

	f.EndWidget(side, true)
	return resp
}

// Label draws display-only text.
func (f *Frame) Label(text string) {
	Add(f, Label{Text: text})
}

// Button draws a button.
func (f *Frame) Button(text string) ButtonResponse {
	return Add(f, Button{Text: text})
}

// Checkbox draws a checkbox bound to value.
func (f *Frame) Checkbox(text string, value *bool) CheckboxResponse {
	return Add(f, Checkbox{Text: text, Value: value})
}
