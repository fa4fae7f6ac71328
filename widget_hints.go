package padgui

import "strings"

var buttonIcons = map[Buttons]rune{
	ButtonA:      IconA,
	ButtonB:      IconB,
	ButtonX:      IconX,
	ButtonY:      IconY,
	ButtonL:      IconL,
	ButtonR:      IconR,
	ButtonZL:     IconZL,
	ButtonZR:     IconZR,
	ButtonPlus:   IconPlus,
	ButtonMinus:  IconMinus,
	ButtonHome:   IconHome,
	ButtonUp:     IconDPadUp,
	ButtonDown:   IconDPadDown,
	ButtonLeft:   IconDPadLeft,
	ButtonRight:  IconDPadRight,
	ButtonStickL: IconStickL,
	ButtonStickR: IconStickR,
}

// Icons returns the controller icon of every button in b.
func (b Buttons) Icons() string {
	var sb strings.Builder
	for _, bn := range buttonNames {
		if b&bn.b != 0 {
			sb.WriteRune(buttonIcons[bn.b])
		}
	}
	return sb.String()
}

// HintAction pairs a button binding with what it does.
type HintAction struct {
	Buttons Buttons
	Action  string
}

// Hint creates a HintAction for use with HintFooter.
//
// Usage:
//
//	f.HintFooter(
//	    padgui.Hint(padgui.ButtonA, "Select"),
//	    padgui.Hint(padgui.ButtonB, "Back"),
//	)
func Hint(b Buttons, action string) HintAction {
	return HintAction{Buttons: b, Action: action}
}

// Hints is a display-only line of controller hints rendered as
// "<icon> Action  <icon> Action". It takes no focus index.
type Hints []HintAction

func (h Hints) String() string {
	parts := make([]string, 0, len(h))
	for _, a := range h {
		parts = append(parts, a.Buttons.Icons()+" "+a.Action)
	}
	return strings.Join(parts, "  ")
}

// Draw implements Widget.
func (h Hints) Draw(f *Frame) struct{} {
	if len(h) == 0 {
		return struct{}{}
	}
	pos := f.Cursor()
	c := f.Pallet().Widget.Content.WithAlpha(0.6)
	size := f.text(h.String(), pos.X, pos.Y, f.Layout().TextScale, c)
	f.EndWidget(size.Y, false)
	return struct{}{}
}

// HintFooter draws a line of controller hints.
func (f *Frame) HintFooter(hints ...HintAction) {
	Add(f, Hints(hints))
}

// HintFooterNav draws the navigation hints for the active controls.
func (f *Frame) HintFooterNav() {
	c := f.gui.config.Controls
	f.HintFooter(
		Hint(c.Up|c.Down, "Navigate"),
		Hint(c.Accept, "Select"),
		Hint(c.Cancel, "Back"),
	)
}
