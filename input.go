package padgui

import (
	"fmt"
	"math/bits"
	"strings"
)

// Buttons is a set of controller buttons.
type Buttons uint32

// Controller buttons.
const (
	ButtonA Buttons = 1 << iota
	ButtonB
	ButtonX
	ButtonY
	ButtonL
	ButtonR
	ButtonZL
	ButtonZR
	ButtonPlus
	ButtonMinus
	ButtonHome
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonStickL
	ButtonStickR
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonA, "a"},
	{ButtonB, "b"},
	{ButtonX, "x"},
	{ButtonY, "y"},
	{ButtonL, "l"},
	{ButtonR, "r"},
	{ButtonZL, "zl"},
	{ButtonZR, "zr"},
	{ButtonPlus, "plus"},
	{ButtonMinus, "minus"},
	{ButtonHome, "home"},
	{ButtonUp, "dpad_up"},
	{ButtonDown, "dpad_down"},
	{ButtonLeft, "dpad_left"},
	{ButtonRight, "dpad_right"},
	{ButtonStickL, "stick_l"},
	{ButtonStickR, "stick_r"},
}

// Has reports whether every button in other is in b. An empty other is
// never contained.
func (b Buttons) Has(other Buttons) bool {
	return other != 0 && b&other == other
}

// Count returns the number of buttons in the set.
func (b Buttons) Count() int { return bits.OnesCount32(uint32(b)) }

func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	var names []string
	for _, bn := range buttonNames {
		if b&bn.b != 0 {
			names = append(names, bn.name)
		}
	}
	return strings.Join(names, "+")
}

// ParseButtons parses a "+"-separated list of button names such as
// "dpad_up" or "l+r".
func ParseButtons(s string) (Buttons, error) {
	var out Buttons
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return 0, nil
	}
	for _, part := range strings.Split(s, "+") {
		part = strings.ToLower(strings.TrimSpace(part))
		found := false
		for _, bn := range buttonNames {
			if bn.name == part {
				out |= bn.b
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown button %q", part)
		}
	}
	return out, nil
}

// InputState is one poll of a controller.
type InputState struct {
	// Trigger holds buttons pressed since the previous poll.
	Trigger Buttons
	// Hold holds buttons currently down.
	Hold Buttons
}

// InputSource polls a controller once per frame.
type InputSource interface {
	Poll() (InputState, error)
}

// InputFunc adapts a function to InputSource.
type InputFunc func() (InputState, error)

// Poll implements InputSource.
func (f InputFunc) Poll() (InputState, error) { return f() }

// InputToken carries a frame's input to the one widget that claims it.
type InputToken struct {
	state InputState
	valid bool
}

// NewInputToken wraps a polled state.
func NewInputToken(s InputState) InputToken {
	return InputToken{state: s, valid: true}
}

// Take returns the input and empties the token. Only the first call in a
// frame gets ok == true.
func (t *InputToken) Take() (InputState, bool) {
	if !t.valid {
		return InputState{}, false
	}
	s := t.state
	*t = InputToken{}
	return s, true
}

// Available reports whether the input has not been claimed yet.
func (t *InputToken) Available() bool { return t.valid }

// Action is a navigation or activation intent derived from input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionAccept
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionAccept:
		return "accept"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Controls binds buttons to actions.
type Controls struct {
	Up, Down, Left, Right Buttons
	Accept, Cancel        Buttons
}

// DefaultControls binds the D-pad to navigation, A to accept and B to cancel.
func DefaultControls() Controls {
	return Controls{
		Up:     ButtonUp,
		Down:   ButtonDown,
		Left:   ButtonLeft,
		Right:  ButtonRight,
		Accept: ButtonA,
		Cancel: ButtonB,
	}
}

// Check maps the triggered buttons to one action. When several bindings
// match, the first of Up, Down, Left, Right, Accept, Cancel wins.
func (c Controls) Check(s InputState) Action {
	switch {
	case s.Trigger.Has(c.Up):
		return ActionUp
	case s.Trigger.Has(c.Down):
		return ActionDown
	case s.Trigger.Has(c.Left):
		return ActionLeft
	case s.Trigger.Has(c.Right):
		return ActionRight
	case s.Trigger.Has(c.Accept):
		return ActionAccept
	case s.Trigger.Has(c.Cancel):
		return ActionCancel
	default:
		return ActionNone
	}
}
