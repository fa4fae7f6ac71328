package padgui

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of types a Number can bind.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// NumberResponse reports what a Number did this frame.
type NumberResponse struct {
	// Clicked is set on accept.
	Clicked bool
	// Changed is set when the bound value moved.
	Changed bool
}

// Number is a stepper bound to a numeric value in [Min, Max]. Left and
// right move the value by Step and stop at the bounds.
type Number[T Numeric] struct {
	Text     string
	Value    *T
	Min, Max T
	Step     T
}

// Draw implements Widget.
func (w Number[T]) Draw(f *Frame) NumberResponse {
	var resp NumberResponse

	if w.Value != nil {
		if v := clamp(*w.Value, w.Min, w.Max); v != *w.Value {
			*w.Value = v
			resp.Changed = true
		}
	}

	focused := f.IsFocused()
	if focused {
		switch a := f.TakeAction(); a {
		case ActionLeft:
			if w.Value != nil {
				resp.Changed = w.stepDown() || resp.Changed
			}
		case ActionRight:
			if w.Value != nil {
				resp.Changed = w.stepUp() || resp.Changed
			}
		case ActionAccept:
			resp.Clicked = true
		default:
			f.Navigate(a)
		}
	}

	value := ""
	if w.Value != nil {
		value = formatNumber(*w.Value)
	}
	height := f.valueBox(w.Text, value, focused)

	f.EndWidget(height, true)
	return resp
}

// stepDown subtracts Step without passing Min. The value is compared against
// Min+Step rather than subtracting, so neither signed ranges wider than T nor
// unsigned values wrap. A Min+Step that overflows T puts every value within
// one step of Min.
func (w Number[T]) stepDown() bool {
	v := *w.Value
	if !(w.Step > 0) || v <= w.Min {
		return false
	}
	if lo := w.Min + w.Step; lo < w.Min || v < lo {
		*w.Value = w.Min
	} else {
		*w.Value = v - w.Step
	}
	return *w.Value != v
}

func (w Number[T]) stepUp() bool {
	v := *w.Value
	if !(w.Step > 0) || v >= w.Max {
		return false
	}
	if hi := w.Max - w.Step; hi > w.Max || v > hi {
		*w.Value = w.Max
	} else {
		*w.Value = v + w.Step
	}
	return *w.Value != v
}

// clamp limits v to [lo, hi]. NaN clamps to lo.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		hi = lo
	}
	if v != v {
		return lo
	}
	return min(max(v, lo), hi)
}

// formatNumber prints floats with two decimals and integers as is.
func formatNumber[T Numeric](v T) string {
	one, two := T(1), T(2)
	if one/two != 0 {
		return fmt.Sprintf("%.2f", float64(v))
	}
	return fmt.Sprint(v)
}

// Int draws a Number bound to an int.
func (f *Frame) Int(text string, value *int, lo, hi, step int) NumberResponse {
	return Add(f, Number[int]{Text: text, Value: value, Min: lo, Max: hi, Step: step})
}

// Float draws a Number bound to a float32.
func (f *Frame) Float(text string, value *float32, lo, hi, step float32) NumberResponse {
	return Add(f, Number[float32]{Text: text, Value: value, Min: lo, Max: hi, Step: step})
}
