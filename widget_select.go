package padgui

import "fmt"

// SelectResponse reports a selection change.
type SelectResponse struct {
	Changed bool
}

// Select cycles a bound index through Options with left and right. The
// index stops at the first and last option.
type Select[T any] struct {
	Text    string
	Index   *int
	Options []T
}

// Draw implements Widget.
func (w Select[T]) Draw(f *Frame) SelectResponse {
	var resp SelectResponse

	if w.Index != nil {
		resp.Changed = normalizeIndex(w.Index, len(w.Options))
	}

	focused := f.IsFocused()
	if focused {
		switch a := f.TakeAction(); a {
		case ActionLeft:
			if w.Index != nil && *w.Index > 0 {
				*w.Index--
				resp.Changed = true
			}
		case ActionRight:
			if w.Index != nil && *w.Index < len(w.Options)-1 {
				*w.Index++
				resp.Changed = true
			}
		default:
			f.Navigate(a)
		}
	}

	value := ""
	if w.Index != nil && len(w.Options) > 0 {
		value = fmt.Sprint(w.Options[*w.Index])
	}
	height := f.valueBox(w.Text, value, focused)

	f.EndWidget(height, true)
	return resp
}

// normalizeIndex clamps *index into [0, n-1], or to 0 when n is 0, and
// reports whether it changed.
func normalizeIndex(index *int, n int) bool {
	v := 0
	if n > 0 {
		v = clamp(*index, 0, n-1)
	}
	if v == *index {
		return false
	}
	*index = v
	return true
}

// Select draws a Select over string options.
func (f *Frame) Select(text string, index *int, options []string) SelectResponse {
	return Add(f, Select[string]{Text: text, Index: index, Options: options})
}
