package padgui

import (
	"fmt"

	"github.com/chewxy/math32"
)

// GridPolicy decides what left and right do at the end of a row.
type GridPolicy int

const (
	// GridClamp stops at the first and last cell of a row.
	GridClamp GridPolicy = iota
	// GridWrap moves to the other end of the same row.
	GridWrap
)

// GridResponse reports what a Grid did this frame.
type GridResponse struct {
	// Clicked is set on accept.
	Clicked bool
	// Changed is set when the bound index moved.
	Changed bool
}

// Grid lays Items out row-major in Columns columns and binds the selected
// cell's index. Up and down move between rows; past the first or last row
// they move focus to the previous or next widget.
type Grid[T any] struct {
	Text    string
	Columns int
	Index   *int
	Items   []T
	Policy  GridPolicy
}

// Draw implements Widget.
func (w Grid[T]) Draw(f *Frame) GridResponse {
	var resp GridResponse

	cols := max(w.Columns, 1)
	n := len(w.Items)
	if w.Index != nil {
		resp.Changed = normalizeIndex(w.Index, n)
	}

	focused := f.IsFocused()
	if focused {
		a := f.TakeAction()
		if a == ActionAccept {
			resp.Clicked = true
		} else if w.Index != nil && n > 0 {
			next, handled := w.move(a, *w.Index, cols)
			switch {
			case !handled:
				f.Navigate(a)
			case next != *w.Index:
				*w.Index = next
				resp.Changed = true
			}
		} else {
			f.Navigate(a)
		}
	}

	height := w.draw(f, cols, focused)
	f.EndWidget(height, true)
	return resp
}

// move returns the index after a, or handled == false when a leaves the
// grid and should move focus instead.
func (w Grid[T]) move(a Action, i, cols int) (next int, handled bool) {
	n := len(w.Items)
	row, col := i/cols, i%cols
	rowStart := row * cols
	rowLen := min(cols, n-rowStart)
	lastRow := (n - 1) / cols

	switch a {
	case ActionLeft:
		if col > 0 {
			return i - 1, true
		}
		if w.Policy == GridWrap {
			return rowStart + rowLen - 1, true
		}
		return i, true
	case ActionRight:
		if col < rowLen-1 {
			return i + 1, true
		}
		if w.Policy == GridWrap {
			return rowStart, true
		}
		return i, true
	case ActionUp:
		if row > 0 {
			return i - cols, true
		}
		return i, false
	case ActionDown:
		if row < lastRow {
			return min(i+cols, n-1), true
		}
		return i, false
	}
	return i, false
}

func (w Grid[T]) draw(f *Frame, cols int, focused bool) float32 {
	layout := f.Layout()
	pallet := f.Pallet()
	p, s := layout.Padding, layout.TextScale
	pos := f.Cursor()

	height := float32(0)
	if w.Text != "" {
		height = f.text(w.Text, pos.X, pos.Y, s, pallet.Widget.Content).Y
	}
	if len(w.Items) == 0 {
		return height
	}
	if height > 0 {
		height += layout.Gap.Y
	}

	labels := make([]string, len(w.Items))
	var cellW float32
	for i, item := range w.Items {
		labels[i] = fmt.Sprint(item)
		cellW = math32.Max(cellW, f.measure(labels[i], s).X)
	}
	cellW += 2 * p
	cellH := s + 2*p

	selected := -1
	if w.Index != nil {
		selected = *w.Index
	}

	top := pos.Y + height
	for i, label := range labels {
		x := pos.X + float32(i%cols)*(cellW+layout.Gap.X)
		y := top + float32(i/cols)*(cellH+layout.Gap.Y)

		pair := pallet.Widget
		if i == selected && focused {
			pair = pallet.Highlight
		}
		f.rect(x, y, cellW, cellH, pair.Base)
		if i == selected && !focused {
			f.border(x, y, cellW, cellH, 2, pallet.Highlight.Base)
		}
		f.text(label, x+p, y+p, s, pair.Content)
	}

	rows := (len(labels) + cols - 1) / cols
	return height + float32(rows)*cellH + float32(rows-1)*layout.Gap.Y
}

// Grid draws a Grid over string items with the clamp policy.
func (f *Frame) Grid(text string, columns int, index *int, items []string) GridResponse {
	return Add(f, Grid[string]{Text: text, Columns: columns, Index: index, Items: items})
}
