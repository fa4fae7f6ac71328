package padgui

import "math"

// Focus is the linear focus cursor over widget declaration order.
// All moves saturate: Prev at 0 stays at 0 and Next stops at math.MaxInt.
type Focus struct {
	index int
}

// Index returns the current cursor.
func (f *Focus) Index() int { return f.index }

// Next moves the cursor to the following widget.
func (f *Focus) Next() {
	if f.index < math.MaxInt {
		f.index++
	}
}

// Prev moves the cursor to the preceding widget.
func (f *Focus) Prev() {
	if f.index > 0 {
		f.index--
	}
}

// Set moves the cursor to i, clamped at 0.
func (f *Focus) Set(i int) { f.index = max(i, 0) }

// Clamp bounds the cursor to [lo, hi].
func (f *Focus) Clamp(lo, hi int) {
	f.index = min(max(f.index, lo), hi)
}

// Focused reports whether the widget with index i holds focus.
func (f *Focus) Focused(i int) bool { return f.index == i }
