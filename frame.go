package padgui

import (
	"github.com/chewxy/math32"
	"golang.org/x/text/unicode/norm"
)

// DepthStep separates consecutive emissions so later geometry covers
// earlier geometry.
const DepthStep float32 = 0.0001

// MaxDepth is the farthest depth ScreenOrtho keeps visible.
const MaxDepth float32 = 10

// untextured marks vertices the shader fills with the flat color.
var untextured = Vec2{X: -1, Y: -1}

// Frame is the drawing surface handed to the build closure. It is only
// valid inside GUI.Build.
type Frame struct {
	gui    *GUI
	width  int
	height int

	depth   float32
	index   int
	focused int
	widgets int
	cursor  LayoutCursor
	input   InputToken

	cancelled bool
	err       error
}

func (f *Frame) reset(g *GUI, input InputToken) {
	w, h := 0, 0
	if g.renderer != nil {
		w, h = g.renderer.Size()
	}
	layout := g.config.Layout
	*f = Frame{
		gui:     g,
		width:   w,
		height:  h,
		focused: g.focus.Index(),
		cursor:  NewLayoutCursor(layout.Origin, layout.Gap),
		input:   input,
	}
}

// Size returns the screen size in pixels.
func (f *Frame) Size() (width, height int) { return f.width, f.height }

// Depth returns the depth of the next emission.
func (f *Frame) Depth() float32 { return f.depth }

// Err returns the buffer error that aborted the frame, if any.
func (f *Frame) Err() error { return f.err }

// Cancelled reports whether the focused widget received a cancel action.
func (f *Frame) Cancelled() bool { return f.cancelled }

// Atlas returns the font atlas.
func (f *Frame) Atlas() *Atlas { return f.gui.atlas }

// Layout returns the active layout settings.
func (f *Frame) Layout() Layout { return f.gui.config.Layout }

// Pallet returns the active colors.
func (f *Frame) Pallet() Pallet { return f.gui.config.Pallet }

// Cursor returns the position of the next widget.
func (f *Frame) Cursor() Vec2 { return f.cursor.Current }

// SetCursor moves the position of the next widget.
func (f *Frame) SetCursor(x, y Length) {
	f.cursor.Current = Vec2{
		X: float32(x.Absolute(f.width)),
		Y: float32(y.Absolute(f.height)),
	}
}

// Advance moves the cursor below a block of the given height.
func (f *Frame) Advance(height float32) { f.cursor.Advance(height) }

// vertex appends one vertex to all three buffers. The caller has reserved
// room.
func (f *Frame) vertex(pos Vec3, uv Vec2, c Color) {
	g := f.gui
	_ = g.positions.Push(pos)
	_ = g.texcoords.Push(uv)
	_ = g.colors.Push(c)
}

// reserve makes room for n vertices in every buffer. On failure the frame
// is aborted and all later emissions are dropped.
func (f *Frame) reserve(n int) bool {
	if f.err != nil {
		return false
	}
	g := f.gui
	for _, reserve := range []func(int) error{g.positions.Reserve, g.texcoords.Reserve, g.colors.Reserve} {
		if err := reserve(n); err != nil {
			f.err = err
			return false
		}
	}
	return true
}

// Triangle emits one triangle at depth z. A nil uv draws it untextured.
func (f *Frame) Triangle(v [3]Vec2, uv *[3]Vec2, z float32, c Color) {
	if !f.reserve(3) {
		return
	}
	for i := range v {
		t := untextured
		if uv != nil {
			t = uv[i]
		}
		f.vertex(v[i].Extend(z), t, c)
	}
}

// quad emits two triangles covering the rectangle (l, t)-(r, b).
func (f *Frame) quad(l, t, r, b float32, uv *TexRect, c Color) {
	if !f.reserve(6) {
		return
	}
	tl, tr, br, bl := Vec2{l, t}, Vec2{r, t}, Vec2{r, b}, Vec2{l, b}
	if uv == nil {
		f.Triangle([3]Vec2{tl, tr, br}, nil, f.depth, c)
		f.Triangle([3]Vec2{tl, br, bl}, nil, f.depth, c)
		return
	}
	utl := Vec2{uv.Left, uv.Top}
	utr := Vec2{uv.Right, uv.Top}
	ubr := Vec2{uv.Right, uv.Bottom}
	ubl := Vec2{uv.Left, uv.Bottom}
	f.Triangle([3]Vec2{tl, tr, br}, &[3]Vec2{utl, utr, ubr}, f.depth, c)
	f.Triangle([3]Vec2{tl, br, bl}, &[3]Vec2{utl, ubr, ubl}, f.depth, c)
}

// Rect fills a rectangle. x and w resolve against the screen width, y and h
// against the height.
func (f *Frame) Rect(x, y, w, h Length, c Color) Vec2 {
	return f.rect(
		float32(x.Absolute(f.width)), float32(y.Absolute(f.height)),
		float32(w.Absolute(f.width)), float32(h.Absolute(f.height)),
		c,
	)
}

func (f *Frame) rect(x, y, w, h float32, c Color) Vec2 {
	f.quad(x, y, x+w, y+h, nil, c)
	f.depth += DepthStep
	return Vec2{w, h}
}

// Border draws a frame of four rectangles inside (x, y, w, h).
func (f *Frame) Border(x, y, w, h, thickness Length, c Color) Vec2 {
	return f.border(
		float32(x.Absolute(f.width)), float32(y.Absolute(f.height)),
		float32(w.Absolute(f.width)), float32(h.Absolute(f.height)),
		float32(thickness.Absolute(f.height)),
		c,
	)
}

func (f *Frame) border(x, y, w, h, t float32, c Color) Vec2 {
	f.rect(x, y, w, t, c)
	f.rect(x, y, t, h, c)
	f.rect(x+w-t, y, t, h, c)
	f.rect(x, y+h-t, w, t, c)
	return Vec2{w, h}
}

// Text draws s with its top-left corner at (x, y). scale is the line height
// and resolves against the atlas cell size, so Px(32) and Frac(0.5) are the
// same. '\n' starts a new line below. The drawn size is returned.
func (f *Frame) Text(s string, x, y, scale Length, c Color) Vec2 {
	return f.text(
		s,
		float32(x.Absolute(f.width)), float32(y.Absolute(f.height)),
		scale.Relative(CellSize)*CellSize,
		c,
	)
}

func (f *Frame) text(s string, x, y, scale float32, c Color) Vec2 {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}

	atlas := f.gui.atlas
	k := scale / CellSize
	ascent := float32(atlas.Ascent()) * k
	penX, penY := x, y
	var width float32

	for _, ch := range s {
		if ch == '\n' {
			width = math32.Max(width, penX-x)
			penX = x
			penY += scale
			continue
		}

		g := atlas.Get(ch)
		m := g.Metrics
		if m.Width > 0 && m.Height > 0 {
			l := penX + float32(m.BearingX)*k
			t := penY + ascent - float32(m.BearingY)*k
			f.quad(l, t, l+float32(m.Width)*k, t+float32(m.Height)*k, &g.Tex, c)
		}
		penX += float32(m.Advance) * k
	}

	f.depth += DepthStep
	return Vec2{X: math32.Max(width, penX-x), Y: penY - y + scale}
}

// MeasureText returns the size Text would draw s at.
func (f *Frame) MeasureText(s string, scale Length) Vec2 {
	return f.measure(s, scale.Relative(CellSize)*CellSize)
}

func (f *Frame) measure(s string, scale float32) Vec2 {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	return f.gui.atlas.Measure(s, scale)
}

// Interactive widget plumbing.

// Index returns the focus index the next interactive widget receives.
func (f *Frame) Index() int { return f.index }

// IsFocused reports whether the next interactive widget holds focus. Focus
// is decided by the cursor at the start of the frame, so moves made by
// earlier widgets take effect next frame.
func (f *Frame) IsFocused() bool { return f.focused == f.index }

// TakeAction claims the frame's input for the next interactive widget and
// returns its action. Only a focused widget can claim, and only once per
// frame. Cancel is recorded for Cancelled.
func (f *Frame) TakeAction() Action {
	if !f.IsFocused() {
		return ActionNone
	}
	state, ok := f.input.Take()
	if !ok {
		return ActionNone
	}
	a := f.gui.config.Controls.Check(state)
	if a == ActionCancel {
		f.cancelled = true
	}
	return a
}

// Navigate applies Up and Down to the focus cursor and reports whether a
// was one of them.
func (f *Frame) Navigate(a Action) bool {
	switch a {
	case ActionUp:
		f.FocusPrev()
	case ActionDown:
		f.FocusNext()
	default:
		return false
	}
	return true
}

// FocusPrev moves focus to the preceding widget from the next frame on.
func (f *Frame) FocusPrev() {
	f.gui.focus.Prev()
	logger.Debug("focus moved", "from", f.index, "to", f.gui.focus.Index())
}

// FocusNext moves focus to the following widget from the next frame on.
func (f *Frame) FocusNext() {
	f.gui.focus.Next()
	logger.Debug("focus moved", "from", f.index, "to", f.gui.focus.Index())
}

// EndWidget advances the layout below a widget of the given height.
// Interactive widgets also consume a focus index.
func (f *Frame) EndWidget(height float32, interactive bool) {
	f.cursor.Advance(height)
	f.widgets++
	if interactive {
		f.index++
	}
}
