package padgui_test

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/padgui"
)

// Stub glyph metrics at the 64 px atlas cell size. At a text scale of 32 px
// every glyph advances 12 px.
const (
	stubWidth   = 20
	stubHeight  = 30
	stubAdvance = 24
	stubAscent  = 48
)

// stubRasterizer returns solid boxes with fixed metrics.
type stubRasterizer struct {
	missing map[rune]bool
	large   map[rune]bool
	fail    rune
}

func (s *stubRasterizer) LineMetrics(int) (padgui.LineMetrics, error) {
	return padgui.LineMetrics{Ascent: stubAscent, LineHeight: 64}, nil
}

func (s *stubRasterizer) Rasterize(r rune, _ int) (padgui.GlyphBitmap, error) {
	if s.fail != 0 && r == s.fail {
		return padgui.GlyphBitmap{}, &padgui.RasterizerError{Char: r, Err: errors.New("boom")}
	}
	if r == ' ' {
		return padgui.GlyphBitmap{GlyphMetrics: padgui.GlyphMetrics{Advance: 16}}, nil
	}
	w, h := stubWidth, stubHeight
	if s.large[r] {
		w, h = 100, 90
	}
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = 255
	}
	return padgui.GlyphBitmap{
		GlyphMetrics: padgui.GlyphMetrics{
			Width:    w,
			Height:   h,
			BearingX: 2,
			BearingY: stubHeight,
			Advance:  stubAdvance,
		},
		Pix:     pix,
		Missing: s.missing[r],
	}, nil
}

// mockRenderer records what the GUI hands to it.
type mockRenderer struct {
	width, height int
	renderCalls   int
	uploads       int
	atlasSize     image.Point
	last          padgui.DrawData
	uploadErr     error
}

func newMockRenderer() *mockRenderer {
	return &mockRenderer{width: 800, height: 600}
}

func (m *mockRenderer) Size() (int, int) { return m.width, m.height }

func (m *mockRenderer) Projection() padgui.Mat4 {
	return padgui.ScreenOrtho(m.width, m.height)
}

func (m *mockRenderer) UploadAtlas(img *image.Alpha) error {
	m.uploads++
	m.atlasSize = img.Bounds().Size()
	return m.uploadErr
}

func (m *mockRenderer) Render(dd *padgui.DrawData) error {
	m.renderCalls++
	m.last = *dd
	return nil
}

// scriptedInput delivers one queued state on the next poll.
type scriptedInput struct {
	next padgui.InputState
}

func (s *scriptedInput) Poll() (padgui.InputState, error) {
	st := s.next
	s.next = padgui.InputState{}
	return st, nil
}

func (s *scriptedInput) press(b padgui.Buttons) {
	s.next = padgui.InputState{Trigger: b, Hold: b}
}

// newTestGUI builds a GUI with the stub rasterizer and a scripted input.
func newTestGUI(t *testing.T, opts ...padgui.GUIOption) (*padgui.GUI, *mockRenderer, *scriptedInput) {
	t.Helper()
	renderer := newMockRenderer()
	input := &scriptedInput{}
	opts = append([]padgui.GUIOption{
		padgui.WithRasterizer(&stubRasterizer{}),
		padgui.WithInputSource(input),
	}, opts...)
	ui, err := padgui.New(renderer, opts...)
	require.NoError(t, err)
	return ui, renderer, input
}
