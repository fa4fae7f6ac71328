package padgui_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/padgui"
)

func TestButtonAndCheckboxFrame(t *testing.T) {
	ui, _, input := newTestGUI(t)
	checked := false

	input.press(padgui.ButtonA)
	var clicked bool
	var changed bool
	var cursor padgui.Vec2
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		clicked = f.Button("OK").Clicked
		changed = f.Checkbox("Enabled", &checked).Changed
		cursor = f.Cursor()
	}))

	assert.True(t, clicked, "focused button receives accept")
	assert.False(t, changed, "input is consumed by the first focused widget")
	assert.False(t, checked)
	// Origin + button + gap + checkbox + gap.
	assert.Equal(t, padgui.Vec2{X: 100, Y: 100 + 52 + 10 + 52 + 10}, cursor)
	assert.Equal(t, 2, ui.Stats().Widgets)
}

func TestCheckboxToggles(t *testing.T) {
	ui, _, input := newTestGUI(t)
	checked := false

	input.press(padgui.ButtonA)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.True(t, f.Checkbox("Sound", &checked).Changed)
	}))
	assert.True(t, checked)

	input.press(padgui.ButtonA)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Checkbox("Sound", &checked)
	}))
	assert.False(t, checked)

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.False(t, f.Checkbox("Sound", &checked).Changed)
	}))
	assert.False(t, checked)
}

func TestFocusMovesNextFrame(t *testing.T) {
	ui, _, input := newTestGUI(t)

	input.press(padgui.ButtonDown)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.True(t, f.IsFocused())
		f.Button("first")
		assert.False(t, f.IsFocused(), "the move applies from the next frame")
		f.Button("second")
	}))
	assert.Equal(t, 1, ui.Focus().Index())

	input.press(padgui.ButtonA)
	var first, second bool
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		first = f.Button("first").Clicked
		second = f.Button("second").Clicked
	}))
	assert.False(t, first)
	assert.True(t, second)
}

func TestFocusStaysAtFirstWidget(t *testing.T) {
	ui, _, input := newTestGUI(t)

	input.press(padgui.ButtonUp)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Button("first")
		f.Button("second")
	}))
	assert.Equal(t, 0, ui.Focus().Index())
}

func TestFocusClampsWhenWidgetsDisappear(t *testing.T) {
	ui, _, _ := newTestGUI(t)

	ui.Focus().Set(4)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Button("a")
		f.Button("b")
	}))
	assert.Equal(t, 1, ui.Focus().Index())

	require.NoError(t, ui.Build(func(*padgui.Frame) {}))
	assert.Equal(t, 0, ui.Focus().Index())
}

func TestFocusPastLastWidgetClamps(t *testing.T) {
	ui, _, input := newTestGUI(t)

	for i := 0; i < 3; i++ {
		input.press(padgui.ButtonDown)
		require.NoError(t, ui.Build(func(f *padgui.Frame) {
			f.Button("a")
			f.Button("b")
		}))
	}
	assert.Equal(t, 1, ui.Focus().Index())
}

func TestLabelTakesNoFocus(t *testing.T) {
	ui, _, input := newTestGUI(t)

	input.press(padgui.ButtonA)
	var clicked bool
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Label("Settings")
		assert.Equal(t, 0, f.Index())
		assert.True(t, f.IsFocused())
		clicked = f.Button("OK").Clicked
	}))
	assert.True(t, clicked)
	assert.Equal(t, 2, ui.Stats().Widgets)
}

func TestCancelIsReported(t *testing.T) {
	ui, _, input := newTestGUI(t)

	input.press(padgui.ButtonB)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.False(t, f.Button("OK").Clicked)
		assert.True(t, f.Cancelled())
	}))

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Button("OK")
		assert.False(t, f.Cancelled())
	}))
}

func TestTakeActionRequiresFocus(t *testing.T) {
	ui, _, input := newTestGUI(t)

	input.press(padgui.ButtonA)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.EndWidget(10, true)
		assert.False(t, f.IsFocused())
		assert.Equal(t, padgui.ActionNone, f.TakeAction())
	}))
}

func TestTakeActionOncePerFrame(t *testing.T) {
	ui, _, input := newTestGUI(t)

	input.press(padgui.ButtonA)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.Equal(t, padgui.ActionAccept, f.TakeAction())
		assert.Equal(t, padgui.ActionNone, f.TakeAction())
	}))
}

type failingInput struct{}

func (failingInput) Poll() (padgui.InputState, error) {
	return padgui.InputState{}, errors.New("controller unplugged")
}

func TestPollErrorYieldsNoInput(t *testing.T) {
	ui, _, _ := newTestGUI(t, padgui.WithInputSource(failingInput{}))

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.True(t, f.IsFocused())
		assert.Equal(t, padgui.ActionNone, f.TakeAction())
	}))
}

func TestSelectStopsAtEnds(t *testing.T) {
	ui, _, input := newTestGUI(t)
	options := []string{"Low", "Medium", "High"}
	index := 2

	input.press(padgui.ButtonRight)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.False(t, f.Select("Quality", &index, options).Changed)
	}))
	assert.Equal(t, 2, index)

	input.press(padgui.ButtonLeft)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.True(t, f.Select("Quality", &index, options).Changed)
	}))
	assert.Equal(t, 1, index)

	index = 0
	input.press(padgui.ButtonLeft)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.False(t, f.Select("Quality", &index, options).Changed)
	}))
	assert.Equal(t, 0, index)
}

func TestSelectNormalizesIndex(t *testing.T) {
	ui, _, _ := newTestGUI(t)

	index := 7
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.True(t, f.Select("Quality", &index, []string{"a", "b"}).Changed)
	}))
	assert.Equal(t, 1, index)

	index = 3
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.True(t, f.Select("Empty", &index, nil).Changed)
	}))
	assert.Equal(t, 0, index)
}

func TestSelectGenericOptions(t *testing.T) {
	ui, _, input := newTestGUI(t)
	index := 0

	input.press(padgui.ButtonRight)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		resp := padgui.Add(f, padgui.Select[int]{Text: "Players", Index: &index, Options: []int{1, 2, 4}})
		assert.True(t, resp.Changed)
	}))
	assert.Equal(t, 1, index)
}

func TestNumberClampsAtBounds(t *testing.T) {
	ui, _, input := newTestGUI(t)
	volume := 9

	input.press(padgui.ButtonRight)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.True(t, f.Int("Volume", &volume, 0, 10, 5).Changed)
	}))
	assert.Equal(t, 10, volume)

	input.press(padgui.ButtonRight)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.False(t, f.Int("Volume", &volume, 0, 10, 5).Changed)
	}))
	assert.Equal(t, 10, volume)
}

func TestNumberUnsignedDoesNotWrap(t *testing.T) {
	ui, _, input := newTestGUI(t)
	var v uint8 = 3

	input.press(padgui.ButtonLeft)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		resp := padgui.Add(f, padgui.Number[uint8]{Text: "Lives", Value: &v, Min: 0, Max: 250, Step: 5})
		assert.True(t, resp.Changed)
	}))
	assert.Equal(t, uint8(0), v)

	v = 248
	input.press(padgui.ButtonRight)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		padgui.Add(f, padgui.Number[uint8]{Text: "Lives", Value: &v, Min: 0, Max: 250, Step: 5})
	}))
	assert.Equal(t, uint8(250), v)
}

func TestNumberNormalizesOutOfRange(t *testing.T) {
	ui, _, _ := newTestGUI(t)
	speed := float32(-3)

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.True(t, f.Float("Speed", &speed, 0.5, 2, 0.25).Changed)
	}))
	assert.Equal(t, float32(0.5), speed)
}

func TestNumberAcceptClicks(t *testing.T) {
	ui, _, input := newTestGUI(t)
	v := 4

	input.press(padgui.ButtonA)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		resp := f.Int("Count", &v, 0, 10, 1)
		assert.True(t, resp.Clicked)
		assert.False(t, resp.Changed)
	}))
	assert.Equal(t, 4, v)
}

func TestNumberPassesNavigationOn(t *testing.T) {
	ui, _, input := newTestGUI(t)
	v := 4

	input.press(padgui.ButtonDown)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Int("Count", &v, 0, 10, 1)
		f.Button("Back")
	}))
	assert.Equal(t, 1, ui.Focus().Index())
	assert.Equal(t, 4, v)
}

func TestValueWidgetHeight(t *testing.T) {
	ui, _, _ := newTestGUI(t)
	v, i := 1, 0

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Int("A", &v, 0, 3, 1)
		assert.Equal(t, float32(100+52+10), f.Cursor().Y)
		f.Select("B", &i, []string{"x"})
		assert.Equal(t, float32(100+2*(52+10)), f.Cursor().Y)
	}))
}

func gridItems(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = string(rune('a' + i))
	}
	return items
}

func drawGrid(t *testing.T, ui *padgui.GUI, grid padgui.Grid[string]) padgui.GridResponse {
	t.Helper()
	var resp padgui.GridResponse
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Button("Above")
		resp = padgui.Add(f, grid)
		f.Button("Below")
	}))
	return resp
}

func TestGridMoves(t *testing.T) {
	ui, _, input := newTestGUI(t)
	ui.Focus().Set(1)

	// a b c
	// d e f
	// g
	index := 1
	grid := padgui.Grid[string]{Text: "Map", Columns: 3, Index: &index, Items: gridItems(7)}

	tests := []struct {
		press padgui.Buttons
		want  int
	}{
		{padgui.ButtonDown, 4},
		{padgui.ButtonRight, 5},
		{padgui.ButtonRight, 5},
		{padgui.ButtonDown, 6},
		{padgui.ButtonUp, 3},
		{padgui.ButtonLeft, 3},
		{padgui.ButtonUp, 0},
	}
	for _, tt := range tests {
		input.press(tt.press)
		drawGrid(t, ui, grid)
		assert.Equal(t, tt.want, index, "after %s", tt.press)
		assert.Equal(t, 1, ui.Focus().Index(), "focus stays inside the grid")
	}
}

func TestGridWrapsWithinRow(t *testing.T) {
	ui, _, input := newTestGUI(t)
	ui.Focus().Set(1)

	index := 3
	grid := padgui.Grid[string]{Columns: 3, Index: &index, Items: gridItems(5), Policy: padgui.GridWrap}

	input.press(padgui.ButtonRight)
	drawGrid(t, ui, grid)
	assert.Equal(t, 4, index)

	input.press(padgui.ButtonRight)
	resp := drawGrid(t, ui, grid)
	assert.Equal(t, 3, index, "short last row wraps to its own start")
	assert.True(t, resp.Changed)

	input.press(padgui.ButtonLeft)
	drawGrid(t, ui, grid)
	assert.Equal(t, 4, index)
}

func TestGridHandsFocusOff(t *testing.T) {
	ui, _, input := newTestGUI(t)

	index := 0
	grid := padgui.Grid[string]{Columns: 2, Index: &index, Items: gridItems(4)}

	ui.Focus().Set(1)
	input.press(padgui.ButtonUp)
	drawGrid(t, ui, grid)
	assert.Equal(t, 0, ui.Focus().Index())
	assert.Equal(t, 0, index)

	index = 3
	ui.Focus().Set(1)
	input.press(padgui.ButtonDown)
	drawGrid(t, ui, grid)
	assert.Equal(t, 2, ui.Focus().Index())
	assert.Equal(t, 3, index)
}

func TestGridAcceptAndNormalize(t *testing.T) {
	ui, _, input := newTestGUI(t)
	ui.Focus().Set(1)

	index := 12
	grid := padgui.Grid[string]{Columns: 0, Index: &index, Items: gridItems(3)}

	input.press(padgui.ButtonA)
	resp := drawGrid(t, ui, grid)
	assert.True(t, resp.Clicked)
	assert.True(t, resp.Changed)
	assert.Equal(t, 2, index)

	// Zero columns behave as one column, so down moves a whole row.
	index = 0
	input.press(padgui.ButtonDown)
	drawGrid(t, ui, grid)
	assert.Equal(t, 1, index)
}

func TestGridEmpty(t *testing.T) {
	ui, _, input := newTestGUI(t)

	index := 5
	input.press(padgui.ButtonDown)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		resp := f.Grid("Nothing", 3, &index, nil)
		assert.True(t, resp.Changed)
		// Title only.
		assert.Equal(t, float32(100+32+10), f.Cursor().Y)
		f.Button("Back")
	}))
	assert.Equal(t, 0, index)
	assert.Equal(t, 1, ui.Focus().Index())
}

func TestGridHeight(t *testing.T) {
	ui, _, _ := newTestGUI(t)
	index := 0

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Grid("Map", 2, &index, gridItems(3))
		// Title, gap, two rows of cells and the gap between them, then the
		// widget gap.
		want := float32(100 + 32 + 10 + 2*52 + 10 + 10)
		assert.Equal(t, want, f.Cursor().Y)
	}))
}

func TestButtonIcons(t *testing.T) {
	assert.Equal(t, string(padgui.IconA), padgui.ButtonA.Icons())
	assert.Equal(t, string([]rune{padgui.IconL, padgui.IconR}), (padgui.ButtonR | padgui.ButtonL).Icons())
	assert.Empty(t, padgui.Buttons(0).Icons())
}

func TestHintFooter(t *testing.T) {
	ui, _, input := newTestGUI(t)

	hints := padgui.Hints{padgui.Hint(padgui.ButtonA, "Go"), padgui.Hint(padgui.ButtonB, "No")}
	assert.Equal(t, string(padgui.IconA)+" Go  "+string(padgui.IconB)+" No", hints.String())

	input.press(padgui.ButtonA)
	var clicked bool
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.HintFooter(hints...)
		assert.Equal(t, float32(100+32+10), f.Cursor().Y)
		assert.Zero(t, f.Index(), "hints take no focus")
		clicked = f.Button("OK").Clicked
	}))
	assert.True(t, clicked)

	// Six glyphs plus the button box and its two glyphs.
	assert.Equal(t, 6*6+18, ui.Stats().Vertices)
	c := ui.DrawData().Colors[0]
	assert.InDelta(t, 0.6, c.A, 1e-6)
}

func TestHintFooterNavFollowsControls(t *testing.T) {
	cfg := padgui.DefaultConfig()
	cfg.Controls.Accept = padgui.ButtonX
	ui, _, _ := newTestGUI(t, padgui.WithConfig(cfg))

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.HintFooterNav()
	}))
	// Icon and letter glyphs of the three hints. Spaces draw nothing.
	assert.Equal(t, (2+8+1+6+1+4)*6, ui.Stats().Vertices)
}

func TestNumberSignedFullRange(t *testing.T) {
	ui, _, input := newTestGUI(t)
	step := func(v int8, b padgui.Buttons) (int8, bool) {
		input.press(b)
		var changed bool
		require.NoError(t, ui.Build(func(f *padgui.Frame) {
			changed = padgui.Add(f, padgui.Number[int8]{Text: "Trim", Value: &v, Min: -128, Max: 127, Step: 100}).Changed
		}))
		return v, changed
	}

	v, changed := step(-128, padgui.ButtonRight)
	assert.Equal(t, int8(-28), v)
	assert.True(t, changed)

	v, _ = step(-28, padgui.ButtonRight)
	assert.Equal(t, int8(72), v)
	v, _ = step(72, padgui.ButtonRight)
	assert.Equal(t, int8(127), v)

	v, changed = step(127, padgui.ButtonLeft)
	assert.Equal(t, int8(27), v)
	assert.True(t, changed)

	v, _ = step(27, padgui.ButtonLeft)
	assert.Equal(t, int8(-73), v)
	v, _ = step(-73, padgui.ButtonLeft)
	assert.Equal(t, int8(-128), v)
}

func TestNumberStepLargerThanType(t *testing.T) {
	ui, _, input := newTestGUI(t)
	var v uint8 = 1

	input.press(padgui.ButtonRight)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		padgui.Add(f, padgui.Number[uint8]{Value: &v, Min: 0, Max: 3, Step: 5})
	}))
	assert.Equal(t, uint8(3), v)
}

func TestNumberNaNClampsToMin(t *testing.T) {
	ui, _, input := newTestGUI(t)
	speed := float32(math.NaN())

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.True(t, f.Float("Speed", &speed, 0.5, 2, 0.25).Changed)
	}))
	assert.Equal(t, float32(0.5), speed)

	speed = float32(math.NaN())
	input.press(padgui.ButtonRight)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.True(t, f.Float("Speed", &speed, 0.5, 2, 0.25).Changed)
	}))
	assert.Equal(t, float32(0.75), speed)

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		assert.False(t, f.Float("Speed", &speed, 0.5, 2, 0.25).Changed)
	}))
}

func TestNumberNaNStepDoesNothing(t *testing.T) {
	ui, _, input := newTestGUI(t)
	v := 1.0

	input.press(padgui.ButtonRight)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		resp := padgui.Add(f, padgui.Number[float64]{Value: &v, Min: 0, Max: 2, Step: math.NaN()})
		assert.False(t, resp.Changed)
	}))
	assert.Equal(t, 1.0, v)
}

func TestNumberFormatting(t *testing.T) {
	ui, _, _ := newTestGUI(t)
	v := 7
	f32 := float32(1.5)

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Int("", &v, 0, 9, 1)
	}))
	// Box plus "◄  7  ►".
	assert.Equal(t, 6+3*6, ui.Stats().Vertices)

	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Float("", &f32, 0, 9, 1)
	}))
	// Box plus "◄  1.50  ►".
	assert.Equal(t, 6+6*6, ui.Stats().Vertices)
}

func TestUnboundWidgetsStillNavigate(t *testing.T) {
	ui, _, input := newTestGUI(t)

	input.press(padgui.ButtonDown)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		padgui.Add(f, padgui.Number[int]{Text: "Unbound", Min: 0, Max: 10, Step: 1})
		f.Button("Next")
	}))
	assert.Equal(t, 1, ui.Focus().Index())

	input.press(padgui.ButtonDown)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Button("Prev")
		padgui.Add(f, padgui.Select[string]{Text: "Unbound", Options: []string{"a"}})
		f.Button("Next")
	}))
	assert.Equal(t, 2, ui.Focus().Index())

	input.press(padgui.ButtonA)
	require.NoError(t, ui.Build(func(f *padgui.Frame) {
		f.Button("Prev")
		f.Button("Mid")
		resp := padgui.Add(f, padgui.Number[int]{Text: "Unbound", Min: 0, Max: 10, Step: 1})
		assert.True(t, resp.Clicked)
	}))
}
