/*
Package padgui provides an immediate-mode GUI for controller-driven menus,
designed as idiomatic Go with a dedicated Frame type.

# Overview

The UI is rebuilt every frame. Widgets are declared by calls inside a build
closure; each call draws the widget and returns what happened to it this
frame. There is no widget tree and there are no callbacks.

All geometry of a frame is appended to three parallel vertex buffers
(positions, texture coordinates, colors) and submitted in one draw call.
Text samples a single font atlas texture, so strings do not break the batch.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	input := opengl.NewGLFWInputAdapter(window, glfw.Joystick1)
	ui, err := padgui.New(renderer, padgui.WithInputSource(input))
	if err != nil {
	    return err
	}

	// Game loop
	for !window.ShouldClose() {
	    glfw.PollEvents()

	    err := ui.Draw(func(f *padgui.Frame) {
	        f.Label("Settings")
	        if f.Button("Start").Clicked {
	            // Button was pressed
	        }
	        f.Checkbox("Fullscreen", &fullscreen)
	        f.Int("Volume", &volume, 0, 10, 1)
	    })
	    if err != nil {
	        slog.Warn("frame dropped", "err", err)
	    }

	    window.SwapBuffers()
	}

# Focus and input

Interactive widgets receive focus indices in declaration order. Labels and
hint footers are not focusable. The input of one frame is polled once and
claimed by the focused widget only:

	D-pad up / down     Move focus to the previous / next widget
	D-pad left / right  Change a Number, Select or Grid value
	A                   Accept (click, toggle, confirm)
	B                   Cancel, reported by Frame.Cancelled

Bindings are configurable through Controls. A focus move made during a frame
is visible from the next frame on, so exactly one widget is highlighted per
frame.

# Coordinates

The origin is the top-left corner of the screen and y grows downward, for
the layout cursor, text lines and the projection alike. Primitive drawing
takes Length values: Px is an absolute pixel count and Frac a fraction of
the screen dimension (or of the atlas cell size for text scales).

# Custom widgets

Any type with a Draw(*Frame) R method is a Widget[R] and can be drawn with
Add:

	type Meter struct{ Value float32 }

	func (m Meter) Draw(f *padgui.Frame) struct{} {
	    pos := f.Cursor()
	    f.Rect(padgui.Px(pos.X), padgui.Px(pos.Y), padgui.Px(200*m.Value), padgui.Px(20), padgui.ColorGreen)
	    f.EndWidget(20, false)
	    return struct{}{}
	}

# Configuration

Layout, colors and controls can be loaded from TOML with LoadConfig:

	[layout]
	origin = [100, 100]
	gap = [10, 10]
	text_scale = 32

	[pallet]
	background = "#101010"
	widget = "#303030"
	highlight = "#e53935"

	[controls]
	accept = "a"
	cancel = "b"

	[font]
	path = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	charset = "äöüß"

# Errors

Construction errors are fatal: New fails when the font cannot be loaded or
rasterized or the atlas cannot be uploaded. At runtime only buffer growth can
fail; the frame is then aborted, Build returns an error wrapping
ErrFrameAborted and nothing is rendered for that frame.
*/
package padgui
