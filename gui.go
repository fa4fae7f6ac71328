package padgui

import (
	"fmt"
	"image"
)

// Renderer submits a frame's geometry to the display backend.
type Renderer interface {
	// Size returns the screen size in pixels.
	Size() (width, height int)
	// Projection maps screen pixels to clip space.
	Projection() Mat4
	// UploadAtlas stores the font atlas texture. Called once by New.
	UploadAtlas(img *image.Alpha) error
	// Render draws the batch with the atlas bound.
	Render(dd *DrawData) error
}

// DrawData is one frame's batch: three parallel per-vertex arrays.
// The slices are only valid until the next frame is built.
type DrawData struct {
	Positions  []Vec3
	TexCoords  []Vec2
	Colors     []Color
	Projection Mat4
	Clear      Color
}

// VertexCount returns the number of vertices in the batch.
func (dd DrawData) VertexCount() int { return len(dd.Positions) }

// Stats describe the last built frame.
type Stats struct {
	Vertices  int
	Triangles int
	Widgets   int
	Capacity  int
	Aborted   bool
}

// GUI owns the atlas, the vertex buffers and the focus cursor.
type GUI struct {
	renderer    Renderer
	input       InputSource
	rasterizer  Rasterizer
	config      Config
	charset     []rune
	bufferLimit int

	atlas     *Atlas
	focus     Focus
	positions *Buffer[Vec3]
	texcoords *Buffer[Vec2]
	colors    *Buffer[Color]

	frame Frame
	stats Stats
	built bool
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) GUIOption {
	return func(g *GUI) { g.config = cfg }
}

// WithCharset adds characters to the atlas.
func WithCharset(chars ...rune) GUIOption {
	return func(g *GUI) { g.charset = append(g.charset, chars...) }
}

// WithRasterizer replaces the font rasterizer.
func WithRasterizer(r Rasterizer) GUIOption {
	return func(g *GUI) { g.rasterizer = r }
}

// WithInputSource sets the controller polled at the start of every frame.
func WithInputSource(src InputSource) GUIOption {
	return func(g *GUI) { g.input = src }
}

// WithBufferLimit caps each vertex buffer at n elements. Frames that need
// more are aborted.
func WithBufferLimit(n int) GUIOption {
	return func(g *GUI) { g.bufferLimit = n }
}

// New builds the font atlas, uploads it to the renderer and allocates the
// vertex buffers. Any failure is fatal to the GUI.
func New(renderer Renderer, opts ...GUIOption) (*GUI, error) {
	g := &GUI{
		renderer: renderer,
		config:   DefaultConfig(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rasterizer == nil {
		data, err := LoadSystemFont(g.config.Font.Path)
		if err != nil {
			return nil, err
		}
		if g.rasterizer, err = NewFontRasterizer(data); err != nil {
			return nil, err
		}
	}

	charset := append(append([]rune(nil), g.config.Font.Charset...), g.charset...)
	atlas, err := BuildAtlas(g.rasterizer, charset...)
	if err != nil {
		return nil, fmt.Errorf("build atlas: %w", err)
	}
	g.atlas = atlas

	if renderer != nil {
		if err := renderer.UploadAtlas(atlas.Image()); err != nil {
			return nil, fmt.Errorf("upload atlas: %w", err)
		}
	}

	if g.positions, err = NewBuffer("position", HeapAllocator[Vec3](g.bufferLimit)); err != nil {
		return nil, err
	}
	if g.texcoords, err = NewBuffer("texcoord", HeapAllocator[Vec2](g.bufferLimit)); err != nil {
		return nil, err
	}
	if g.colors, err = NewBuffer("color", HeapAllocator[Color](g.bufferLimit)); err != nil {
		return nil, err
	}

	return g, nil
}

// Build runs fn to declare one frame's widgets. The buffers are cleared
// first and the input source is polled once. A frame that ran out of buffer
// space returns an error wrapping ErrFrameAborted and is not rendered.
func (g *GUI) Build(fn func(f *Frame)) error {
	g.positions.Clear()
	g.texcoords.Clear()
	g.colors.Clear()

	var token InputToken
	if g.input != nil {
		state, err := g.input.Poll()
		if err != nil {
			logger.Warn("input poll failed", "err", err)
		} else {
			token = NewInputToken(state)
		}
	}

	f := &g.frame
	f.reset(g, token)
	fn(f)

	g.assertLockstep()

	if f.index > 0 {
		g.focus.Clamp(0, f.index-1)
	} else {
		g.focus.Set(0)
	}

	g.built = true
	g.stats = Stats{
		Vertices:  g.positions.Len(),
		Triangles: g.positions.Len() / 3,
		Widgets:   f.widgets,
		Capacity:  g.positions.Cap(),
		Aborted:   f.err != nil,
	}

	if f.err != nil {
		logger.Warn("frame aborted", "err", f.err)
		return fmt.Errorf("%w: %w", ErrFrameAborted, f.err)
	}

	if verbose() {
		logger.Debug("frame built", "vertices", g.stats.Vertices, "widgets", g.stats.Widgets, "focus", g.focus.Index())
	}
	return nil
}

// Render submits the last built frame. Aborted frames are skipped.
func (g *GUI) Render() error {
	if g.renderer == nil || !g.built || g.stats.Aborted {
		return nil
	}
	dd := g.DrawData()
	return g.renderer.Render(&dd)
}

// Draw builds and renders one frame.
func (g *GUI) Draw(fn func(f *Frame)) error {
	if err := g.Build(fn); err != nil {
		return err
	}
	return g.Render()
}

// DrawData returns the last built frame's batch.
func (g *GUI) DrawData() DrawData {
	dd := DrawData{
		Positions: g.positions.Slice(),
		TexCoords: g.texcoords.Slice(),
		Colors:    g.colors.Slice(),
		Clear:     g.config.Pallet.Background.Base,
	}
	if g.renderer != nil {
		dd.Projection = g.renderer.Projection()
	}
	return dd
}

func (g *GUI) assertLockstep() {
	p, t, c := g.positions.Len(), g.texcoords.Len(), g.colors.Len()
	if p != t || p != c {
		panic(fmt.Sprintf("padgui: vertex buffers out of step: %d positions, %d texcoords, %d colors", p, t, c))
	}
}

// Stats returns statistics for the last built frame.
func (g *GUI) Stats() Stats { return g.stats }

// Atlas returns the font atlas.
func (g *GUI) Atlas() *Atlas { return g.atlas }

// Focus returns the focus cursor.
func (g *GUI) Focus() *Focus { return &g.focus }

// Config returns the active configuration.
func (g *GUI) Config() Config { return g.config }

// SetConfig replaces layout, colors and controls. Font settings only take
// effect in New.
func (g *GUI) SetConfig(cfg Config) { g.config = cfg }
