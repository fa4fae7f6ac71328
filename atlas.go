package padgui

import (
	"errors"
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// Atlas geometry. Every glyph gets one fixed cell; rows are AtlasPitch bytes
// wide.
const (
	CellSize     = 64
	AtlasPitch   = 1024
	AtlasColumns = AtlasPitch / CellSize
)

// TexRect is a normalized texture rectangle. Top is the smaller v.
type TexRect struct {
	Left, Right, Top, Bottom float32
}

// Empty reports whether the rectangle has no area.
func (t TexRect) Empty() bool {
	return t.Right <= t.Left || t.Bottom <= t.Top
}

// Glyph is one packed character.
type Glyph struct {
	Char    rune
	Tex     TexRect
	Metrics GlyphMetrics
}

// Atlas holds every glyph of a charset rasterized into one 8-bit texture so
// a frame's text draws without texture switches. It is immutable after
// BuildAtlas.
type Atlas struct {
	image    *image.Alpha
	glyphs   map[rune]Glyph
	chars    []rune
	fallback Glyph
	line     LineMetrics
}

// BuildAtlas rasterizes DefaultCharset plus extra at CellSize pixels.
// Duplicates are dropped. Characters the font has no glyph for are left out
// and resolve to FallbackChar.
func BuildAtlas(r Rasterizer, extra ...rune) (*Atlas, error) {
	if r == nil {
		return nil, &RasterizerError{Err: errors.New("nil rasterizer")}
	}

	line, err := r.LineMetrics(CellSize)
	if err != nil {
		return nil, fmt.Errorf("line metrics: %w", err)
	}

	charset := dedupe(append(DefaultCharset(), extra...))
	bitmaps := make([]GlyphBitmap, 0, len(charset))
	chars := make([]rune, 0, len(charset))
	for _, c := range charset {
		bm, err := r.Rasterize(c, CellSize)
		if err != nil {
			return nil, fmt.Errorf("rasterize %q: %w", c, err)
		}
		if bm.Missing && c != FallbackChar {
			logger.Debug("glyph missing from font", "char", fmt.Sprintf("%U", c))
			continue
		}
		bitmaps = append(bitmaps, bm)
		chars = append(chars, c)
	}

	rows := (len(chars) + AtlasColumns - 1) / AtlasColumns
	width, height := AtlasColumns*CellSize, rows*CellSize

	a := &Atlas{
		image:  image.NewAlpha(image.Rect(0, 0, width, height)),
		glyphs: make(map[rune]Glyph, len(chars)),
		chars:  chars,
		line:   line,
	}

	for i, c := range chars {
		x0 := (i % AtlasColumns) * CellSize
		y0 := (i / AtlasColumns) * CellSize
		a.glyphs[c] = a.place(c, bitmaps[i], x0, y0)
	}
	a.fallback = a.glyphs[FallbackChar]

	logger.Debug("atlas built", "glyphs", len(chars), "width", width, "height", height)
	return a, nil
}

// place copies a bitmap into the cell at x0, y0, clipping it to the cell.
func (a *Atlas) place(c rune, bm GlyphBitmap, x0, y0 int) Glyph {
	m := bm.GlyphMetrics
	m.Width = min(max(m.Width, 0), CellSize)
	m.Height = min(max(m.Height, 0), CellSize)

	if len(bm.Pix) < bm.Width*bm.Height {
		m.Width, m.Height = 0, 0
	}
	for y := 0; y < m.Height; y++ {
		src := bm.Pix[y*bm.Width : y*bm.Width+m.Width]
		copy(a.image.Pix[(y0+y)*a.image.Stride+x0:], src)
	}

	// Zero-sized glyphs (spaces) still get a one texel rectangle.
	w, h := max(m.Width, 1), max(m.Height, 1)
	size := a.image.Bounds().Size()
	return Glyph{
		Char: c,
		Tex: TexRect{
			Left:   float32(x0) / float32(size.X),
			Right:  float32(x0+w) / float32(size.X),
			Top:    float32(y0) / float32(size.Y),
			Bottom: float32(y0+h) / float32(size.Y),
		},
		Metrics: m,
	}
}

// Get returns the glyph for c, or the fallback glyph when c is not in the
// atlas.
func (a *Atlas) Get(c rune) Glyph {
	if g, ok := a.glyphs[c]; ok {
		return g
	}
	return a.fallback
}

// Contains reports whether c has its own glyph.
func (a *Atlas) Contains(c rune) bool {
	_, ok := a.glyphs[c]
	return ok
}

// Len returns the number of glyphs.
func (a *Atlas) Len() int { return len(a.chars) }

// Chars returns the packed characters in cell order.
func (a *Atlas) Chars() []rune { return a.chars }

// Image returns the coverage texture.
func (a *Atlas) Image() *image.Alpha { return a.image }

// Ascent returns the baseline offset from the top of a line at CellSize.
func (a *Atlas) Ascent() int { return a.line.Ascent }

// Measure returns the pixel size of s drawn at scale pixels per line.
// Lines are separated by '\n'; the width is that of the longest line.
func (a *Atlas) Measure(s string, scale float32) Vec2 {
	k := scale / CellSize
	var width, lineWidth float32
	lines := 1
	for _, c := range s {
		if c == '\n' {
			width = math32.Max(width, lineWidth)
			lineWidth = 0
			lines++
			continue
		}
		lineWidth += float32(a.Get(c).Metrics.Advance) * k
	}
	return Vec2{X: math32.Max(width, lineWidth), Y: float32(lines) * scale}
}

func dedupe(chars []rune) []rune {
	seen := make(map[rune]struct{}, len(chars))
	out := chars[:0]
	for _, c := range chars {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
