package padgui

import (
	"errors"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphMetrics are the layout metrics of one rasterized glyph in pixels.
type GlyphMetrics struct {
	Width, Height int
	// BearingX is the offset from the pen to the left edge of the bitmap.
	BearingX int
	// BearingY is the distance from the baseline up to the top of the bitmap.
	BearingY int
	Advance  int
}

// GlyphBitmap is an 8-bit coverage bitmap with its metrics.
// Pix holds Height rows of Width bytes.
type GlyphBitmap struct {
	GlyphMetrics
	Pix []byte
	// Missing is set when the font has no glyph for the character and the
	// bitmap is the font's placeholder.
	Missing bool
}

// LineMetrics describe a font at one pixel size.
type LineMetrics struct {
	Ascent     int
	LineHeight int
}

// Rasterizer turns characters into coverage bitmaps.
type Rasterizer interface {
	Rasterize(r rune, pixelSize int) (GlyphBitmap, error)
	LineMetrics(pixelSize int) (LineMetrics, error)
}

// FontRasterizer rasterizes glyphs from an OpenType/TrueType font. Faces are
// cached per pixel size. It is not safe for concurrent use.
type FontRasterizer struct {
	font  *opentype.Font
	faces map[int]font.Face
}

// NewFontRasterizer decodes font data. Decoding failures are returned as
// *RasterizerError.
func NewFontRasterizer(data []byte) (*FontRasterizer, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &RasterizerError{Err: err}
	}
	return &FontRasterizer{font: f, faces: make(map[int]font.Face)}, nil
}

// LoadSystemFont returns the font bytes at path, or the embedded Go Regular
// font when path is empty.
func LoadSystemFont(path string) ([]byte, error) {
	if path == "" {
		return goregular.TTF, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontLoadError{Path: path, Err: err}
	}
	return data, nil
}

func (fr *FontRasterizer) face(pixelSize int) (font.Face, error) {
	if f, ok := fr.faces[pixelSize]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fr.font, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &RasterizerError{Err: err}
	}
	fr.faces[pixelSize] = f
	return f, nil
}

// LineMetrics implements Rasterizer.
func (fr *FontRasterizer) LineMetrics(pixelSize int) (LineMetrics, error) {
	face, err := fr.face(pixelSize)
	if err != nil {
		return LineMetrics{}, err
	}
	m := face.Metrics()
	return LineMetrics{Ascent: m.Ascent.Round(), LineHeight: m.Height.Round()}, nil
}

// Rasterize implements Rasterizer.
func (fr *FontRasterizer) Rasterize(r rune, pixelSize int) (GlyphBitmap, error) {
	face, err := fr.face(pixelSize)
	if err != nil {
		return GlyphBitmap{}, err
	}

	dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
	if mask == nil && !dr.Empty() {
		return GlyphBitmap{}, &RasterizerError{Char: r, Err: errors.New("no coverage mask")}
	}

	bm := GlyphBitmap{
		GlyphMetrics: GlyphMetrics{
			Width:    dr.Dx(),
			Height:   dr.Dy(),
			BearingX: dr.Min.X,
			BearingY: -dr.Min.Y,
			Advance:  advance.Round(),
		},
		Missing: !ok,
	}
	if dr.Empty() || mask == nil {
		return bm, nil
	}

	dst := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(dst, dst.Bounds(), mask, maskp, draw.Src)
	bm.Pix = dst.Pix
	return bm, nil
}
