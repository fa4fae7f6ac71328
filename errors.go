package padgui

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrBufferAllocation = errors.New("buffer allocation failed")
	ErrRasterizer       = errors.New("glyph rasterization failed")
	ErrFontLoad         = errors.New("font load failed")
	ErrFrameAborted     = errors.New("frame aborted")
)

// BufferError reports a failed buffer growth. The buffer keeps its previous
// capacity and contents.
type BufferError struct {
	Buffer    string
	Capacity  int
	Requested int
	Err       error
}

func (e *BufferError) Error() string {
	msg := fmt.Sprintf("%s buffer: grow %d -> %d", e.Buffer, e.Capacity, e.Requested)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg + ": " + ErrBufferAllocation.Error()
}

func (e *BufferError) Unwrap() error { return e.Err }

func (e *BufferError) Is(target error) bool { return target == ErrBufferAllocation }

// RasterizerError reports a font that could not be decoded or a glyph that
// could not be rasterized.
type RasterizerError struct {
	Char rune // zero when the font itself failed to decode
	Err  error
}

func (e *RasterizerError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("%v: %v", ErrRasterizer, e.Err)
	}
	return fmt.Sprintf("%v: %q: %v", ErrRasterizer, e.Char, e.Err)
}

func (e *RasterizerError) Unwrap() error { return e.Err }

func (e *RasterizerError) Is(target error) bool { return target == ErrRasterizer }

// FontLoadError reports that the font file could not be read.
type FontLoadError struct {
	Path string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrFontLoad, e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

func (e *FontLoadError) Is(target error) bool { return target == ErrFontLoad }
