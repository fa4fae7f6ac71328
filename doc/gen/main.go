// Command gen renders every widget with sample data, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/padgui"
	"github.com/go-theft-auto/padgui/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string              // filename without extension
	width  int                 // viewport width
	height int                 // viewport height
	focus  int                 // focused widget index
	draw   func(*padgui.Frame) // widget drawing function
}

// screenshotConfig places widgets near the top-left corner of small
// screenshots.
func screenshotConfig() padgui.Config {
	cfg := padgui.DefaultConfig()
	cfg.Layout.Origin = padgui.Vec2{X: 12, Y: 12}
	cfg.Pallet = padgui.AutoPallet(padgui.RGBA(30, 30, 36, 255), padgui.RGBA(60, 60, 70, 255), padgui.RGBA(229, 57, 53, 255))
	return cfg
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600, opengl.WithClear(true))
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	// One GUI for all captures; the atlas is built once.
	ui, err := padgui.New(renderer, padgui.WithConfig(screenshotConfig()))
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, ui, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, ui *padgui.GUI, s screenshot, outDir string) error {
	// Only update the renderer projection; the hidden window stays at
	// 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)
	ui.Focus().Set(s.focus)

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	if err := ui.Draw(s.draw); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	// Shared state for widgets that need pointers.
	var (
		checked   = true
		unchecked = false
		count     = 42
		gamma     = float32(1.25)
		quality   = 1
		cell      = 4
	)

	return []screenshot{
		{
			name: "label", width: 400, height: 120,
			draw: func(f *padgui.Frame) {
				f.Label("Plain label")
				f.Label("Two lines\nof text")
			},
		},
		{
			name: "button", width: 400, height: 150,
			draw: func(f *padgui.Frame) {
				f.Button("Focused button")
				f.Button("Other button")
			},
		},
		{
			name: "checkbox", width: 400, height: 150,
			draw: func(f *padgui.Frame) {
				f.Checkbox("Enabled feature", &checked)
				f.Checkbox("Disabled feature", &unchecked)
			},
		},
		{
			name: "number", width: 500, height: 150,
			draw: func(f *padgui.Frame) {
				f.Int("Count", &count, 0, 100, 1)
				f.Float("Gamma", &gamma, 0.5, 2.5, 0.05)
			},
		},
		{
			name: "select", width: 500, height: 90,
			draw: func(f *padgui.Frame) {
				f.Select("Quality", &quality, []string{"Low", "Medium", "High"})
			},
		},
		{
			name: "grid", width: 500, height: 260,
			draw: func(f *padgui.Frame) {
				f.Grid("Slots", 3, &cell, []string{"1", "2", "3", "4", "5", "6", "7"})
			},
		},
		{
			name: "hints", width: 500, height: 60,
			draw: func(f *padgui.Frame) {
				f.HintFooterNav()
			},
		},
		{
			name: "primitives", width: 400, height: 200,
			draw: func(f *padgui.Frame) {
				f.Rect(padgui.Px(12), padgui.Px(12), padgui.Frac(0.4), padgui.Px(60), padgui.ColorBlue)
				f.Border(padgui.Px(12), padgui.Px(90), padgui.Frac(0.4), padgui.Px(60), padgui.Px(4), padgui.ColorGreen)
				f.Text("Text", padgui.Frac(0.55), padgui.Px(12), padgui.Px(48), padgui.ColorWhite)
			},
		},
	}
}
