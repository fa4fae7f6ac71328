// Example demonstrates a controller-driven settings menu with every widget.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config menu.toml -v
//
// Navigate with the D-pad of the first gamepad or the arrow keys; Enter
// accepts and Escape cancels.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/padgui"
	"github.com/go-theft-auto/padgui/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "padgui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	padgui.SetVerbose(*verbose)

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// settings is the application state bound to the widgets.
type settings struct {
	fullscreen bool
	vsync      bool
	volume     int
	gamma      float32
	quality    int
	character  int
	presses    int
}

var (
	qualities  = []string{"Low", "Medium", "High", "Ultra"}
	characters = []string{"CJ", "Sweet", "Ryder", "Big Smoke", "Cesar", "Kendl", "Catalina"}
)

func run(configPath string) error {
	cfg := padgui.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = padgui.LoadConfig(configPath); err != nil {
			return err
		}
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight, opengl.WithClear(true))
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window, glfw.Joystick1)

	ui, err := padgui.New(renderer, padgui.WithConfig(cfg), padgui.WithInputSource(input))
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}

	s := settings{vsync: true, volume: 7, gamma: 1, quality: 2}

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		renderer.Resize(w, h)

		err := ui.Draw(func(f *padgui.Frame) {
			menu(f, &s)
			if f.Cancelled() {
				window.SetShouldClose(true)
			}
		})
		if err != nil {
			slog.Warn("frame dropped", "err", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func menu(f *padgui.Frame, s *settings) {
	f.Label("Settings")

	if f.Button(fmt.Sprintf("Press me (%d)", s.presses)).Clicked {
		s.presses++
	}
	if f.Checkbox("Fullscreen", &s.fullscreen).Changed {
		slog.Info("fullscreen toggled", "on", s.fullscreen)
	}
	f.Checkbox("VSync", &s.vsync)
	f.Int("Volume", &s.volume, 0, 10, 1)
	f.Float("Gamma", &s.gamma, 0.5, 2.5, 0.1)
	f.Select("Quality", &s.quality, qualities)

	resp := padgui.Add(f, padgui.Grid[string]{
		Text:    "Character",
		Columns: 3,
		Index:   &s.character,
		Items:   characters,
		Policy:  padgui.GridWrap,
	})
	if resp.Clicked {
		slog.Info("character picked", "name", characters[s.character])
	}

	f.HintFooterNav()
}
