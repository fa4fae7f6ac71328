package padgui

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Config bundles layout, colors, control bindings and font selection.
type Config struct {
	Layout   Layout
	Pallet   Pallet
	Controls Controls
	Font     FontConfig
}

// FontConfig selects the font baked into the atlas.
type FontConfig struct {
	// Path of a TTF/OTF file. Empty uses the embedded Go Regular font.
	Path string
	// Charset is added to the default atlas characters.
	Charset []rune
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Layout:   DefaultLayout(),
		Pallet:   DefaultPallet(),
		Controls: DefaultControls(),
	}
}

// fileConfig is the TOML form of Config. Keys missing from a file keep the
// values fileConfig was seeded with.
type fileConfig struct {
	Layout struct {
		Origin    [2]float32 `toml:"origin"`
		Gap       [2]float32 `toml:"gap"`
		Padding   float32    `toml:"padding"`
		TextScale float32    `toml:"text_scale"`
	} `toml:"layout"`
	Pallet struct {
		Background string `toml:"background"`
		Widget     string `toml:"widget"`
		Highlight  string `toml:"highlight"`
	} `toml:"pallet"`
	Controls struct {
		Up     string `toml:"up"`
		Down   string `toml:"down"`
		Left   string `toml:"left"`
		Right  string `toml:"right"`
		Accept string `toml:"accept"`
		Cancel string `toml:"cancel"`
	} `toml:"controls"`
	Font struct {
		Path    string `toml:"path"`
		Charset string `toml:"charset"`
	} `toml:"font"`
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML configuration on top of DefaultConfig.
//
//	[layout]
//	origin = [100, 100]
//	gap = [10, 10]
//
//	[pallet]
//	highlight = "#1e88e5"
//
//	[controls]
//	accept = "a"
//	cancel = "b"
func ParseConfig(data []byte) (Config, error) {
	def := DefaultConfig()
	fc := toFile(def)
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := def
	cfg.Layout = Layout{
		Origin:    Vec2{X: fc.Layout.Origin[0], Y: fc.Layout.Origin[1]},
		Gap:       Vec2{X: fc.Layout.Gap[0], Y: fc.Layout.Gap[1]},
		Padding:   fc.Layout.Padding,
		TextScale: fc.Layout.TextScale,
	}
	if cfg.Layout.TextScale <= 0 {
		return Config{}, fmt.Errorf("layout.text_scale must be positive, got %v", cfg.Layout.TextScale)
	}

	bg, err := parseColor("pallet.background", fc.Pallet.Background)
	if err != nil {
		return Config{}, err
	}
	widget, err := parseColor("pallet.widget", fc.Pallet.Widget)
	if err != nil {
		return Config{}, err
	}
	highlight, err := parseColor("pallet.highlight", fc.Pallet.Highlight)
	if err != nil {
		return Config{}, err
	}
	cfg.Pallet = AutoPallet(bg, widget, highlight)

	bindings := []struct {
		key string
		src string
		dst *Buttons
	}{
		{"controls.up", fc.Controls.Up, &cfg.Controls.Up},
		{"controls.down", fc.Controls.Down, &cfg.Controls.Down},
		{"controls.left", fc.Controls.Left, &cfg.Controls.Left},
		{"controls.right", fc.Controls.Right, &cfg.Controls.Right},
		{"controls.accept", fc.Controls.Accept, &cfg.Controls.Accept},
		{"controls.cancel", fc.Controls.Cancel, &cfg.Controls.Cancel},
	}
	for _, b := range bindings {
		buttons, err := ParseButtons(b.src)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = buttons
	}

	cfg.Font = FontConfig{Path: fc.Font.Path}
	if fc.Font.Charset != "" {
		cfg.Font.Charset = []rune(fc.Font.Charset)
	}
	return cfg, nil
}

func toFile(c Config) fileConfig {
	var fc fileConfig
	fc.Layout.Origin = [2]float32{c.Layout.Origin.X, c.Layout.Origin.Y}
	fc.Layout.Gap = [2]float32{c.Layout.Gap.X, c.Layout.Gap.Y}
	fc.Layout.Padding = c.Layout.Padding
	fc.Layout.TextScale = c.Layout.TextScale
	fc.Pallet.Background = hexColor(c.Pallet.Background.Base)
	fc.Pallet.Widget = hexColor(c.Pallet.Widget.Base)
	fc.Pallet.Highlight = hexColor(c.Pallet.Highlight.Base)
	fc.Controls.Up = c.Controls.Up.String()
	fc.Controls.Down = c.Controls.Down.String()
	fc.Controls.Left = c.Controls.Left.String()
	fc.Controls.Right = c.Controls.Right.String()
	fc.Controls.Accept = c.Controls.Accept.String()
	fc.Controls.Cancel = c.Controls.Cancel.String()
	fc.Font.Path = c.Font.Path
	fc.Font.Charset = string(c.Font.Charset)
	return fc
}

// MarshalConfig encodes c as TOML in the format ParseConfig reads.
func MarshalConfig(c Config) ([]byte, error) {
	return toml.Marshal(toFile(c))
}

func parseColor(key, s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%s: %w", key, err)
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}, nil
}

func hexColor(c Color) string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}
