package padgui

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector for positions, sizes and texture coordinates.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Extend lifts the vector into 3D with the given depth.
func (v Vec2) Extend(z float32) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Vec3 is a vertex position: screen x, y plus depth.
type Vec3 struct {
	X, Y, Z float32
}

// Color is a straight-alpha RGBA color with components in 0..1.
// Memory layout matches a vec4 vertex attribute.
type Color struct {
	R, G, B, A float32
}

// Predefined colors.
var (
	ColorBlack       = Color{0, 0, 0, 1}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorGreen       = Color{0, 1, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorGray        = Color{0.5, 0.5, 0.5, 1}
	ColorTransparent = Color{}
)

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = clampf(a, 0, 1)
	return c
}

// Luminance returns the relative luminance 0.299r + 0.587g + 0.114b.
func (c Color) Luminance() float32 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Mat4 is a column-major 4x4 matrix as consumed by OpenGL uniforms.
type Mat4 [16]float32

// Ortho creates an orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

// ScreenOrtho returns the projection for a width x height screen with the
// origin in the top-left corner and +y pointing down. Depth values in
// [0, MaxDepth] stay visible and larger z is closer to the viewer.
func ScreenOrtho(width, height int) Mat4 {
	return Ortho(0, float32(width), float32(height), 0, -MaxDepth, 1)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	return math32.Max(minVal, math32.Min(v, maxVal))
}
