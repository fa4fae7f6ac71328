// Package opengl provides an OpenGL 4.1 backend for the padgui package.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/padgui"
)

// Renderer draws padgui frames with OpenGL. It needs a current GL 4.1 core
// context on the calling thread.
type Renderer struct {
	shader     uint32
	vao        uint32
	posVBO     uint32
	uvVBO      uint32
	colorVBO   uint32
	atlasTex   uint32
	projLoc    int32
	texLoc     int32
	width      int
	height     int
	clearFrame bool
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source
// Texture coordinates below zero mark untextured geometry; everything else
// samples the R8 atlas as coverage.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D atlas;

void main() {
    if (TexCoord.x < 0.0) {
        FragColor = Color;
    } else {
        FragColor = vec4(Color.rgb, Color.a * texture(atlas, TexCoord).r);
    }
}
` + "\x00"

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithClear makes Render clear color and depth to the frame's background
// before drawing. Off by default, so the GUI can overlay a scene.
func WithClear(clear bool) RendererOption {
	return func(r *Renderer) { r.clearFrame = clear }
}

// NewRenderer creates the shader, vertex arrays and buffers.
func NewRenderer(width, height int, opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("atlas\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// One buffer per attribute, matching padgui's three vertex buffers.
	r.posVBO = attribBuffer(0, 3, int32(unsafe.Sizeof(padgui.Vec3{})))
	r.uvVBO = attribBuffer(1, 2, int32(unsafe.Sizeof(padgui.Vec2{})))
	r.colorVBO = attribBuffer(2, 4, int32(unsafe.Sizeof(padgui.Color{})))

	gl.BindVertexArray(0)

	return r, nil
}

func attribBuffer(location uint32, size, stride int32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(location)
	return vbo
}

// Size implements padgui.Renderer.
func (r *Renderer) Size() (int, int) { return r.width, r.height }

// Projection implements padgui.Renderer.
func (r *Renderer) Projection() padgui.Mat4 {
	return padgui.ScreenOrtho(r.width, r.height)
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// AtlasTextureID returns the OpenGL texture holding the font atlas.
func (r *Renderer) AtlasTextureID() uint32 { return r.atlasTex }

// UploadAtlas implements padgui.Renderer. The atlas is stored as a single
// red channel with clamped, linearly filtered sampling.
func (r *Renderer) UploadAtlas(img *image.Alpha) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("empty atlas image")
	}
	if r.atlasTex == 0 {
		gl.GenTextures(1, &r.atlasTex)
	}
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("atlas upload: gl error 0x%x: %w", code, padgui.ErrBufferAllocation)
	}
	return nil
}

// Render implements padgui.Renderer with a single draw call.
func (r *Renderer) Render(dd *padgui.DrawData) error {
	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var lastDepthFunc int32
	var lastDepthMask bool
	var blendEnabled, depthEnabled, cullEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.DEPTH_FUNC, &lastDepthFunc)
	gl.GetBooleanv(gl.DEPTH_WRITEMASK, &lastDepthMask)
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)

	if r.clearFrame {
		c := dd.Clear
		gl.ClearColor(c.R, c.G, c.B, c.A)
		gl.ClearDepth(1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	}

	n := dd.VertexCount()
	if n == 0 {
		return nil
	}

	// Setup render state
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(true)

	gl.UseProgram(r.shader)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &dd.Projection[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlasTex)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, n*int(unsafe.Sizeof(padgui.Vec3{})), gl.Ptr(dd.Positions), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.uvVBO)
	gl.BufferData(gl.ARRAY_BUFFER, n*int(unsafe.Sizeof(padgui.Vec2{})), gl.Ptr(dd.TexCoords), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, n*int(unsafe.Sizeof(padgui.Color{})), gl.Ptr(dd.Colors), gl.STREAM_DRAW)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(n))

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	gl.DepthFunc(uint32(lastDepthFunc))
	gl.DepthMask(lastDepthMask)

	if blendEnabled {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if cullEnabled {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	gl.BindVertexArray(0)

	if code := gl.GetError(); code == gl.OUT_OF_MEMORY {
		return fmt.Errorf("vertex upload: %w", padgui.ErrBufferAllocation)
	}
	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.atlasTex != 0 {
		gl.DeleteTextures(1, &r.atlasTex)
	}
	for _, vbo := range []*uint32{&r.posVBO, &r.uvVBO, &r.colorVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	// Link program
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Cleanup shaders (they're linked into the program now)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}
