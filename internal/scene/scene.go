package scene

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-theft-auto/glcache"
)

// MaxCubes is the length of the offsets array in the vertex shader.
const MaxCubes = 4

const vertexShader = `
in vec3 position;
in vec2 uv;

uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;
uniform vec3 offsets[4];
uniform int cube;

out vec2 vUV;

void main() {
    vUV = uv;
    vec4 world = model * vec4(position, 1.0) + vec4(offsets[cube], 0.0);
    gl_Position = projection * view * world;
}
`

const fragmentShader = `
in vec2 vUV;

uniform sampler2D diffuse;
uniform vec4 tint;

out vec4 fragColor;

void main() {
    fragColor = texture(diffuse, vUV) * tint;
}
`

// Scene is a row of textured, spinning cubes.
type Scene struct {
	ctx *glcache.Context
	cfg SceneConfig

	program  *glcache.Program
	vao      *glcache.VertexArray
	vertices *glcache.Buffer
	indices  *glcache.Buffer
	texture  *glcache.Texture
}

// New creates the GPU resources of the scene.
func New(ctx *glcache.Context, cfg SceneConfig) (*Scene, error) {
	s := &Scene{ctx: ctx, cfg: cfg}

	s.program = ctx.NewProgram()
	version := ctx.Capabilities().GLSLDirective() + "\n"
	if err := s.program.SetMultiple([]string{version, vertexShader}, []string{version, fragmentShader}); err != nil {
		return nil, fmt.Errorf("scene program: %w", err)
	}

	s.vao = ctx.NewVertexArray()
	ctx.SetVertexArray(s.vao, false)

	s.vertices = ctx.NewBuffer()
	glcache.SetBufferData(s.vertices, glcache.ArrayBuffer, cubeVertices[:], vertexStride, glcache.StaticDraw)
	s.indices = ctx.NewBuffer()
	glcache.SetBufferData(s.indices, glcache.ElementArrayBuffer, cubeIndices[:], 0, glcache.StaticDraw)

	s.texture = ctx.NewTexture()
	s.texture.SetWrap(cfg.Wrap)
	s.texture.SetFilter(cfg.Filter)
	s.texture.SetMipmaps(true)
	s.texture.SetAnisotropy(4)
	s.texture.SetImage(Checker(256, 8))

	return s, nil
}

// Configure replaces the render state and animation settings. Wrap and
// filter changes are applied to the texture.
func (s *Scene) Configure(cfg SceneConfig) {
	s.cfg = cfg
	s.texture.SetWrap(cfg.Wrap)
	s.texture.SetFilter(cfg.Filter)
}

// Draw renders the scene at time t seconds into the current target.
func (s *Scene) Draw(t, aspect float32) {
	ctx, cfg, p := s.ctx, s.cfg, s.program

	ctx.SetBlendMode(cfg.Blend, false)
	ctx.SetCullFace(cfg.Cull, false)
	ctx.SetDepthFunc(cfg.Depth, false)
	c := cfg.ClearColor
	ctx.SetClearColor(c[0], c[1], c[2], c[3], false)
	ctx.Clear(true, true, false)

	ctx.SetProgram(p, false)
	ctx.SetVertexArray(s.vao, false)
	p.SetAttribute("position", s.vertices, 0, false)
	p.SetAttribute("uv", s.vertices, 3, false)
	ctx.SetBuffer(s.indices, false)

	p.SetUniform("projection", glcache.Mat4(Perspective(Radians(cfg.FOV), aspect, 0.1, 100)), false)
	p.SetUniform("view", glcache.Mat4(Translate(0, 0, -float32(cfg.Cubes)-2)), false)
	p.SetUniformUnchecked("model", glcache.Mat4(RotateY(t*cfg.Spin).Mul(RotateX(t*cfg.Spin/2))))
	p.SetUniform("offsets", glcache.Vec3Array(Offsets(cfg.Cubes)), false)
	p.SetUniform("tint", glcache.Vec4(cfg.Tint[0], cfg.Tint[1], cfg.Tint[2], cfg.Tint[3]), false)

	for i := 0; i < cfg.Cubes; i++ {
		p.SetUniform("cube", glcache.Int(int32(i)), false)
		p.SetUniform("diffuse", glcache.Sampler(s.texture), false)
		ctx.DrawElements(glcache.DrawTriangles, s.indices.Len(), s.indices.IndexKind(), 0)
	}
}

// Delete releases the GPU resources.
func (s *Scene) Delete() {
	s.texture.Delete()
	s.indices.Delete()
	s.vertices.Delete()
	s.vao.Delete()
	s.program.Delete()
}

// Offsets spaces n cubes evenly along X, centered on the origin, padded to
// MaxCubes entries.
func Offsets(n int) [][3]float32 {
	out := make([][3]float32, MaxCubes)
	for i := 0; i < n && i < MaxCubes; i++ {
		out[i] = [3]float32{(float32(i) - float32(n-1)/2) * 1.6, 0, 0}
	}
	return out
}

// Checker returns a size×size checkerboard with cells squares per side.
func Checker(size, cells int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := color.NRGBA{R: 0xE8, G: 0xC5, B: 0x47, A: 0xFF}
	dark := color.NRGBA{R: 0x2B, G: 0x2D, B: 0x42, A: 0xFF}
	cell := max(size/cells, 1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}

// vertexStride is the number of floats per vertex: position then uv.
const vertexStride = 5

var cubeVertices = [24 * vertexStride]float32{
	// front
	-0.5, -0.5, 0.5, 0, 0,
	0.5, -0.5, 0.5, 1, 0,
	0.5, 0.5, 0.5, 1, 1,
	-0.5, 0.5, 0.5, 0, 1,
	// back
	0.5, -0.5, -0.5, 0, 0,
	-0.5, -0.5, -0.5, 1, 0,
	-0.5, 0.5, -0.5, 1, 1,
	0.5, 0.5, -0.5, 0, 1,
	// left
	-0.5, -0.5, -0.5, 0, 0,
	-0.5, -0.5, 0.5, 1, 0,
	-0.5, 0.5, 0.5, 1, 1,
	-0.5, 0.5, -0.5, 0, 1,
	// right
	0.5, -0.5, 0.5, 0, 0,
	0.5, -0.5, -0.5, 1, 0,
	0.5, 0.5, -0.5, 1, 1,
	0.5, 0.5, 0.5, 0, 1,
	// top
	-0.5, 0.5, 0.5, 0, 0,
	0.5, 0.5, 0.5, 1, 0,
	0.5, 0.5, -0.5, 1, 1,
	-0.5, 0.5, -0.5, 0, 1,
	// bottom
	-0.5, -0.5, -0.5, 0, 0,
	0.5, -0.5, -0.5, 1, 0,
	0.5, -0.5, 0.5, 1, 1,
	-0.5, -0.5, 0.5, 0, 1,
}

var cubeIndices = func() [36]uint16 {
	var idx [36]uint16
	for face := 0; face < 6; face++ {
		b := uint16(face * 4)
		copy(idx[face*6:], []uint16{b, b + 1, b + 2, b, b + 2, b + 3})
	}
	return idx
}()
