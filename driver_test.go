package glcache

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// mockVar is an active uniform or attribute reported by mockDriver.
type mockVar struct {
	name     string
	size     int32
	typ      Enum
	location int32
}

// mockDriver records every native call as a formatted string and answers
// queries from its fields. It never touches a real GL context.
type mockDriver struct {
	calls []string
	next  uint32

	version    string
	extensions []string
	ints       map[Enum]int32
	anisotropy float32

	compileFails map[Enum]string // shader type to info log
	failing      []uint32
	failingLog   string
	linkLog      string
	uniforms     []mockVar
	attributes   []mockVar
	fbStatus     Enum
	errs         []Enum
	pixel        byte
}

func newMockDriver() *mockDriver {
	return &mockDriver{
		version:    "4.1.0 Mock 1.0",
		extensions: []string{"GL_ARB_texture_filter_anisotropic", "GL_ARB_debug_output"},
		anisotropy: 16,
		ints: map[Enum]int32{
			gl.MAJOR_VERSION:                  4,
			gl.MINOR_VERSION:                  1,
			gl.MAX_TEXTURE_IMAGE_UNITS:        4,
			gl.MAX_VERTEX_TEXTURE_IMAGE_UNITS: 4,
			gl.MAX_TEXTURE_SIZE:               64,
			gl.MAX_CUBE_MAP_TEXTURE_SIZE:      64,
			gl.MAX_RENDERBUFFER_SIZE:          64,
			gl.MAX_VERTEX_UNIFORM_VECTORS:     256,
			gl.MAX_FRAGMENT_UNIFORM_VECTORS:   224,
			gl.MAX_VARYING_VECTORS:            15,
			gl.MAX_VERTEX_ATTRIBS:             8,
		},
		compileFails: map[Enum]string{},
		fbStatus:     gl.FRAMEBUFFER_COMPLETE,
		next:         100,
	}
}

// newTestContext returns an initialised Context over a mock driver whose
// call log starts empty.
func newTestContext(opts ...Option) (*Context, *mockDriver) {
	d := newMockDriver()
	c := New(d, opts...).Init()
	d.reset()
	return c, d
}

func (d *mockDriver) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *mockDriver) reset() { d.calls = nil }

// count returns how many recorded calls start with prefix.
func (d *mockDriver) count(prefix string) int {
	n := 0
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (d *mockDriver) genID() uint32 {
	d.next++
	return d.next
}

func (d *mockDriver) GetError() Enum {
	if len(d.errs) == 0 {
		return gl.NO_ERROR
	}
	e := d.errs[0]
	d.errs = d.errs[1:]
	return e
}

func (d *mockDriver) GetString(name Enum) string {
	switch name {
	case gl.VERSION:
		return d.version
	case gl.VENDOR:
		return "Mock"
	case gl.RENDERER:
		return "Mock Renderer"
	case gl.EXTENSIONS:
		return strings.Join(d.extensions, " ")
	}
	return ""
}

func (d *mockDriver) GetStringi(name Enum, index uint32) string {
	if name == gl.EXTENSIONS && int(index) < len(d.extensions) {
		return d.extensions[index]
	}
	return ""
}

func (d *mockDriver) GetInteger(pname Enum) int32 {
	if pname == gl.NUM_EXTENSIONS {
		return int32(len(d.extensions))
	}
	return d.ints[pname]
}

func (d *mockDriver) GetFloat(pname Enum) float32 {
	if pname == gl.MAX_TEXTURE_MAX_ANISOTROPY {
		return d.anisotropy
	}
	return 0
}

func (d *mockDriver) GetShaderPrecisionFormat(shaderType, precisionType Enum) int32 {
	return 23
}

func (d *mockDriver) Enable(c Enum)                  { d.record("Enable(%#x)", uint32(c)) }
func (d *mockDriver) Disable(c Enum)                 { d.record("Disable(%#x)", uint32(c)) }
func (d *mockDriver) FrontFace(mode Enum)            { d.record("FrontFace(%#x)", uint32(mode)) }
func (d *mockDriver) PixelStorei(pname Enum, p int32) { d.record("PixelStorei(%#x, %d)", uint32(pname), p) }
func (d *mockDriver) Viewport(x, y, w, h int32)      { d.record("Viewport(%d, %d, %d, %d)", x, y, w, h) }
func (d *mockDriver) ClearColor(r, g, b, a float32)  { d.record("ClearColor(%g, %g, %g, %g)", r, g, b, a) }
func (d *mockDriver) ClearDepth(depth float64)       { d.record("ClearDepth(%g)", depth) }
func (d *mockDriver) ClearStencil(s int32)           { d.record("ClearStencil(%d)", s) }
func (d *mockDriver) Clear(mask Enum)                { d.record("Clear(%#x)", uint32(mask)) }
func (d *mockDriver) DepthMask(flag bool)            { d.record("DepthMask(%t)", flag) }
func (d *mockDriver) DepthFunc(fn Enum)              { d.record("DepthFunc(%#x)", uint32(fn)) }
func (d *mockDriver) DepthRange(near, far float64)   { d.record("DepthRange(%g, %g)", near, far) }
func (d *mockDriver) LineWidth(width float32)        { d.record("LineWidth(%g)", width) }
func (d *mockDriver) BlendEquation(mode Enum)        { d.record("BlendEquation(%#x)", uint32(mode)) }
func (d *mockDriver) CullFace(mode Enum)             { d.record("CullFace(%#x)", uint32(mode)) }

func (d *mockDriver) BlendEquationSeparate(rgb, alpha Enum) {
	d.record("BlendEquationSeparate(%#x, %#x)", uint32(rgb), uint32(alpha))
}

func (d *mockDriver) BlendFunc(src, dst Enum) {
	d.record("BlendFunc(%#x, %#x)", uint32(src), uint32(dst))
}

func (d *mockDriver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	d.record("BlendFuncSeparate(%#x, %#x, %#x, %#x)", uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (d *mockDriver) ActiveTexture(unit Enum)  { d.record("ActiveTexture(%d)", uint32(unit-gl.TEXTURE0)) }
func (d *mockDriver) BindVertexArray(id uint32) { d.record("BindVertexArray(%d)", id) }
func (d *mockDriver) UseProgram(id uint32)      { d.record("UseProgram(%d)", id) }

func (d *mockDriver) BindBuffer(target Enum, id uint32) {
	d.record("BindBuffer(%#x, %d)", uint32(target), id)
}

func (d *mockDriver) BindFramebuffer(target Enum, id uint32) {
	d.record("BindFramebuffer(%d)", id)
}

func (d *mockDriver) BindRenderbuffer(target Enum, id uint32) {
	d.record("BindRenderbuffer(%d)", id)
}

func (d *mockDriver) BindTexture(target Enum, id uint32) {
	d.record("BindTexture(%d)", id)
}

func (d *mockDriver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray(%d)", index)
}

func (d *mockDriver) DisableVertexAttribArray(index uint32) {
	d.record("DisableVertexAttribArray(%d)", index)
}

func (d *mockDriver) VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int) {
	d.record("VertexAttribPointer(%d, %d, %#x, %t, %d, %d)", index, size, uint32(typ), normalized, stride, offset)
}

func (d *mockDriver) GenBuffer() uint32           { return d.genID() }
func (d *mockDriver) DeleteBuffer(id uint32)      { d.record("DeleteBuffer(%d)", id) }
func (d *mockDriver) GenVertexArray() uint32      { return d.genID() }
func (d *mockDriver) DeleteVertexArray(id uint32) { d.record("DeleteVertexArray(%d)", id) }
func (d *mockDriver) GenTexture() uint32          { return d.genID() }
func (d *mockDriver) DeleteTexture(id uint32)     { d.record("DeleteTexture(%d)", id) }

func (d *mockDriver) BufferData(target Enum, size int, data unsafe.Pointer, usage Enum) {
	d.record("BufferData(%#x, %d, %#x)", uint32(target), size, uint32(usage))
}

func (d *mockDriver) TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format, typ Enum, pixels unsafe.Pointer) {
	d.record("TexImage2D(%#x, %dx%d, %#x, %#x)", uint32(internalFormat), width, height, uint32(format), uint32(typ))
}

func (d *mockDriver) TexParameteri(target, pname Enum, param int32) {
	d.record("TexParameteri(%#x, %#x)", uint32(pname), param)
}

func (d *mockDriver) TexParameterf(target, pname Enum, param float32) {
	d.record("TexParameterf(%#x, %g)", uint32(pname), param)
}

func (d *mockDriver) GenerateMipmap(target Enum)  { d.record("GenerateMipmap") }
func (d *mockDriver) GenFramebuffer() uint32      { return d.genID() }
func (d *mockDriver) DeleteFramebuffer(id uint32) { d.record("DeleteFramebuffer(%d)", id) }

func (d *mockDriver) FramebufferTexture2D(target, attachment, texTarget Enum, texture uint32, level int32) {
	d.record("FramebufferTexture2D(%#x, %d, %d)", uint32(attachment), texture, level)
}

func (d *mockDriver) FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb uint32) {
	d.record("FramebufferRenderbuffer(%#x, %d)", uint32(attachment), rb)
}

func (d *mockDriver) CheckFramebufferStatus(target Enum) Enum { return d.fbStatus }

func (d *mockDriver) DrawBuffers(buffers []Enum) { d.record("DrawBuffers(%d)", len(buffers)) }

func (d *mockDriver) GenRenderbuffer() uint32      { return d.genID() }
func (d *mockDriver) DeleteRenderbuffer(id uint32) { d.record("DeleteRenderbuffer(%d)", id) }

func (d *mockDriver) RenderbufferStorage(target, internalFormat Enum, width, height int32) {
	d.record("RenderbufferStorage(%#x, %d, %d)", uint32(internalFormat), width, height)
}

func (d *mockDriver) CreateShader(typ Enum) uint32 {
	id := d.genID()
	d.record("CreateShader(%#x) = %d", uint32(typ), id)
	if _, fail := d.compileFails[typ]; fail {
		d.failing = append(d.failing, id)
		d.failingLog = d.compileFails[typ]
	}
	return id
}

func (d *mockDriver) ShaderSource(shader uint32, sources ...string) {
	d.record("ShaderSource(%d, %d)", shader, len(sources))
}

func (d *mockDriver) CompileShader(shader uint32) { d.record("CompileShader(%d)", shader) }

func (d *mockDriver) GetShaderi(shader uint32, pname Enum) int32 {
	for _, id := range d.failing {
		if id == shader {
			return gl.FALSE
		}
	}
	return gl.TRUE
}

func (d *mockDriver) GetShaderInfoLog(shader uint32) string { return d.failingLog }
func (d *mockDriver) DeleteShader(shader uint32)            { d.record("DeleteShader(%d)", shader) }

func (d *mockDriver) CreateProgram() uint32 {
	id := d.genID()
	d.record("CreateProgram() = %d", id)
	return id
}

func (d *mockDriver) AttachShader(program, shader uint32) {
	d.record("AttachShader(%d, %d)", program, shader)
}

func (d *mockDriver) LinkProgram(program uint32) { d.record("LinkProgram(%d)", program) }

func (d *mockDriver) GetProgrami(program uint32, pname Enum) int32 {
	switch pname {
	case gl.LINK_STATUS:
		if d.linkLog != "" {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.ACTIVE_UNIFORMS:
		return int32(len(d.uniforms))
	case gl.ACTIVE_ATTRIBUTES:
		return int32(len(d.attributes))
	}
	return 0
}

func (d *mockDriver) GetProgramInfoLog(program uint32) string { return d.linkLog }
func (d *mockDriver) DeleteProgram(program uint32)            { d.record("DeleteProgram(%d)", program) }

func (d *mockDriver) GetActiveUniform(program, index uint32) (string, int32, Enum) {
	u := d.uniforms[index]
	return u.name, u.size, u.typ
}

func (d *mockDriver) GetUniformLocation(program uint32, name string) int32 {
	for _, u := range d.uniforms {
		if u.name == name {
			return u.location
		}
	}
	return -1
}

func (d *mockDriver) GetActiveAttrib(program, index uint32) (string, int32, Enum) {
	a := d.attributes[index]
	return a.name, a.size, a.typ
}

func (d *mockDriver) GetAttribLocation(program uint32, name string) int32 {
	for _, a := range d.attributes {
		if a.name == name {
			return a.location
		}
	}
	return -1
}

func (d *mockDriver) Uniform1i(location, v int32) { d.record("Uniform1i(%d, %d)", location, v) }

func (d *mockDriver) Uniformiv(location int32, components int, v []int32) {
	d.record("Uniformiv(%d, %d, %v)", location, components, v)
}

func (d *mockDriver) Uniformfv(location int32, components int, v []float32) {
	d.record("Uniformfv(%d, %d, %v)", location, components, v)
}

func (d *mockDriver) UniformMatrixfv(location int32, dim int, v []float32) {
	d.record("UniformMatrixfv(%d, %d, %d)", location, dim, len(v))
}

func (d *mockDriver) DrawArrays(mode Enum, first, count int32) {
	d.record("DrawArrays(%#x, %d, %d)", uint32(mode), first, count)
}

func (d *mockDriver) DrawElements(mode Enum, count int32, typ Enum, offset int) {
	d.record("DrawElements(%#x, %d, %#x, %d)", uint32(mode), count, uint32(typ), offset)
}

func (d *mockDriver) ReadPixels(x, y, width, height int32, format, typ Enum, dst []byte) {
	d.record("ReadPixels(%d, %d, %d, %d)", x, y, width, height)
	for i := range dst[:width*height*4] {
		dst[i] = d.pixel
	}
}
