// Package opengl provides the OpenGL 4.1 core backend for glcache, built on
// go-gl, plus the GLFW glue that makes a context current and tracks its
// framebuffer size.
package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/glcache"
)

// Driver implements glcache.Driver with go-gl. gl.Init (or MakeCurrent)
// must have run on the calling thread.
type Driver struct{}

var _ glcache.Driver = (*Driver)(nil)

// NewDriver returns a Driver for the current GL context.
func NewDriver() *Driver { return &Driver{} }

type Enum = glcache.Enum

func (*Driver) GetError() Enum { return Enum(gl.GetError()) }

func (*Driver) GetString(name Enum) string {
	if s := gl.GetString(uint32(name)); s != nil {
		return gl.GoStr(s)
	}
	return ""
}

func (*Driver) GetStringi(name Enum, index uint32) string {
	if s := gl.GetStringi(uint32(name), index); s != nil {
		return gl.GoStr(s)
	}
	return ""
}

func (*Driver) GetInteger(pname Enum) int32 {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return v
}

func (*Driver) GetFloat(pname Enum) float32 {
	var v float32
	gl.GetFloatv(uint32(pname), &v)
	return v
}

func (*Driver) GetShaderPrecisionFormat(shaderType, precisionType Enum) int32 {
	var rng [2]int32
	var precision int32
	gl.GetShaderPrecisionFormat(uint32(shaderType), uint32(precisionType), &rng[0], &precision)
	return precision
}

func (*Driver) Enable(capability Enum)              { gl.Enable(uint32(capability)) }
func (*Driver) Disable(capability Enum)             { gl.Disable(uint32(capability)) }
func (*Driver) FrontFace(mode Enum)                 { gl.FrontFace(uint32(mode)) }
func (*Driver) PixelStorei(pname Enum, param int32) { gl.PixelStorei(uint32(pname), param) }
func (*Driver) Viewport(x, y, width, height int32)  { gl.Viewport(x, y, width, height) }
func (*Driver) ClearColor(r, g, b, a float32)       { gl.ClearColor(r, g, b, a) }
func (*Driver) ClearDepth(depth float64)            { gl.ClearDepth(depth) }
func (*Driver) ClearStencil(s int32)                { gl.ClearStencil(s) }
func (*Driver) Clear(mask Enum)                     { gl.Clear(uint32(mask)) }
func (*Driver) DepthMask(flag bool)                 { gl.DepthMask(flag) }
func (*Driver) DepthFunc(fn Enum)                   { gl.DepthFunc(uint32(fn)) }
func (*Driver) DepthRange(near, far float64)        { gl.DepthRange(near, far) }
func (*Driver) LineWidth(width float32)             { gl.LineWidth(width) }
func (*Driver) BlendEquation(mode Enum)             { gl.BlendEquation(uint32(mode)) }
func (*Driver) CullFace(mode Enum)                  { gl.CullFace(uint32(mode)) }

func (*Driver) BlendEquationSeparate(modeRGB, modeAlpha Enum) {
	gl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (*Driver) BlendFunc(src, dst Enum) { gl.BlendFunc(uint32(src), uint32(dst)) }

func (*Driver) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (*Driver) ActiveTexture(unit Enum)               { gl.ActiveTexture(uint32(unit)) }
func (*Driver) BindBuffer(target Enum, id uint32)       { gl.BindBuffer(uint32(target), id) }
func (*Driver) BindVertexArray(id uint32)               { gl.BindVertexArray(id) }
func (*Driver) BindFramebuffer(target Enum, id uint32)  { gl.BindFramebuffer(uint32(target), id) }
func (*Driver) BindRenderbuffer(target Enum, id uint32) { gl.BindRenderbuffer(uint32(target), id) }
func (*Driver) BindTexture(target Enum, id uint32)      { gl.BindTexture(uint32(target), id) }
func (*Driver) UseProgram(id uint32)                    { gl.UseProgram(id) }
func (*Driver) EnableVertexAttribArray(index uint32)    { gl.EnableVertexAttribArray(index) }
func (*Driver) DisableVertexAttribArray(index uint32)   { gl.DisableVertexAttribArray(index) }

func (*Driver) VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(typ), normalized, stride, uintptr(offset))
}

func (*Driver) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*Driver) DeleteBuffer(id uint32) { gl.DeleteBuffers(1, &id) }

func (*Driver) BufferData(target Enum, size int, data unsafe.Pointer, usage Enum) {
	gl.BufferData(uint32(target), size, data, uint32(usage))
}

func (*Driver) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*Driver) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }

func (*Driver) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (*Driver) DeleteTexture(id uint32) { gl.DeleteTextures(1, &id) }

func (*Driver) TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format, typ Enum, pixels unsafe.Pointer) {
	gl.TexImage2D(uint32(target), level, int32(internalFormat), width, height, 0, uint32(format), uint32(typ), pixels)
}

func (*Driver) TexParameteri(target, pname Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (*Driver) TexParameterf(target, pname Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (*Driver) GenerateMipmap(target Enum) { gl.GenerateMipmap(uint32(target)) }

func (*Driver) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (*Driver) DeleteFramebuffer(id uint32) { gl.DeleteFramebuffers(1, &id) }

func (*Driver) FramebufferTexture2D(target, attachment, texTarget Enum, texture uint32, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), texture, level)
}

func (*Driver) FramebufferRenderbuffer(target, attachment, renderbufferTarget Enum, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbufferTarget), renderbuffer)
}

func (*Driver) CheckFramebufferStatus(target Enum) Enum {
	return Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (*Driver) DrawBuffers(buffers []Enum) {
	if len(buffers) == 0 {
		return
	}
	bufs := make([]uint32, len(buffers))
	for i, b := range buffers {
		bufs[i] = uint32(b)
	}
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])
}

func (*Driver) GenRenderbuffer() uint32 {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return id
}

func (*Driver) DeleteRenderbuffer(id uint32) { gl.DeleteRenderbuffers(1, &id) }

func (*Driver) RenderbufferStorage(target, internalFormat Enum, width, height int32) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), width, height)
}

func (*Driver) CreateShader(typ Enum) uint32 { return gl.CreateShader(uint32(typ)) }

func (*Driver) ShaderSource(shader uint32, sources ...string) {
	terminated := make([]string, len(sources))
	for i, s := range sources {
		terminated[i] = cstr(s)
	}
	csources, free := gl.Strs(terminated...)
	gl.ShaderSource(shader, int32(len(terminated)), csources, nil)
	free()
}

func (*Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*Driver) GetShaderi(shader uint32, pname Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, uint32(pname), &v)
	return v
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	n := d.GetShaderi(shader, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	log := make([]byte, n+1)
	gl.GetShaderInfoLog(shader, n, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (*Driver) DeleteShader(shader uint32)          { gl.DeleteShader(shader) }
func (*Driver) CreateProgram() uint32               { return gl.CreateProgram() }
func (*Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (*Driver) LinkProgram(program uint32)          { gl.LinkProgram(program) }
func (*Driver) DeleteProgram(program uint32)        { gl.DeleteProgram(program) }

func (*Driver) GetProgrami(program uint32, pname Enum) int32 {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return v
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	n := d.GetProgrami(program, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	log := make([]byte, n+1)
	gl.GetProgramInfoLog(program, n, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Driver) GetActiveUniform(program, index uint32) (string, int32, Enum) {
	n := max(d.GetProgrami(program, gl.ACTIVE_UNIFORM_MAX_LENGTH), 1)
	buf := make([]byte, n+1)
	var length, size int32
	var typ uint32
	gl.GetActiveUniform(program, index, n, &length, &size, &typ, &buf[0])
	return string(buf[:length]), size, Enum(typ)
}

func (*Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

func (d *Driver) GetActiveAttrib(program, index uint32) (string, int32, Enum) {
	n := max(d.GetProgrami(program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH), 1)
	buf := make([]byte, n+1)
	var length, size int32
	var typ uint32
	gl.GetActiveAttrib(program, index, n, &length, &size, &typ, &buf[0])
	return string(buf[:length]), size, Enum(typ)
}

func (*Driver) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(cstr(name)))
}

func (*Driver) Uniform1i(location, v int32) { gl.Uniform1i(location, v) }

func (*Driver) Uniformiv(location int32, components int, v []int32) {
	if len(v) == 0 {
		return
	}
	count := int32(len(v) / components)
	switch components {
	case 1:
		gl.Uniform1iv(location, count, &v[0])
	case 2:
		gl.Uniform2iv(location, count, &v[0])
	case 3:
		gl.Uniform3iv(location, count, &v[0])
	case 4:
		gl.Uniform4iv(location, count, &v[0])
	}
}

func (*Driver) Uniformfv(location int32, components int, v []float32) {
	if len(v) == 0 {
		return
	}
	count := int32(len(v) / components)
	switch components {
	case 1:
		gl.Uniform1fv(location, count, &v[0])
	case 2:
		gl.Uniform2fv(location, count, &v[0])
	case 3:
		gl.Uniform3fv(location, count, &v[0])
	case 4:
		gl.Uniform4fv(location, count, &v[0])
	}
}

func (*Driver) UniformMatrixfv(location int32, dim int, v []float32) {
	if len(v) == 0 {
		return
	}
	count := int32(len(v) / (dim * dim))
	switch dim {
	case 2:
		gl.UniformMatrix2fv(location, count, false, &v[0])
	case 3:
		gl.UniformMatrix3fv(location, count, false, &v[0])
	case 4:
		gl.UniformMatrix4fv(location, count, false, &v[0])
	}
}

func (*Driver) DrawArrays(mode Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (*Driver) DrawElements(mode Enum, count int32, typ Enum, offset int) {
	gl.DrawElementsWithOffset(uint32(mode), count, uint32(typ), uintptr(offset))
}

func (*Driver) ReadPixels(x, y, width, height int32, format, typ Enum, dst []byte) {
	gl.ReadPixels(x, y, width, height, uint32(format), uint32(typ), gl.Ptr(dst))
}

// cstr returns s with the NUL terminator go-gl expects.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
