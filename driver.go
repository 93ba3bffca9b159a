package glcache

import (
	"unsafe"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// Enum is a native OpenGL enumerant as passed to a Driver.
type Enum = gl.Enum

// Driver is the native backend the Context issues commands to.
// Each method maps to one OpenGL entry point. The production
// implementation lives in backend/opengl; a current GL context must be
// established before any method is called.
//
// The Context assumes it is the only caller that changes binding state
// through the Driver. Binding objects behind its back desyncs the cache.
type Driver interface {
	// Queries
	GetError() Enum
	GetString(name Enum) string
	GetStringi(name Enum, index uint32) string
	GetInteger(pname Enum) int32
	GetFloat(pname Enum) float32
	GetShaderPrecisionFormat(shaderType, precisionType Enum) (precision int32)

	// Render state
	Enable(capability Enum)
	Disable(capability Enum)
	FrontFace(mode Enum)
	PixelStorei(pname Enum, param int32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	ClearStencil(s int32)
	Clear(mask Enum)
	DepthMask(flag bool)
	DepthFunc(fn Enum)
	DepthRange(near, far float64)
	LineWidth(width float32)
	BlendEquation(mode Enum)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)
	BlendFunc(src, dst Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	CullFace(mode Enum)

	// Bindings
	ActiveTexture(unit Enum)
	BindBuffer(target Enum, id uint32)
	BindVertexArray(id uint32)
	BindFramebuffer(target Enum, id uint32)
	BindRenderbuffer(target Enum, id uint32)
	BindTexture(target Enum, id uint32)
	UseProgram(id uint32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int)

	// Resources
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BufferData(target Enum, size int, data unsafe.Pointer, usage Enum)
	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	GenTexture() uint32
	DeleteTexture(id uint32)
	TexImage2D(target Enum, level int32, internalFormat Enum, width, height int32, format, typ Enum, pixels unsafe.Pointer)
	TexParameteri(target, pname Enum, param int32)
	TexParameterf(target, pname Enum, param float32)
	GenerateMipmap(target Enum)
	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	FramebufferTexture2D(target, attachment, texTarget Enum, texture uint32, level int32)
	FramebufferRenderbuffer(target, attachment, renderbufferTarget Enum, renderbuffer uint32)
	CheckFramebufferStatus(target Enum) Enum
	DrawBuffers(buffers []Enum)
	GenRenderbuffer() uint32
	DeleteRenderbuffer(id uint32)
	RenderbufferStorage(target, internalFormat Enum, width, height int32)

	// Shaders and programs
	CreateShader(typ Enum) uint32
	ShaderSource(shader uint32, sources ...string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	GetActiveUniform(program, index uint32) (name string, size int32, typ Enum)
	GetUniformLocation(program uint32, name string) int32
	GetActiveAttrib(program, index uint32) (name string, size int32, typ Enum)
	GetAttribLocation(program uint32, name string) int32

	// Uniform uploads. Slices hold count*components values.
	Uniform1i(location, v int32)
	Uniformiv(location int32, components int, v []int32)
	Uniformfv(location int32, components int, v []float32)
	UniformMatrixfv(location int32, dim int, v []float32)

	// Drawing and readback
	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, typ Enum, offset int)
	ReadPixels(x, y, width, height int32, format, typ Enum, dst []byte)
}
