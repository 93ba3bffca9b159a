package glcache

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// invalidEnum reports an enum value outside its closed set.
// Values are only ever built from the declared constants, so this is a
// programming error.
func invalidEnum(v any) string {
	return fmt.Sprintf("glcache: invalid %T value %d", v, v)
}

// parseEnum finds the value of an n-valued enum whose String matches text,
// ignoring case.
func parseEnum[T interface {
	~uint8
	String() string
}](what string, n int, text []byte) (T, error) {
	for i := 0; i < n; i++ {
		if v := T(i); strings.EqualFold(v.String(), string(text)) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("glcache: unknown %s %q", what, text)
}

// BlendMode selects a preset blend equation and factors.
// BlendNone disables blending entirely.
type BlendMode uint8

const (
	BlendNone BlendMode = iota
	BlendDefault
	BlendAdditive
	BlendSubtractive
	BlendMultiply
)

// blendFactors describes the native calls a blend mode resolves to.
type blendFactors struct {
	separate           bool
	eqRGB, eqAlpha     Enum
	srcRGB, dstRGB     Enum
	srcAlpha, dstAlpha Enum
}

// GL returns the blend equation used by the mode.
// BlendNone has no equation and returns 0.
func (m BlendMode) GL() Enum {
	if m == BlendNone {
		return 0
	}
	return m.factors().eqRGB
}

func (m BlendMode) factors() blendFactors {
	switch m {
	case BlendDefault:
		return blendFactors{
			separate: true,
			eqRGB:    gl.FUNC_ADD, eqAlpha: gl.FUNC_ADD,
			srcRGB: gl.SRC_ALPHA, dstRGB: gl.ONE_MINUS_SRC_ALPHA,
			srcAlpha: gl.ONE, dstAlpha: gl.ONE_MINUS_SRC_ALPHA,
		}
	case BlendAdditive:
		return blendFactors{eqRGB: gl.FUNC_ADD, srcRGB: gl.SRC_ALPHA, dstRGB: gl.ONE}
	case BlendSubtractive:
		return blendFactors{eqRGB: gl.FUNC_ADD, srcRGB: gl.ZERO, dstRGB: gl.ONE_MINUS_SRC_COLOR}
	case BlendMultiply:
		return blendFactors{eqRGB: gl.FUNC_ADD, srcRGB: gl.ZERO, dstRGB: gl.SRC_COLOR}
	}
	panic(invalidEnum(m))
}

func (m BlendMode) String() string {
	switch m {
	case BlendNone:
		return "None"
	case BlendDefault:
		return "Default"
	case BlendAdditive:
		return "Additive"
	case BlendSubtractive:
		return "Subtractive"
	case BlendMultiply:
		return "Multiply"
	}
	return fmt.Sprintf("BlendMode(%d)", m)
}

// MarshalText implements encoding.TextMarshaler.
func (m BlendMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BlendMode) UnmarshalText(text []byte) (err error) {
	*m, err = parseEnum[BlendMode]("blend mode", 5, text)
	return err
}

// CullFace selects which polygon faces are culled.
type CullFace uint8

const (
	CullNone CullFace = iota
	CullBack
	CullFront
	CullFrontAndBack
)

// GL returns the native face constant. CullNone returns 0.
func (c CullFace) GL() Enum {
	switch c {
	case CullNone:
		return 0
	case CullBack:
		return gl.BACK
	case CullFront:
		return gl.FRONT
	case CullFrontAndBack:
		return gl.FRONT_AND_BACK
	}
	panic(invalidEnum(c))
}

func (c CullFace) String() string {
	switch c {
	case CullNone:
		return "None"
	case CullBack:
		return "Back"
	case CullFront:
		return "Front"
	case CullFrontAndBack:
		return "FrontAndBack"
	}
	return fmt.Sprintf("CullFace(%d)", c)
}

// MarshalText implements encoding.TextMarshaler.
func (c CullFace) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CullFace) UnmarshalText(text []byte) (err error) {
	*c, err = parseEnum[CullFace]("cull face", 4, text)
	return err
}

// DepthFunc selects the depth comparison. DepthNone disables depth testing.
type DepthFunc uint8

const (
	DepthNone DepthFunc = iota
	DepthNever
	DepthLess
	DepthEqual
	DepthLessEqual
	DepthGreater
	DepthNotEqual
	DepthGreaterEqual
	DepthAlways
)

// GL returns the native comparison constant. DepthNone returns 0.
func (d DepthFunc) GL() Enum {
	switch d {
	case DepthNone:
		return 0
	case DepthNever:
		return gl.NEVER
	case DepthLess:
		return gl.LESS
	case DepthEqual:
		return gl.EQUAL
	case DepthLessEqual:
		return gl.LEQUAL
	case DepthGreater:
		return gl.GREATER
	case DepthNotEqual:
		return gl.NOTEQUAL
	case DepthGreaterEqual:
		return gl.GEQUAL
	case DepthAlways:
		return gl.ALWAYS
	}
	panic(invalidEnum(d))
}

func (d DepthFunc) String() string {
	names := [...]string{"None", "Never", "Less", "Equal", "LessEqual", "Greater", "NotEqual", "GreaterEqual", "Always"}
	if int(d) < len(names) {
		return names[d]
	}
	return fmt.Sprintf("DepthFunc(%d)", d)
}

// MarshalText implements encoding.TextMarshaler.
func (d DepthFunc) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DepthFunc) UnmarshalText(text []byte) (err error) {
	*d, err = parseEnum[DepthFunc]("depth func", 9, text)
	return err
}

// FilterMode selects texture sampling.
type FilterMode uint8

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// GL returns the magnification filter constant.
func (f FilterMode) GL() Enum {
	switch f {
	case FilterNearest:
		return gl.NEAREST
	case FilterLinear:
		return gl.LINEAR
	}
	panic(invalidEnum(f))
}

// minGL returns the minification filter, taking mipmaps into account.
func (f FilterMode) minGL(mipmaps bool) Enum {
	if !mipmaps {
		return f.GL()
	}
	if f == FilterLinear {
		return gl.LINEAR_MIPMAP_LINEAR
	}
	return gl.NEAREST_MIPMAP_NEAREST
}

func (f FilterMode) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	}
	return fmt.Sprintf("FilterMode(%d)", f)
}

// MarshalText implements encoding.TextMarshaler.
func (f FilterMode) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FilterMode) UnmarshalText(text []byte) (err error) {
	*f, err = parseEnum[FilterMode]("filter mode", 2, text)
	return err
}

// TextureFormat is the pixel layout of texture data.
// The single and two channel legacy formats map onto RED and RG, since the
// core profile dropped ALPHA and LUMINANCE.
type TextureFormat uint8

const (
	FormatRGBA TextureFormat = iota
	FormatRGB
	FormatAlpha
	FormatLuminance
	FormatLuminanceAlpha
	FormatRed
	FormatDepth
)

// GL returns the native pixel format.
func (f TextureFormat) GL() Enum {
	switch f {
	case FormatRGBA:
		return gl.RGBA
	case FormatRGB:
		return gl.RGB
	case FormatAlpha, FormatLuminance, FormatRed:
		return gl.RED
	case FormatLuminanceAlpha:
		return gl.RG
	case FormatDepth:
		return gl.DEPTH_COMPONENT
	}
	panic(invalidEnum(f))
}

// Channels returns the number of components per pixel.
func (f TextureFormat) Channels() int {
	switch f {
	case FormatRGBA:
		return 4
	case FormatRGB:
		return 3
	case FormatLuminanceAlpha:
		return 2
	case FormatAlpha, FormatLuminance, FormatRed, FormatDepth:
		return 1
	}
	panic(invalidEnum(f))
}

func (f TextureFormat) String() string {
	names := [...]string{"RGBA", "RGB", "Alpha", "Luminance", "LuminanceAlpha", "Red", "Depth"}
	if int(f) < len(names) {
		return names[f]
	}
	return fmt.Sprintf("TextureFormat(%d)", f)
}

// TextureKind is the component data type of texture or renderbuffer data.
// Depth data is uploaded as 32-bit unsigned integers.
type TextureKind uint8

const (
	TexUnsignedByte TextureKind = iota
	TexFloat
	TexDepthComponent
	TexUnsignedShort
	TexUnsignedShort565
	TexUnsignedShort4444
	TexUnsignedShort5551
)

// GL returns the native data type.
func (k TextureKind) GL() Enum {
	switch k {
	case TexUnsignedByte:
		return gl.UNSIGNED_BYTE
	case TexFloat:
		return gl.FLOAT
	case TexDepthComponent:
		return gl.UNSIGNED_INT
	case TexUnsignedShort:
		return gl.UNSIGNED_SHORT
	case TexUnsignedShort565:
		return gl.UNSIGNED_SHORT_5_6_5
	case TexUnsignedShort4444:
		return gl.UNSIGNED_SHORT_4_4_4_4
	case TexUnsignedShort5551:
		return gl.UNSIGNED_SHORT_5_5_5_1
	}
	panic(invalidEnum(k))
}

func (k TextureKind) String() string {
	names := [...]string{"UnsignedByte", "Float", "DepthComponent", "UnsignedShort", "UnsignedShort565", "UnsignedShort4444", "UnsignedShort5551"}
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("TextureKind(%d)", k)
}

// TextureWrap selects the wrapping of texture coordinates.
type TextureWrap uint8

const (
	WrapRepeat TextureWrap = iota
	WrapClamp
	WrapMirroredRepeat
)

// GL returns the native wrap constant.
func (w TextureWrap) GL() Enum {
	switch w {
	case WrapRepeat:
		return gl.REPEAT
	case WrapClamp:
		return gl.CLAMP_TO_EDGE
	case WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	}
	panic(invalidEnum(w))
}

func (w TextureWrap) String() string {
	switch w {
	case WrapRepeat:
		return "Repeat"
	case WrapClamp:
		return "Clamp"
	case WrapMirroredRepeat:
		return "MirroredRepeat"
	}
	return fmt.Sprintf("TextureWrap(%d)", w)
}

// MarshalText implements encoding.TextMarshaler.
func (w TextureWrap) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *TextureWrap) UnmarshalText(text []byte) (err error) {
	*w, err = parseEnum[TextureWrap]("texture wrap", 3, text)
	return err
}

// Usage is the buffer usage hint.
type Usage uint8

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

// GL returns the native usage hint.
func (u Usage) GL() Enum {
	switch u {
	case StaticDraw:
		return gl.STATIC_DRAW
	case DynamicDraw:
		return gl.DYNAMIC_DRAW
	case StreamDraw:
		return gl.STREAM_DRAW
	}
	panic(invalidEnum(u))
}

func (u Usage) String() string {
	switch u {
	case StaticDraw:
		return "StaticDraw"
	case DynamicDraw:
		return "DynamicDraw"
	case StreamDraw:
		return "StreamDraw"
	}
	return fmt.Sprintf("Usage(%d)", u)
}

// BufferTarget is the binding point of a buffer. The Context tracks one
// cache slot per target.
type BufferTarget uint8

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// GL returns the native binding point.
func (t BufferTarget) GL() Enum {
	switch t {
	case ArrayBuffer:
		return gl.ARRAY_BUFFER
	case ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	}
	panic(invalidEnum(t))
}

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "ArrayBuffer"
	case ElementArrayBuffer:
		return "ElementArrayBuffer"
	}
	return fmt.Sprintf("BufferTarget(%d)", t)
}

// Attachment is a framebuffer attachment point.
// Color attachments are numbered from AttachColor0 upwards.
type Attachment uint8

const (
	AttachColor0 Attachment = iota
	AttachColor1
	AttachColor2
	AttachColor3
	AttachColor4
	AttachColor5
	AttachColor6
	AttachColor7
	AttachDepth
	AttachStencil
	AttachDepthStencil
)

// GL returns the native attachment point.
func (a Attachment) GL() Enum {
	switch {
	case a <= AttachColor7:
		return gl.COLOR_ATTACHMENT0 + Enum(a)
	case a == AttachDepth:
		return gl.DEPTH_ATTACHMENT
	case a == AttachStencil:
		return gl.STENCIL_ATTACHMENT
	case a == AttachDepthStencil:
		return gl.DEPTH_STENCIL_ATTACHMENT
	}
	panic(invalidEnum(a))
}

// IsColor reports whether a is a color attachment.
func (a Attachment) IsColor() bool { return a <= AttachColor7 }

func (a Attachment) String() string {
	switch {
	case a <= AttachColor7:
		return fmt.Sprintf("Color%d", a)
	case a == AttachDepth:
		return "Depth"
	case a == AttachStencil:
		return "Stencil"
	case a == AttachDepthStencil:
		return "DepthStencil"
	}
	return fmt.Sprintf("Attachment(%d)", a)
}

// DrawMode is the primitive topology of a draw call.
type DrawMode uint8

const (
	DrawPoints DrawMode = iota
	DrawLines
	DrawLineStrip
	DrawLineLoop
	DrawTriangles
	DrawTriangleStrip
	DrawTriangleFan
)

// GL returns the native primitive constant.
func (m DrawMode) GL() Enum {
	switch m {
	case DrawPoints:
		return gl.POINTS
	case DrawLines:
		return gl.LINES
	case DrawLineStrip:
		return gl.LINE_STRIP
	case DrawLineLoop:
		return gl.LINE_LOOP
	case DrawTriangles:
		return gl.TRIANGLES
	case DrawTriangleStrip:
		return gl.TRIANGLE_STRIP
	case DrawTriangleFan:
		return gl.TRIANGLE_FAN
	}
	panic(invalidEnum(m))
}

func (m DrawMode) String() string {
	names := [...]string{"Points", "Lines", "LineStrip", "LineLoop", "Triangles", "TriangleStrip", "TriangleFan"}
	if int(m) < len(names) {
		return names[m]
	}
	return fmt.Sprintf("DrawMode(%d)", m)
}

// IndexKind is the integer type of an element buffer.
type IndexKind uint8

const (
	IndexUnsignedByte IndexKind = iota
	IndexUnsignedShort
	IndexUnsignedInt
)

// GL returns the native index type.
func (k IndexKind) GL() Enum {
	switch k {
	case IndexUnsignedByte:
		return gl.UNSIGNED_BYTE
	case IndexUnsignedShort:
		return gl.UNSIGNED_SHORT
	case IndexUnsignedInt:
		return gl.UNSIGNED_INT
	}
	panic(invalidEnum(k))
}

// Size returns the byte size of one index.
func (k IndexKind) Size() int {
	switch k {
	case IndexUnsignedByte:
		return 1
	case IndexUnsignedShort:
		return 2
	case IndexUnsignedInt:
		return 4
	}
	panic(invalidEnum(k))
}

func (k IndexKind) String() string {
	switch k {
	case IndexUnsignedByte:
		return "UnsignedByte"
	case IndexUnsignedShort:
		return "UnsignedShort"
	case IndexUnsignedInt:
		return "UnsignedInt"
	}
	return fmt.Sprintf("IndexKind(%d)", k)
}
