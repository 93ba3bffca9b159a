package glcache

import "github.com/go-theft-auto/glcache/internal/gl"

// Renderbuffer owns a native renderbuffer object.
type Renderbuffer struct {
	noCopy noCopy
	ctx    *Context
	id     uint32

	kind          TextureKind
	width, height int
}

// ID returns the native id, or 0 once deleted.
func (rb *Renderbuffer) ID() uint32 { return rb.id }

// Size returns the dimensions of the storage.
func (rb *Renderbuffer) Size() (width, height int) { return rb.width, rb.height }

// Kind returns the data type of the storage.
func (rb *Renderbuffer) Kind() TextureKind { return rb.kind }

// Set allocates storage of the given kind. Depth kinds give a depth
// buffer, the packed 16-bit kinds the matching color format, and the rest
// RGBA8 or RGBA32F.
func (rb *Renderbuffer) Set(kind TextureKind, width, height int) {
	rb.ctx.SetRenderbuffer(rb, false)
	rb.ctx.driver.RenderbufferStorage(gl.RENDERBUFFER, renderbufferFormat(kind), int32(width), int32(height))
	rb.kind = kind
	rb.width, rb.height = width, height
}

func renderbufferFormat(kind TextureKind) Enum {
	switch kind {
	case TexDepthComponent:
		return gl.DEPTH_COMPONENT24
	case TexUnsignedShort:
		return gl.DEPTH_COMPONENT16
	case TexUnsignedShort565:
		return gl.RGB565
	case TexUnsignedShort4444:
		return gl.RGBA4
	case TexUnsignedShort5551:
		return gl.RGB5_A1
	case TexFloat:
		return gl.RGBA32F
	case TexUnsignedByte:
		return gl.RGBA8
	}
	panic(invalidEnum(kind))
}

// Delete releases the renderbuffer. It is safe to call more than once.
func (rb *Renderbuffer) Delete() {
	if rb.id == 0 {
		return
	}
	rb.ctx.forgetRenderbuffer(rb.id)
	rb.ctx.driver.DeleteRenderbuffer(rb.id)
	rb.id = 0
}
