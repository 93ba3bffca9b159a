package glcache

import (
	"fmt"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// Clear clears the selected buffers of the current render target.
// It is always issued.
func (c *Context) Clear(color, depth, stencil bool) {
	var mask Enum
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if stencil {
		mask |= gl.STENCIL_BUFFER_BIT
	}
	c.driver.Clear(mask)
}

// DrawArrays draws count vertices starting at first. Texture units are
// allocated per draw, so the unit cursor starts over afterwards.
func (c *Context) DrawArrays(mode DrawMode, first, count int) {
	c.driver.DrawArrays(mode.GL(), int32(first), int32(count))
	c.endDraw()
}

// DrawElements draws count indices of the bound element buffer, starting at
// byte offset.
func (c *Context) DrawElements(mode DrawMode, count int, kind IndexKind, offset int) {
	c.driver.DrawElements(mode.GL(), int32(count), kind.GL(), offset)
	c.endDraw()
}

func (c *Context) endDraw() {
	c.textureCursor = 0
	c.rebindSampler = false
}

// Error returns the next native error flag, or 0.
// The cache never inspects it.
func (c *Context) Error() Enum { return c.driver.GetError() }

// ReadPixels reads a rectangle of RGBA8 pixels from the current render
// target into dst, which must hold width*height*4 bytes. Rows are returned
// bottom-up as the GL stores them.
func (c *Context) ReadPixels(x, y, width, height int, dst []byte) {
	if need := width * height * 4; len(dst) < need {
		panic(fmt.Sprintf("glcache: ReadPixels needs %d bytes, got %d", need, len(dst)))
	}
	c.driver.PixelStorei(gl.PACK_ALIGNMENT, 1)
	c.driver.ReadPixels(int32(x), int32(y), int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, dst)
}

// NewBuffer allocates a buffer object.
func (c *Context) NewBuffer() *Buffer {
	return &Buffer{ctx: c, id: c.driver.GenBuffer()}
}

// NewTexture allocates a 2D texture object with repeat wrapping and linear
// filtering.
func (c *Context) NewTexture() *Texture {
	return &Texture{ctx: c, id: c.driver.GenTexture(), wrap: WrapRepeat, filter: FilterLinear}
}

// NewVertexArray allocates a vertex array object.
func (c *Context) NewVertexArray() *VertexArray {
	return &VertexArray{ctx: c, id: c.driver.GenVertexArray()}
}

// NewFramebuffer allocates a framebuffer object.
func (c *Context) NewFramebuffer() *Framebuffer {
	return &Framebuffer{ctx: c, id: c.driver.GenFramebuffer()}
}

// NewRenderbuffer allocates a renderbuffer object.
func (c *Context) NewRenderbuffer() *Renderbuffer {
	return &Renderbuffer{ctx: c, id: c.driver.GenRenderbuffer()}
}

// NewProgram returns an empty program. The native program is created by
// Set.
func (c *Context) NewProgram() *Program {
	return &Program{
		ctx:        c,
		attributes: make(map[string]*Attribute),
		uniforms:   make(map[string]*Uniform),
	}
}
