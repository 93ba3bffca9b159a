package glcache

import "github.com/go-theft-auto/glcache/internal/gl"

// Framebuffer owns a native framebuffer object.
type Framebuffer struct {
	noCopy noCopy
	ctx    *Context
	id     uint32
}

// ID returns the native id, or 0 once deleted.
func (fb *Framebuffer) ID() uint32 { return fb.id }

// Set attaches level of t at each attachment, routes fragment outputs to
// the color attachments in order and checks completeness.
func (fb *Framebuffer) Set(t *Texture, level int, attachments ...Attachment) error {
	for _, a := range attachments {
		fb.AttachTexture(a, t, level)
	}
	var draw []Enum
	for _, a := range attachments {
		if a.IsColor() {
			draw = append(draw, a.GL())
		}
	}
	if len(draw) > 0 {
		fb.ctx.driver.DrawBuffers(draw)
	}
	return fb.Check()
}

// AttachTexture attaches level of t at a. The framebuffer is bound through
// the Context.
func (fb *Framebuffer) AttachTexture(a Attachment, t *Texture, level int) {
	fb.ctx.SetFramebuffer(fb, false)
	fb.ctx.driver.FramebufferTexture2D(gl.FRAMEBUFFER, a.GL(), gl.TEXTURE_2D, t.ID(), int32(level))
}

// AttachRenderbuffer attaches rb at a.
func (fb *Framebuffer) AttachRenderbuffer(a Attachment, rb *Renderbuffer) {
	fb.ctx.SetFramebuffer(fb, false)
	fb.ctx.driver.FramebufferRenderbuffer(gl.FRAMEBUFFER, a.GL(), gl.RENDERBUFFER, rb.ID())
}

// Check returns a *FramebufferError unless the framebuffer is complete.
func (fb *Framebuffer) Check() error {
	fb.ctx.SetFramebuffer(fb, false)
	if status := fb.ctx.driver.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return &FramebufferError{ID: fb.id, Status: status}
	}
	return nil
}

// Delete releases the framebuffer. It is safe to call more than once.
func (fb *Framebuffer) Delete() {
	if fb.id == 0 {
		return
	}
	fb.ctx.forgetFramebuffer(fb.id)
	fb.ctx.driver.DeleteFramebuffer(fb.id)
	fb.id = 0
}
