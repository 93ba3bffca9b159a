package glcache

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// ShaderError reports a failed shader compile or program link.
// Log holds the native info log.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("glcache: program linking failed: %s", strings.TrimSpace(e.Log))
	}
	return fmt.Sprintf("glcache: %s shader compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

// UnsupportedTypeError reports a reflected uniform or attribute whose native
// type has no setter.
type UnsupportedTypeError struct {
	Name string
	What string // "uniform" or "attribute"
	Type Enum
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("glcache: %s %q has unsupported type 0x%04X", e.What, e.Name, uint32(e.Type))
}

// FramebufferError reports an incomplete framebuffer.
type FramebufferError struct {
	ID     uint32
	Status Enum
}

func (e *FramebufferError) Error() string {
	return fmt.Sprintf("glcache: framebuffer %d incomplete: %s", e.ID, framebufferStatus(e.Status))
}

func framebufferStatus(s Enum) string {
	switch s {
	case gl.FRAMEBUFFER_UNDEFINED:
		return "undefined"
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "incomplete attachment"
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "missing attachment"
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return "incomplete draw buffer"
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return "incomplete read buffer"
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return "unsupported"
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "incomplete multisample"
	}
	return fmt.Sprintf("status 0x%04X", uint32(s))
}
