package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glcache"
)

// MakeCurrent makes the window's GL context current on the calling thread
// and resolves the GL entry points through GLFW. Call it before creating a
// glcache.Context.
func MakeCurrent(window *glfw.Window) error {
	window.MakeContextCurrent()
	if err := gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	return nil
}

// Surface presents a glcache.Context into a GLFW window. It keeps the
// viewport in step with the window's framebuffer size and collects key
// presses between frames.
type Surface struct {
	window *glfw.Window
	ctx    *glcache.Context

	width, height int
	pressed       map[glfw.Key]bool
}

// NewSurface creates a Surface for window. ctx must issue its calls to the
// window's GL context.
func NewSurface(window *glfw.Window, ctx *glcache.Context) *Surface {
	s := &Surface{
		window:  window,
		ctx:     ctx,
		pressed: make(map[glfw.Key]bool),
	}
	s.width, s.height = window.GetFramebufferSize()

	window.SetFramebufferSizeCallback(s.resizeCallback)
	window.SetKeyCallback(s.keyCallback)

	return s
}

// Size returns the framebuffer size in pixels.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

// Aspect returns width/height of the framebuffer.
func (s *Surface) Aspect() float32 {
	if s.height == 0 {
		return 1
	}
	return float32(s.width) / float32(s.height)
}

// Begin polls events, binds the window's framebuffer and sets the viewport
// to cover it. It returns false once the window should close.
func (s *Surface) Begin() bool {
	clear(s.pressed)
	glfw.PollEvents()
	if s.window.ShouldClose() {
		return false
	}
	s.ctx.RemoveFramebuffer(false)
	s.ctx.SetViewport(0, 0, s.width, s.height, false)
	return true
}

// End presents the frame.
func (s *Surface) End() { s.window.SwapBuffers() }

// Pressed reports whether key went down since the last Begin.
func (s *Surface) Pressed(key glfw.Key) bool { return s.pressed[key] }

func (s *Surface) resizeCallback(w *glfw.Window, width, height int) {
	s.width, s.height = width, height
}

func (s *Surface) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press {
		s.pressed[key] = true
	}
}
