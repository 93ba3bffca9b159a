package glcache

import (
	"log/slog"
	"math"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// Context mirrors the binding and render state of one OpenGL context and
// decides, for every mutation, whether a native call is needed.
//
// Every Set method follows the same contract: if the requested state equals
// the cached state and force is false, nothing is issued and false is
// returned. Otherwise the native call is made, the cache is updated and true
// is returned.
//
// The cache is only correct while the Context is the sole path that binds
// objects or changes render state. Code that calls the Driver (or GL) directly
// must call Reset afterwards: Reset re-applies the render state and marks
// every binding as unknown, so the next Set or Remove of each slot reaches
// the driver.
//
// A Context is not safe for concurrent use. Like the GL context it wraps, it
// belongs to the thread that made the GL context current.
type Context struct {
	driver   Driver
	log      *slog.Logger
	defaults defaults
	caps     Capabilities

	viewport     [4]int32
	clearColor   [4]float32
	clearDepth   float64
	clearStencil int32

	blend             BlendMode
	cullFace          CullFace
	depthFunc         DepthFunc
	blendDisabled     bool
	cullFaceDisabled  bool
	depthTestDisabled bool

	depthWrite     bool
	depthRangeNear float64
	depthRangeFar  float64
	lineWidth      float32

	enabledAttributes []bool

	arrayBuffer   uint32
	elementBuffer uint32
	vertexArray   uint32
	framebuffer   uint32
	renderbuffer  uint32
	program       uint32

	// Texture units are handed out sequentially per draw. textureUnits holds
	// the texture bound at each unit, samplerUnits the unit each sampler
	// location was last pointed at under the current program.
	textureCursor int
	activeUnit    int
	textureUnits  []uint32
	samplerUnits  map[int32]int32
	rebindSampler bool
}

// New creates a Context issuing native calls through d. The GL context must
// be current; call Init before use.
func New(d Driver, opts ...Option) *Context {
	c := &Context{
		driver:       d,
		log:          defaultLogger,
		defaults:     defaultState(),
		samplerUnits: make(map[int32]int32),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.resetCache()
	return c
}

// Driver returns the backend the context issues calls to.
func (c *Context) Driver() Driver { return c.driver }

// Init queries the device and applies the default render state.
func (c *Context) Init() *Context { return c.Reset() }

// Reset forgets all cached state, re-queries device capabilities and
// re-applies the default render state natively. Use it to recover after
// context loss or after foreign code touched GL state.
func (c *Context) Reset() *Context {
	c.caps = queryCapabilities(c.driver)
	c.enabledAttributes = make([]bool, c.caps.MaxAttributes)
	c.textureUnits = make([]uint32, c.caps.MaxTextureUnits)
	c.resetCache()

	c.log.Debug("glcache: reset",
		"version", c.caps.Version,
		"glsl", c.caps.GLSLDirective(),
		"maxTextureUnits", c.caps.MaxTextureUnits,
		"maxAttributes", c.caps.MaxAttributes,
		"precision", c.caps.Precision.String(),
		"extensions", len(c.caps.Extensions))

	c.applyDefaults()
	return c
}

// SoftReset forgets the viewport and clear color so the next SetViewport
// and SetClearColor always reach the driver. Switching framebuffers calls
// it, since both are scoped to a render target.
func (c *Context) SoftReset() *Context {
	c.viewport = unknownViewport
	c.clearColor = unknownColor
	return c
}

var (
	unknownViewport = [4]int32{-1, -1, -1, -1}
	nan32           = float32(math.NaN())
	unknownColor    = [4]float32{nan32, nan32, nan32, nan32}
)

// resetCache restores every tracked value to its default without issuing
// native calls. Binding slots become unknown since the native bindings are
// not re-applied.
func (c *Context) resetCache() {
	d := c.defaults

	c.viewport = [4]int32{0, 0, 1, 1}
	c.clearColor = d.clearColor
	c.clearDepth = d.clearDepth
	c.clearStencil = 0

	c.blend = d.blend
	c.cullFace = d.cullFace
	c.depthFunc = d.depthFunc
	c.blendDisabled = true
	c.cullFaceDisabled = true
	c.depthTestDisabled = true

	c.depthWrite = d.depthWrite
	c.depthRangeNear = 0
	c.depthRangeFar = 1
	c.lineWidth = d.lineWidth

	clear(c.enabledAttributes)

	c.arrayBuffer = unknownID
	c.elementBuffer = unknownID
	c.vertexArray = unknownID
	c.framebuffer = unknownID
	c.renderbuffer = unknownID
	c.program = unknownID

	c.textureCursor = 0
	c.activeUnit = -1
	for i := range c.textureUnits {
		c.textureUnits[i] = unknownID
	}
	clear(c.samplerUnits)
	c.rebindSampler = false
}

// applyDefaults pushes the cached render state to the driver unconditionally.
func (c *Context) applyDefaults() {
	c.driver.FrontFace(gl.CCW)
	c.driver.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	c.DisableAttributes()

	v := c.viewport
	c.SetViewport(int(v[0]), int(v[1]), int(v[2]), int(v[3]), true)
	c.SetClearDepth(c.clearDepth, true)
	c.SetClearStencil(int(c.clearStencil), true)
	c.SetDepthWrite(c.depthWrite, true)
	c.SetDepthRange(c.depthRangeNear, c.depthRangeFar, true)
	c.SetLineWidth(c.lineWidth, true)
	c.SetBlendMode(c.blend, true)
	c.SetCullFace(c.cullFace, true)
	c.SetDepthFunc(c.depthFunc, true)
	col := c.clearColor
	c.SetClearColor(col[0], col[1], col[2], col[3], true)
	c.Clear(true, true, true)
}

// Capabilities returns the device snapshot taken by the last Reset.
func (c *Context) Capabilities() *Capabilities { return &c.caps }

// MaxTextureUnits returns the number of fragment texture units.
func (c *Context) MaxTextureUnits() int { return c.caps.MaxTextureUnits }

// HasExtension reports whether the named extension is available.
func (c *Context) HasExtension(name string) bool { return c.caps.HasExtension(name) }

// Viewport returns the cached viewport.
func (c *Context) Viewport() (x, y, width, height int) {
	return int(c.viewport[0]), int(c.viewport[1]), int(c.viewport[2]), int(c.viewport[3])
}

// ClearColor returns the cached clear color.
func (c *Context) ClearColor() [4]float32 { return c.clearColor }

// BlendMode returns the cached blend mode.
func (c *Context) BlendMode() BlendMode { return c.blend }

// CullFace returns the cached cull face mode.
func (c *Context) CullFace() CullFace { return c.cullFace }

// DepthFunc returns the cached depth function.
func (c *Context) DepthFunc() DepthFunc { return c.depthFunc }

// DepthWrite returns the cached depth mask.
func (c *Context) DepthWrite() bool { return c.depthWrite }

// LineWidth returns the cached line width.
func (c *Context) LineWidth() float32 { return c.lineWidth }

// EnabledAttributes returns the enabled flag of every attribute slot.
// The slice is owned by the context.
func (c *Context) EnabledAttributes() []bool { return c.enabledAttributes }

// The Current getters report 0 both when nothing is bound and when the
// binding is unknown (after Reset, a vertex array change for the element
// buffer, or deleting the program in use).

// CurrentBuffer returns the id bound to target.
func (c *Context) CurrentBuffer(target BufferTarget) uint32 {
	if target == ElementArrayBuffer {
		return known(c.elementBuffer)
	}
	return known(c.arrayBuffer)
}

// CurrentVertexArray returns the bound vertex array id.
func (c *Context) CurrentVertexArray() uint32 { return known(c.vertexArray) }

// CurrentFramebuffer returns the bound framebuffer id.
func (c *Context) CurrentFramebuffer() uint32 { return known(c.framebuffer) }

// CurrentRenderbuffer returns the bound renderbuffer id.
func (c *Context) CurrentRenderbuffer() uint32 { return known(c.renderbuffer) }

// CurrentProgram returns the program id in use.
func (c *Context) CurrentProgram() uint32 { return known(c.program) }

// TextureCursor returns the unit the next SetTexture call will use.
func (c *Context) TextureCursor() int { return c.textureCursor }

// ActiveTextureUnit returns the last unit passed to ActiveTexture, or -1.
func (c *Context) ActiveTextureUnit() int { return c.activeUnit }

// CurrentTexture returns the texture bound at unit, or 0.
func (c *Context) CurrentTexture(unit int) uint32 {
	if unit < 0 || unit >= len(c.textureUnits) {
		return 0
	}
	return known(c.textureUnits[unit])
}

func known(id uint32) uint32 {
	if id == unknownID {
		return 0
	}
	return id
}
