package glcache

import "log/slog"

// Option configures a Context.
type Option func(*Context)

// defaults is the render state applied by Reset.
type defaults struct {
	clearColor [4]float32
	clearDepth float64
	blend      BlendMode
	cullFace   CullFace
	depthFunc  DepthFunc
	depthWrite bool
	lineWidth  float32
}

func defaultState() defaults {
	return defaults{
		clearColor: [4]float32{0, 0, 0, 1},
		clearDepth: 1,
		blend:      BlendDefault,
		cullFace:   CullBack,
		depthFunc:  DepthLess,
		depthWrite: true,
		lineWidth:  1,
	}
}

// WithClearColor sets the clear color restored by Reset.
func WithClearColor(r, g, b, a float32) Option {
	return func(c *Context) { c.defaults.clearColor = [4]float32{r, g, b, a} }
}

// WithClearDepth sets the clear depth restored by Reset.
func WithClearDepth(depth float64) Option {
	return func(c *Context) { c.defaults.clearDepth = depth }
}

// WithBlendMode sets the blend mode restored by Reset.
func WithBlendMode(mode BlendMode) Option {
	return func(c *Context) { c.defaults.blend = mode }
}

// WithCullFace sets the cull face mode restored by Reset.
func WithCullFace(mode CullFace) Option {
	return func(c *Context) { c.defaults.cullFace = mode }
}

// WithDepthFunc sets the depth function restored by Reset.
func WithDepthFunc(fn DepthFunc) Option {
	return func(c *Context) { c.defaults.depthFunc = fn }
}

// WithDepthWrite sets the depth mask restored by Reset.
func WithDepthWrite(enabled bool) Option {
	return func(c *Context) { c.defaults.depthWrite = enabled }
}

// WithLineWidth sets the line width restored by Reset.
func WithLineWidth(width float32) Option {
	return func(c *Context) { c.defaults.lineWidth = width }
}

// WithLogger sets the logger used for capability and reflection messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.log = l }
}
