package glcache

import "github.com/go-theft-auto/glcache/internal/gl"

// SetViewport sets the viewport rectangle.
func (c *Context) SetViewport(x, y, width, height int, force bool) bool {
	v := [4]int32{int32(x), int32(y), int32(width), int32(height)}
	if !force && v == c.viewport {
		return false
	}
	c.viewport = v
	c.driver.Viewport(v[0], v[1], v[2], v[3])
	return true
}

// SetViewportUnchecked sets the viewport without consulting the cache.
func (c *Context) SetViewportUnchecked(x, y, width, height int) bool {
	return c.SetViewport(x, y, width, height, true)
}

// SetClearColor sets the color used by Clear.
func (c *Context) SetClearColor(r, g, b, a float32, force bool) bool {
	col := [4]float32{r, g, b, a}
	if !force && col == c.clearColor {
		return false
	}
	c.clearColor = col
	c.driver.ClearColor(r, g, b, a)
	return true
}

// SetClearColorUnchecked sets the clear color without consulting the cache.
func (c *Context) SetClearColorUnchecked(r, g, b, a float32) bool {
	return c.SetClearColor(r, g, b, a, true)
}

// SetClearDepth sets the depth value used by Clear.
func (c *Context) SetClearDepth(depth float64, force bool) bool {
	if !force && depth == c.clearDepth {
		return false
	}
	c.clearDepth = depth
	c.driver.ClearDepth(depth)
	return true
}

// SetClearDepthUnchecked sets the clear depth without consulting the cache.
func (c *Context) SetClearDepthUnchecked(depth float64) bool {
	return c.SetClearDepth(depth, true)
}

// SetClearStencil sets the stencil value used by Clear.
func (c *Context) SetClearStencil(s int, force bool) bool {
	if !force && int32(s) == c.clearStencil {
		return false
	}
	c.clearStencil = int32(s)
	c.driver.ClearStencil(int32(s))
	return true
}

// SetClearStencilUnchecked sets the clear stencil without consulting the cache.
func (c *Context) SetClearStencilUnchecked(s int) bool {
	return c.SetClearStencil(s, true)
}

// SetDepthWrite enables or disables writes to the depth buffer.
func (c *Context) SetDepthWrite(enabled, force bool) bool {
	if !force && enabled == c.depthWrite {
		return false
	}
	c.depthWrite = enabled
	c.driver.DepthMask(enabled)
	return true
}

// SetDepthWriteUnchecked sets the depth mask without consulting the cache.
func (c *Context) SetDepthWriteUnchecked(enabled bool) bool {
	return c.SetDepthWrite(enabled, true)
}

// SetDepthRange sets the mapping of depth values to window coordinates.
func (c *Context) SetDepthRange(near, far float64, force bool) bool {
	if !force && near == c.depthRangeNear && far == c.depthRangeFar {
		return false
	}
	c.depthRangeNear = near
	c.depthRangeFar = far
	c.driver.DepthRange(near, far)
	return true
}

// SetDepthRangeUnchecked sets the depth range without consulting the cache.
func (c *Context) SetDepthRangeUnchecked(near, far float64) bool {
	return c.SetDepthRange(near, far, true)
}

// SetLineWidth sets the rasterized width of lines.
func (c *Context) SetLineWidth(width float32, force bool) bool {
	if !force && width == c.lineWidth {
		return false
	}
	c.lineWidth = width
	c.driver.LineWidth(width)
	return true
}

// SetLineWidthUnchecked sets the line width without consulting the cache.
func (c *Context) SetLineWidthUnchecked(width float32) bool {
	return c.SetLineWidth(width, true)
}

// SetBlendMode selects a blend preset. BLEND is enabled the first time a
// mode other than BlendNone is set and disabled again by BlendNone.
func (c *Context) SetBlendMode(mode BlendMode, force bool) bool {
	if !force && mode == c.blend {
		return false
	}
	if mode == BlendNone {
		c.driver.Disable(gl.BLEND)
		c.blendDisabled = true
		c.blend = mode
		return true
	}

	f := mode.factors()
	if c.blendDisabled {
		c.driver.Enable(gl.BLEND)
		c.blendDisabled = false
	}
	if f.separate {
		c.driver.BlendEquationSeparate(f.eqRGB, f.eqAlpha)
		c.driver.BlendFuncSeparate(f.srcRGB, f.dstRGB, f.srcAlpha, f.dstAlpha)
	} else {
		c.driver.BlendEquation(f.eqRGB)
		c.driver.BlendFunc(f.srcRGB, f.dstRGB)
	}
	c.blend = mode
	return true
}

// SetBlendModeUnchecked sets the blend mode without consulting the cache.
func (c *Context) SetBlendModeUnchecked(mode BlendMode) bool {
	return c.SetBlendMode(mode, true)
}

// SetCullFace selects the culled faces. CULL_FACE is enabled lazily and
// disabled by CullNone.
func (c *Context) SetCullFace(mode CullFace, force bool) bool {
	if !force && mode == c.cullFace {
		return false
	}
	if mode == CullNone {
		c.driver.Disable(gl.CULL_FACE)
		c.cullFaceDisabled = true
		c.cullFace = mode
		return true
	}

	face := mode.GL()
	if c.cullFaceDisabled {
		c.driver.Enable(gl.CULL_FACE)
		c.cullFaceDisabled = false
	}
	c.driver.CullFace(face)
	c.cullFace = mode
	return true
}

// SetCullFaceUnchecked sets the cull face mode without consulting the cache.
func (c *Context) SetCullFaceUnchecked(mode CullFace) bool {
	return c.SetCullFace(mode, true)
}

// SetDepthFunc selects the depth comparison. DEPTH_TEST is enabled lazily
// and disabled by DepthNone.
func (c *Context) SetDepthFunc(fn DepthFunc, force bool) bool {
	if !force && fn == c.depthFunc {
		return false
	}
	if fn == DepthNone {
		c.driver.Disable(gl.DEPTH_TEST)
		c.depthTestDisabled = true
		c.depthFunc = fn
		return true
	}

	cmp := fn.GL()
	if c.depthTestDisabled {
		c.driver.Enable(gl.DEPTH_TEST)
		c.depthTestDisabled = false
	}
	c.driver.DepthFunc(cmp)
	c.depthFunc = fn
	return true
}

// SetDepthFuncUnchecked sets the depth function without consulting the cache.
func (c *Context) SetDepthFuncUnchecked(fn DepthFunc) bool {
	return c.SetDepthFunc(fn, true)
}
