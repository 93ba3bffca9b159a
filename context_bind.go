package glcache

import (
	"fmt"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// unknownID marks a binding slot whose native value is not known, so the
// next Set always reaches the driver.
const unknownID = ^uint32(0)

// EnableAttribute enables the vertex attribute array at index.
func (c *Context) EnableAttribute(index uint32, force bool) bool {
	c.checkAttribute(index)
	if !force && c.enabledAttributes[index] {
		return false
	}
	c.driver.EnableVertexAttribArray(index)
	c.enabledAttributes[index] = true
	return true
}

// DisableAttribute disables the vertex attribute array at index if it is
// enabled.
func (c *Context) DisableAttribute(index uint32) bool {
	c.checkAttribute(index)
	if !c.enabledAttributes[index] {
		return false
	}
	c.driver.DisableVertexAttribArray(index)
	c.enabledAttributes[index] = false
	return true
}

// DisableAttributes disables every enabled vertex attribute array.
func (c *Context) DisableAttributes() {
	for i, enabled := range c.enabledAttributes {
		if enabled {
			c.driver.DisableVertexAttribArray(uint32(i))
			c.enabledAttributes[i] = false
		}
	}
}

func (c *Context) checkAttribute(index uint32) {
	if int(index) >= len(c.enabledAttributes) {
		panic(fmt.Sprintf("glcache: attribute %d out of range (max %d)", index, len(c.enabledAttributes)))
	}
}

// SetAttribPointer enables the attribute at location and points it at the
// bound array buffer. stride and offset are in bytes. The pointer is only
// respecified when the enable was issued, since binding a new array buffer
// disables every attribute.
func (c *Context) SetAttribPointer(location uint32, size int32, typ Enum, stride int32, offset int, force bool) bool {
	if !c.EnableAttribute(location, force) {
		return false
	}
	c.driver.VertexAttribPointer(location, size, typ, false, stride, offset)
	return true
}

// SetBuffer binds b to its target. Array and element buffers are cached in
// separate slots. Changing the array buffer disables every enabled
// attribute first, because attribute pointers refer to the buffer they were
// specified with.
func (c *Context) SetBuffer(b *Buffer, force bool) bool {
	return c.bindBuffer(b.target, b.id, force)
}

// SetBufferUnchecked binds b without consulting the cache.
func (c *Context) SetBufferUnchecked(b *Buffer) bool {
	return c.SetBuffer(b, true)
}

// RemoveBuffer unbinds the buffer bound to target.
func (c *Context) RemoveBuffer(target BufferTarget, force bool) bool {
	return c.bindBuffer(target, 0, force)
}

func (c *Context) bindBuffer(target BufferTarget, id uint32, force bool) bool {
	slot := &c.arrayBuffer
	if target == ElementArrayBuffer {
		slot = &c.elementBuffer
	}
	if !force && *slot == id {
		return false
	}
	if target == ArrayBuffer {
		c.DisableAttributes()
	}
	c.driver.BindBuffer(target.GL(), id)
	*slot = id
	return true
}

// SetVertexArray binds va. The element buffer binding and the enabled
// attribute arrays belong to the vertex array, so both are forgotten when
// the binding changes.
func (c *Context) SetVertexArray(va *VertexArray, force bool) bool {
	return c.bindVertexArray(va.id, force)
}

// SetVertexArrayUnchecked binds va without consulting the cache.
func (c *Context) SetVertexArrayUnchecked(va *VertexArray) bool {
	return c.SetVertexArray(va, true)
}

// RemoveVertexArray binds the default vertex array.
func (c *Context) RemoveVertexArray(force bool) bool {
	return c.bindVertexArray(0, force)
}

func (c *Context) bindVertexArray(id uint32, force bool) bool {
	if !force && c.vertexArray == id {
		return false
	}
	c.driver.BindVertexArray(id)
	if c.vertexArray != id {
		c.elementBuffer = unknownID
		clear(c.enabledAttributes)
	}
	c.vertexArray = id
	return true
}

// SetFramebuffer binds fb as the render target. Viewport and clear color
// are scoped to the target, so a change also calls SoftReset.
func (c *Context) SetFramebuffer(fb *Framebuffer, force bool) bool {
	return c.bindFramebuffer(fb.id, force)
}

// SetFramebufferUnchecked binds fb without consulting the cache.
func (c *Context) SetFramebufferUnchecked(fb *Framebuffer) bool {
	return c.SetFramebuffer(fb, true)
}

// RemoveFramebuffer binds the default framebuffer.
func (c *Context) RemoveFramebuffer(force bool) bool {
	return c.bindFramebuffer(0, force)
}

func (c *Context) bindFramebuffer(id uint32, force bool) bool {
	if !force && c.framebuffer == id {
		return false
	}
	c.driver.BindFramebuffer(gl.FRAMEBUFFER, id)
	c.framebuffer = id
	c.SoftReset()
	return true
}

// SetRenderbuffer binds rb.
func (c *Context) SetRenderbuffer(rb *Renderbuffer, force bool) bool {
	return c.bindRenderbuffer(rb.id, force)
}

// SetRenderbufferUnchecked binds rb without consulting the cache.
func (c *Context) SetRenderbufferUnchecked(rb *Renderbuffer) bool {
	return c.SetRenderbuffer(rb, true)
}

// RemoveRenderbuffer unbinds the renderbuffer.
func (c *Context) RemoveRenderbuffer(force bool) bool {
	return c.bindRenderbuffer(0, force)
}

func (c *Context) bindRenderbuffer(id uint32, force bool) bool {
	if !force && c.renderbuffer == id {
		return false
	}
	c.driver.BindRenderbuffer(gl.RENDERBUFFER, id)
	c.renderbuffer = id
	return true
}

// SetProgram makes p the current program and restarts texture unit
// allocation at unit 0.
//
// Sampler uniforms hold a unit index per program, so a program change
// forgets every sampler declaration. Rebinding the same program after
// textures were assigned also forces the next SetTexture calls to
// redeclare their unit.
func (c *Context) SetProgram(p *Program, force bool) bool {
	return c.useProgram(p.id, force)
}

// SetProgramUnchecked makes p current without consulting the cache.
func (c *Context) SetProgramUnchecked(p *Program) bool {
	return c.SetProgram(p, true)
}

// RemoveProgram unbinds the current program.
func (c *Context) RemoveProgram(force bool) bool {
	return c.useProgram(0, force)
}

func (c *Context) useProgram(id uint32, force bool) bool {
	issued := false
	if force || c.program != id {
		c.driver.UseProgram(id)
		c.program = id
		clear(c.samplerUnits)
		c.rebindSampler = true
		issued = true
	} else {
		c.rebindSampler = c.textureCursor != 0
	}
	c.textureCursor = 0
	return issued
}

// SetTexture assigns the next free texture unit to the sampler uniform at
// location and binds t there. Each call since the last draw or program
// bind takes the next unit; running past MaxTextureUnits panics.
//
// The sampler uniform is only declared when its unit changed (or after a
// program bind). BindTexture, and the ActiveTexture it needs, are only
// issued when the unit holds a different texture. The result reports
// whether any native call was made.
func (c *Context) SetTexture(location int32, t *Texture, force bool) bool {
	unit := c.nextUnit()
	issued := false

	if prev, ok := c.samplerUnits[location]; force || c.rebindSampler || !ok || prev != int32(unit) {
		c.driver.Uniform1i(location, int32(unit))
		c.samplerUnits[location] = int32(unit)
		issued = true
	}

	if c.bindUnit(unit, t.ID(), force) {
		issued = true
	}
	return issued
}

// SetTextureUnchecked binds t without consulting the cache.
func (c *Context) SetTextureUnchecked(location int32, t *Texture) bool {
	return c.SetTexture(location, t, true)
}

// SetTextures binds a sampler array: each texture takes the next unit and
// the unit list is always uploaded.
func (c *Context) SetTextures(location int32, textures []*Texture, force bool) bool {
	units := make([]int32, len(textures))
	for i, t := range textures {
		unit := c.nextUnit()
		c.bindUnit(unit, t.ID(), force)
		units[i] = int32(unit)
	}
	c.driver.Uniformiv(location, 1, units)
	if len(units) > 0 {
		c.samplerUnits[location] = units[0]
	}
	return true
}

// RemoveTexture unbinds the texture from the active unit and restarts unit
// allocation.
func (c *Context) RemoveTexture(force bool) bool {
	c.textureCursor = 0
	unit := max(c.activeUnit, 0)
	return c.bindUnit(unit, 0, force)
}

func (c *Context) nextUnit() int {
	unit := c.textureCursor
	if unit >= len(c.textureUnits) {
		panic(fmt.Sprintf("glcache: texture unit %d exceeds MaxTextureUnits (%d)", unit, len(c.textureUnits)))
	}
	c.textureCursor++
	return unit
}

func (c *Context) activate(unit int, force bool) {
	if !force && c.activeUnit == unit {
		return
	}
	c.driver.ActiveTexture(gl.TEXTURE0 + Enum(unit))
	c.activeUnit = unit
}

// bindUnit binds id at unit, making the unit active first when needed.
func (c *Context) bindUnit(unit int, id uint32, force bool) bool {
	if unit < len(c.textureUnits) {
		if !force && c.textureUnits[unit] == id {
			return false
		}
		c.textureUnits[unit] = id
	}
	c.activate(unit, force)
	c.driver.BindTexture(gl.TEXTURE_2D, id)
	return true
}

// bindForUpload binds t on the active unit so its storage or parameters
// can be changed. The unit cache is updated to match.
func (c *Context) bindForUpload(t *Texture) {
	c.bindUnit(max(c.activeUnit, 0), t.id, false)
}

// forgetTexture clears every unit still holding id. The GL unbinds a
// deleted texture from all units.
func (c *Context) forgetTexture(id uint32) {
	for i, bound := range c.textureUnits {
		if bound == id {
			c.textureUnits[i] = 0
		}
	}
}

func (c *Context) forgetBuffer(id uint32) {
	if c.arrayBuffer == id {
		c.arrayBuffer = 0
	}
	if c.elementBuffer == id {
		c.elementBuffer = 0
	}
}

func (c *Context) forgetVertexArray(id uint32) {
	if c.vertexArray == id {
		c.vertexArray = 0
		c.elementBuffer = unknownID
		clear(c.enabledAttributes)
	}
}

func (c *Context) forgetFramebuffer(id uint32) {
	if c.framebuffer == id {
		c.framebuffer = 0
		c.SoftReset()
	}
}

func (c *Context) forgetRenderbuffer(id uint32) {
	if c.renderbuffer == id {
		c.renderbuffer = 0
	}
}

// forgetProgram is called when the current program is deleted. The GL keeps
// a deleted program in use until another is bound, so the slot is marked
// unknown rather than zero.
func (c *Context) forgetProgram(id uint32) {
	if c.program == id {
		c.program = unknownID
	}
}
