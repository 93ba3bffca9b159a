package glcache

// VertexArray owns a native vertex array object.
type VertexArray struct {
	noCopy noCopy
	ctx    *Context
	id     uint32
}

// ID returns the native id, or 0 once deleted.
func (va *VertexArray) ID() uint32 { return va.id }

// Delete releases the vertex array. It is safe to call more than once.
func (va *VertexArray) Delete() {
	if va.id == 0 {
		return
	}
	va.ctx.forgetVertexArray(va.id)
	va.ctx.driver.DeleteVertexArray(va.id)
	va.id = 0
}
