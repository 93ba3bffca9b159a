package glcache

// Attribute is a reflected vertex attribute.
type Attribute struct {
	name       string
	typ        Enum
	components int
	dataType   Enum // component type of the GLSL declaration
	size       int
	location   uint32
}

// Name returns the attribute name.
func (a *Attribute) Name() string { return a.name }

// Type returns the native GLSL type.
func (a *Attribute) Type() Enum { return a.typ }

// Components returns the number of components per vertex (1 to 4).
func (a *Attribute) Components() int { return a.components }

// Size returns the declared array length, 1 for non-arrays.
func (a *Attribute) Size() int { return a.size }

// Location returns the attribute location.
func (a *Attribute) Location() uint32 { return a.location }

// Set binds b through ctx and points the attribute at it. offset is the
// index of the attribute's first component within a vertex; offset and
// the buffer stride are scaled by the buffer's component size.
func (a *Attribute) Set(ctx *Context, b *Buffer, offset int, force bool) bool {
	ctx.SetBuffer(b, force)

	typ := b.Kind()
	if typ == 0 {
		typ = a.dataType
	}
	stride := int32(b.Stride() * b.KindSize())
	return ctx.SetAttribPointer(a.location, int32(a.components), typ, stride, offset*b.KindSize(), force)
}
