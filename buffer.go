package glcache

import (
	"unsafe"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// noCopy may be embedded in structs that must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer owns a native buffer object and remembers the layout of the data
// last uploaded to it.
type Buffer struct {
	noCopy noCopy
	ctx    *Context
	id     uint32

	target   BufferTarget
	kind     Enum // component data type
	stride   int  // components per vertex
	usage    Usage
	size     int // bytes
	kindSize int // bytes per component
	count    int // components
}

// BufferElement lists the component types a buffer can hold.
type BufferElement interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32
}

// ID returns the native id, or 0 once deleted.
func (b *Buffer) ID() uint32 { return b.id }

// Target returns the binding point of the last upload.
func (b *Buffer) Target() BufferTarget { return b.target }

// Kind returns the native component type.
func (b *Buffer) Kind() Enum { return b.kind }

// Stride returns the number of components per vertex.
func (b *Buffer) Stride() int { return b.stride }

// Usage returns the usage hint of the last upload.
func (b *Buffer) Usage() Usage { return b.usage }

// Size returns the size of the data store in bytes.
func (b *Buffer) Size() int { return b.size }

// KindSize returns the byte size of one component.
func (b *Buffer) KindSize() int { return b.kindSize }

// Len returns the number of components in the buffer.
func (b *Buffer) Len() int { return b.count }

// SetBufferData uploads data to b, replacing its contents and metadata.
// stride is the number of components per vertex (0 for index data).
// The buffer is bound through the Context.
func SetBufferData[T BufferElement](b *Buffer, target BufferTarget, data []T, stride int, usage Usage) {
	var zero T
	kindSize := int(unsafe.Sizeof(zero))

	b.target = target
	b.kind = elementKind(zero)
	b.stride = stride
	b.usage = usage
	b.kindSize = kindSize
	b.count = len(data)
	b.size = kindSize * len(data)

	b.ctx.SetBuffer(b, false)

	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	b.ctx.driver.BufferData(target.GL(), b.size, ptr, usage.GL())
}

func elementKind(v any) Enum {
	switch v.(type) {
	case int8:
		return gl.BYTE
	case uint8:
		return gl.UNSIGNED_BYTE
	case int16:
		return gl.SHORT
	case uint16:
		return gl.UNSIGNED_SHORT
	case int32:
		return gl.INT
	case uint32:
		return gl.UNSIGNED_INT
	default:
		return gl.FLOAT
	}
}

// IndexKind returns the index type matching the buffer's components.
// It panics if the buffer does not hold unsigned integers.
func (b *Buffer) IndexKind() IndexKind {
	switch b.kind {
	case gl.UNSIGNED_BYTE:
		return IndexUnsignedByte
	case gl.UNSIGNED_SHORT:
		return IndexUnsignedShort
	case gl.UNSIGNED_INT:
		return IndexUnsignedInt
	}
	panic("glcache: buffer does not hold index data")
}

// Delete releases the native buffer. It is safe to call more than once.
func (b *Buffer) Delete() {
	if b.id == 0 {
		return
	}
	b.ctx.forgetBuffer(b.id)
	b.ctx.driver.DeleteBuffer(b.id)
	b.id = 0
}
