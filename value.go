package glcache

import "fmt"

// ValueKind is the shape of a uniform value.
type ValueKind uint8

const (
	KindInvalid ValueKind = iota
	KindInt
	KindFloat
	KindIntVec2
	KindIntVec3
	KindIntVec4
	KindVec2
	KindVec3
	KindVec4
	KindMat2
	KindMat3
	KindMat4
	KindSampler2D
)

// Components returns the number of scalars in one element of the kind.
func (k ValueKind) Components() int {
	switch k {
	case KindInt, KindFloat, KindSampler2D:
		return 1
	case KindIntVec2, KindVec2:
		return 2
	case KindIntVec3, KindVec3:
		return 3
	case KindIntVec4, KindVec4, KindMat2:
		return 4
	case KindMat3:
		return 9
	case KindMat4:
		return 16
	}
	return 0
}

// IsInt reports whether the kind uploads through the integer entry points.
func (k ValueKind) IsInt() bool {
	return k == KindInt || k == KindIntVec2 || k == KindIntVec3 || k == KindIntVec4
}

// IsMatrix reports whether the kind is a square float matrix.
func (k ValueKind) IsMatrix() bool {
	return k == KindMat2 || k == KindMat3 || k == KindMat4
}

// matrixDim returns 2, 3 or 4 for matrix kinds.
func (k ValueKind) matrixDim() int {
	switch k {
	case KindMat2:
		return 2
	case KindMat3:
		return 3
	case KindMat4:
		return 4
	}
	return 0
}

func (k ValueKind) String() string {
	names := [...]string{"invalid", "int", "float", "ivec2", "ivec3", "ivec4", "vec2", "vec3", "vec4", "mat2", "mat3", "mat4", "sampler2D"}
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("ValueKind(%d)", k)
}

// Value is a uniform value tagged with its kind. Scalar, vector and matrix
// values are stored inline; array values and textures by reference.
// Build values with the constructors below.
type Value struct {
	kind  ValueKind
	array bool
	i     [4]int32
	f     [16]float32

	ints     []int32
	floats   []float32
	textures []*Texture
}

// Kind returns the element kind of v.
func (v Value) Kind() ValueKind { return v.kind }

// IsArray reports whether v is an array value.
func (v Value) IsArray() bool { return v.array }

// Len returns the number of elements in v (1 for non-array values).
func (v Value) Len() int {
	if !v.array {
		return 1
	}
	switch {
	case v.kind == KindSampler2D:
		return len(v.textures)
	case v.kind.IsInt():
		return len(v.ints) / v.kind.Components()
	default:
		return len(v.floats) / v.kind.Components()
	}
}

func (v Value) String() string {
	if v.array {
		return fmt.Sprintf("%s[%d]", v.kind, v.Len())
	}
	return v.kind.String()
}

// Int returns an int (or bool) value.
func Int(x int32) Value { return Value{kind: KindInt, i: [4]int32{x}} }

// Bool returns an int value holding 1 or 0.
func Bool(b bool) Value {
	if b {
		return Int(1)
	}
	return Int(0)
}

// IntVec2 returns an ivec2 value.
func IntVec2(x, y int32) Value { return Value{kind: KindIntVec2, i: [4]int32{x, y}} }

// IntVec3 returns an ivec3 value.
func IntVec3(x, y, z int32) Value { return Value{kind: KindIntVec3, i: [4]int32{x, y, z}} }

// IntVec4 returns an ivec4 value.
func IntVec4(x, y, z, w int32) Value { return Value{kind: KindIntVec4, i: [4]int32{x, y, z, w}} }

// Float returns a float value.
func Float(x float32) Value { return Value{kind: KindFloat, f: [16]float32{x}} }

// Vec2 returns a vec2 value.
func Vec2(x, y float32) Value { return Value{kind: KindVec2, f: [16]float32{x, y}} }

// Vec3 returns a vec3 value.
func Vec3(x, y, z float32) Value { return Value{kind: KindVec3, f: [16]float32{x, y, z}} }

// Vec4 returns a vec4 value.
func Vec4(x, y, z, w float32) Value { return Value{kind: KindVec4, f: [16]float32{x, y, z, w}} }

// Mat2 returns a column-major 2x2 matrix value.
func Mat2(m [4]float32) Value {
	v := Value{kind: KindMat2}
	copy(v.f[:], m[:])
	return v
}

// Mat3 returns a column-major 3x3 matrix value.
func Mat3(m [9]float32) Value {
	v := Value{kind: KindMat3}
	copy(v.f[:], m[:])
	return v
}

// Mat4 returns a column-major 4x4 matrix value.
func Mat4(m [16]float32) Value { return Value{kind: KindMat4, f: m} }

// Sampler returns a sampler2D value bound to t.
func Sampler(t *Texture) Value {
	return Value{kind: KindSampler2D, textures: []*Texture{t}}
}

// IntArray returns an array of kind elements built from flat data.
// kind must be an int kind and len(data) a multiple of its components.
func IntArray(kind ValueKind, data ...int32) Value {
	if !kind.IsInt() {
		panic(fmt.Sprintf("glcache: IntArray of non-int kind %s", kind))
	}
	if len(data) == 0 || len(data)%kind.Components() != 0 {
		panic(fmt.Sprintf("glcache: IntArray of %s with %d values", kind, len(data)))
	}
	return Value{kind: kind, array: true, ints: data}
}

// FloatArray returns an array of kind elements built from flat data.
// kind must be a float vector or matrix kind and len(data) a multiple of its
// components.
func FloatArray(kind ValueKind, data ...float32) Value {
	if kind.IsInt() || kind == KindSampler2D || kind == KindInvalid {
		panic(fmt.Sprintf("glcache: FloatArray of non-float kind %s", kind))
	}
	if len(data) == 0 || len(data)%kind.Components() != 0 {
		panic(fmt.Sprintf("glcache: FloatArray of %s with %d values", kind, len(data)))
	}
	return Value{kind: kind, array: true, floats: data}
}

// Vec2Array returns a vec2 array value.
func Vec2Array(v [][2]float32) Value {
	data := make([]float32, 0, 2*len(v))
	for _, e := range v {
		data = append(data, e[:]...)
	}
	return FloatArray(KindVec2, data...)
}

// Vec3Array returns a vec3 array value.
func Vec3Array(v [][3]float32) Value {
	data := make([]float32, 0, 3*len(v))
	for _, e := range v {
		data = append(data, e[:]...)
	}
	return FloatArray(KindVec3, data...)
}

// Vec4Array returns a vec4 array value.
func Vec4Array(v [][4]float32) Value {
	data := make([]float32, 0, 4*len(v))
	for _, e := range v {
		data = append(data, e[:]...)
	}
	return FloatArray(KindVec4, data...)
}

// Mat4Array returns a mat4 array value.
func Mat4Array(m [][16]float32) Value {
	data := make([]float32, 0, 16*len(m))
	for _, e := range m {
		data = append(data, e[:]...)
	}
	return FloatArray(KindMat4, data...)
}

// TextureArray returns a sampler2D array value; each texture gets its own
// texture unit.
func TextureArray(textures ...*Texture) Value {
	if len(textures) == 0 {
		panic("glcache: empty TextureArray")
	}
	return Value{kind: KindSampler2D, array: true, textures: textures}
}

// same reports whether v and o are equal non-array values.
func (v Value) same(o Value) bool {
	return !v.array && !o.array && v.kind == o.kind && v.i == o.i && v.f == o.f
}

// intData returns the integer components of v.
func (v Value) intData() []int32 {
	if v.array {
		return v.ints
	}
	return v.i[:v.kind.Components()]
}

// floatData returns the float components of v.
func (v Value) floatData() []float32 {
	if v.array {
		return v.floats
	}
	return v.f[:v.kind.Components()]
}
