package glcache

import "fmt"

// Uniform is a reflected uniform variable. One Uniform type covers every
// supported shape; the upload entry point is chosen by its ValueKind.
type Uniform struct {
	name     string
	typ      Enum
	kind     ValueKind
	size     int
	location int32

	// last uploaded value, scalar, vector and matrix uniforms only
	value  Value
	cached bool
}

// Name returns the uniform name with any array subscript removed.
func (u *Uniform) Name() string { return u.name }

// Type returns the native GLSL type.
func (u *Uniform) Type() Enum { return u.typ }

// Kind returns the value kind Set expects.
func (u *Uniform) Kind() ValueKind { return u.kind }

// Size returns the declared array length, 1 for non-arrays.
func (u *Uniform) Size() int { return u.size }

// Location returns the uniform location.
func (u *Uniform) Location() int32 { return u.location }

// IsArray reports whether the uniform was declared as an array. Array
// uniforms are uploaded on every Set.
func (u *Uniform) IsArray() bool { return u.size > 1 }

// Set uploads v unless it equals the last uploaded value and force is
// false. Samplers are bound through ctx, which assigns the texture unit.
// A value of the wrong kind or shape panics.
func (u *Uniform) Set(ctx *Context, v Value, force bool) bool {
	u.check(v)

	if u.kind == KindSampler2D {
		if u.IsArray() {
			return ctx.SetTextures(u.location, v.textures, force)
		}
		return ctx.SetTexture(u.location, v.textures[0], force)
	}

	if !u.IsArray() {
		if !force && u.cached && u.value.same(v) {
			return false
		}
		u.value = v
		u.cached = true
	}
	u.upload(ctx.driver, v)
	return true
}

// SetUnchecked uploads v without comparing it to the cached value. The
// cache is still updated.
func (u *Uniform) SetUnchecked(ctx *Context, v Value) bool {
	return u.Set(ctx, v, true)
}

func (u *Uniform) check(v Value) {
	if v.kind != u.kind {
		panic(fmt.Sprintf("glcache: uniform %q is %s, got %s", u.name, u.kind, v.kind))
	}
	if v.array != u.IsArray() {
		panic(fmt.Sprintf("glcache: uniform %q is %s[%d], got %s", u.name, u.kind, u.size, v))
	}
	if v.array && v.Len() > u.size {
		panic(fmt.Sprintf("glcache: uniform %q holds %d elements, got %d", u.name, u.size, v.Len()))
	}
}

func (u *Uniform) upload(d Driver, v Value) {
	switch k := v.kind; {
	case k.IsMatrix():
		d.UniformMatrixfv(u.location, k.matrixDim(), v.floatData())
	case k.IsInt():
		d.Uniformiv(u.location, k.Components(), v.intData())
	default:
		d.Uniformfv(u.location, k.Components(), v.floatData())
	}
}
