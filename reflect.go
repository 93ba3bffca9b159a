package glcache

import (
	"regexp"
	"strings"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// subscript matches a trailing array subscript such as "[0]".
var subscript = regexp.MustCompile(`\[\d+\]$`)

// baseName strips a trailing array subscript so that array uniforms are
// addressed by their declared name.
func baseName(name string) string {
	return subscript.ReplaceAllString(name, "")
}

// uniformKind maps a native uniform type to its value kind. Booleans are
// set through the integer entry points.
func uniformKind(t Enum) (ValueKind, bool) {
	switch t {
	case gl.INT, gl.BOOL:
		return KindInt, true
	case gl.FLOAT:
		return KindFloat, true
	case gl.INT_VEC2, gl.BOOL_VEC2:
		return KindIntVec2, true
	case gl.INT_VEC3, gl.BOOL_VEC3:
		return KindIntVec3, true
	case gl.INT_VEC4, gl.BOOL_VEC4:
		return KindIntVec4, true
	case gl.FLOAT_VEC2:
		return KindVec2, true
	case gl.FLOAT_VEC3:
		return KindVec3, true
	case gl.FLOAT_VEC4:
		return KindVec4, true
	case gl.FLOAT_MAT2:
		return KindMat2, true
	case gl.FLOAT_MAT3:
		return KindMat3, true
	case gl.FLOAT_MAT4:
		return KindMat4, true
	case gl.SAMPLER_2D:
		return KindSampler2D, true
	}
	return KindInvalid, false
}

// attributeLayout maps a native attribute type to its component count and
// component type.
func attributeLayout(t Enum) (components int, dataType Enum, ok bool) {
	switch t {
	case gl.FLOAT:
		return 1, gl.FLOAT, true
	case gl.FLOAT_VEC2:
		return 2, gl.FLOAT, true
	case gl.FLOAT_VEC3:
		return 3, gl.FLOAT, true
	case gl.FLOAT_VEC4:
		return 4, gl.FLOAT, true
	case gl.INT:
		return 1, gl.INT, true
	case gl.INT_VEC2:
		return 2, gl.INT, true
	case gl.INT_VEC3:
		return 3, gl.INT, true
	case gl.INT_VEC4:
		return 4, gl.INT, true
	case gl.BOOL:
		return 1, gl.BOOL, true
	case gl.BOOL_VEC2:
		return 2, gl.BOOL, true
	case gl.BOOL_VEC3:
		return 3, gl.BOOL, true
	case gl.BOOL_VEC4:
		return 4, gl.BOOL, true
	}
	return 0, 0, false
}

// reflectUniforms builds one Uniform per active uniform of program.
func (c *Context) reflectUniforms(program uint32) (map[string]*Uniform, error) {
	d := c.driver
	n := int(d.GetProgrami(program, gl.ACTIVE_UNIFORMS))
	uniforms := make(map[string]*Uniform, n)

	for i := 0; i < n; i++ {
		raw, size, typ := d.GetActiveUniform(program, uint32(i))
		name := baseName(raw)

		location := d.GetUniformLocation(program, raw)
		if location < 0 {
			// members of uniform blocks
			continue
		}
		kind, ok := uniformKind(typ)
		if !ok {
			return nil, &UnsupportedTypeError{Name: name, What: "uniform", Type: typ}
		}
		if _, dup := uniforms[name]; dup {
			c.log.Debug("glcache: duplicate uniform, keeping last", "program", program, "name", name)
		}
		uniforms[name] = &Uniform{
			name:     name,
			typ:      typ,
			kind:     kind,
			size:     int(max(size, 1)),
			location: location,
		}
	}
	return uniforms, nil
}

// reflectAttributes builds one Attribute per active attribute of program.
// Built-in inputs such as gl_VertexID have no location and are skipped.
func (c *Context) reflectAttributes(program uint32) (map[string]*Attribute, error) {
	d := c.driver
	n := int(d.GetProgrami(program, gl.ACTIVE_ATTRIBUTES))
	attributes := make(map[string]*Attribute, n)

	for i := 0; i < n; i++ {
		raw, size, typ := d.GetActiveAttrib(program, uint32(i))
		if strings.HasPrefix(raw, "gl_") {
			continue
		}
		name := baseName(raw)

		components, dataType, ok := attributeLayout(typ)
		if !ok {
			return nil, &UnsupportedTypeError{Name: name, What: "attribute", Type: typ}
		}
		location := d.GetAttribLocation(program, raw)
		if location < 0 {
			continue
		}
		if _, dup := attributes[name]; dup {
			c.log.Debug("glcache: duplicate attribute, keeping last", "program", program, "name", name)
		}
		attributes[name] = &Attribute{
			name:       name,
			typ:        typ,
			components: components,
			dataType:   dataType,
			size:       int(max(size, 1)),
			location:   uint32(location),
		}
	}
	return attributes, nil
}
