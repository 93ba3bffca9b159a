package glcache

import (
	"fmt"
	"maps"
	"slices"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// Program owns a linked shader program and the setters reflected from it.
// The native program is created by Set; until then ID returns 0.
type Program struct {
	noCopy noCopy
	ctx    *Context
	id     uint32

	attributes map[string]*Attribute
	uniforms   map[string]*Uniform
}

// ID returns the native id, or 0 before Set or after Delete.
func (p *Program) ID() uint32 { return p.id }

// Set compiles and links the two shader sources and rebuilds the
// attribute and uniform maps. On failure the previous program is left
// untouched and a *ShaderError or *UnsupportedTypeError is returned.
func (p *Program) Set(vertex, fragment string) error {
	return p.SetMultiple([]string{vertex}, []string{fragment})
}

// SetMultiple is like Set but concatenates a list of sources per stage.
func (p *Program) SetMultiple(vertex, fragment []string) error {
	d := p.ctx.driver

	vs, err := compileShader(d, gl.VERTEX_SHADER, vertex)
	if err != nil {
		return err
	}
	defer d.DeleteShader(vs)

	fs, err := compileShader(d, gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		return err
	}
	defer d.DeleteShader(fs)

	id, err := linkProgram(d, vs, fs)
	if err != nil {
		return err
	}

	uniforms, err := p.ctx.reflectUniforms(id)
	if err != nil {
		d.DeleteProgram(id)
		return err
	}
	attributes, err := p.ctx.reflectAttributes(id)
	if err != nil {
		d.DeleteProgram(id)
		return err
	}

	p.release()
	p.id = id
	p.uniforms = uniforms
	p.attributes = attributes

	p.ctx.log.Debug("glcache: program linked",
		"id", id,
		"uniforms", len(uniforms),
		"attributes", len(attributes))
	if verbose() {
		for _, name := range slices.Sorted(maps.Keys(uniforms)) {
			u := uniforms[name]
			p.ctx.log.Debug("glcache: uniform", "name", name, "kind", u.kind.String(), "size", u.size, "location", u.location)
		}
		for _, name := range slices.Sorted(maps.Keys(attributes)) {
			a := attributes[name]
			p.ctx.log.Debug("glcache: attribute", "name", name, "components", a.components, "location", a.location)
		}
	}
	return nil
}

// MustSet is like Set but panics on error.
func (p *Program) MustSet(vertex, fragment string) *Program {
	if err := p.Set(vertex, fragment); err != nil {
		panic(err)
	}
	return p
}

func compileShader(d Driver, typ Enum, sources []string) (uint32, error) {
	shader := d.CreateShader(typ)
	d.ShaderSource(shader, sources...)
	d.CompileShader(shader)

	if d.GetShaderi(shader, gl.COMPILE_STATUS) == gl.FALSE {
		log := d.GetShaderInfoLog(shader)
		d.DeleteShader(shader)
		return 0, &ShaderError{Stage: stageName(typ), Log: log}
	}
	return shader, nil
}

func stageName(typ Enum) string {
	if typ == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

func linkProgram(d Driver, vs, fs uint32) (uint32, error) {
	program := d.CreateProgram()
	d.AttachShader(program, vs)
	d.AttachShader(program, fs)
	d.LinkProgram(program)

	if d.GetProgrami(program, gl.LINK_STATUS) == gl.FALSE {
		log := d.GetProgramInfoLog(program)
		d.DeleteProgram(program)
		return 0, &ShaderError{Stage: "link", Log: log}
	}
	return program, nil
}

// Uniforms returns the reflected uniforms keyed by name.
// The map is owned by the program.
func (p *Program) Uniforms() map[string]*Uniform { return p.uniforms }

// Attributes returns the reflected attributes keyed by name.
// The map is owned by the program.
func (p *Program) Attributes() map[string]*Attribute { return p.attributes }

// HasUniform reports whether the program has an active uniform name.
func (p *Program) HasUniform(name string) bool {
	_, ok := p.uniforms[name]
	return ok
}

// HasAttribute reports whether the program has an active attribute name.
func (p *Program) HasAttribute(name string) bool {
	_, ok := p.attributes[name]
	return ok
}

// Uniform returns the named uniform or nil.
func (p *Program) Uniform(name string) *Uniform { return p.uniforms[name] }

// Attribute returns the named attribute or nil.
func (p *Program) Attribute(name string) *Attribute { return p.attributes[name] }

// SetUniform sets the named uniform. It panics if there is none.
// The program is not bound; call Context.SetProgram first.
func (p *Program) SetUniform(name string, v Value, force bool) bool {
	return p.mustUniform(name).Set(p.ctx, v, force)
}

// SetUniformUnchecked sets the named uniform without consulting its cache.
func (p *Program) SetUniformUnchecked(name string, v Value) bool {
	return p.mustUniform(name).SetUnchecked(p.ctx, v)
}

// SetAttribute points the named attribute at b. It panics if there is
// none.
func (p *Program) SetAttribute(name string, b *Buffer, offset int, force bool) bool {
	a, ok := p.attributes[name]
	if !ok {
		panic(fmt.Sprintf("glcache: no attribute named %q", name))
	}
	return a.Set(p.ctx, b, offset, force)
}

func (p *Program) mustUniform(name string) *Uniform {
	u, ok := p.uniforms[name]
	if !ok {
		panic(fmt.Sprintf("glcache: no uniform named %q", name))
	}
	return u
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() {
	p.release()
	clear(p.uniforms)
	clear(p.attributes)
}

func (p *Program) release() {
	if p.id == 0 {
		return
	}
	p.ctx.forgetProgram(p.id)
	p.ctx.driver.DeleteProgram(p.id)
	p.id = 0
}
