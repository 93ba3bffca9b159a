package glcache

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/go-theft-auto/glcache/internal/gl"
)

// Precision is the highest float precision both shader stages support.
type Precision uint8

const (
	PrecisionHigh Precision = iota
	PrecisionMedium
	PrecisionLow
)

// String returns the GLSL qualifier ("highp", "mediump", "lowp").
func (p Precision) String() string {
	switch p {
	case PrecisionHigh:
		return "highp"
	case PrecisionMedium:
		return "mediump"
	case PrecisionLow:
		return "lowp"
	}
	return fmt.Sprintf("Precision(%d)", p)
}

// Capabilities is the device snapshot taken by Context.Reset.
type Capabilities struct {
	Version   string // raw GL_VERSION string
	Vendor    string
	Renderer  string
	Major     int
	Minor     int
	GLSLMajor int
	GLSLMinor int

	Extensions []string

	MaxAnisotropy         int
	MaxTextureUnits       int
	MaxVertexTextureUnits int
	MaxTextureSize        int
	MaxCubeTextureSize    int
	MaxRenderbufferSize   int

	MaxUniforms   int // components, min of vertex and fragment stages
	MaxVaryings   int // components
	MaxAttributes int

	Precision Precision
}

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)`)

// queryCapabilities reads the device limits through d.
func queryCapabilities(d Driver) Capabilities {
	var c Capabilities

	c.Precision = queryPrecision(d)

	c.Version = d.GetString(gl.VERSION)
	c.Vendor = d.GetString(gl.VENDOR)
	c.Renderer = d.GetString(gl.RENDERER)

	// MAJOR_VERSION and MINOR_VERSION only exist from 3.0 on.
	if major, minor := parseVersion(c.Version); major > 2 {
		c.Major = int(d.GetInteger(gl.MAJOR_VERSION))
		c.Minor = int(d.GetInteger(gl.MINOR_VERSION))
	} else {
		c.Major, c.Minor = major, minor
	}
	c.GLSLMajor, c.GLSLMinor = glslVersion(c.Major, c.Minor)
	c.Extensions = queryExtensions(d, c.Major)

	c.MaxTextureUnits = int(d.GetInteger(gl.MAX_TEXTURE_IMAGE_UNITS))
	c.MaxVertexTextureUnits = int(d.GetInteger(gl.MAX_VERTEX_TEXTURE_IMAGE_UNITS))
	c.MaxTextureSize = int(d.GetInteger(gl.MAX_TEXTURE_SIZE))
	c.MaxCubeTextureSize = int(d.GetInteger(gl.MAX_CUBE_MAP_TEXTURE_SIZE))
	c.MaxRenderbufferSize = int(d.GetInteger(gl.MAX_RENDERBUFFER_SIZE))

	vsUniforms := int(d.GetInteger(gl.MAX_VERTEX_UNIFORM_VECTORS))
	fsUniforms := int(d.GetInteger(gl.MAX_FRAGMENT_UNIFORM_VECTORS))
	c.MaxUniforms = min(vsUniforms, fsUniforms) * 4
	c.MaxVaryings = int(d.GetInteger(gl.MAX_VARYING_VECTORS)) * 4
	c.MaxAttributes = int(d.GetInteger(gl.MAX_VERTEX_ATTRIBS))

	if c.HasExtension("GL_EXT_texture_filter_anisotropic") || c.HasExtension("GL_ARB_texture_filter_anisotropic") {
		c.MaxAnisotropy = int(d.GetFloat(gl.MAX_TEXTURE_MAX_ANISOTROPY))
	}

	return c
}

func queryPrecision(d Driver) Precision {
	vsHigh := d.GetShaderPrecisionFormat(gl.VERTEX_SHADER, gl.HIGH_FLOAT)
	fsHigh := d.GetShaderPrecisionFormat(gl.FRAGMENT_SHADER, gl.HIGH_FLOAT)
	if vsHigh > 0 && fsHigh > 0 {
		return PrecisionHigh
	}
	vsMedium := d.GetShaderPrecisionFormat(gl.VERTEX_SHADER, gl.MEDIUM_FLOAT)
	fsMedium := d.GetShaderPrecisionFormat(gl.FRAGMENT_SHADER, gl.MEDIUM_FLOAT)
	if vsMedium > 0 && fsMedium > 0 {
		return PrecisionMedium
	}
	return PrecisionLow
}

// parseVersion extracts "major.minor" from a GL_VERSION string such as
// "4.1.0 NVIDIA 535.54" or "OpenGL ES 3.0 Mesa". Unparseable strings are
// treated as 3.1.
func parseVersion(s string) (major, minor int) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return 3, 1
	}
	major, _ = strconv.Atoi(m[1])
	minor, _ = strconv.Atoi(m[2])
	return major, minor
}

// glslVersion maps a GL version to the GLSL version it ships with.
// GL 2.0..3.2 carry GLSL 1.10..1.50; from 3.3 on the numbers match.
func glslVersion(major, minor int) (int, int) {
	if major <= 3 && minor <= 2 {
		switch {
		case major == 3 && minor == 2:
			return 1, 5
		case major == 3 && minor == 1:
			return 1, 4
		case major == 3 && minor == 0:
			return 1, 3
		case major == 2 && minor == 1:
			return 1, 2
		}
		return 1, 1
	}
	return major, minor
}

func queryExtensions(d Driver, major int) []string {
	if major > 2 {
		n := int(d.GetInteger(gl.NUM_EXTENSIONS))
		exts := make([]string, 0, n)
		for i := 0; i < n; i++ {
			exts = append(exts, d.GetStringi(gl.EXTENSIONS, uint32(i)))
		}
		return exts
	}
	return strings.Fields(d.GetString(gl.EXTENSIONS))
}

// HasExtension reports whether the named extension is available.
func (c *Capabilities) HasExtension(name string) bool {
	return slices.Contains(c.Extensions, name)
}

// GLVersion returns the GL version as a semantic version.
func (c *Capabilities) GLVersion() *semver.Version {
	return semver.New(uint64(c.Major), uint64(c.Minor), 0, "", "")
}

// GLSLVersion returns the GLSL version as a semantic version
// (1.50 is reported as 1.5.0, 4.10 as 4.1.0).
func (c *Capabilities) GLSLVersion() *semver.Version {
	return semver.New(uint64(c.GLSLMajor), uint64(c.GLSLMinor), 0, "", "")
}

// GLSLDirective returns the "#version" line for the context, e.g.
// "#version 410 core" or "#version 120".
func (c *Capabilities) GLSLDirective() string {
	n := c.GLSLMajor*100 + c.GLSLMinor*10
	if n >= 150 {
		return fmt.Sprintf("#version %d core", n)
	}
	return fmt.Sprintf("#version %d", n)
}

// SupportsGL reports whether the GL version satisfies constraint,
// e.g. ">= 3.3".
func (c *Capabilities) SupportsGL(constraint string) (bool, error) {
	return check(constraint, c.GLVersion())
}

// SupportsGLSL reports whether the GLSL version satisfies constraint.
func (c *Capabilities) SupportsGLSL(constraint string) (bool, error) {
	return check(constraint, c.GLSLVersion())
}

func check(constraint string, v *semver.Version) (bool, error) {
	cs, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parse version constraint %q: %w", constraint, err)
	}
	return cs.Check(v), nil
}
