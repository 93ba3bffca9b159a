package glcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in           string
		major, minor int
	}{
		{"4.1.0 NVIDIA 535.54", 4, 1},
		{"3.3 (Core Profile) Mesa 23.0.4", 3, 3},
		{"OpenGL ES 3.0 Mesa", 3, 0},
		{"2.1 ATI-4.6.20", 2, 1},
		{"garbage", 3, 1},
		{"", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			major, minor := parseVersion(tt.in)
			assert.Equal(t, tt.major, major)
			assert.Equal(t, tt.minor, minor)
		})
	}
}

func TestGLSLVersion(t *testing.T) {
	tests := []struct {
		major, minor         int
		glslMajor, glslMinor int
	}{
		{2, 0, 1, 1},
		{2, 1, 1, 2},
		{3, 0, 1, 3},
		{3, 1, 1, 4},
		{3, 2, 1, 5},
		{3, 3, 3, 3},
		{4, 1, 4, 1},
		{4, 6, 4, 6},
	}
	for _, tt := range tests {
		major, minor := glslVersion(tt.major, tt.minor)
		assert.Equal(t, [2]int{tt.glslMajor, tt.glslMinor}, [2]int{major, minor}, "GL %d.%d", tt.major, tt.minor)
	}
}

func TestGLSLDirective(t *testing.T) {
	tests := []struct {
		major, minor int
		want         string
	}{
		{1, 1, "#version 110"},
		{1, 2, "#version 120"},
		{1, 5, "#version 150 core"},
		{3, 3, "#version 330 core"},
		{4, 1, "#version 410 core"},
	}
	for _, tt := range tests {
		c := Capabilities{GLSLMajor: tt.major, GLSLMinor: tt.minor}
		assert.Equal(t, tt.want, c.GLSLDirective())
	}
}

func TestQueryCapabilities(t *testing.T) {
	c, _ := newTestContext()
	caps := c.Capabilities()

	assert.Equal(t, "4.1.0 Mock 1.0", caps.Version)
	assert.Equal(t, "Mock", caps.Vendor)
	assert.Equal(t, "Mock Renderer", caps.Renderer)
	assert.Equal(t, 4, caps.Major)
	assert.Equal(t, 1, caps.Minor)
	assert.Equal(t, 4, caps.MaxTextureUnits)
	assert.Equal(t, 64, caps.MaxTextureSize)
	assert.Equal(t, 64, caps.MaxRenderbufferSize)
	assert.Equal(t, 224*4, caps.MaxUniforms)
	assert.Equal(t, 15*4, caps.MaxVaryings)
	assert.Equal(t, 8, caps.MaxAttributes)
	assert.Equal(t, 16, caps.MaxAnisotropy)
	assert.Equal(t, PrecisionHigh, caps.Precision)
	assert.Equal(t, "#version 410 core", caps.GLSLDirective())

	assert.True(t, c.HasExtension("GL_ARB_debug_output"))
	assert.False(t, c.HasExtension("GL_KHR_blend_equation_advanced"))
}

func TestQueryCapabilitiesLegacyContext(t *testing.T) {
	d := newMockDriver()
	d.version = "2.1 Mesa 20.0"
	d.extensions = []string{"GL_ARB_vertex_buffer_object", "GL_EXT_framebuffer_object"}

	caps := New(d).Init().Capabilities()
	assert.Equal(t, 2, caps.Major)
	assert.Equal(t, 1, caps.Minor)
	assert.Equal(t, "#version 120", caps.GLSLDirective())
	assert.Equal(t, d.extensions, caps.Extensions)
}

func TestSupportsVersion(t *testing.T) {
	c, _ := newTestContext()
	caps := c.Capabilities()

	ok, err := caps.SupportsGL(">= 3.3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = caps.SupportsGL("^4.5")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = caps.SupportsGLSL(">= 1.5, < 5")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = caps.SupportsGL("not a constraint")
	assert.Error(t, err)

	assert.Equal(t, "4.1.0", caps.GLVersion().String())
	assert.Equal(t, "4.1.0", caps.GLSLVersion().String())
}

func TestPrecisionString(t *testing.T) {
	assert.Equal(t, "highp", PrecisionHigh.String())
	assert.Equal(t, "mediump", PrecisionMedium.String())
	assert.Equal(t, "lowp", PrecisionLow.String())
}
