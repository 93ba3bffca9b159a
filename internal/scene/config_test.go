package scene

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glcache"
)

func TestLoadOverridesDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"demo.toml": {Data: []byte(`
[Window]
Width = 1024
Title = "demo"

[Scene]
Blend = "additive"
Cull = "None"
Depth = "lessequal"
Wrap = "MirroredRepeat"
Cubes = 2
ClearColor = [0.1, 0.2, 0.3, 1.0]
`)},
	}

	cfg, err := Load(fsys, "demo.toml")
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, glcache.BlendAdditive, cfg.Scene.Blend)
	assert.Equal(t, glcache.CullNone, cfg.Scene.Cull)
	assert.Equal(t, glcache.DepthLessEqual, cfg.Scene.Depth)
	assert.Equal(t, glcache.WrapMirroredRepeat, cfg.Scene.Wrap)
	assert.Equal(t, glcache.FilterLinear, cfg.Scene.Filter)
	assert.Equal(t, 2, cfg.Scene.Cubes)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.Scene.ClearColor)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(fstest.MapFS{}, "absent.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"unknown enum":  "[Scene]\nBlend = \"screen\"\n",
		"syntax":        "[Scene\n",
		"too many":      "[Scene]\nCubes = 9\n",
		"fov":           "[Scene]\nFOV = 180.0\n",
		"quality":       "[Output]\nQuality = 0\n",
		"window height": "[Window]\nHeight = -1\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.toml": {Data: []byte(data)}}
			_, err := Load(fsys, "bad.toml")
			assert.ErrorContains(t, err, "bad.toml")
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Scene.Blend = glcache.BlendMultiply
	cfg.Scene.Filter = glcache.FilterNearest

	out, err := Encode(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), `Blend = "Multiply"`)

	got, err := Load(fstest.MapFS{"out.toml": {Data: out}}, "out.toml")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
