// Package scene holds the demo scene shared by the example window and the
// doc/gen capture tool: its TOML configuration, mesh, texture, shaders and
// matrices.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/go-theft-auto/glcache"
)

// Config is the TOML configuration of the demo.
type Config struct {
	Window WindowConfig
	Scene  SceneConfig
	Output OutputConfig
}

// WindowConfig sizes the window.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// SceneConfig selects the render state and animation of the scene.
type SceneConfig struct {
	ClearColor [4]float32
	Blend      glcache.BlendMode
	Cull       glcache.CullFace
	Depth      glcache.DepthFunc
	Filter     glcache.FilterMode
	Wrap       glcache.TextureWrap
	FOV        float32 // degrees
	Spin       float32 // radians per second
	Tint       [4]float32
	Cubes      int
}

// OutputConfig controls doc/gen captures.
type OutputConfig struct {
	Dir     string
	Width   int
	Height  int
	Quality int
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 800, Height: 600, Title: "glcache example", VSync: true},
		Scene: SceneConfig{
			ClearColor: [4]float32{0.12, 0.12, 0.14, 1},
			Blend:      glcache.BlendDefault,
			Cull:       glcache.CullBack,
			Depth:      glcache.DepthLess,
			Filter:     glcache.FilterLinear,
			Wrap:       glcache.WrapRepeat,
			FOV:        60,
			Spin:       0.8,
			Tint:       [4]float32{1, 1, 1, 1},
			Cubes:      3,
		},
		Output: OutputConfig{Dir: "doc/imgs", Width: 320, Height: 240, Quality: 90},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(fsys fs.FS, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFS(fsys, path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Output.Width <= 0 || c.Output.Height <= 0:
		return fmt.Errorf("output size %dx%d", c.Output.Width, c.Output.Height)
	case c.Output.Quality < 1 || c.Output.Quality > 100:
		return fmt.Errorf("jpeg quality %d", c.Output.Quality)
	case c.Scene.FOV <= 0 || c.Scene.FOV >= 180:
		return fmt.Errorf("fov %g", c.Scene.FOV)
	case c.Scene.Cubes < 1 || c.Scene.Cubes > MaxCubes:
		return fmt.Errorf("cubes %d (1..%d)", c.Scene.Cubes, MaxCubes)
	}
	return nil
}

// Encode returns cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
