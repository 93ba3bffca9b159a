// Command gen renders the demo scene into an offscreen framebuffer under a
// few render-state presets and saves JPEG captures to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
//	go run ./doc/gen/ -config example/example.toml
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glcache"
	"github.com/go-theft-auto/glcache/backend/opengl"
	"github.com/go-theft-auto/glcache/internal/scene"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML config file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	glcache.SetVerbose(*verbose)

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// preset is a single capture.
type preset struct {
	name  string                       // filename without extension
	t     float32                      // animation time in seconds
	apply func(cfg *scene.SceneConfig) // changes from the configured scene
}

var presets = []preset{
	{name: "default", t: 0.6, apply: func(*scene.SceneConfig) {}},
	{name: "additive", t: 0.6, apply: func(c *scene.SceneConfig) {
		c.Blend = glcache.BlendAdditive
		c.Cull = glcache.CullNone
		c.Depth = glcache.DepthNone
		c.Tint = [4]float32{0.5, 0.5, 0.5, 1}
	}},
	{name: "cull_front", t: 1.1, apply: func(c *scene.SceneConfig) {
		c.Cull = glcache.CullFront
	}},
	{name: "nearest_clamp", t: 0.3, apply: func(c *scene.SceneConfig) {
		c.Filter = glcache.FilterNearest
		c.Wrap = glcache.WrapClamp
		c.FOV = 35
	}},
	{name: "single", t: 2.0, apply: func(c *scene.SceneConfig) {
		c.Cubes = 1
		c.Tint = [4]float32{1, 0.6, 0.6, 1}
	}},
}

func run(configPath string) error {
	cfg, err := scene.Load(os.DirFS("."), configPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(cfg.Output.Width, cfg.Output.Height, "capture-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	if err := opengl.MakeCurrent(window); err != nil {
		return err
	}

	ctx := glcache.New(opengl.NewDriver()).Init()
	if n := cfg.Output.Width; n > ctx.Capabilities().MaxRenderbufferSize {
		return fmt.Errorf("output width %d exceeds renderbuffer limit %d", n, ctx.Capabilities().MaxRenderbufferSize)
	}

	target, err := newTarget(ctx, cfg.Output.Width, cfg.Output.Height)
	if err != nil {
		return err
	}
	defer target.Delete()

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	for _, p := range presets {
		sc := cfg.Scene
		p.apply(&sc)
		if err := capture(ctx, target, sc, p, cfg.Output); err != nil {
			return fmt.Errorf("capture %s: %w", p.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", p.name, cfg.Output.Width, cfg.Output.Height)
	}

	fmt.Printf("\nGenerated %d captures in %s/\n", len(presets), cfg.Output.Dir)
	return nil
}

// target is an offscreen colour texture with a depth renderbuffer.
type target struct {
	fb     *glcache.Framebuffer
	color  *glcache.Texture
	depth  *glcache.Renderbuffer
	width  int
	height int
}

func newTarget(ctx *glcache.Context, width, height int) (*target, error) {
	t := &target{
		fb:     ctx.NewFramebuffer(),
		color:  ctx.NewTexture(),
		depth:  ctx.NewRenderbuffer(),
		width:  width,
		height: height,
	}
	t.color.SetFilter(glcache.FilterNearest)
	t.color.Set(width, height, glcache.FormatRGBA, glcache.TexUnsignedByte, nil)
	t.depth.Set(glcache.TexDepthComponent, width, height)

	t.fb.AttachRenderbuffer(glcache.AttachDepth, t.depth)
	if err := t.fb.Set(t.color, 0, glcache.AttachColor0); err != nil {
		t.Delete()
		return nil, err
	}
	slog.Debug("offscreen target", "fb", t.fb.ID(), "width", width, "height", height)
	return t, nil
}

func (t *target) Delete() {
	t.fb.Delete()
	t.depth.Delete()
	t.color.Delete()
}

func capture(ctx *glcache.Context, t *target, sc scene.SceneConfig, p preset, out scene.OutputConfig) error {
	s, err := scene.New(ctx, sc)
	if err != nil {
		return err
	}
	defer s.Delete()

	ctx.SetFramebuffer(t.fb, false)
	ctx.SetViewport(0, 0, t.width, t.height, false)
	s.Draw(p.t, float32(t.width)/float32(t.height))

	if e := ctx.Error(); e != 0 {
		return fmt.Errorf("gl error 0x%04X", uint32(e))
	}

	img := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	ctx.ReadPixels(0, 0, t.width, t.height, img.Pix)
	glcache.FlipRows(img.Pix, img.Stride)
	ctx.RemoveFramebuffer(false)

	path := filepath.Join(out.Dir, p.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: out.Quality})
}
