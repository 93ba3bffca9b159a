// Example renders a row of spinning textured cubes through a glcache
// Context.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config example/example.toml -v
//
// Keys: B cycles the blend mode, C the cull face, D the depth function,
// R resets the context, Escape quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/glcache"
	"github.com/go-theft-auto/glcache/backend/opengl"
	"github.com/go-theft-auto/glcache/internal/scene"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML config file")
	verbose := flag.Bool("v", false, "debug logging")
	dump := flag.Bool("dump-config", false, "print the default config and exit")
	flag.Parse()

	glcache.SetVerbose(*verbose)

	if *dump {
		out, err := scene.Encode(scene.Default())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
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

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	if err := opengl.MakeCurrent(window); err != nil {
		return err
	}
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	}

	ctx := glcache.New(opengl.NewDriver(),
		glcache.WithClearColor(cfg.Scene.ClearColor[0], cfg.Scene.ClearColor[1], cfg.Scene.ClearColor[2], cfg.Scene.ClearColor[3]),
		glcache.WithBlendMode(cfg.Scene.Blend),
		glcache.WithCullFace(cfg.Scene.Cull),
		glcache.WithDepthFunc(cfg.Scene.Depth),
	).Init()

	caps := ctx.Capabilities()
	if ok, err := caps.SupportsGLSL(">= 3.3"); err != nil || !ok {
		return fmt.Errorf("GLSL %s is too old, need 3.30", caps.GLSLVersion())
	}
	slog.Info("context ready", "gl", caps.Version, "renderer", caps.Renderer, "glsl", caps.GLSLDirective())

	sc, err := scene.New(ctx, cfg.Scene)
	if err != nil {
		return err
	}
	defer sc.Delete()

	surface := opengl.NewSurface(window, ctx)
	state := &cfg.Scene

	for surface.Begin() {
		if handleKeys(surface, ctx, state) {
			sc.Configure(*state)
		}
		if surface.Pressed(glfw.KeyEscape) {
			window.SetShouldClose(true)
		}

		sc.Draw(float32(glfw.GetTime()), surface.Aspect())

		if e := ctx.Error(); e != 0 {
			slog.Warn("gl error", "code", fmt.Sprintf("0x%04X", uint32(e)))
		}
		surface.End()
	}

	return nil
}

// handleKeys applies key presses to the scene state and reports whether it
// changed.
func handleKeys(s *opengl.Surface, ctx *glcache.Context, state *scene.SceneConfig) bool {
	switch {
	case s.Pressed(glfw.KeyB):
		state.Blend = (state.Blend + 1) % (glcache.BlendMultiply + 1)
		slog.Info("blend", "mode", state.Blend)
		return true
	case s.Pressed(glfw.KeyC):
		state.Cull = (state.Cull + 1) % (glcache.CullFrontAndBack + 1)
		slog.Info("cull", "face", state.Cull)
		return true
	case s.Pressed(glfw.KeyD):
		state.Depth = (state.Depth + 1) % (glcache.DepthAlways + 1)
		slog.Info("depth", "func", state.Depth)
		return true
	case s.Pressed(glfw.KeyR):
		// Forget the cache and re-apply the defaults, as after a context loss.
		ctx.Reset()
		slog.Info("context reset")
	}
	return false
}
