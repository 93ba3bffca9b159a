/*
Package glcache is a thin state-caching layer over OpenGL, designed as
idiomatic Go with a dedicated Context type.

# Overview

A Context mirrors the binding and render state of one GL context: bound
buffers, vertex array, framebuffer, renderbuffer, program, textures per
unit, enabled vertex attributes, and render state such as blending,
culling and depth testing. Every mutator compares the request with the
mirror and only issues the native call when they differ, returning true
when it did.

All native calls go through a Driver. The backend/opengl package provides
one built on go-gl; tests use a recording fake.

# Quick Start

	// Setup (GL context current on this thread)
	opengl.MakeCurrent(window)
	ctx := glcache.New(opengl.NewDriver(), glcache.WithClearColor(0.1, 0.1, 0.1, 1)).Init()

	prog := ctx.NewProgram()
	if err := prog.Set(vertexSrc, fragmentSrc); err != nil {
	    log.Fatal(err)
	}

	vbo := ctx.NewBuffer()
	glcache.SetBufferData(vbo, glcache.ArrayBuffer, vertices, 5, glcache.StaticDraw)

	// Frame loop
	for !window.ShouldClose() {
	    ctx.Clear(true, true, false)
	    ctx.SetProgram(prog, false)
	    prog.SetAttribute("position", vbo, 0, false)
	    prog.SetAttribute("uv", vbo, 3, false)
	    prog.SetUniform("projection", glcache.Mat4(projection), false)
	    prog.SetUniform("diffuse", glcache.Sampler(tex), false)
	    ctx.DrawArrays(glcache.DrawTriangles, 0, vbo.Len()/5)
	    window.SwapBuffers()
	}

# The force flag

Every Set method takes a force flag. With force set, the cache is bypassed
and the native call is always made; the cache is still updated. The
Unchecked variants are shorthand for force=true.

# Usage contract

The cache is only correct while the Context is the only path that binds
objects or changes render state. Resource methods such as SetBufferData,
Texture.Set and Framebuffer.AttachTexture bind through the Context for this
reason. After calling GL directly, call Reset.

A Context, like the GL context it mirrors, must only be used from the
thread the GL context is current on. Nothing is locked.

# Texture units

Units are allocated per draw call: every SetTexture since the last draw
or SetProgram takes the next unit, starting at 0. Because a draw restarts
the count, a frame that binds the same textures in the same order under
the same program issues neither ActiveTexture nor the sampler upload on
later draws.

# Errors

Shader compile and link failures, unsupported reflected types and
incomplete framebuffers are returned as *ShaderError,
*UnsupportedTypeError and *FramebufferError. Programming mistakes, such as
setting a uniform with a value of the wrong kind, naming an attribute the
program does not have or running out of texture units, panic. Native GL
errors are never inspected; poll them with Context.Error.
*/
package glcache
