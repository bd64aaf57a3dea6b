// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu is the OpenGL 4.1 core backend: it loads the
// OpenGL functions for the bound context and implements
// [shader.Backend] and [session.Viewporter] on top of them.
package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glboot/shader"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// how to code opengl to be vulkan-friendly
// https://developer.nvidia.com/opengl-vulkan

// Init loads the OpenGL function pointers for the context that is
// current on the calling thread. It must be called after the
// session context is bound and before any other call in this package.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Log(fmt.Errorf("glgpu.Init: could not initialize OpenGL: %w", err))
	}
	slog.Info("glgpu.Init", "version", Version(), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

// Version returns the OpenGL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// MaxTessLevel returns the maximum tessellation generation level
// supported by the driver.
func MaxTessLevel() int {
	var lvl int32
	gl.GetIntegerv(gl.MAX_TESS_GEN_LEVEL, &lvl)
	return int(lvl)
}

// GPU implements [shader.Backend] and [session.Viewporter]
// with OpenGL calls. The zero value is ready to use once [Init]
// has been called.
type GPU struct{}

var _ shader.Backend = (*GPU)(nil)

var glShaders = map[shader.StageTypes]uint32{
	shader.VertexStage:   gl.VERTEX_SHADER,
	shader.FragmentStage: gl.FRAGMENT_SHADER,
	shader.TessCtrlStage: gl.TESS_CONTROL_SHADER,
	shader.TessEvalStage: gl.TESS_EVALUATION_SHADER,
}

// CreateShader creates a new shader object of the type for the stage.
func (gp *GPU) CreateShader(st shader.StageTypes) uint32 {
	return gl.CreateShader(glShaders[st])
}

// CompileShader sets the source and compiles the shader.
// The source does not need to be null terminated (with \x00 code) but that
// will be more efficient, skipping the extra step of adding the null terminator.
func (gp *GPU) CompileShader(handle uint32, src string) (bool, string) {
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	return false, infoLog(logLength, func(n int32, msg *uint8) {
		gl.GetShaderInfoLog(handle, n, nil, msg)
	})
}

// DeleteShader deletes the shader object.
func (gp *GPU) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}

// CreateProgram creates a new program object.
func (gp *GPU) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader attaches the shader to the program.
func (gp *GPU) AttachShader(program, handle uint32) {
	gl.AttachShader(program, handle)
}

// DetachShader detaches the shader from the program.
func (gp *GPU) DetachShader(program, handle uint32) {
	gl.DetachShader(program, handle)
}

// LinkProgram links the program and reports the link status and log.
func (gp *GPU) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	return false, infoLog(logLength, func(n int32, msg *uint8) {
		gl.GetProgramInfoLog(program, n, nil, msg)
	})
}

// UseProgram makes the program active.
func (gp *GPU) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// UniformLocation returns the location of the named uniform, or -1.
func (gp *GPU) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cString(name)))
}

// DeleteProgram deletes the program object.
func (gp *GPU) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// SetViewport sets the viewport rectangle in framebuffer pixels.
func (gp *GPU) SetViewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// infoLog reads an info log of the given length using get.
func infoLog(logLength int32, get func(n int32, msg *uint8)) string {
	if logLength <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	get(logLength, gl.Str(msg))
	return goString(msg)
}

// cString returns a null-terminated version of the string,
// as needed by the gl functions that take C strings.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// goString trims everything from the first null terminator.
func goString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
