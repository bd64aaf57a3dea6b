// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

// Backend is the set of graphics calls needed to compile and link
// shader programs. All calls must be made on the thread that has
// the context bound. A zero handle is never valid.
// See the glgpu package for the OpenGL implementation.
type Backend interface {
	// CreateShader creates a new stage object of the given type.
	CreateShader(st StageTypes) uint32

	// CompileShader sets the source of the given stage object,
	// compiles it and returns the compile status and compiler log.
	CompileShader(handle uint32, src string) (ok bool, log string)

	// DeleteShader releases the stage object.
	DeleteShader(handle uint32)

	// CreateProgram creates a new empty program object.
	CreateProgram() uint32

	// AttachShader attaches a stage object to a program.
	AttachShader(program, handle uint32)

	// DetachShader detaches a stage object from a program.
	DetachShader(program, handle uint32)

	// LinkProgram links the program and returns the link
	// status and linker log.
	LinkProgram(program uint32) (ok bool, log string)

	// UseProgram makes the program the active one for drawing.
	UseProgram(program uint32)

	// UniformLocation returns the location of the named uniform,
	// or -1 if it is not an active uniform.
	UniformLocation(program uint32, name string) int32

	// DeleteProgram releases the program object.
	DeleteProgram(program uint32)
}
