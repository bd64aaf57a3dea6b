// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"strings"
)

// fakeGL is an in-memory [Backend] that tracks live objects.
// A source compiles if it starts with a #version line, has a main
// function and balanced braces.
type fakeGL struct {
	next     uint32
	shaders  map[uint32]StageTypes
	programs map[uint32][]uint32
	calls    []string

	// noContext makes every Create call return 0.
	noContext bool

	// linkLog, if set, makes every link fail with that log.
	linkLog string

	uniforms map[string]int32
	used     uint32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		shaders:  map[uint32]StageTypes{},
		programs: map[uint32][]uint32{},
		uniforms: map[string]int32{},
	}
}

func (gl *fakeGL) call(format string, args ...any) {
	gl.calls = append(gl.calls, fmt.Sprintf(format, args...))
}

func (gl *fakeGL) CreateShader(st StageTypes) uint32 {
	gl.call("CreateShader %s", st)
	if gl.noContext {
		return 0
	}
	gl.next++
	gl.shaders[gl.next] = st
	return gl.next
}

func (gl *fakeGL) CompileShader(handle uint32, src string) (bool, string) {
	gl.call("CompileShader %d", handle)
	src = strings.TrimSpace(src)
	if !strings.HasPrefix(src, "#version") {
		return false, "ERROR: 0:1: '' : syntax error: missing #version directive\n"
	}
	if !strings.Contains(src, "void main") {
		return false, "ERROR: 0:1: 'main' : syntax error: missing entry point\n"
	}
	if strings.Count(src, "{") != strings.Count(src, "}") {
		return false, "ERROR: 0:2: '}' : syntax error: unbalanced braces\n"
	}
	return true, ""
}

func (gl *fakeGL) DeleteShader(handle uint32) {
	gl.call("DeleteShader %d", handle)
	delete(gl.shaders, handle)
}

func (gl *fakeGL) CreateProgram() uint32 {
	gl.call("CreateProgram")
	if gl.noContext {
		return 0
	}
	gl.next++
	gl.programs[gl.next] = nil
	return gl.next
}

func (gl *fakeGL) AttachShader(program, handle uint32) {
	gl.call("AttachShader %d %d", program, handle)
	gl.programs[program] = append(gl.programs[program], handle)
}

func (gl *fakeGL) DetachShader(program, handle uint32) {
	gl.call("DetachShader %d %d", program, handle)
}

func (gl *fakeGL) LinkProgram(program uint32) (bool, string) {
	gl.call("LinkProgram %d", program)
	if gl.linkLog != "" {
		return false, gl.linkLog
	}
	return true, ""
}

func (gl *fakeGL) UseProgram(program uint32) {
	gl.call("UseProgram %d", program)
	gl.used = program
}

func (gl *fakeGL) UniformLocation(program uint32, name string) int32 {
	gl.call("UniformLocation %d %s", program, name)
	if loc, ok := gl.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (gl *fakeGL) DeleteProgram(program uint32) {
	gl.call("DeleteProgram %d", program)
	delete(gl.programs, program)
}

func (gl *fakeGL) liveShaders() int {
	return len(gl.shaders)
}

func (gl *fakeGL) called(prefix string) bool {
	for _, c := range gl.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

const (
	passVertex = `#version 410 core
layout (location = 0) in vec3 aPos;
void main() {
	gl_Position = vec4(aPos, 1.0);
}
`
	passFragment = `#version 410 core
out vec4 FragColor;
void main() {
	FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`
	tessCtrl = `#version 410 core
layout (vertices = 3) out;
uniform vec4 TessLevelFactors;
void main() {
	gl_TessLevelOuter[0] = TessLevelFactors.x;
}
`
	tessEval = `#version 410 core
layout (triangles, equal_spacing, cw) in;
void main() {
	gl_Position = gl_in[0].gl_Position;
}
`
	badFragment = `#version 410 core
out vec4 FragColor;
void main() {
	FragColor = vec4(1.0, 0.5, 0.2, 1.0)
`
)
