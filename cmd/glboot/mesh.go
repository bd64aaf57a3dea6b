// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"math"
	"time"

	"cogentcore.org/glboot/shader"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// positions are the corners of the triangle in clip space.
var positions = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// colored are the triangle corners each followed by a color.
var colored = []float32{
	-0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
}

// doubled are the corners of two triangles side by side,
// drawn with doubledIndexes.
var doubled = []float32{
	-0.5, 0.5, 0.0,
	-0.75, -0.5, 0.0,
	-0.25, -0.5, 0.0,
	0.5, 0.5, 0.0,
	0.25, -0.5, 0.0,
	0.75, -0.5, 0.0,
}

var doubledIndexes = []uint32{
	0, 1, 2,
	3, 4, 5,
}

// vertexLayout returns the vertex data for the mode, the number
// of floats per vertex, and the indexes, if drawn indexed.
func vertexLayout(md Modes) ([]float32, int, []uint32) {
	switch md {
	case Color:
		return colored, 6, nil
	case Double:
		return doubled, 3, doubledIndexes
	}
	return positions, 3, nil
}

// mesh is the vertex array and buffers of the demo drawing.
type mesh struct {
	vao uint32
	vbo uint32
	ebo uint32

	// count is the number of vertices, or of indexes if ebo is set
	count int32
}

// newMesh uploads the vertex data for the mode. The GL context must
// be current.
func newMesh(md Modes) *mesh {
	data, stride, idxs := vertexLayout(md)
	m := &mesh{count: int32(len(data) / stride)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	if len(idxs) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idxs)*4, gl.Ptr(idxs), gl.STATIC_DRAW)
		m.count = int32(len(idxs))
	}

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, int32(stride*4), gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	if md == Color {
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, int32(stride*4), gl.PtrOffset(3*4))
		gl.EnableVertexAttribArray(1)
	}
	// the element buffer binding is part of the vertex array state,
	// so it must stay bound until the vertex array is unbound
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *mesh) delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vbo, m.ebo, m.vao = 0, 0, 0
}

// renderer draws the mesh with a program each frame.
type renderer struct {
	mesh      *mesh
	wireframe bool

	// levels are the tessellation levels set on tessellated programs
	levels [4]float32

	// start is when drawing started, for time-varying uniforms
	start time.Time

	// warned is the set of uniforms already logged as missing
	warned map[string]bool
}

func (r *renderer) draw(pr *shader.Program) {
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	if pr.Activate() != nil {
		return
	}
	mode := primitive(pr)
	if mode == gl.PATCHES {
		gl.PatchParameteri(gl.PATCH_VERTICES, 3)
		l := r.levels
		r.uniform4f(pr, "TessLevelFactors", l[0], l[1], l[2], l[3])
	}
	if r.mesh.ebo != 0 {
		r.uniform4f(pr, "outColor", 0, pulse(time.Since(r.start)), 0, 1)
	}

	gl.BindVertexArray(r.mesh.vao)
	if r.mesh.ebo != 0 {
		gl.DrawElements(mode, r.mesh.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(mode, 0, r.mesh.count)
	}
	gl.BindVertexArray(0)
}

// primitive returns the primitive to draw with the program:
// tessellated programs only accept patches.
func primitive(pr *shader.Program) uint32 {
	if pr.Tessellated() {
		return gl.PATCHES
	}
	return gl.TRIANGLES
}

// uniform4f sets the named vec4 uniform of the active program,
// logging once if the program does not have it.
func (r *renderer) uniform4f(pr *shader.Program, name string, x, y, z, w float32) {
	loc, err := pr.UniformLocation(name)
	if err != nil {
		if !r.warned[name] {
			slog.Warn("glboot: uniform not set", "err", err)
			if r.warned == nil {
				r.warned = map[string]bool{}
			}
			r.warned[name] = true
		}
		return
	}
	gl.Uniform4f(loc, x, y, z, w)
}

// pulse returns a value that goes between 0 and 1 over time.
func pulse(d time.Duration) float32 {
	return float32(math.Sin(d.Seconds())/2 + 0.5)
}
