// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"testing"

	"cogentcore.org/glboot/shader"
	"github.com/stretchr/testify/assert"
)

func TestCString(t *testing.T) {
	assert.Equal(t, "main\x00", cString("main"))
	assert.Equal(t, "main\x00", cString("main\x00"))
	assert.Equal(t, "error: x", goString("error: x\x00\x00\x00"))
	assert.Equal(t, "plain", goString("plain"))
}

func TestShaderTypes(t *testing.T) {
	for _, st := range shader.StageTypesValues() {
		_, ok := glShaders[st]
		assert.True(t, ok, "no GL shader type for %s", st)
	}
}

func TestGPUBuild(t *testing.T) {
	t.Skip("Need OpenGL context on CI")
	bd := shader.NewBuilder("test", &GPU{})
	bd.SetStageSource(shader.VertexStage, "#version 410 core\nvoid main() { gl_Position = vec4(0); }")
	bd.SetStageSource(shader.FragmentStage, "#version 410 core\nout vec4 c;\nvoid main() { c = vec4(1); }")
	pr, err := bd.Build()
	assert.NoError(t, err)
	assert.True(t, pr.OK)
	pr.Delete()
}
