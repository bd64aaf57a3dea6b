// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPassThrough(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("pass", gl)
	assert.Equal(t, Empty, bd.State())

	bd.SetStageSource(VertexStage, passVertex)
	bd.SetStageSource(FragmentStage, passFragment)
	assert.Equal(t, SourcesSet, bd.State())

	vs, err := bd.CompileStage(VertexStage)
	require.NoError(t, err)
	assert.True(t, vs.OK)
	assert.NotZero(t, vs.Handle)
	assert.Equal(t, PartiallyCompiled, bd.State())

	_, err = bd.CompileStage(FragmentStage)
	require.NoError(t, err)
	assert.Equal(t, FullyCompiled, bd.State())
	assert.Equal(t, 2, bd.LiveStages())

	pr, err := bd.Link()
	require.NoError(t, err)
	require.NotNil(t, pr)
	assert.True(t, pr.OK)
	assert.NotZero(t, pr.Handle())
	assert.Equal(t, []StageTypes{VertexStage, FragmentStage}, pr.Stages)
	assert.False(t, pr.Tessellated())
	assert.Equal(t, Linked, bd.State())

	assert.Zero(t, bd.LiveStages())
	assert.Zero(t, gl.liveShaders())
	assert.True(t, vs.Released())

	require.NoError(t, pr.Activate())
	assert.Equal(t, pr.Handle(), gl.used)
	pr.Delete()
	assert.Empty(t, gl.programs)
}

func TestCompileSyntaxError(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("bad", gl)
	bd.SetStageSource(VertexStage, passVertex)
	bd.SetStageSource(FragmentStage, badFragment)

	_, err := bd.CompileStage(VertexStage)
	require.NoError(t, err)

	fs, err := bd.CompileStage(FragmentStage)
	require.Error(t, err)
	require.NotNil(t, fs)
	assert.False(t, fs.OK)
	assert.Contains(t, fs.Log, "syntax error")

	var ce *StageCompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, FragmentStage, ce.Stage)
	assert.Equal(t, fs.Log, ce.Log)

	pr, err := bd.Link()
	assert.Nil(t, pr)
	var pe *LinkPreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []StageTypes{FragmentStage}, pe.Failed)
	assert.Empty(t, pe.Missing)
	assert.False(t, gl.called("CreateProgram"))
	assert.Zero(t, gl.liveShaders())
	assert.Equal(t, LinkFailed, bd.State())
}

func TestLinkTessCtrlOnly(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("tcs", gl)
	bd.SetSources(map[StageTypes]string{
		VertexStage:   passVertex,
		FragmentStage: passFragment,
		TessCtrlStage: tessCtrl,
	})
	require.NoError(t, bd.CompileAll())
	assert.Equal(t, 3, gl.liveShaders())

	pr, err := bd.Link()
	assert.Nil(t, pr)
	var pe *LinkPreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []StageTypes{TessEvalStage}, pe.Missing)
	assert.False(t, gl.called("CreateProgram"))
	assert.False(t, gl.called("AttachShader"))
	assert.False(t, gl.called("LinkProgram"))
	assert.Zero(t, gl.liveShaders())
	assert.Zero(t, bd.LiveStages())
}

func TestLinkMissingRequired(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("novert", gl)
	bd.SetStageSource(FragmentStage, passFragment)
	_, err := bd.CompileStage(FragmentStage)
	require.NoError(t, err)

	_, err = bd.Link()
	var pe *LinkPreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, []StageTypes{VertexStage}, pe.Missing)
	assert.Contains(t, pe.Error(), "missing Vertex")
	assert.Zero(t, gl.liveShaders())
}

func TestTessellatedProgram(t *testing.T) {
	gl := newFakeGL()
	gl.uniforms["TessLevelFactors"] = 3
	bd := NewBuilder("tess", gl)
	bd.SetSources(map[StageTypes]string{
		VertexStage:   passVertex,
		FragmentStage: passFragment,
		TessCtrlStage: tessCtrl,
		TessEvalStage: tessEval,
	})
	pr, err := bd.Build()
	require.NoError(t, err)
	assert.True(t, pr.Tessellated())
	assert.Len(t, gl.programs[pr.Handle()], 4)
	assert.Zero(t, gl.liveShaders())

	loc, err := pr.UniformLocation("TessLevelFactors")
	require.NoError(t, err)
	assert.Equal(t, int32(3), loc)
	n := len(gl.calls)
	loc, err = pr.UniformLocation("TessLevelFactors")
	require.NoError(t, err)
	assert.Equal(t, int32(3), loc)
	assert.Len(t, gl.calls, n, "second lookup is cached")

	_, err = pr.UniformLocation("nope")
	assert.ErrorIs(t, err, ErrUniformNotFound)
	pr.Delete()
}

func TestLinkFailure(t *testing.T) {
	gl := newFakeGL()
	gl.linkLog = "ERROR: Input of fragment shader 'vColor' not written by vertex shader\n"
	bd := NewBuilder("linkfail", gl)
	bd.SetStageSource(VertexStage, passVertex)
	bd.SetStageSource(FragmentStage, passFragment)
	require.NoError(t, bd.CompileAll())

	pr, err := bd.Link()
	require.NotNil(t, pr, "failed program is returned for its log")
	var le *LinkError
	require.True(t, errors.As(err, &le))
	assert.False(t, pr.OK)
	assert.Contains(t, pr.Log, "vColor")
	assert.Equal(t, pr.Log, le.Log)
	assert.Equal(t, LinkFailed, bd.State())
	assert.Zero(t, gl.liveShaders())
	assert.True(t, gl.called("DetachShader"))

	assert.ErrorIs(t, pr.Activate(), ErrNotLinked)
	assert.False(t, gl.called("UseProgram"))
	_, err = pr.UniformLocation("x")
	assert.ErrorIs(t, err, ErrNotLinked)

	pr.Delete()
	pr.Delete()
	assert.Empty(t, gl.programs)
	assert.ErrorIs(t, pr.Activate(), ErrDeleted)
}

func TestRebuildNoLeaks(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("rebuild", gl)
	for i := range 10 {
		bd.SetStageSource(VertexStage, passVertex)
		frag := strings.Replace(passFragment, "0.5", fmt.Sprintf("0.%d", i), 1)
		if i%3 == 2 {
			frag = badFragment
		}
		bd.SetStageSource(FragmentStage, frag)
		_, verr := bd.CompileStage(VertexStage)
		require.NoError(t, verr)
		_, ferr := bd.CompileStage(FragmentStage)
		pr, err := bd.Link()
		assert.Zero(t, bd.LiveStages(), "iteration %d", i)
		assert.Zero(t, gl.liveShaders(), "iteration %d", i)
		if ferr != nil {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		pr.Delete()
	}
	assert.Empty(t, gl.programs)
}

func TestRecompileReleasesPrevious(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("recompile", gl)
	bd.SetStageSource(VertexStage, passVertex)
	first, err := bd.CompileStage(VertexStage)
	require.NoError(t, err)
	second, err := bd.CompileStage(VertexStage)
	require.NoError(t, err)
	assert.NotEqual(t, first.Handle, second.Handle)
	assert.True(t, first.Released())
	assert.Equal(t, 1, gl.liveShaders())
	assert.Equal(t, 1, bd.LiveStages())
	assert.Same(t, second, bd.Stage(VertexStage))
}

func TestCompileNoSource(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("empty", gl)
	cs, err := bd.CompileStage(TessEvalStage)
	assert.Nil(t, cs)
	assert.ErrorIs(t, err, ErrNoSource)
	assert.Empty(t, gl.calls)

	_, err = bd.CompileStage(StageTypesN)
	assert.Error(t, err)
}

func TestNoContext(t *testing.T) {
	gl := newFakeGL()
	gl.noContext = true
	bd := NewBuilder("nocontext", gl)
	bd.SetStageSource(VertexStage, passVertex)
	_, err := bd.CompileStage(VertexStage)
	assert.ErrorIs(t, err, ErrNoContext)
	assert.Zero(t, bd.LiveStages())
}

func TestLogBounded(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("bounded", gl)
	bd.MaxLogLength = 16
	bd.SetStageSource(VertexStage, "not glsl")
	cs, err := bd.CompileStage(VertexStage)
	require.Error(t, err)
	assert.Len(t, cs.Log, 16)
}

func TestLogBoundedRunes(t *testing.T) {
	gl := newFakeGL()
	gl.linkLog = "ERROR: «vColor» not written\n"
	bd := NewBuilder("runes", gl)
	bd.MaxLogLength = 8
	bd.SetStageSource(VertexStage, passVertex)
	bd.SetStageSource(FragmentStage, passFragment)
	pr, err := bd.Build()
	require.Error(t, err)
	assert.Equal(t, "ERROR: ", pr.Log)
	assert.True(t, utf8.ValidString(pr.Log))
	pr.Delete()
}

// TestRebuildAfterBadFragment follows a full edit cycle: a good build,
// a broken fragment edit that cannot be linked, then a fix.
func TestRebuildAfterBadFragment(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("cycle", gl)
	bd.SetStageSource(VertexStage, passVertex)
	bd.SetStageSource(FragmentStage, passFragment)
	require.NoError(t, bd.CompileAll())
	pr, err := bd.Link()
	require.NoError(t, err)
	assert.True(t, pr.OK)

	bd.SetStageSource(FragmentStage, "#version 410 core\nvoid main() { oops }\n}")
	fs, err := bd.CompileStage(FragmentStage)
	require.Error(t, err)
	assert.False(t, fs.OK)
	assert.Contains(t, fs.Log, "syntax error")

	_, err = bd.Link()
	var pe *LinkPreconditionError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Failed, FragmentStage)
	assert.Contains(t, pe.Missing, VertexStage)
	assert.Zero(t, gl.liveShaders())

	// the vertex source is kept, so only the fragment source is set again
	assert.Equal(t, passVertex, bd.Source(VertexStage))
	bd.SetStageSource(FragmentStage, passFragment)
	pr2, err := bd.Build()
	require.NoError(t, err)
	assert.True(t, pr2.OK)
	assert.NotEqual(t, pr.Handle(), pr2.Handle())
	pr.Delete()
	pr2.Delete()
	assert.Empty(t, gl.programs)
}

func TestStageTypesStrings(t *testing.T) {
	assert.Equal(t, "TessCtrl", TessCtrlStage.String())
	var st StageTypes
	require.NoError(t, st.SetString("Fragment"))
	assert.Equal(t, FragmentStage, st)
	assert.True(t, TessEvalStage.IsTess())
	assert.False(t, VertexStage.IsTess())
	assert.True(t, FragmentStage.IsRequired())
}

func TestSetStageSourcesReplaces(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("replace", gl)
	bd.SetSources(map[StageTypes]string{
		VertexStage:   passVertex,
		FragmentStage: passFragment,
		TessCtrlStage: tessCtrl,
	})
	bd.SetStageSources(
		StageSource{Stage: VertexStage, Code: passVertex, Path: "a.vert"},
		StageSource{Stage: FragmentStage, Code: passFragment, Path: "a.frag"},
	)
	assert.Empty(t, bd.Source(TessCtrlStage))
	assert.Equal(t, SourcesSet, bd.State())

	pr, err := bd.Build()
	require.NoError(t, err)
	assert.False(t, pr.Tessellated())
	pr.Delete()
}

func TestClearSourceReleasesStage(t *testing.T) {
	gl := newFakeGL()
	bd := NewBuilder("clear", gl)
	bd.SetSources(map[StageTypes]string{
		VertexStage:   passVertex,
		FragmentStage: passFragment,
		TessCtrlStage: tessCtrl,
	})
	_, err := bd.CompileStage(TessCtrlStage)
	require.NoError(t, err)
	assert.Equal(t, 1, gl.liveShaders())

	bd.SetStageSource(TessCtrlStage, "")
	assert.Nil(t, bd.Stage(TessCtrlStage))
	assert.Zero(t, gl.liveShaders())

	pr, err := bd.Build()
	require.NoError(t, err)
	assert.False(t, pr.Tessellated())
	pr.Delete()

	// stages left out of SetStageSources are released too
	bd.SetSources(map[StageTypes]string{TessCtrlStage: tessCtrl, TessEvalStage: tessEval})
	require.NoError(t, bd.CompileAll())
	assert.Equal(t, 4, gl.liveShaders())
	bd.SetStageSources(
		StageSource{Stage: VertexStage, Code: passVertex},
		StageSource{Stage: FragmentStage, Code: passFragment},
	)
	assert.Equal(t, 2, gl.liveShaders())
	assert.Nil(t, bd.Stage(TessEvalStage))

	pr, err = bd.Build()
	require.NoError(t, err)
	assert.False(t, pr.Tessellated())
	pr.Delete()
}
