// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaderfs resolves shader stage sources from files,
// for handing to a [shader.Builder]. It reads files from an
// [fs.FS], expands #include directives, infers stage kinds from
// file names and reads TOML pipeline manifests.
package shaderfs

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"cogentcore.org/glboot/shader"
	"github.com/pelletier/go-toml/v2"
)

// ErrTessPair is returned when only one of the two tessellation
// stage paths is given.
var ErrTessPair = errors.New("tessellation control and evaluation stages must both be given")

// stageSuffixes maps file name endings to stage kinds. Longer
// endings come first so that .tcs.glsl is not taken for .glsl.
var stageSuffixes = []struct {
	suffix string
	stage  shader.StageTypes
}{
	{".vs.glsl", shader.VertexStage},
	{".fs.glsl", shader.FragmentStage},
	{".tcs.glsl", shader.TessCtrlStage},
	{".tes.glsl", shader.TessEvalStage},
	{".vert", shader.VertexStage},
	{".frag", shader.FragmentStage},
	{".tesc", shader.TessCtrlStage},
	{".tese", shader.TessEvalStage},
	{"_vertex", shader.VertexStage},
	{"_fragment", shader.FragmentStage},
}

// StageForFile returns the stage kind implied by the file name,
// and false if the name does not have a known ending.
func StageForFile(name string) (shader.StageTypes, bool) {
	base := strings.ToLower(path.Base(name))
	for _, ss := range stageSuffixes {
		if strings.HasSuffix(base, ss.suffix) {
			return ss.stage, true
		}
	}
	return 0, false
}

// ReadFile reads the named shader file from fsys and expands any
// #include directives relative to the file's directory.
func ReadFile(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("shaderfs.ReadFile: %w", err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("shaderfs.ReadFile %q: file is empty", name)
	}
	return IncludeFS(fsys, path.Dir(name), strings.TrimRight(string(b), "\x00")), nil
}

// Paths are the file paths of the stages of one program.
// Vertex and Fragment are required; TessCtrl and TessEval are
// either both given or both empty.
type Paths struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	TessCtrl string `toml:"tess_ctrl"`
	TessEval string `toml:"tess_eval"`
}

// Validate returns an error if required paths are missing or only
// one tessellation path is given.
func (ps *Paths) Validate() error {
	var missing []string
	if ps.Vertex == "" {
		missing = append(missing, "vertex")
	}
	if ps.Fragment == "" {
		missing = append(missing, "fragment")
	}
	if len(missing) > 0 {
		return fmt.Errorf("shaderfs: missing %s stage path", strings.Join(missing, " and "))
	}
	if (ps.TessCtrl == "") != (ps.TessEval == "") {
		return fmt.Errorf("shaderfs: %w", ErrTessPair)
	}
	return nil
}

// Map returns the non-empty paths by stage.
func (ps *Paths) Map() map[shader.StageTypes]string {
	m := map[shader.StageTypes]string{}
	for st, p := range map[shader.StageTypes]string{
		shader.VertexStage:   ps.Vertex,
		shader.FragmentStage: ps.Fragment,
		shader.TessCtrlStage: ps.TessCtrl,
		shader.TessEvalStage: ps.TessEval,
	} {
		if p != "" {
			m[st] = p
		}
	}
	return m
}

// Load validates the paths and reads each stage file from fsys,
// returning the sources by stage.
func (ps *Paths) Load(fsys fs.FS) (map[shader.StageTypes]string, error) {
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	srcs := map[shader.StageTypes]string{}
	pm := ps.Map()
	for _, st := range shader.StageTypesValues() {
		p, ok := pm[st]
		if !ok {
			continue
		}
		src, err := ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("%s stage: %w", st, err)
		}
		srcs[st] = src
	}
	return srcs, nil
}

// Sources is like [Paths.Load] but returns the sources in stage
// order as [shader.StageSource] values, ready for
// [shader.Builder.SetStageSources].
func (ps *Paths) Sources(fsys fs.FS) ([]shader.StageSource, error) {
	srcs, err := ps.Load(fsys)
	if err != nil {
		return nil, err
	}
	pm := ps.Map()
	var sss []shader.StageSource
	for _, st := range shader.StageTypesValues() {
		if code, ok := srcs[st]; ok {
			sss = append(sss, shader.StageSource{Stage: st, Code: code, Path: pm[st]})
		}
	}
	return sss, nil
}

// PathsFromFiles assigns each of the given files to a stage based on
// its name, using [StageForFile].
func PathsFromFiles(files ...string) (Paths, error) {
	var ps Paths
	for _, f := range files {
		st, ok := StageForFile(f)
		if !ok {
			return ps, fmt.Errorf("shaderfs: cannot tell the stage of %q from its name", f)
		}
		switch st {
		case shader.VertexStage:
			ps.Vertex = f
		case shader.FragmentStage:
			ps.Fragment = f
		case shader.TessCtrlStage:
			ps.TessCtrl = f
		case shader.TessEvalStage:
			ps.TessEval = f
		}
	}
	return ps, nil
}

// Manifest describes one shader program in a TOML file:
//
//	name = "tess"
//
//	[stages]
//	vertex = "tess_vs.vs.glsl"
//	fragment = "tess_fs.fs.glsl"
//	tess_ctrl = "tess_control_shader.tcs.glsl"
//	tess_eval = "tess_eval_shader.tes.glsl"
//
// Stage paths are relative to the directory of the manifest.
type Manifest struct {
	Name   string `toml:"name"`
	Stages Paths  `toml:"stages"`
}

// OpenManifest reads the manifest file from fsys and resolves its
// stage paths against the manifest directory.
func OpenManifest(fsys fs.FS, name string) (*Manifest, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("shaderfs.OpenManifest: %w", err)
	}
	mf := &Manifest{}
	if err := toml.Unmarshal(b, mf); err != nil {
		return nil, fmt.Errorf("shaderfs.OpenManifest %q: %w", name, err)
	}
	if mf.Name == "" {
		mf.Name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	dir := path.Dir(name)
	for _, p := range []*string{&mf.Stages.Vertex, &mf.Stages.Fragment, &mf.Stages.TessCtrl, &mf.Stages.TessEval} {
		if *p != "" {
			*p = path.Join(dir, *p)
		}
	}
	if err := mf.Stages.Validate(); err != nil {
		return nil, fmt.Errorf("shaderfs.OpenManifest %q: %w", name, err)
	}
	return mf, nil
}

// Load reads the stage sources of the manifest from fsys.
func (mf *Manifest) Load(fsys fs.FS) (map[shader.StageTypes]string, error) {
	return mf.Stages.Load(fsys)
}
