// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glboot opens a window and draws a triangle with a shader
// program built from the embedded demo shaders, a manifest, or a
// list of stage files. With -watch, edited shader files are rebuilt
// while the window is open.
package main

//go:generate core generate

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/glboot/glgpu"
	"cogentcore.org/glboot/glos"
	"cogentcore.org/glboot/session"
	"cogentcore.org/glboot/shader"
	"cogentcore.org/glboot/shaderfs"
	"cogentcore.org/glboot/shaderwatch"
)

//go:embed shaders
var shaders embed.FS

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// Modes are the demo drawings.
type Modes int32 //enums:enum

const (
	// Triangle is a single-color triangle.
	Triangle Modes = iota

	// Color is a triangle with a color per vertex.
	Color

	// Tess is a tessellated triangle drawn in wireframe.
	Tess

	// Double is two indexed triangles with a color that changes over time.
	Double
)

// Config is the configuration for glboot.
type Config struct {

	// Mode is the demo to draw. It selects the embedded shaders,
	// the vertex data and the draw call.
	Mode Modes `default:"Color"`

	// Width of the window.
	Width int `default:"1000"`

	// Height of the window.
	Height int `default:"800"`

	// Title of the window; if empty, it is made from the mode.
	Title string

	// GL is the OpenGL version and profile to request.
	GL session.Version

	// Dir is the directory that Manifest and Shaders are relative to.
	Dir string `default:"."`

	// Manifest is a TOML pipeline manifest to load the shaders from
	// instead of the embedded ones.
	Manifest string

	// Shaders are stage files to load instead of the embedded ones;
	// the stage of each file is inferred from its name.
	Shaders []string

	// Watch rebuilds the program when a shader file changes.
	Watch bool

	// Wireframe draws polygon outlines only; always on in Tess mode.
	Wireframe bool

	// OL1, OL2 and OL3 are the outer tessellation levels.
	OL1 float32 `default:"4"`
	OL2 float32 `default:"4"`
	OL3 float32 `default:"4"`

	// IL1 is the inner tessellation level.
	IL1 float32 `default:"4"`

	// Debug logs debug messages, such as each stage compiled.
	Debug bool
}

// WindowTitle returns the title to use for the window.
func (c *Config) WindowTitle() string {
	if c.Title != "" {
		return c.Title
	}
	switch c.Mode {
	case Color:
		return "Three Color Triangle"
	case Double:
		return "Double Triangles"
	case Tess:
		return fmt.Sprintf("OL1: %g OL2: %g OL3: %g IL1: %g", c.OL1, c.OL2, c.OL3, c.IL1)
	default:
		return "Triangle"
	}
}

// TessLevels returns the outer levels followed by the inner level.
func (c *Config) TessLevels() [4]float32 {
	return [4]float32{c.OL1, c.OL2, c.OL3, c.IL1}
}

// Pipeline returns the file system and stage paths for the shaders,
// and the paths on disk that can be watched, if any.
func (c *Config) Pipeline() (fs.FS, shaderfs.Paths, []string, error) {
	switch {
	case c.Manifest != "":
		fsys := os.DirFS(c.Dir)
		mf, err := shaderfs.OpenManifest(fsys, filepath.ToSlash(c.Manifest))
		if err != nil {
			return nil, shaderfs.Paths{}, nil, err
		}
		return fsys, mf.Stages, c.onDisk(mf.Stages), nil
	case len(c.Shaders) > 0:
		files := make([]string, len(c.Shaders))
		for i, f := range c.Shaders {
			files[i] = filepath.ToSlash(f)
		}
		ps, err := shaderfs.PathsFromFiles(files...)
		if err != nil {
			return nil, ps, nil, err
		}
		return os.DirFS(c.Dir), ps, c.onDisk(ps), ps.Validate()
	}
	name := "shaders/" + strings.ToLower(c.Mode.String()) + ".toml"
	mf, err := shaderfs.OpenManifest(shaders, name)
	if err != nil {
		return nil, shaderfs.Paths{}, nil, err
	}
	return shaders, mf.Stages, nil, nil
}

func (c *Config) onDisk(ps shaderfs.Paths) []string {
	var files []string
	for _, p := range ps.Map() {
		files = append(files, filepath.Join(c.Dir, filepath.FromSlash(p)))
	}
	return files
}

func main() {
	opts := cli.DefaultOptions("glboot", "Draws a triangle with OpenGL shaders built from source.")
	cli.Run(opts, &Config{}, Run)
}

// Run opens the window and runs the render loop until it is closed.
func Run(c *Config) error {
	if c.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	fsys, paths, files, err := c.Pipeline()
	if err != nil {
		return errors.Log(err)
	}

	sys := session.NewSubsystem(&glos.Platform{})
	defer sys.Terminate()

	s, err := session.New(sys, &session.Options{
		Width:     c.Width,
		Height:    c.Height,
		Title:     c.WindowTitle(),
		Version:   c.GL,
		Resizable: true,
	})
	if err != nil {
		return err
	}
	defer s.Destroy()

	s.Bind()
	if err := glgpu.Init(); err != nil {
		return err
	}
	gp := &glgpu.GPU{}
	s.SetViewporter(gp)

	bd := shader.NewBuilder(c.Mode.String(), gp)
	pr, err := build(bd, fsys, paths)
	if err != nil {
		return err
	}
	defer func() { pr.Delete() }()

	if pr.Tessellated() {
		slog.Info("glboot tessellation", "maxLevel", glgpu.MaxTessLevel(), "levels", c.TessLevels())
	}

	var watcher *shaderwatch.Watcher
	if c.Watch && len(files) > 0 {
		watcher, err = shaderwatch.New(files...)
		if err != nil {
			return errors.Log(err)
		}
		defer watcher.Close()
	}

	ms := newMesh(c.Mode)
	defer ms.delete()
	rd := &renderer{mesh: ms, wireframe: c.Wireframe || c.Mode == Tess, levels: c.TessLevels(), start: time.Now()}

	for !s.ShouldClose() {
		s.PollEvents()
		if watcher != nil && len(watcher.Drain()) > 0 {
			// a failed rebuild keeps drawing with the last good program
			if npr, err := build(bd, fsys, paths); err == nil {
				pr.Delete()
				pr = npr
				slog.Info("glboot: rebuilt shaders", "program", pr.Handle())
			}
		}
		rd.draw(pr)
		s.SwapBuffers()
	}
	return nil
}

// build loads the stage sources and builds a new program with them.
// Compile and link logs are reported by the builder.
func build(bd *shader.Builder, fsys fs.FS, paths shaderfs.Paths) (*shader.Program, error) {
	srcs, err := paths.Sources(fsys)
	if err != nil {
		return nil, errors.Log(err)
	}
	bd.SetStageSources(srcs...)
	pr, err := bd.Build()
	if err != nil {
		if pr != nil {
			pr.Delete()
		}
		return nil, err
	}
	return pr, nil
}
