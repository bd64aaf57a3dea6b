// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glos provides the GLFW implementation of
// [session.Platform] for desktop platforms.
package glos

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glboot/session"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Platform is the GLFW windowing platform.
// IMPORTANT: all methods must be called on the main initial thread!
type Platform struct{}

var _ session.Platform = (*Platform)(nil)

// Init initializes GLFW.
func (pf *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Log(fmt.Errorf("glos.Init: %w", err))
	}
	return nil
}

// Terminate shuts down GLFW -- call as last thing before quitting.
func (pf *Platform) Terminate() {
	glfw.Terminate()
}

// PollEvents processes pending events without waiting.
func (pf *Platform) PollEvents() {
	glfw.PollEvents()
}

// CreateWindow makes a new window with an OpenGL context
// of the version and profile given in the options.
func (pf *Platform) CreateWindow(opts *session.Options) (session.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, opts.Version.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.Version.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, profileHint(opts.Version.Profile))
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(opts.Version.ForwardCompatible))

	glw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &window{glw: glw}, nil
}

// profileHint returns the GLFW hint value for the given profile.
func profileHint(pr session.Profiles) int {
	switch pr {
	case session.ProfileCompat:
		return glfw.OpenGLCompatProfile
	case session.ProfileAny:
		return glfw.OpenGLAnyProfile
	default:
		return glfw.OpenGLCoreProfile
	}
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// window wraps a GLFW window as a [session.Window].
type window struct {
	glw *glfw.Window
}

func (w *window) MakeContextCurrent() {
	w.glw.MakeContextCurrent()
}

func (w *window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

func (w *window) SetShouldClose(close bool) {
	w.glw.SetShouldClose(close)
}

func (w *window) EscapePressed() bool {
	return w.glw.GetKey(glfw.KeyEscape) == glfw.Press
}

func (w *window) SetFramebufferSizeCallback(fun func(width, height int)) {
	if fun == nil {
		w.glw.SetFramebufferSizeCallback(nil)
		return
	}
	w.glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fun(width, height)
	})
}

func (w *window) FramebufferSize() (int, int) {
	return w.glw.GetFramebufferSize()
}

func (w *window) SwapBuffers() {
	w.glw.SwapBuffers()
}

func (w *window) Destroy() {
	w.glw.Destroy()
}
