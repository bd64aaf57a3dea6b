// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session manages the window and graphics context
// of an interactive graphics program: creation, context binding,
// event polling, close requests and viewport updates on resize.
package session

import (
	"errors"
	"image"
	"log/slog"
)

// Options are the parameters for creating a [Session].
type Options struct {
	// Width and Height are the window size in screen coordinates.
	Width  int `default:"800"`
	Height int `default:"600"`

	// Title is the window title.
	Title string `default:"Demo"`

	// Version is the requested graphics API version and profile.
	Version Version

	// Resizable is whether the user can resize the window.
	Resizable bool `default:"true"`

	// Viewporter receives viewport updates on resize. It can also
	// be set later with [Session.SetViewporter], typically once the
	// graphics functions are loaded.
	Viewporter Viewporter `display:"-"`
}

// Defaults fills in zero fields with their default values:
// an 800x600 window titled "Demo" with [DefaultVersion].
func (o *Options) Defaults() {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.Title == "" {
		o.Title = "Demo"
	}
	if o.Version.Major == 0 {
		o.Version = DefaultVersion
	}
}

// Session owns exactly one window and its graphics context for the
// lifetime of an interactive loop. It is not safe for concurrent use;
// all methods must be called on the main thread.
type Session struct {
	sys        *Subsystem
	win        Window
	width      int
	height     int
	title      string
	version    Version
	viewport   image.Rectangle
	viewporter Viewporter
	closing    bool
}

// New creates a new session on the given subsystem, initializing the
// subsystem if it is not already. If the window cannot be created, the
// subsystem is terminated again if this call initialized it, and a
// [*SessionCreationError] is returned; if the subsystem itself fails,
// a [*SubsystemInitError] is returned. opts may be nil.
func New(sys *Subsystem, opts *Options) (*Session, error) {
	if opts == nil {
		opts = &Options{}
	}
	o := *opts
	o.Defaults()

	triggered, err := sys.init()
	if err != nil {
		slog.Error("session.New", "err", err)
		return nil, err
	}
	win, err := sys.Platform.CreateWindow(&o)
	if err == nil && win == nil {
		err = errors.New("platform returned no window")
	}
	if err != nil {
		if triggered {
			sys.Terminate()
		}
		cerr := &SessionCreationError{Title: o.Title, Err: err}
		slog.Error("session.New", "err", cerr)
		return nil, cerr
	}

	s := &Session{
		sys:        sys,
		win:        win,
		width:      o.Width,
		height:     o.Height,
		title:      o.Title,
		version:    o.Version,
		viewporter: o.Viewporter,
	}
	fw, fh := win.FramebufferSize()
	s.viewport = image.Rect(0, 0, fw, fh)
	win.SetFramebufferSizeCallback(s.resized)
	sys.sessions++
	slog.Debug("session.New", "title", s.title, "width", s.width, "height", s.height, "version", s.version)
	return s, nil
}

// Size returns the window size recorded at creation.
// It does not change when the window is resized.
func (s *Session) Size() image.Point {
	return image.Point{s.width, s.height}
}

// Title returns the window title.
func (s *Session) Title() string {
	return s.title
}

// Version returns the requested graphics API version.
func (s *Session) Version() Version {
	return s.version
}

// Viewport returns the current viewport rectangle, which tracks
// the framebuffer size.
func (s *Session) Viewport() image.Rectangle {
	return s.viewport
}

// FramebufferSize returns the current framebuffer size in pixels,
// or zero after Destroy.
func (s *Session) FramebufferSize() image.Point {
	if s.win == nil {
		return image.Point{}
	}
	w, h := s.win.FramebufferSize()
	return image.Point{w, h}
}

// SetViewporter sets the backend that receives viewport updates, and
// applies the current viewport to it right away.
func (s *Session) SetViewporter(vp Viewporter) {
	s.viewporter = vp
	if vp != nil {
		sz := s.viewport.Size()
		vp.SetViewport(s.viewport.Min.X, s.viewport.Min.Y, sz.X, sz.Y)
	}
}

// Bind makes the session context current on the calling thread.
func (s *Session) Bind() {
	if s.win == nil {
		slog.Error("session.Bind: session has been destroyed", "title", s.title)
		return
	}
	s.win.MakeContextCurrent()
}

// PollEvents processes pending window and input events without
// blocking. Resize events update the viewport from within this call.
// An Escape key press requests closing. Call once per loop iteration.
func (s *Session) PollEvents() {
	if s.win == nil {
		return
	}
	s.sys.Platform.PollEvents()
	if s.win != nil && s.win.EscapePressed() {
		s.RequestClose()
	}
}

// ShouldClose returns whether the session should end: closing was
// requested with [Session.RequestClose], the Escape key, or the window
// close button, or the window is gone. Once true it stays true.
func (s *Session) ShouldClose() bool {
	if s.closing {
		return true
	}
	if s.win == nil || s.win.ShouldClose() {
		s.closing = true
	}
	return s.closing
}

// RequestClose marks the session for closing. Resources are only
// released by [Session.Destroy].
func (s *Session) RequestClose() {
	if s.closing {
		return
	}
	s.closing = true
	if s.win != nil {
		s.win.SetShouldClose(true)
	}
}

// SwapBuffers presents the frame that was just drawn.
func (s *Session) SwapBuffers() {
	if s.win == nil {
		return
	}
	s.win.SwapBuffers()
}

// Destroy destroys the window and its context. It does not terminate
// the subsystem. Destroy can be called more than once.
func (s *Session) Destroy() {
	if s.win == nil {
		return
	}
	s.win.SetFramebufferSizeCallback(nil)
	s.win.Destroy()
	s.win = nil
	s.closing = true
	if s.sys.sessions > 0 {
		s.sys.sessions--
	}
	slog.Debug("session.Destroy", "title", s.title)
}

// resized is the framebuffer size callback.
func (s *Session) resized(width, height int) {
	s.viewport = image.Rect(0, 0, width, height)
	if s.viewporter != nil {
		s.viewporter.SetViewport(0, 0, width, height)
	}
}
