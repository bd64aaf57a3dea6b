// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

//go:generate core generate

// Platform is the windowing subsystem that sessions are created on.
// Init and Terminate bracket all other use, and all calls must be
// made on the main thread. See the glos package for the GLFW
// implementation.
type Platform interface {
	// Init starts the windowing subsystem.
	Init() error

	// Terminate shuts down the windowing subsystem, destroying
	// any remaining windows.
	Terminate()

	// CreateWindow makes a new window with a graphics context
	// according to the given options, which have had defaults applied.
	CreateWindow(opts *Options) (Window, error)

	// PollEvents processes the events that are already queued,
	// invoking window callbacks synchronously, and returns
	// without waiting.
	PollEvents()
}

// Window is a native window with its graphics context,
// exclusively owned by one [Session].
type Window interface {
	// MakeContextCurrent binds the window context to the calling thread.
	MakeContextCurrent()

	// ShouldClose returns whether closing the window was requested,
	// by the user or by SetShouldClose.
	ShouldClose() bool

	// SetShouldClose sets the close request flag.
	SetShouldClose(close bool)

	// EscapePressed returns whether the Escape key is down.
	EscapePressed() bool

	// SetFramebufferSizeCallback sets the function called from
	// PollEvents when the framebuffer is resized; nil removes it.
	SetFramebufferSizeCallback(fun func(width, height int))

	// FramebufferSize returns the framebuffer size in pixels.
	FramebufferSize() (width, height int)

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// Destroy destroys the window and its context.
	Destroy()
}

// Viewporter is the rendering backend call that maps rendering
// output onto the framebuffer, which is all a resize updates.
type Viewporter interface {
	SetViewport(x, y, width, height int)
}

// Profiles are the OpenGL context profiles that can be requested.
type Profiles int32 //enums:enum -trim-prefix Profile

const (
	// ProfileCore requests a core profile context.
	ProfileCore Profiles = iota

	// ProfileCompat requests a compatibility profile context.
	ProfileCompat

	// ProfileAny lets the driver choose.
	ProfileAny
)

// Version is the graphics API version and profile requested for the
// context. It is fixed when the session is created.
type Version struct {
	Major int `default:"4"`
	Minor int `default:"1"`

	Profile Profiles `default:"Core"`

	// ForwardCompatible removes deprecated functionality;
	// it is required for core profiles on macOS.
	ForwardCompatible bool `default:"true"`
}

// DefaultVersion is OpenGL 4.1 core, forward compatible,
// the newest version available on all desktop platforms.
var DefaultVersion = Version{Major: 4, Minor: 1, Profile: ProfileCore, ForwardCompatible: true}
