// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glos

import (
	"testing"

	"cogentcore.org/glboot/session"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileHint(t *testing.T) {
	assert.Equal(t, glfw.OpenGLCoreProfile, profileHint(session.ProfileCore))
	assert.Equal(t, glfw.OpenGLCompatProfile, profileHint(session.ProfileCompat))
	assert.Equal(t, glfw.OpenGLAnyProfile, profileHint(session.ProfileAny))
	assert.Equal(t, glfw.True, glfwBool(true))
	assert.Equal(t, glfw.False, glfwBool(false))
}

func TestSession(t *testing.T) {
	t.Skip("Need display on CI")
	sys := session.NewSubsystem(&Platform{})
	defer sys.Terminate()
	s, err := session.New(sys, &session.Options{Width: 320, Height: 240, Title: "glos test"})
	require.NoError(t, err)
	s.Bind()
	s.PollEvents()
	assert.False(t, s.ShouldClose())
	s.RequestClose()
	assert.True(t, s.ShouldClose())
	s.Destroy()
}
