// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSource is returned by [Builder.CompileStage] when no
	// non-empty source has been set for the stage.
	ErrNoSource = errors.New("no source set for stage")

	// ErrNoContext is returned when the backend could not create
	// an object, which happens when no context is bound.
	ErrNoContext = errors.New("backend returned a null handle: is a context bound?")

	// ErrNotLinked is returned when using a [Program] that did not link.
	ErrNotLinked = errors.New("program is not linked")

	// ErrDeleted is returned when using a [Program] after Delete.
	ErrDeleted = errors.New("program has been deleted")

	// ErrUniformNotFound is returned by [Program.UniformLocation]
	// for names that are not active uniforms of the program.
	ErrUniformNotFound = errors.New("uniform not found")
)

// StageCompileError is returned when the backend fails to compile
// a stage. Log is the compiler log of that stage.
type StageCompileError struct {
	Stage StageTypes
	Log   string
}

func (e *StageCompileError) Error() string {
	return fmt.Sprintf("shader: %s stage failed to compile: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkPreconditionError is returned by [Builder.Link] when the set of
// compiled stages cannot form a program. No program object is created.
type LinkPreconditionError struct {
	// Missing are the stages that are required but not compiled.
	Missing []StageTypes

	// Failed are the stages whose last compile failed.
	Failed []StageTypes
}

func (e *LinkPreconditionError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+stageList(e.Missing))
	}
	if len(e.Failed) > 0 {
		parts = append(parts, "failed "+stageList(e.Failed))
	}
	return "shader: cannot link: " + strings.Join(parts, "; ")
}

// LinkError is returned when the backend linker fails.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader: program failed to link: " + strings.TrimSpace(e.Log)
}

func stageList(sts []StageTypes) string {
	names := make([]string, len(sts))
	for i, st := range sts {
		names[i] = st.String()
	}
	return strings.Join(names, ", ")
}
