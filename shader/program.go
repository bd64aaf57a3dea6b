// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"log/slog"
	"slices"
)

// Program is a program object produced by [Builder.Link].
// Only a Program with OK true can be activated or queried;
// the caller owns it and must call [Program.Delete] when done.
type Program struct {
	// OK is whether the program linked.
	OK bool

	// Log is the linker log if linking failed.
	Log string

	// Stages are the stage kinds that were attached.
	Stages []StageTypes

	name    string
	handle  uint32
	backend Backend
	deleted bool
	unis    map[string]int32
}

// Handle returns the backend handle of the program.
// It is zero after Delete.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// HasStage returns whether the given stage was attached.
func (pr *Program) HasStage(st StageTypes) bool {
	return slices.Contains(pr.Stages, st)
}

// Tessellated returns whether the program has tessellation stages.
func (pr *Program) Tessellated() bool {
	return pr.HasStage(TessCtrlStage) && pr.HasStage(TessEvalStage)
}

func (pr *Program) usable() error {
	if pr.deleted {
		return ErrDeleted
	}
	if !pr.OK {
		return ErrNotLinked
	}
	return nil
}

// Activate makes this the active program for drawing.
// It returns an error and does nothing if the program did not link
// or has been deleted.
func (pr *Program) Activate() error {
	if err := pr.usable(); err != nil {
		slog.Error("shader.Program Activate", "Program", pr.name, "err", err)
		return err
	}
	pr.backend.UseProgram(pr.handle)
	return nil
}

// UniformLocation returns the location of the named uniform.
// Locations are cached after the first lookup.
func (pr *Program) UniformLocation(name string) (int32, error) {
	if err := pr.usable(); err != nil {
		return -1, err
	}
	if loc, ok := pr.unis[name]; ok {
		return loc, nil
	}
	loc := pr.backend.UniformLocation(pr.handle, name)
	if loc < 0 {
		return -1, fmt.Errorf("shader.Program %s UniformLocation %q: %w", pr.name, name, ErrUniformNotFound)
	}
	if pr.unis == nil {
		pr.unis = make(map[string]int32)
	}
	pr.unis[name] = loc
	return loc, nil
}

// Delete releases the program object. It can be called more than once,
// and also on a program that failed to link.
func (pr *Program) Delete() {
	if pr.deleted {
		return
	}
	pr.backend.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.deleted = true
	pr.unis = nil
}
