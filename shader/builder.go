// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"cogentcore.org/core/base/errors"
)

// DefaultMaxLogLength is the default bound on the length of
// compile and link logs kept in [CompiledStage] and [Program].
const DefaultMaxLogLength = 512

// CompiledStage is the result of compiling one stage source.
// It is owned by the [Builder] that compiled it until the next Link,
// after which its Handle is no longer valid.
type CompiledStage struct {
	// Stage is the kind of stage.
	Stage StageTypes

	// Handle is the backend handle of the stage object.
	Handle uint32

	// OK is whether the stage compiled without errors.
	OK bool

	// Log is the compiler log, bounded by [Builder.MaxLogLength].
	Log string

	released bool
}

// Err returns a [*StageCompileError] if the stage failed to compile.
func (cs *CompiledStage) Err() error {
	if cs.OK {
		return nil
	}
	return &StageCompileError{Stage: cs.Stage, Log: cs.Log}
}

// Released returns whether the stage object has been given
// back to the backend.
func (cs *CompiledStage) Released() bool {
	return cs.released
}

// Builder compiles stage sources and links them into a [Program].
// Sources are kept across builds so that a stage can be recompiled
// without setting it again; compiled stages are not: every Link
// releases all the stage objects the Builder holds, whether or not
// it succeeds.
//
// A Builder is not safe for concurrent use, and all of its methods
// must be called on the thread with the bound context.
type Builder struct {
	// Name is used in log messages.
	Name string

	// MaxLogLength bounds the length of compile and link logs.
	// Zero means [DefaultMaxLogLength].
	MaxLogLength int

	backend Backend
	sources [StageTypesN]string
	paths   [StageTypesN]string
	stages  [StageTypesN]*CompiledStage
	state   BuilderStates
}

// NewBuilder returns a new Builder with given name that makes its
// backend calls on the given [Backend].
func NewBuilder(name string, backend Backend) *Builder {
	return &Builder{Name: name, backend: backend}
}

// State returns the current state of the builder.
func (bd *Builder) State() BuilderStates {
	return bd.state
}

// Source returns the source set for the given stage.
func (bd *Builder) Source(st StageTypes) string {
	return bd.sources[st]
}

// Stage returns the currently held compiled stage of the given kind,
// or nil if there is none.
func (bd *Builder) Stage(st StageTypes) *CompiledStage {
	return bd.stages[st]
}

// LiveStages returns the number of stage objects held by the
// builder that have not been released. It is always zero right
// after a Link.
func (bd *Builder) LiveStages() int {
	n := 0
	for _, cs := range bd.stages {
		if cs != nil && !cs.released {
			n++
		}
	}
	return n
}

// SetStageSource sets the source code for the given stage,
// replacing any previous source. Nothing is compiled until
// [Builder.CompileStage]. Setting an empty source clears the stage.
func (bd *Builder) SetStageSource(st StageTypes, src string) {
	bd.setSource(st, src, "")
	bd.updateState()
}

// SetStageSources replaces all the sources with the given ones,
// clearing the stages that are not given, and records the path of
// each for log messages.
func (bd *Builder) SetStageSources(srcs ...StageSource) {
	var given [StageTypesN]bool
	for _, ss := range srcs {
		bd.setSource(ss.Stage, ss.Code, ss.Path)
		given[ss.Stage] = true
	}
	for _, st := range StageTypesValues() {
		if !given[st] {
			bd.setSource(st, "", "")
		}
	}
	bd.updateState()
}

// SetSources sets the sources of all the given stages.
func (bd *Builder) SetSources(srcs map[StageTypes]string) {
	for st, src := range srcs {
		bd.setSource(st, src, "")
	}
	bd.updateState()
}

// CompileStage compiles the source set for the given stage into a new
// stage object. A failed compile is not fatal: it returns the
// [CompiledStage] with OK false and its log, along with a
// [*StageCompileError], so that the caller can report it, fix the
// source and compile again. A previously compiled stage of the same
// kind is released first. A context must be bound.
func (bd *Builder) CompileStage(st StageTypes) (*CompiledStage, error) {
	if st < 0 || st >= StageTypesN {
		return nil, errors.Log(fmt.Errorf("shader.Builder %s CompileStage: invalid stage %d", bd.Name, st))
	}
	src := bd.sources[st]
	if src == "" {
		return nil, errors.Log(fmt.Errorf("shader.Builder %s CompileStage %s: %w", bd.Name, st, ErrNoSource))
	}
	bd.releaseStage(st)

	handle := bd.backend.CreateShader(st)
	if handle == 0 {
		return nil, errors.Log(fmt.Errorf("shader.Builder %s CompileStage %s: %w", bd.Name, st, ErrNoContext))
	}
	ok, lg := bd.backend.CompileShader(handle, src)
	cs := &CompiledStage{Stage: st, Handle: handle, OK: ok}
	if !ok {
		cs.Log = bd.boundLog(lg)
	}
	bd.stages[st] = cs
	bd.updateState()
	if !ok {
		slog.Error("shader.Builder CompileStage", "Builder", bd.Name, "Stage", st, "path", bd.paths[st], "log", cs.Log)
		return cs, cs.Err()
	}
	slog.Debug("shader.Builder CompileStage", "Builder", bd.Name, "Stage", st, "handle", handle)
	return cs, nil
}

// CompileAll compiles every stage that has a source, in stage order.
// It stops at the first stage that cannot be compiled, returning
// its error.
func (bd *Builder) CompileAll() error {
	for _, st := range StageTypesValues() {
		if bd.sources[st] == "" {
			continue
		}
		if _, err := bd.CompileStage(st); err != nil {
			return err
		}
	}
	return nil
}

// Link links the compiled stages into a new [Program].
//
// Vertex and fragment stages must be compiled, the tessellation stages
// must be both compiled or both absent, and no held stage may have
// failed to compile; otherwise a [*LinkPreconditionError] is returned
// and no program object is created.
//
// If the backend fails to link, the returned Program is not nil but is
// not usable; its Log has the linker output, which is also in the
// returned [*LinkError]. The caller owns the Program and must Delete it.
//
// In all cases, every stage object held by the builder is released
// before Link returns.
func (bd *Builder) Link() (*Program, error) {
	defer bd.releaseAll()

	if err := bd.checkLink(); err != nil {
		bd.state = LinkFailed
		return nil, errors.Log(err)
	}

	handle := bd.backend.CreateProgram()
	if handle == 0 {
		bd.state = LinkFailed
		return nil, errors.Log(fmt.Errorf("shader.Builder %s Link: %w", bd.Name, ErrNoContext))
	}
	pr := &Program{name: bd.Name, handle: handle, backend: bd.backend}
	for _, cs := range bd.stages {
		if cs == nil {
			continue
		}
		bd.backend.AttachShader(handle, cs.Handle)
		pr.Stages = append(pr.Stages, cs.Stage)
	}
	ok, lg := bd.backend.LinkProgram(handle)
	for _, cs := range bd.stages {
		if cs != nil {
			bd.backend.DetachShader(handle, cs.Handle)
		}
	}
	pr.OK = ok
	if !ok {
		pr.Log = bd.boundLog(lg)
		bd.state = LinkFailed
		slog.Error("shader.Builder Link", "Builder", bd.Name, "log", pr.Log)
		return pr, &LinkError{Log: pr.Log}
	}
	bd.state = Linked
	slog.Debug("shader.Builder Link", "Builder", bd.Name, "program", handle, "stages", pr.Stages)
	return pr, nil
}

// Build compiles all stages that have sources and links them,
// the common case of [Builder.CompileAll] followed by [Builder.Link].
// Stages are released even if a compile fails.
func (bd *Builder) Build() (*Program, error) {
	if err := bd.CompileAll(); err != nil {
		bd.releaseAll()
		bd.state = LinkFailed
		return nil, err
	}
	return bd.Link()
}

// checkLink returns a [*LinkPreconditionError] if the currently
// compiled stages cannot be linked.
func (bd *Builder) checkLink() error {
	var missing, failed []StageTypes
	held := func(st StageTypes) bool { return bd.stages[st] != nil }
	for _, st := range StageTypesValues() {
		cs := bd.stages[st]
		if cs != nil && !cs.OK {
			failed = append(failed, st)
		}
	}
	for _, st := range StageTypesValues() {
		switch {
		case st.IsRequired() && !held(st):
			missing = append(missing, st)
		case st == TessCtrlStage && !held(st) && held(TessEvalStage):
			missing = append(missing, st)
		case st == TessEvalStage && !held(st) && held(TessCtrlStage):
			missing = append(missing, st)
		}
	}
	if len(missing) == 0 && len(failed) == 0 {
		return nil
	}
	return &LinkPreconditionError{Missing: missing, Failed: failed}
}

// setSource stores the source of a stage, releasing the stage
// compiled from the previous source if the new one is empty.
func (bd *Builder) setSource(st StageTypes, src, path string) {
	bd.sources[st] = src
	bd.paths[st] = path
	if src == "" {
		bd.releaseStage(st)
	}
}

// releaseStage gives the held stage of the given kind back to the backend.
func (bd *Builder) releaseStage(st StageTypes) {
	cs := bd.stages[st]
	if cs == nil {
		return
	}
	if !cs.released {
		bd.backend.DeleteShader(cs.Handle)
		cs.released = true
	}
	bd.stages[st] = nil
}

func (bd *Builder) releaseAll() {
	for _, st := range StageTypesValues() {
		bd.releaseStage(st)
	}
}

// updateState recomputes the pre-link state from the held sources
// and stages.
func (bd *Builder) updateState() {
	nsrc, ncomp := 0, 0
	for _, st := range StageTypesValues() {
		if bd.sources[st] == "" {
			continue
		}
		nsrc++
		if bd.stages[st] != nil {
			ncomp++
		}
	}
	switch {
	case nsrc == 0:
		bd.state = Empty
	case ncomp == 0:
		bd.state = SourcesSet
	case ncomp < nsrc:
		bd.state = PartiallyCompiled
	default:
		bd.state = FullyCompiled
	}
}

func (bd *Builder) boundLog(lg string) string {
	mx := bd.MaxLogLength
	if mx <= 0 {
		mx = DefaultMaxLogLength
	}
	if len(lg) <= mx {
		return lg
	}
	for mx > 0 && !utf8.RuneStart(lg[mx]) {
		mx--
	}
	return lg[:mx]
}
