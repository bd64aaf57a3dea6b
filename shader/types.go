// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shader

//go:generate core generate

// StageTypes are the kinds of shader stages that can be
// combined into a Program.
type StageTypes int32 //enums:enum -trim-prefix Stage

const (
	// VertexStage is the mandatory vertex stage.
	VertexStage StageTypes = iota

	// FragmentStage is the mandatory fragment stage.
	FragmentStage

	// TessCtrlStage is the optional tessellation control stage.
	// It must be paired with a TessEvalStage.
	TessCtrlStage

	// TessEvalStage is the optional tessellation evaluation stage.
	// It must be paired with a TessCtrlStage.
	TessEvalStage
)

// IsTess returns whether this is one of the tessellation stages.
func (st StageTypes) IsTess() bool {
	return st == TessCtrlStage || st == TessEvalStage
}

// IsRequired returns whether every Program must have this stage.
func (st StageTypes) IsRequired() bool {
	return st == VertexStage || st == FragmentStage
}

// StageSource is the source code of one stage.
type StageSource struct {
	// Stage is the kind of stage.
	Stage StageTypes

	// Code is the GLSL source code.
	Code string

	// Path is the file the code was read from, or "" if given inline.
	Path string
}

// BuilderStates are the states of a [Builder] as it moves
// from sources to a linked [Program].
type BuilderStates int32 //enums:enum

const (
	// Empty means no stage source has been set.
	Empty BuilderStates = iota

	// SourcesSet means at least one source is set and nothing
	// has been compiled since the last link.
	SourcesSet

	// PartiallyCompiled means some, but not all, stages that have
	// sources are compiled.
	PartiallyCompiled

	// FullyCompiled means every stage that has a source is compiled.
	FullyCompiled

	// Linked means the last Link succeeded.
	Linked

	// LinkFailed means the last Link attempt failed, either on its
	// preconditions or in the backend linker.
	LinkFailed
)
