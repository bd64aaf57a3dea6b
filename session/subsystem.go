// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"log/slog"
)

// Subsystem is the process-wide windowing subsystem, shared by the
// sessions created on it. It is initialized lazily by the first
// [New] call and is only ever shut down by an explicit call to
// [Subsystem.Terminate], which the caller makes once, after all
// sessions are destroyed. There is no reference counting.
// IMPORTANT: must be used on the main initial thread!
type Subsystem struct {
	// Platform is the windowing implementation.
	Platform Platform

	initialized bool
	sessions    int
}

// NewSubsystem returns a new, uninitialized Subsystem on the given platform.
func NewSubsystem(pf Platform) *Subsystem {
	return &Subsystem{Platform: pf}
}

// Initialized returns whether the platform has been initialized
// and not yet terminated.
func (sy *Subsystem) Initialized() bool {
	return sy.initialized
}

// Sessions returns the number of sessions created on this subsystem
// that have not been destroyed.
func (sy *Subsystem) Sessions() int {
	return sy.sessions
}

// init initializes the platform if needed, returning whether
// this call did so.
func (sy *Subsystem) init() (bool, error) {
	if sy.initialized {
		return false, nil
	}
	if err := sy.Platform.Init(); err != nil {
		return false, &SubsystemInitError{Err: err}
	}
	sy.initialized = true
	slog.Debug("session.Subsystem initialized")
	return true, nil
}

// Terminate shuts down the platform -- call as last thing before quitting,
// after destroying all sessions. Calling it when not initialized does nothing.
func (sy *Subsystem) Terminate() {
	if !sy.initialized {
		return
	}
	if sy.sessions > 0 {
		slog.Warn("session.Subsystem Terminate: sessions still live", "sessions", sy.sessions)
	}
	sy.Platform.Terminate()
	sy.initialized = false
	sy.sessions = 0
}
