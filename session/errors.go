// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import "fmt"

// SubsystemInitError is returned by [New] when the windowing
// subsystem could not be initialized.
type SubsystemInitError struct {
	Err error
}

func (e *SubsystemInitError) Error() string {
	return fmt.Sprintf("session: windowing subsystem failed to initialize: %v", e.Err)
}

func (e *SubsystemInitError) Unwrap() error { return e.Err }

// SessionCreationError is returned by [New] when the window and
// its context could not be created. The session must not be used.
type SessionCreationError struct {
	Title string
	Err   error
}

func (e *SessionCreationError) Error() string {
	return fmt.Sprintf("session: could not create window %q: %v", e.Title, e.Err)
}

func (e *SessionCreationError) Unwrap() error { return e.Err }
