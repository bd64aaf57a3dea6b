// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaderwatch reports edits to shader source files so
// that an interactive program can rebuild its shader programs.
// Change detection runs on a background goroutine; the render loop
// picks up changes with the non-blocking [Watcher.Drain].
package shaderwatch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of files for writes.
type Watcher struct {
	watcher *fsnotify.Watcher

	// files are the cleaned paths being watched
	files map[string]bool

	mu      sync.Mutex
	changed map[string]bool
	done    chan struct{}
}

// New returns a Watcher on the given files. Their directories are
// watched rather than the files themselves, so that editors that
// save by renaming a new file into place are seen too.
func New(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shaderwatch.New: %w", err)
	}
	w := &Watcher{
		watcher: fw,
		files:   map[string]bool{},
		changed: map[string]bool{},
		done:    make(chan struct{}),
	}
	dirs := map[string]bool{}
	for _, f := range files {
		f = filepath.Clean(f)
		w.files[f] = true
		dirs[filepath.Dir(f)] = true
	}
	for d := range dirs {
		if err := fw.Add(d); err != nil {
			fw.Close()
			return nil, fmt.Errorf("shaderwatch.New: watching %q: %w", d, err)
		}
	}
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(ev.Name)
			if !w.files[name] {
				continue
			}
			slog.Debug("shaderwatch: file changed", "file", name, "op", ev.Op)
			w.mu.Lock()
			w.changed[name] = true
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("shaderwatch", "err", err)
		}
	}
}

// Drain returns the files that changed since the last call, sorted,
// without waiting. It returns nil if nothing changed.
func (w *Watcher) Drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.changed) == 0 {
		return nil
	}
	fs := make([]string, 0, len(w.changed))
	for f := range w.changed {
		fs = append(fs, f)
	}
	clear(w.changed)
	slices.Sort(fs)
	return fs
}

// Close stops watching and waits for the background goroutine to end.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
