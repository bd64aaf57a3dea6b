// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaderfs

import (
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"cogentcore.org/core/base/stringsx"
)

// MaxIncludeDepth bounds nested #include expansion, which
// also stops include cycles.
const MaxIncludeDepth = 16

// IncludeFS processes #include "file" statements in
// the given code string, using the given file system
// and default directory to locate the included files.
// Included files are processed recursively. Each directive
// is kept as a comment above the inserted lines.
func IncludeFS(fsys fs.FS, dir, code string) string {
	return includeFS(fsys, dir, code, 0)
}

func includeFS(fsys fs.FS, dir, code string, depth int) string {
	fl := stringsx.SplitLines(code)
	nl := len(fl)
	for li := nl - 1; li >= 0; li-- {
		ln := strings.TrimSpace(fl[li])
		if !strings.HasPrefix(ln, `#include "`) {
			continue
		}
		fn := ln[10:]
		qi := strings.Index(fn, `"`)
		if qi < 0 {
			slog.Error("shaderfs.IncludeFS: malformed #include: no final quote", "line", li+1)
			continue
		}
		if depth >= MaxIncludeDepth {
			slog.Error("shaderfs.IncludeFS: #include nested too deeply", "file", fn[:qi])
			continue
		}
		fname := path.Join(dir, fn[:qi])
		b, err := fs.ReadFile(fsys, fname)
		if err != nil {
			b, err = fs.ReadFile(fsys, fn[:qi])
			if err != nil {
				slog.Error("shaderfs.IncludeFS: could not find include", "file", fn[:qi], "dir", dir)
				continue
			}
			fname = fn[:qi]
		}
		inc := includeFS(fsys, path.Dir(fname), string(b), depth+1)
		ol := stringsx.SplitLines(inc)
		fl[li] = "// " + ln
		fl = slices.Insert(fl, li+1, ol...)
	}
	return strings.Join(fl, "\n")
}
