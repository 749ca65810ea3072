// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package templates resolves the template text used by a target.
package templates

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Extension is the file extension of template files in a template directory.
const Extension = ".tmpl"

// Options configures where template text is loaded from.
type Options struct {
	// LocalPath is a template file. If set, it is read directly and Dir is ignored.
	LocalPath string

	// Dir holds per-target templates named "<target>.tmpl".
	// Targets without a file in Dir use their embedded template.
	Dir string

	// Target is the target name.
	Target string
}

// Result contains the resolved template.
type Result struct {
	// Text is the template text. Empty means the target's embedded template.
	Text string

	// Source describes where the template was loaded from.
	Source string
}

// Embedded reports whether the target's embedded template should be used.
func (r *Result) Embedded() bool {
	return r.Text == ""
}

// Load resolves the template for opts.Target.
//
// Priority: LocalPath > Dir/<target>.tmpl > embedded.
func Load(opts Options) (*Result, error) {
	if opts.Target == "" {
		return nil, errors.New("templates: no target")
	}

	if opts.LocalPath != "" {
		return loadFile(opts.LocalPath)
	}

	if opts.Dir != "" {
		path := filepath.Join(opts.Dir, opts.Target+Extension)
		r, err := loadFile(path)
		if err == nil {
			return r, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		info, statErr := os.Stat(opts.Dir)
		if statErr != nil {
			return nil, errors.Wrap(statErr, "template dir")
		}
		if !info.IsDir() {
			return nil, errors.Newf("template dir %s is not a directory", opts.Dir)
		}
	}

	return &Result{Source: "embedded:" + opts.Target}, nil
}

// loadFile reads a template file.
func loadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read template")
	}
	if len(data) == 0 {
		return nil, errors.WithHint(
			errors.Newf("template %s is empty", path),
			"remove the file to use the built-in template",
		)
	}
	return &Result{
		Text:   string(data),
		Source: "file://" + filepath.ToSlash(path),
	}, nil
}
