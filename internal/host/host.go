// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package host loads Go packages and lists their type declarations as
// discovery candidates.
package host

import (
	"cmp"
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"

	"github.com/albertocavalcante/bladegen/discovery"
)

// Mode is the information loaded for every package.
const Mode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Options configures package loading.
type Options struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string

	// Patterns are package patterns as accepted by "go list".
	// Defaults to "./...".
	Patterns []string

	// Tags are build tags.
	Tags []string
}

// Package is one loaded package.
type Package struct {
	// Path is the import path.
	Path string

	// Name is the package name.
	Name string

	// Dir is the directory holding the package files.
	Dir string

	// Candidates are the package-level type declarations in file then
	// declaration order.
	Candidates []discovery.Candidate

	// Errors are load and type errors. They do not stop discovery:
	// declarations that fail to resolve are simply not candidates.
	Errors []string
}

// Snapshot is the result of one load.
type Snapshot struct {
	// Packages sorted by import path.
	Packages []*Package
}

// Dirs maps import path to package directory.
func (s *Snapshot) Dirs() map[string]string {
	dirs := make(map[string]string, len(s.Packages))
	for _, p := range s.Packages {
		if p.Dir != "" {
			dirs[p.Path] = p.Dir
		}
	}
	return dirs
}

// Candidates returns the total number of candidates.
func (s *Snapshot) Candidates() int {
	n := 0
	for _, p := range s.Packages {
		n += len(p.Candidates)
	}
	return n
}

// Load loads the packages matching opts.Patterns.
// Only failures of the build system itself are returned as errors.
func Load(ctx context.Context, opts Options) (*Snapshot, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    Mode,
		Dir:     opts.Dir,
	}
	if len(opts.Tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(opts.Tags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrapf(err, "load packages %s", strings.Join(patterns, " "))
	}

	snap := &Snapshot{}
	for _, pkg := range pkgs {
		snap.Packages = append(snap.Packages, convert(pkg))
	}
	slices.SortFunc(snap.Packages, func(a, b *Package) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return snap, nil
}

func convert(pkg *packages.Package) *Package {
	p := &Package{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}
	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}
	for _, e := range pkg.Errors {
		p.Errors = append(p.Errors, e.Error())
	}

	// A nil *types.Info must not reach the filter as a non-nil Resolver.
	var resolver discovery.Resolver
	if pkg.TypesInfo != nil {
		resolver = pkg.TypesInfo
	}
	for _, file := range pkg.Syntax {
		p.Candidates = append(p.Candidates, discovery.FileCandidates(file, resolver)...)
	}
	return p
}
