// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package discovery decides which struct declarations are marked for
// generation and projects them into [model.ClassMetadata].
//
// Discovery is a pure function of its input: the same candidate always
// yields the same metadata, and candidates can be inspected concurrently.
package discovery

import (
	"go/ast"
	"go/types"
	"path"
	"strconv"
	"strings"

	"github.com/albertocavalcante/bladegen/marker"
	"github.com/albertocavalcante/bladegen/model"
)

// Resolver maps a declaring identifier to its type-checker object.
// [*types.Info] satisfies it.
type Resolver interface {
	ObjectOf(id *ast.Ident) types.Object
}

// Candidate is one type declaration offered for inspection.
type Candidate struct {
	// Spec is the type declaration.
	Spec *ast.TypeSpec

	// Doc is the doc comment attached to the declaration, if any.
	Doc *ast.CommentGroup

	// File is the file containing the declaration. Strict matching uses
	// its imports; textual matching ignores it.
	File *ast.File

	// Resolver resolves Spec.Name to its object. May be nil, in which case
	// the candidate never qualifies.
	Resolver Resolver
}

// Filter selects annotated struct declarations.
//
// The zero value matches the "GenerateCode" annotation textually.
type Filter struct {
	// Marker is the annotation name. Defaults to [marker.Name].
	Marker string

	// Strict requires the annotation to resolve to the type
	// MarkerPackage.Marker instead of matching its text.
	Strict bool

	// MarkerPackage is the import path declaring the marker type, used in
	// strict mode. Defaults to [marker.Path].
	MarkerPackage string
}

func (f Filter) marker() string {
	if f.Marker == "" {
		return marker.Name
	}
	return f.Marker
}

// markerType returns the marker's type name. A qualifier on Marker is
// dropped: in strict mode the package comes from MarkerPackage.
func (f Filter) markerType() string {
	name := f.marker()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (f Filter) markerPackage() string {
	if f.MarkerPackage == "" {
		return marker.Path
	}
	return f.MarkerPackage
}

// Marked reports whether the declaration carries the marker annotation,
// looking at syntax only. In strict mode this is the cheap pre-check; the
// annotation is resolved later by [Filter.Inspect].
func (f Filter) Marked(c Candidate) bool {
	if c.Spec == nil {
		return false
	}
	if _, ok := c.Spec.Type.(*ast.StructType); !ok {
		return false
	}

	want := f.marker()
	for _, a := range Annotations(c.Doc) {
		if f.Strict {
			if a.Name == f.markerType() {
				return true
			}
			continue
		}
		// Textual match on the name as written: "@other.GenerateCode" does not
		// match, while any "@GenerateCode" does, whatever it refers to.
		if a.Text() == want {
			return true
		}
	}
	return false
}

// Inspect returns metadata for a marked struct declaration, or nil when the
// candidate does not qualify or its symbol cannot be resolved.
func (f Filter) Inspect(c Candidate) *model.ClassMetadata {
	if !f.Marked(c) {
		return nil
	}
	if c.Resolver == nil {
		return nil
	}

	tn, ok := c.Resolver.ObjectOf(c.Spec.Name).(*types.TypeName)
	if !ok || tn == nil || tn.IsAlias() {
		return nil
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	if f.Strict && !f.resolvesMarker(c, tn.Pkg()) {
		return nil
	}

	return project(tn, named, st)
}

// resolvesMarker reports whether any annotation on c refers to the marker
// type declared in MarkerPackage.
func (f Filter) resolvesMarker(c Candidate, pkg *types.Package) bool {
	want := f.markerType()
	for _, a := range Annotations(c.Doc) {
		if a.Name != want {
			continue
		}
		if p, ok := f.annotationPackage(a, c.File, pkg); ok && p == f.markerPackage() {
			return true
		}
	}
	return false
}

// annotationPackage returns the import path of the package declaring the
// annotation's type.
func (f Filter) annotationPackage(a Annotation, file *ast.File, pkg *types.Package) (string, bool) {
	if a.Qualifier == "" {
		if pkg != nil {
			if obj := pkg.Scope().Lookup(a.Name); obj != nil {
				if _, ok := obj.(*types.TypeName); ok {
					return pkg.Path(), true
				}
				return "", false
			}
		}
		if file == nil {
			return "", false
		}
		for _, spec := range file.Imports {
			if spec.Name == nil || spec.Name.Name != "." {
				continue
			}
			p := importPath(spec)
			if declaresType(pkg, p, a.Name) {
				return p, true
			}
		}
		return "", false
	}

	if file == nil {
		return "", false
	}
	for _, spec := range file.Imports {
		p := importPath(spec)
		if localName(spec, p, pkg) == a.Qualifier {
			return p, true
		}
	}
	return "", false
}

// declaresType reports whether the imported package at path declares a type
// with the given name. When the import was not type-checked the path alone is
// trusted.
func declaresType(pkg *types.Package, importPath, name string) bool {
	if pkg == nil {
		return true
	}
	for _, imp := range pkg.Imports() {
		if imp.Path() != importPath {
			continue
		}
		_, ok := imp.Scope().Lookup(name).(*types.TypeName)
		return ok
	}
	return true
}

// localName returns the name a file uses to refer to an import.
// Blank imports are addressed by the package name so that
// `import _ ".../marker"` supports "@marker.GenerateCode".
func localName(spec *ast.ImportSpec, importPath string, pkg *types.Package) string {
	if spec.Name != nil && spec.Name.Name != "_" && spec.Name.Name != "." {
		return spec.Name.Name
	}
	if pkg != nil {
		for _, imp := range pkg.Imports() {
			if imp.Path() == importPath {
				return imp.Name()
			}
		}
	}
	return path.Base(importPath)
}

func importPath(spec *ast.ImportSpec) string {
	p, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return spec.Path.Value
	}
	return p
}
