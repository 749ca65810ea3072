// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the metadata extracted from annotated Go types.
//
// Values in this package are plain snapshots. They hold no reference to the
// syntax trees or type-checker objects they were built from, so renderers can
// consume them without touching loader state.
package model

import "slices"

// ClassMetadata describes one annotated struct type.
type ClassMetadata struct {
	// Name is the type name (e.g., "Widget").
	Name string `json:"name"`

	// Namespace is the import path of the declaring package
	// (e.g., "example.com/shapes"). Empty when the type has no package.
	Namespace string `json:"namespace"`

	// Package is the declaring package name (e.g., "shapes").
	Package string `json:"package"`

	// TypeParams lists type parameter names of a generic struct, in order.
	TypeParams []string `json:"typeParams,omitempty"`

	// Properties lists exported fields in declaration order.
	Properties []PropertyMetadata `json:"properties"`

	// Imports lists packages referenced by property types, sorted by path.
	// The declaring package itself is never listed.
	Imports []Import `json:"imports,omitempty"`
}

// PropertyMetadata describes one exported field of an annotated type.
type PropertyMetadata struct {
	// Name is the field name. For embedded fields it is the type name.
	Name string `json:"name"`

	// Type is the fully qualified type string, e.g. "[]example.com/geo.Point".
	Type string `json:"type"`

	// LocalType is Type as written inside the declaring package,
	// e.g. "[]geo.Point".
	LocalType string `json:"localType"`

	// Tag is the raw struct tag without backquotes.
	Tag string `json:"tag,omitempty"`

	// Embedded reports whether the field is embedded.
	Embedded bool `json:"embedded,omitempty"`
}

// Import is a package referenced by a property type.
type Import struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// QualifiedName returns Namespace.Name, or Name when Namespace is empty.
func (c *ClassMetadata) QualifiedName() string {
	if c.Namespace == "" {
		return c.Name
	}
	return c.Namespace + "." + c.Name
}

// IsGeneric reports whether the type declares type parameters.
func (c *ClassMetadata) IsGeneric() bool {
	return len(c.TypeParams) > 0
}

// Property returns the property with the given name.
func (c *ClassMetadata) Property(name string) (PropertyMetadata, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertyMetadata{}, false
}

// Clone returns a deep copy of c.
func (c *ClassMetadata) Clone() *ClassMetadata {
	if c == nil {
		return nil
	}
	out := *c
	out.TypeParams = slices.Clone(c.TypeParams)
	out.Properties = slices.Clone(c.Properties)
	out.Imports = slices.Clone(c.Imports)
	return &out
}

// LocalNames maps each of classes to the way c's package spells it: "Item"
// for a class declared alongside c, "geo.Point" for one reached through an
// import of c. Classes of packages c does not import are left out.
func (c *ClassMetadata) LocalNames(classes []*ClassMetadata) map[string]*ClassMetadata {
	out := make(map[string]*ClassMetadata)
	for _, k := range classes {
		if k == nil {
			continue
		}
		if k.Namespace == c.Namespace {
			out[k.Name] = k
			continue
		}
		for _, imp := range c.Imports {
			if imp.Path == k.Namespace && imp.Name != "" && imp.Name != "_" && imp.Name != "." {
				out[imp.Name+"."+k.Name] = k
			}
		}
	}
	return out
}
