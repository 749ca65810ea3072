// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package golang generates companion Go files for marked types.
//
// For a type Widget the companion file declares WidgetFields (the exported
// field names in order), WidgetFieldTypes (field name to fully qualified type)
// and, per field, a Get<Field> getter and a With<Field> copy-on-write setter.
//
// Options:
//
//	receiver  receiver name (default: lower-cased first letter of the type)
//	getters   generate Get<Field> methods (default: true)
//	setters   generate With<Field> methods (default: true)
//	format    gofmt the output (default: true)
package golang

import (
	"github.com/albertocavalcante/bladegen/emit"
	"github.com/albertocavalcante/bladegen/generator"
)

// GoGenerator implements [generator.Generator] for Go code generation.
type GoGenerator struct{}

// NewGenerator creates a new Go generator.
func NewGenerator() *GoGenerator {
	return &GoGenerator{}
}

// Metadata returns information about this generator.
func (g *GoGenerator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "go",
		Version:        "1.0.0",
		Description:    "Generate field tables and accessors in Go",
		FileExtensions: []string{".go"},
		URL:            "https://github.com/albertocavalcante/bladegen",
	}
}

// NewRenderer builds a renderer from the embedded template or cfg.Template.
func (g *GoGenerator) NewRenderer(cfg generator.Config) (emit.Renderer, error) {
	return newRenderer(cfg)
}
