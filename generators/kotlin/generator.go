// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package kotlin renders annotated Go structs as kotlinx.serialization data
// classes that decode the JSON encoding/json produces for them.
//
// Options:
//
//	package      Kotlin package name (default: the Go package name)
//	map.<GoType> Kotlin type for a Go type, e.g. map.uuid.UUID=String
package kotlin

import (
	"github.com/albertocavalcante/bladegen/emit"
	"github.com/albertocavalcante/bladegen/generator"
)

// Generator implements [generator.Generator] for Kotlin code generation.
type Generator struct{}

// NewGenerator creates a new Kotlin generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "kotlin",
		Version:        "1.0.0",
		Description:    "Generate Kotlin data classes",
		FileExtensions: []string{".kt"},
		URL:            "https://github.com/albertocavalcante/bladegen",
	}
}

// NewRenderer builds a renderer from the embedded template or cfg.Template.
func (g *Generator) NewRenderer(cfg generator.Config) (emit.Renderer, error) {
	return newRenderer(cfg, Config{
		PackageName:   cfg.Option("package", ""),
		TypeOverrides: cfg.OptionsWithPrefix("map."),
	})
}
