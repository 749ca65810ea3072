// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package proto generates a proto3 message for each marked type.
//
// Options:
//
//	package        proto package (default: Go package name)
//	go_package     go_package option (default: Go import path)
//	map.<GoType>   proto type for a Go type, e.g. map.uuid.UUID=string
package proto

import (
	"github.com/albertocavalcante/bladegen/emit"
	"github.com/albertocavalcante/bladegen/generator"
)

// Generator implements [generator.Generator] for Protocol Buffer generation.
type Generator struct{}

// NewGenerator creates a new Proto generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "proto",
		Version:        "1.0.0",
		Description:    "Generate Protocol Buffer messages",
		FileExtensions: []string{".proto"},
		URL:            "https://github.com/albertocavalcante/bladegen",
	}
}

// NewRenderer builds a renderer from the embedded template or cfg.Template.
func (g *Generator) NewRenderer(cfg generator.Config) (emit.Renderer, error) {
	return newRenderer(cfg, Config{
		PackageName:   cfg.Option("package", ""),
		GoPackage:     cfg.Option("go_package", ""),
		TypeOverrides: cfg.OptionsWithPrefix("map."),
	})
}
