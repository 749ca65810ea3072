// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines generation targets.
//
// A target turns one [model.ClassMetadata] into the text of one companion
// file. Targets register themselves from an init function and are looked up
// by name from the command line.
package generator

import (
	"github.com/albertocavalcante/bladegen/emit"
	"github.com/albertocavalcante/bladegen/model"
)

// Generator is the interface that all generation targets must implement.
type Generator interface {
	// Metadata returns information about this target.
	Metadata() Metadata

	// NewRenderer builds a renderer for the given configuration.
	// Errors here are configuration errors (e.g., a template that does not parse)
	// and are reported before any class is rendered.
	NewRenderer(cfg Config) (emit.Renderer, error)
}

// Metadata describes a target.
type Metadata struct {
	// Name is the short identifier (e.g., "go", "proto", "markdown").
	Name string

	// Version is the target version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists output extensions. The first one is used for
	// artifact names.
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}

// Extension returns the artifact extension, or [emit.DefaultExtension] when
// the target declares none.
func (m Metadata) Extension() string {
	if len(m.FileExtensions) == 0 {
		return emit.DefaultExtension
	}
	return m.FileExtensions[0]
}

// RenderFunc adapts an ordinary function to [emit.Renderer].
type RenderFunc func(m *model.ClassMetadata) (string, error)

// Render calls f(m).
func (f RenderFunc) Render(m *model.ClassMetadata) (string, error) {
	return f(m)
}

// NewEmitter returns an emitter that renders with r and names artifacts with
// the target's extension.
func NewEmitter(g Generator, r emit.Renderer, workers int) *emit.Emitter {
	return &emit.Emitter{
		Renderer:  r,
		Extension: g.Metadata().Extension(),
		Workers:   workers,
	}
}
