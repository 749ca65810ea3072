// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package markdown generates a reference page for each marked type.
package markdown

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/bladegen/emit"
	"github.com/albertocavalcante/bladegen/generator"
	"github.com/albertocavalcante/bladegen/internal/naming"
	"github.com/albertocavalcante/bladegen/model"
)

//go:embed markdown.tmpl
var defaultTemplate string

// Generator implements [generator.Generator] for Markdown reference pages.
type Generator struct{}

// NewGenerator creates a new Markdown generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "markdown",
		Version:        "1.0.0",
		Description:    "Generate Markdown reference pages",
		FileExtensions: []string{".md"},
		URL:            "https://github.com/albertocavalcante/bladegen",
	}
}

// NewRenderer builds a renderer from the embedded template or cfg.Template.
func (g *Generator) NewRenderer(cfg generator.Config) (emit.Renderer, error) {
	text := defaultTemplate
	name := "markdown.tmpl"
	if cfg.Template != "" {
		text = cfg.Template
		name = cfg.TemplateSource
	}

	funcs := naming.FuncMap()
	funcs["cell"] = cell
	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse markdown template")
	}

	return generator.RenderFunc(func(m *model.ClassMetadata) (string, error) {
		var b strings.Builder
		if err := tmpl.Execute(&b, m); err != nil {
			return "", err
		}
		return b.String(), nil
	}), nil
}

// cell escapes text for a table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
