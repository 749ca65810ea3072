// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package proto

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

//go:embed proto.tmpl
var defaultTemplate string

type renderer struct {
	tmpl   *template.Template
	config Config

	// Set by Link.
	classes []*model.ClassMetadata
	ending  string
	cycles  map[string]map[string]bool
}

func newRenderer(cfg generator.Config, config Config) (*renderer, error) {
	text := defaultTemplate
	name := "proto.tmpl"
	if cfg.Template != "" {
		text = cfg.Template
		name = cfg.TemplateSource
	}
	tmpl, err := template.New(name).Funcs(naming.FuncMap()).Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse proto template")
	}
	return &renderer{tmpl: tmpl, config: config}, nil
}

// Link implements [emit.Linker]. Fields typed by another class of the pass
// refer to its message and import its file, unless the two files would
// import each other.
func (r *renderer) Link(classes []*model.ClassMetadata, ending string) emit.Renderer {
	linked := *r
	linked.classes = classes
	linked.ending = ending
	linked.cycles = importCycles(classes, r.config.TypeOverrides)
	return &linked
}

// messages returns the messages m may refer to, keyed by Go type as written
// in m's package.
func (r *renderer) messages(m *model.ClassMetadata, protoPackage string) map[string]Message {
	out := make(map[string]Message)
	for local, k := range m.LocalNames(r.classes) {
		if k.IsGeneric() {
			continue
		}
		msg := Message{Name: k.Name}
		if r.config.PackageName == "" && k.Package != protoPackage {
			msg.Name = k.Package + "." + msg.Name
		}
		if k.QualifiedName() != m.QualifiedName() {
			msg.File = emit.ArtifactName(k.Name, "", r.ending)
			msg.Cycle = r.cycles[m.QualifiedName()][k.QualifiedName()]
		}
		out[local] = msg
	}
	return out
}

// Field is one message field. Skipped fields carry the reason instead of a
// proto type and consume no field number.
type Field struct {
	Property string
	Name     string
	Type     string
	Number   int
	Skipped  string
}

// view is the template data.
type view struct {
	*model.ClassMetadata

	ProtoPackage string
	GoPackage    string
	ProtoImports []string
	Fields       []Field
}

// Render implements [emit.Renderer].
func (r *renderer) Render(m *model.ClassMetadata) (string, error) {
	v := view{
		ClassMetadata: m,
		ProtoPackage:  r.config.PackageName,
		GoPackage:     r.config.GoPackage,
	}
	if v.ProtoPackage == "" {
		v.ProtoPackage = m.Package
	}
	if v.ProtoPackage == "" {
		return "", errors.New("no proto package: set the package option")
	}
	if v.GoPackage == "" {
		v.GoPackage = m.Namespace
	}

	resolver := NewTypeResolver(m.TypeParams, r.config.TypeOverrides, r.messages(m, v.ProtoPackage))
	number := 1
	for _, p := range m.Properties {
		f := Field{Property: p.Name, Name: toProtoFieldName(p.Name)}
		typ, err := resolver.Resolve(p.LocalType)
		if err != nil {
			f.Skipped = err.Error()
		} else {
			f.Type = typ
			f.Number = number
			number++
		}
		v.Fields = append(v.Fields, f)
	}
	v.ProtoImports = resolver.Imports()

	var b strings.Builder
	if err := r.tmpl.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}
