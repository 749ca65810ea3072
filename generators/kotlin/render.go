// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

import (
	_ "embed"
	"reflect"
	"slices"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/bladegen/emit"
	"github.com/albertocavalcante/bladegen/generator"
	"github.com/albertocavalcante/bladegen/internal/naming"
	"github.com/albertocavalcante/bladegen/model"
)

//go:embed kotlin.tmpl
var defaultTemplate string

type renderer struct {
	tmpl   *template.Template
	config Config

	// classes is set by Link.
	classes []*model.ClassMetadata
}

func newRenderer(cfg generator.Config, config Config) (*renderer, error) {
	text := defaultTemplate
	name := "kotlin.tmpl"
	if cfg.Template != "" {
		text = cfg.Template
		name = cfg.TemplateSource
	}
	tmpl, err := template.New(name).Funcs(naming.FuncMap()).Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse kotlin template")
	}
	return &renderer{tmpl: tmpl, config: config}, nil
}

// Link implements [emit.Linker]. Properties typed by another class of the
// pass refer to that class.
func (r *renderer) Link(classes []*model.ClassMetadata, _ string) emit.Renderer {
	linked := *r
	linked.classes = classes
	return &linked
}

// kotlinPackage returns the Kotlin package of m's file.
func (r *renderer) kotlinPackage(m *model.ClassMetadata) string {
	if r.config.PackageName != "" {
		return r.config.PackageName
	}
	return m.Package
}

// linked returns the classes m may refer to, keyed by Go type as written in
// m's package.
func (r *renderer) linked(m *model.ClassMetadata) map[string]Class {
	own := r.kotlinPackage(m)
	out := make(map[string]Class)
	for local, k := range m.LocalNames(r.classes) {
		c := Class{Name: k.Name}
		if pkg := r.kotlinPackage(k); pkg != own {
			c.Import = pkg + "." + k.Name
		}
		out[local] = c
	}
	return out
}

// Field is one data class property. Skipped fields carry the reason instead
// of a Kotlin type.
type Field struct {
	Property   string
	Name       string
	Type       string
	SerialName string
	Optional   bool
	Skipped    string
}

type view struct {
	*model.ClassMetadata

	KotlinPackage string
	KotlinImports []string
	TypeParamList string
	Fields        []Field
	HasParams     bool
}

// Render implements [emit.Renderer].
func (r *renderer) Render(m *model.ClassMetadata) (string, error) {
	v := view{
		ClassMetadata: m,
		KotlinPackage: r.kotlinPackage(m),
	}
	if v.KotlinPackage == "" {
		return "", errors.New("no kotlin package: set the package option")
	}
	if len(m.TypeParams) > 0 {
		v.TypeParamList = "<" + strings.Join(m.TypeParams, ", ") + ">"
	}

	resolver := NewTypeResolver(m.TypeParams, r.config.TypeOverrides, r.linked(m))
	needSerialName := false
	for _, p := range m.Properties {
		f := field(resolver, p)
		if f.SerialName != "" {
			needSerialName = true
		}
		if f.Skipped == "" {
			v.HasParams = true
		}
		v.Fields = append(v.Fields, f)
	}

	v.KotlinImports = append(resolver.Imports(), importSerializable)
	if needSerialName {
		v.KotlinImports = append(v.KotlinImports, importSerialName)
	}
	slices.Sort(v.KotlinImports)

	var b strings.Builder
	if err := r.tmpl.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func field(resolver *TypeResolver, p model.PropertyMetadata) Field {
	f := Field{Property: p.Name, Name: fieldName(p.Name)}
	if p.Embedded {
		f.Skipped = "embedded"
		return f
	}

	jsonName, omitEmpty, skip := jsonKey(p)
	if skip {
		f.Skipped = "not serialized"
		return f
	}

	typ, err := resolver.Resolve(p.LocalType)
	if err != nil {
		f.Skipped = err.Error()
		return f
	}
	if omitEmpty {
		typ = nullable(typ)
	}
	f.Type = typ
	f.Optional = strings.HasSuffix(typ, "?")
	if jsonName != strings.Trim(f.Name, "`") {
		f.SerialName = jsonName
	}
	return f
}

// jsonKey returns the JSON object key encoding/json uses for p, or skip
// when the field is never encoded.
func jsonKey(p model.PropertyMetadata) (name string, omitEmpty, skip bool) {
	tag, ok := reflect.StructTag(p.Tag).Lookup("json")
	if !ok {
		return p.Name, false, false
	}
	name, opts, hasOpts := strings.Cut(tag, ",")
	if name == "-" && !hasOpts {
		return "", false, true
	}
	if name == "" {
		name = p.Name
	}
	for _, o := range strings.Split(opts, ",") {
		if o == "omitempty" || o == "omitzero" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}
