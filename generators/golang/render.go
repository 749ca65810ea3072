// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	_ "embed"
	"go/format"
	"path"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/bladegen/generator"
	"github.com/albertocavalcante/bladegen/internal/naming"
	"github.com/albertocavalcante/bladegen/model"
)

//go:embed go.tmpl
var defaultTemplate string

// Header is the first line of every generated Go file.
const Header = "// Code generated by bladegen. DO NOT EDIT."

// renderer executes the Go template for one type.
type renderer struct {
	tmpl     *template.Template
	receiver string
	getters  bool
	setters  bool
	format   bool
}

func newRenderer(cfg generator.Config) (*renderer, error) {
	text := defaultTemplate
	name := "go.tmpl"
	if cfg.Template != "" {
		text = cfg.Template
		name = cfg.TemplateSource
	}

	funcs := naming.FuncMap()
	funcs["importSpec"] = importSpec
	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse go template")
	}

	return &renderer{
		tmpl:     tmpl,
		receiver: cfg.Option("receiver", ""),
		getters:  cfg.BoolOption("getters", true),
		setters:  cfg.BoolOption("setters", true),
		format:   cfg.BoolOption("format", true),
	}, nil
}

// view is the template data.
type view struct {
	*model.ClassMetadata

	Header   string
	Receiver string
	Param    string
	TypeRef  string
	Getters  bool
	Setters  bool
}

// Render implements [emit.Renderer].
func (r *renderer) Render(m *model.ClassMetadata) (string, error) {
	v := view{
		ClassMetadata: m,
		Header:        Header,
		Receiver:      r.receiver,
		TypeRef:       typeRef(m),
		Getters:       r.getters,
		Setters:       r.setters,
	}
	if v.Receiver == "" {
		v.Receiver = freeName(append([]string{naming.Receiver(m.Name)}, receiverFallbacks...), m.TypeParams...)
	}
	v.Param = freeName(paramNames, append([]string{v.Receiver}, m.TypeParams...)...)

	var b strings.Builder
	if err := r.tmpl.Execute(&b, v); err != nil {
		return "", err
	}
	if !r.format {
		return b.String(), nil
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return "", errors.Wrap(err, "format generated source")
	}
	return string(src), nil
}

var (
	receiverFallbacks = []string{"recv", "self"}
	paramNames        = []string{"v", "val", "value", "newValue"}
)

// freeName returns the first candidate not in taken. Receiver, setter
// parameter and type parameters share one scope in a generated method.
func freeName(candidates []string, taken ...string) string {
	for _, c := range candidates {
		if !slices.Contains(taken, c) {
			return c
		}
	}
	return candidates[len(candidates)-1] + "_"
}

// typeRef returns the type as used in a receiver, e.g. "Box[K, V]".
func typeRef(m *model.ClassMetadata) string {
	if !m.IsGeneric() {
		return m.Name
	}
	return m.Name + "[" + strings.Join(m.TypeParams, ", ") + "]"
}

// importSpec formats an import, naming it when the package name differs from
// the last path element.
func importSpec(imp model.Import) string {
	if imp.Name == "" || imp.Name == path.Base(imp.Path) {
		return strconv.Quote(imp.Path)
	}
	return imp.Name + " " + strconv.Quote(imp.Path)
}
