// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"flag"
	"strings"
	"testing"

	"github.com/albertocavalcante/bladegen/emit"
	"github.com/albertocavalcante/bladegen/generator"
	"github.com/albertocavalcante/bladegen/internal/testutil"
	"github.com/albertocavalcante/bladegen/model"
)

var update = flag.Bool("update", false, "update golden files")

// TestCodegen runs txtar-based golden tests.
func TestCodegen(t *testing.T) {
	testutil.RunDir(t, "testdata", *update, testutil.Generate(NewGenerator()))
}

func TestImportSpec(t *testing.T) {
	tests := []struct {
		imp  model.Import
		want string
	}{
		{imp: model.Import{Path: "time", Name: "time"}, want: `"time"`},
		{imp: model.Import{Path: "net/url", Name: "url"}, want: `"net/url"`},
		{imp: model.Import{Path: "math/rand/v2", Name: "rand"}, want: `rand "math/rand/v2"`},
		{imp: model.Import{Path: "gopkg.in/yaml.v3", Name: "yaml"}, want: `yaml "gopkg.in/yaml.v3"`},
	}

	for _, tt := range tests {
		if got := importSpec(tt.imp); got != tt.want {
			t.Errorf("importSpec(%+v) = %s, want %s", tt.imp, got, tt.want)
		}
	}
}

func TestTypeRef(t *testing.T) {
	if got := typeRef(&model.ClassMetadata{Name: "Widget"}); got != "Widget" {
		t.Errorf("typeRef = %q", got)
	}
	if got := typeRef(&model.ClassMetadata{Name: "Pair", TypeParams: []string{"K", "V"}}); got != "Pair[K, V]" {
		t.Errorf("typeRef = %q", got)
	}
}

func TestFreeName(t *testing.T) {
	tests := []struct {
		taken []string
		want  string
	}{
		{taken: nil, want: "v"},
		{taken: []string{"w"}, want: "v"},
		{taken: []string{"v"}, want: "val"},
		{taken: []string{"v", "val"}, want: "value"},
		{taken: []string{"v", "val", "value", "newValue"}, want: "newValue_"},
	}

	for _, tt := range tests {
		if got := freeName(paramNames, tt.taken...); got != tt.want {
			t.Errorf("freeName(%v) = %q, want %q", tt.taken, got, tt.want)
		}
	}
}

func TestRender_ReceiverAvoidsTypeParam(t *testing.T) {
	r, err := NewGenerator().NewRenderer(generator.Config{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Render(&model.ClassMetadata{
		Name:       "Pair",
		Package:    "app",
		TypeParams: []string{"p"},
		Properties: []model.PropertyMetadata{{Name: "A", Type: "p", LocalType: "p"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "func (recv Pair[p]) WithA(v p) Pair[p] {") {
		t.Errorf("unexpected setter:\n%s", got)
	}
}

func TestRender_CustomTemplate(t *testing.T) {
	r, err := NewGenerator().NewRenderer(generator.Config{
		Template:       "package {{.Package}}\n\nconst {{.Name}}Name = {{quote .QualifiedName}}\n",
		TemplateSource: "custom.tmpl",
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := r.Render(&model.ClassMetadata{Name: "Widget", Namespace: "example.com/app", Package: "app"})
	if err != nil {
		t.Fatal(err)
	}
	want := "package app\n\nconst WidgetName = \"example.com/app.Widget\"\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewRenderer_BadTemplate(t *testing.T) {
	_, err := NewGenerator().NewRenderer(generator.Config{Template: "{{.Name"})
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse go template") {
		t.Errorf("error = %v", err)
	}
}

func TestRender_FormatFailureIsDiagnostic(t *testing.T) {
	g := NewGenerator()
	r, err := g.NewRenderer(generator.Config{Template: "package {{.Package}}\n\nfunc {"})
	if err != nil {
		t.Fatal(err)
	}

	classes := []*model.ClassMetadata{
		{Name: "A", Package: "app"},
		{Name: "B", Package: "app"},
	}
	outcomes := generator.NewEmitter(g, r, 0).EmitAll(classes)
	diags := emit.Diagnostics(outcomes)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diags))
	}
	if !strings.HasPrefix(diags[0].Message, "Failed to render template for A: format generated source") {
		t.Errorf("Message = %q", diags[0].Message)
	}
}

func TestRender_NoFormat(t *testing.T) {
	r, err := NewGenerator().NewRenderer(generator.Config{
		Template: "not go {{.Name}}",
		Options:  map[string]string{"format": "false"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Render(&model.ClassMetadata{Name: "Widget"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "not go Widget" {
		t.Errorf("got %q", got)
	}
}

func TestRender_MissingFieldIsError(t *testing.T) {
	r, err := NewGenerator().NewRenderer(generator.Config{Template: "{{.Nope}}"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(&model.ClassMetadata{Name: "Widget"}); err == nil {
		t.Error("expected execution error")
	}
}
