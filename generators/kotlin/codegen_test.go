// SPDX-License-Identifier: MIT

package kotlin

import (
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

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

// classes are the generated classes the resolver tests can refer to.
var classes = map[string]Class{
	"User":      {Name: "User"},
	"Pair":      {Name: "Pair"},
	"Page":      {Name: "Page"},
	"geo.Point": {Name: "Point", Import: "geo.Point"},
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		goType  string
		want    string
		wantErr string
	}{
		{name: "int", goType: "int", want: "Long"},
		{name: "uint16", goType: "uint16", want: "UShort"},
		{name: "bytes", goType: "[]byte", want: "ByteArray"},
		{name: "slice of pointers", goType: "[]*User", want: "List<User?>"},
		{name: "double pointer", goType: "**int", want: "Long?"},
		{name: "foreign type", goType: "geo.Point", want: "Point"},
		{name: "not generated", goType: "Status", wantErr: "Status is not a generated class"},
		{name: "foreign not generated", goType: "url.URL", wantErr: "url.URL is not a generated class"},
		{name: "time", goType: "*time.Time", want: "String?"},
		{name: "duration", goType: "time.Duration", want: "Long"},
		{name: "map", goType: "map[string][]int32", want: "Map<String, List<Int>>"},
		{name: "type param", goType: "[]T", want: "List<T>"},
		{name: "generic instance", goType: "Pair[string, T]", want: "Pair<String, T>"},
		{name: "generic single", goType: "*Page[int]", want: "Page<Long>?"},
		{name: "override", goType: "uuid.UUID", want: "String"},
		{name: "func", goType: "func()", wantErr: "unsupported type"},
		{name: "complex", goType: "complex128", wantErr: "unsupported type complex128"},
		{name: "not a type", goType: "map[", wantErr: "unsupported type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTypeResolver([]string{"T"}, map[string]string{"uuid.UUID": "String"}, classes)
			got, err := r.Resolve(tt.goType)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %q", tt.goType, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.goType, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.goType, got, tt.want)
			}
		})
	}
}

func TestResolve_Imports(t *testing.T) {
	r := NewTypeResolver(nil, nil, classes)
	for _, typ := range []string{"string", "map[string]any", "[]interface{}", "*User", "[]geo.Point"} {
		if _, err := r.Resolve(typ); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"geo.Point", "kotlinx.serialization.json.JsonElement"}
	if diff := cmp.Diff(want, r.Imports()); diff != "" {
		t.Errorf("Imports() mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldName(t *testing.T) {
	tests := map[string]string{
		"ID":         "id",
		"UserID":     "userId",
		"HTTPServer": "httpServer",
		"Val":        "`val`",
		"When":       "`when`",
	}
	for in, want := range tests {
		if got := fieldName(in); got != want {
			t.Errorf("fieldName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJSONKey(t *testing.T) {
	tests := []struct {
		tag      string
		wantName string
		wantOmit bool
		wantSkip bool
	}{
		{``, "UserID", false, false},
		{`json:"user_id"`, "user_id", false, false},
		{`json:",omitempty"`, "UserID", true, false},
		{`json:"uid,omitzero"`, "uid", true, false},
		{`json:"-"`, "", false, true},
		{`json:"-,"`, "-", false, false},
		{`yaml:"x"`, "UserID", false, false},
	}
	for _, tt := range tests {
		name, omit, skip := jsonKey(model.PropertyMetadata{Name: "UserID", Tag: tt.tag})
		if name != tt.wantName || omit != tt.wantOmit || skip != tt.wantSkip {
			t.Errorf("jsonKey(%q) = (%q, %v, %v), want (%q, %v, %v)",
				tt.tag, name, omit, skip, tt.wantName, tt.wantOmit, tt.wantSkip)
		}
	}
}

func TestRender_Linked(t *testing.T) {
	r, err := NewGenerator().NewRenderer(generator.Config{})
	if err != nil {
		t.Fatal(err)
	}
	linker, ok := r.(emit.Linker)
	if !ok {
		t.Fatal("kotlin renderer does not link")
	}

	order := &model.ClassMetadata{
		Name:      "Order",
		Namespace: "example.com/shop",
		Package:   "shop",
		Imports:   []model.Import{{Path: "example.com/geo", Name: "geo"}},
		Properties: []model.PropertyMetadata{
			{Name: "Ship", LocalType: "*geo.Address"},
			{Name: "Lines", LocalType: "[]Line"},
		},
	}
	address := &model.ClassMetadata{Name: "Address", Namespace: "example.com/geo", Package: "geo"}
	line := &model.ClassMetadata{Name: "Line", Namespace: "example.com/shop", Package: "shop"}

	got, err := linker.Link([]*model.ClassMetadata{order, address, line}, ".g.kt").Render(order)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"import geo.Address\n",
		"val ship: Address? = null,",
		"val lines: List<Line>,",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestRender_NoPackage(t *testing.T) {
	r, err := NewGenerator().NewRenderer(generator.Config{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = r.Render(&model.ClassMetadata{Name: "X"})
	if err == nil || !strings.Contains(err.Error(), "no kotlin package") {
		t.Fatalf("Render() error = %v", err)
	}
}

func TestRender_AllSkipped(t *testing.T) {
	r, err := NewGenerator().NewRenderer(generator.Config{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Render(&model.ClassMetadata{
		Name:    "Job",
		Package: "app",
		Properties: []model.PropertyMetadata{
			{Name: "Run", Type: "func()", LocalType: "func()"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "@Serializable\nclass Job\n// Run: skipped (unsupported type func())\n"
	if !strings.HasSuffix(got, want) {
		t.Errorf("Render() = %q, want suffix %q", got, want)
	}
}

func TestNewRenderer_BadTemplate(t *testing.T) {
	_, err := NewGenerator().NewRenderer(generator.Config{Template: "{{.Name", TemplateSource: "bad.tmpl"})
	if err == nil || !strings.Contains(err.Error(), "parse kotlin template") {
		t.Fatalf("NewRenderer() error = %v", err)
	}
}
