// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/bladegen/internal/config"
)

const module = `
-- go.mod --
module example.com/app

go 1.22
-- .git/HEAD --
ref: refs/heads/main
-- models/widget.go --
package models

import "time"

//@GenerateCode
type Widget struct {
	ID      int
	Name    string
	Created time.Time
}

// Plain is not annotated.
type Plain struct {
	X int
}
-- models/user.go --
package models

//@GenerateCode
type User struct {
	Email string
}
`

// setup writes the module into a temp dir and changes into it.
func setup(t *testing.T, extra ...txtar.File) string {
	t.Helper()
	dir := t.TempDir()
	files := append(txtar.Parse([]byte(module)).Files, extra...)
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
	}
	t.Chdir(dir)
	return dir
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	assert.Equal(t, config.ExitSuccess, code)
	assert.True(t, strings.HasPrefix(out, "bladegen "), out)
}

func TestTargets(t *testing.T) {
	setup(t)
	code, out, _ := run(t, "targets")
	require.Equal(t, config.ExitSuccess, code)
	for _, name := range []string{"go", "kotlin", "markdown", "proto", ".proto", ".md", ".kt"} {
		assert.Contains(t, out, name)
	}
}

func TestConfigShow(t *testing.T) {
	dir := setup(t, txtar.File{Name: "bladegen.yaml", Data: []byte("target: proto\noptions: [package=app.v1]\n")})

	code, out, _ := run(t, "config", "show", "--source")
	require.Equal(t, config.ExitSuccess, code)
	assert.Contains(t, out, "Config file: "+filepath.Join(dir, "bladegen.yaml"))
	assert.Contains(t, out, "target: proto")
	assert.Contains(t, out, "- package=app.v1")
	assert.Contains(t, out, "suffix: .g")
}

func TestGenerateAndCheck(t *testing.T) {
	dir := setup(t)
	models := filepath.Join(dir, "models")

	code, _, stderr := run(t, "generate")
	require.Equal(t, config.ExitSuccess, code, stderr)

	widget, err := os.ReadFile(filepath.Join(models, "Widget.g.go"))
	require.NoError(t, err)
	assert.Contains(t, string(widget), "// Code generated by bladegen. DO NOT EDIT.")
	assert.Contains(t, string(widget), "func (w Widget) GetCreated() time.Time {")
	assert.FileExists(t, filepath.Join(models, "User.g.go"))
	assert.NoFileExists(t, filepath.Join(models, "Plain.g.go"))

	code, out, stderr := run(t, "check")
	assert.Equal(t, config.ExitSuccess, code, stderr)
	assert.Empty(t, out)

	require.NoError(t, os.WriteFile(filepath.Join(models, "User.g.go"), []byte("package models\n"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(models, "Widget.g.go")))

	code, out, stderr = run(t, "check")
	assert.Equal(t, config.ExitStale, code)
	assert.Contains(t, out, "stale: "+filepath.Join(models, "User.g.go"))
	assert.Contains(t, out, "missing: "+filepath.Join(models, "Widget.g.go"))
	assert.Contains(t, stderr, "2 generated files out of date")
}

func TestCheck_Orphaned(t *testing.T) {
	dir := setup(t)
	models := filepath.Join(dir, "models")

	code, _, stderr := run(t, "generate")
	require.Equal(t, config.ExitSuccess, code, stderr)

	// A companion left behind by a type that lost its marker.
	leftover := filepath.Join(models, "Gone.g.go")
	require.NoError(t, os.WriteFile(leftover, []byte("// Code generated by bladegen. DO NOT EDIT.\n\npackage models\n"), 0o644))

	code, out, stderr := run(t, "check")
	assert.Equal(t, config.ExitStale, code)
	assert.Equal(t, "orphaned: "+leftover+"\n", out)
	assert.Contains(t, stderr, "1 generated files out of date")

	require.NoError(t, os.Remove(leftover))
	code, _, stderr = run(t, "check")
	assert.Equal(t, config.ExitSuccess, code, stderr)
}

func TestGenerate_OutputDirCollision(t *testing.T) {
	dir := setup(t, txtar.File{Name: "other/widget.go", Data: []byte("package other\n\n//@GenerateCode\ntype Widget struct {\n\tID int\n}\n")})

	code, _, stderr := run(t, "generate", "-t", "markdown", "-o", "docs")
	assert.Equal(t, config.ExitGeneral, code)
	assert.Contains(t, stderr, "example.com/app/models.Widget and example.com/app/other.Widget both generate")
	assert.Contains(t, stderr, "Hint: drop output.dir")
	assert.NoDirExists(t, filepath.Join(dir, "docs"))

	code, _, stderr = run(t, "generate", "-t", "markdown")
	assert.Equal(t, config.ExitSuccess, code, stderr)
	assert.FileExists(t, filepath.Join(dir, "models", "Widget.g.md"))
	assert.FileExists(t, filepath.Join(dir, "other", "Widget.g.md"))
}

func TestGenerate_Stdout(t *testing.T) {
	dir := setup(t)

	code, out, stderr := run(t, "generate", "./models", "-t", "markdown", "-o", "docs", "--stdout")
	require.Equal(t, config.ExitSuccess, code, stderr)

	ar := txtar.Parse([]byte(out))
	var names []string
	for _, f := range ar.Files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"docs/User.g.md", "docs/Widget.g.md"}, names)
	assert.NoDirExists(t, filepath.Join(dir, "docs"), "--stdout writes nothing")
}

func TestGenerate_OutputDirAndOptions(t *testing.T) {
	dir := setup(t)

	code, _, stderr := run(t, "generate", "-t", "proto", "-o", "proto", "-O", "package=app.v1", "--suffix", ".gen")
	require.Equal(t, config.ExitSuccess, code, stderr)

	content, err := os.ReadFile(filepath.Join(dir, "proto", "Widget.gen.proto"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package app.v1;")
	assert.Contains(t, string(content), "google.protobuf.Timestamp created = 3;")
}

func TestGenerate_RenderFailure(t *testing.T) {
	dir := setup(t, txtar.File{Name: "bad.tmpl", Data: []byte("{{.Missing}}\n")})

	code, _, stderr := run(t, "generate", "--template", "bad.tmpl")
	assert.Equal(t, config.ExitGeneral, code)
	assert.Contains(t, stderr, "error RB0001: Failed to render template for User:")
	assert.Contains(t, stderr, "error RB0001: Failed to render template for Widget:")
	assert.Contains(t, stderr, "2 of 2 types failed to generate")
	assert.NoFileExists(t, filepath.Join(dir, "models", "Widget.g.go"))
}

func TestGenerate_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown target", []string{"generate", "-t", "cobol"}, "available targets: go, kotlin, markdown, proto"},
		{"bad option", []string{"generate", "-O", "novalue"}, "not key=value"},
		{"missing template", []string{"generate", "--template", "nope.tmpl"}, "loading template"},
		{"missing config", []string{"generate", "--config", "nope.yaml"}, "config file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t)
			code, _, stderr := run(t, tt.args...)
			assert.Equal(t, config.ExitConfig, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	dir := setup(t)
	path := filepath.Join(dir, "models", "User.g.go")

	code, _, _ := run(t, "generate")
	require.Equal(t, config.ExitSuccess, code)
	first, err := os.Stat(path)
	require.NoError(t, err)

	code, _, stderr := run(t, "generate", "-v")
	require.Equal(t, config.ExitSuccess, code)
	second, err := os.Stat(path)
	require.NoError(t, err)

	assert.Equal(t, first.ModTime(), second.ModTime(), "unchanged file rewritten")
	assert.Contains(t, stderr, "generate complete")
}
