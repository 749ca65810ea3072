// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/bladegen/emit"
)

func artifact(class, namespace, content string) *emit.Artifact {
	return &emit.Artifact{
		Name:      class + ".g.go",
		Class:     class,
		Namespace: namespace,
		Content:   []byte(content),
		Encoding:  emit.Encoding,
		Hash:      emit.Hash([]byte(content)),
	}
}

func TestPath(t *testing.T) {
	a := artifact("Widget", "example.com/app", "x")

	p, err := Path(a, Options{OutputDir: "out"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "Widget.g.go"), p)

	p, err = Path(a, Options{Dirs: map[string]string{"example.com/app": "/src/app"}})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/src/app", "Widget.g.go"), p)

	_, err = Path(a, Options{})
	assert.ErrorContains(t, err, `no directory for package "example.com/app"`)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Dirs: map[string]string{"example.com/app": dir}}
	widget := artifact("Widget", "example.com/app", "package app\n")
	gadget := artifact("Gadget", "example.com/app", "package app // gadget\n")

	report, err := Write([]*emit.Artifact{widget, gadget}, opts)
	require.NoError(t, err)
	assert.Len(t, report.Written, 2)
	assert.Empty(t, report.Unchanged)

	data, err := os.ReadFile(filepath.Join(dir, "Widget.g.go"))
	require.NoError(t, err)
	assert.Equal(t, "package app\n", string(data))

	// Second pass over identical content touches nothing.
	report, err = Write([]*emit.Artifact{widget, gadget}, opts)
	require.NoError(t, err)
	assert.Empty(t, report.Written)
	assert.Len(t, report.Unchanged, 2)

	changed := artifact("Widget", "example.com/app", "package app\n\nvar x int\n")
	report, err = Write([]*emit.Artifact{changed}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "Widget.g.go")}, report.Written)

	leftovers, err := filepath.Glob(filepath.Join(dir, ".bladegen-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWrite_OutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "gen")
	_, err := Write([]*emit.Artifact{artifact("Widget", "example.com/app", "x")}, Options{OutputDir: out})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "Widget.g.go"))
}

func TestWrite_DryRunStdout(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	report, err := Write([]*emit.Artifact{artifact("Widget", "example.com/app", "package app\n")}, Options{
		OutputDir: dir,
		DryRun:    true,
		Stdout:    &stdout,
	})
	require.NoError(t, err)
	assert.Len(t, report.Written, 1)
	assert.NoFileExists(t, filepath.Join(dir, "Widget.g.go"))

	ar := txtar.Parse(stdout.Bytes())
	require.Len(t, ar.Files, 1)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "Widget.g.go")), ar.Files[0].Name)
	assert.Equal(t, "package app\n", string(ar.Files[0].Data))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	opts := Options{OutputDir: dir}
	current := artifact("Current", "example.com/app", "same\n")
	stale := artifact("Stale", "example.com/app", "new\n")
	missing := artifact("Missing", "example.com/app", "x\n")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Current.g.go"), []byte("same\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Stale.g.go"), []byte("old\n"), 0o644))

	report, err := Check([]*emit.Artifact{current, stale, missing}, opts)
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, []string{filepath.Join(dir, "Current.g.go")}, report.Current)
	assert.Equal(t, []string{filepath.Join(dir, "Stale.g.go")}, report.Stale)
	assert.Equal(t, []string{filepath.Join(dir, "Missing.g.go")}, report.Missing)

	_, err = Write([]*emit.Artifact{current, stale, missing}, opts)
	require.NoError(t, err)

	report, err = Check([]*emit.Artifact{current, stale, missing}, opts)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestWrite_PathCollision(t *testing.T) {
	out := t.TempDir()
	a := artifact("Widget", "example.com/a", "package a\n")
	b := artifact("Widget", "example.com/b", "package b\n")

	report, err := Write([]*emit.Artifact{a, b}, Options{OutputDir: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "example.com/a.Widget and example.com/b.Widget both generate "+filepath.Join(out, "Widget.g.go"))
	assert.Contains(t, errors.FlattenHints(err), "drop output.dir")
	assert.Empty(t, report.Written)
	assert.NoFileExists(t, filepath.Join(out, "Widget.g.go"), "nothing is written on a collision")

	_, err = Check([]*emit.Artifact{a, b}, Options{OutputDir: out})
	assert.ErrorContains(t, err, "both generate")

	// Next to their packages the two never collide.
	dirs := map[string]string{"example.com/a": t.TempDir(), "example.com/b": t.TempDir()}
	report, err = Write([]*emit.Artifact{a, b}, Options{Dirs: dirs})
	require.NoError(t, err)
	assert.Len(t, report.Written, 2)
}

func TestCheck_Orphaned(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Dirs: map[string]string{"example.com/app": dir}, Ending: ".g.go"}
	widget := artifact("Widget", "example.com/app", "// Code generated by bladegen. DO NOT EDIT.\n\npackage app\n")

	_, err := Write([]*emit.Artifact{widget}, opts)
	require.NoError(t, err)

	write := func(name, content string) {
		t.Helper()
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("Renamed.g.go", "// Code generated by bladegen. DO NOT EDIT.\n\npackage app\n")
	write("Handwritten.g.go", "package app\n")
	write("Broken.g.go", "// Code generated by bladegen. DO NOT EDIT.\n\npackage app\n")
	write("Notes.g.md", "<!-- Code generated by bladegen. DO NOT EDIT. -->\n")

	opts.Failed = []*emit.Artifact{{Name: "Broken.g.go", Class: "Broken", Namespace: "example.com/app"}}
	report, err := Check([]*emit.Artifact{widget}, opts)
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, []string{filepath.Join(dir, "Widget.g.go")}, report.Current)
	assert.Equal(t, []string{filepath.Join(dir, "Renamed.g.go")}, report.Orphaned)

	// Without an ending the directory is not scanned.
	opts.Ending = ""
	report, err = Check([]*emit.Artifact{widget}, opts)
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestCheck_OrphanedOutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "docs")
	opts := Options{OutputDir: out, Ending: ".g.md"}

	report, err := Check(nil, opts)
	require.NoError(t, err, "a missing output directory has no orphans")
	assert.True(t, report.OK())

	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "Old.g.md"), []byte("<!-- Code generated by bladegen. DO NOT EDIT. -->\n"), 0o644))
	report, err = Check(nil, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(out, "Old.g.md")}, report.Orphaned)
}
