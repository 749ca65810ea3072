// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for bladegen.
package testutil

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/bladegen/discovery"
	"github.com/albertocavalcante/bladegen/emit"
	"github.com/albertocavalcante/bladegen/generator"
	"github.com/albertocavalcante/bladegen/model"
)

const (
	// InputFile is the Go source file of a case.
	InputFile = "input.go"

	// DiagnosticsFile collects the diagnostics of a case, one per line.
	DiagnosticsFile = "diagnostics.txt"

	// DefaultPath is the import path the input is type-checked as.
	DefaultPath = "example.com/app"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Options contains target options parsed from an "Options: k=v, k=v" line
	// in the description.
	Options map[string]string

	// Path is the import path from a "Path: ..." line, or DefaultPath.
	Path string

	// Input is the contents of "input.go".
	Input []byte

	// Want maps artifact names (e.g., "Widget.g.go") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - An "input.go" file holding one Go package
//   - One or more "want/<filename>" files with expected output
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Options:     make(map[string]string),
		Path:        DefaultPath,
		Want:        make(map[string][]byte),
	}

	c.parseDescription()

	for _, f := range ar.Files {
		switch {
		case f.Name == InputFile:
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected %s or want/*)", f.Name, InputFile)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing %s in archive", InputFile)
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseDescription extracts "Options:" and "Path:" lines from the description.
func (c *Case) parseDescription() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "Path:"); ok {
			if p := strings.TrimSpace(rest); p != "" {
				c.Path = p
			}
			continue
		}
		rest, ok := strings.CutPrefix(line, "Options:")
		if !ok {
			continue
		}
		for _, kv := range strings.Split(rest, ",") {
			k, v, _ := strings.Cut(strings.TrimSpace(kv), "=")
			if k != "" {
				c.Options[k] = v
			}
		}
	}
}

// GenerateFunc generates output for the marked types of a case.
// It returns a map of filename to content.
type GenerateFunc func(classes []*model.ClassMetadata, options map[string]string) (map[string][]byte, error)

// Generate returns a GenerateFunc that renders with target g.
// Diagnostics are collected into DiagnosticsFile.
func Generate(g generator.Generator) GenerateFunc {
	return func(classes []*model.ClassMetadata, options map[string]string) (map[string][]byte, error) {
		r, err := g.NewRenderer(generator.Config{Options: options})
		if err != nil {
			return nil, err
		}
		outcomes := generator.NewEmitter(g, r, 0).EmitAll(classes)

		got := make(map[string][]byte)
		for _, a := range emit.Artifacts(outcomes) {
			got[a.Name] = a.Content
		}
		var diags []string
		for _, d := range emit.Diagnostics(outcomes) {
			diags = append(diags, d.String())
		}
		if len(diags) > 0 {
			got[DiagnosticsFile] = []byte(strings.Join(diags, "\n") + "\n")
		}
		return got, nil
	}
}

// Classes type-checks src as the package at path and returns the metadata of
// its marked types. Type errors are ignored: unresolved symbols simply drop
// out of discovery.
func Classes(t testing.TB, path string, src []byte) []*model.ClassMetadata {
	t.Helper()
	return (discovery.Filter{}).InspectAll(Candidates(t, path, src))
}

// Candidates type-checks src as the package at path and returns its
// package-level type declarations.
func Candidates(t testing.TB, path string, src []byte) []discovery.Candidate {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, InputFile, src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse %s: %v", InputFile, err)
	}

	info := &types.Info{
		Defs: make(map[*ast.Ident]types.Object),
		Uses: make(map[*ast.Ident]types.Object),
	}
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error:    func(error) {},
	}
	_, _ = conf.Check(path, fset, []*ast.File{file}, info)

	return discovery.FileCandidates(file, info)
}

// Run executes the test case using the provided generate function.
// It compares generated output against expected output and reports differences.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(Classes(t, c.Path, c.Input), c.Options)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		if diff := cmp.Diff(normalizeContent(wantContent), normalizeContent(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeContent normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive updates a txtar archive with new generated content.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if f.Name == InputFile {
			result.Files = append(result.Files, f)
			break
		}
	}

	names := make([]string, 0, len(got))
	for name := range got {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// RunDir runs every *.txtar case in dir as a subtest. With update set, the
// archives are rewritten with the generated output instead.
func RunDir(t *testing.T, dir string, update bool, generate GenerateFunc) {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("glob %q: %v", dir, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}
	sort.Strings(files)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("parse txtar: %v", err)
			}

			tc, err := ParseCase(name, ar)
			if err != nil {
				t.Fatalf("parse case: %v", err)
			}

			if !update {
				tc.Run(t, generate)
				return
			}

			got, err := generate(Classes(t, tc.Path, tc.Input), tc.Options)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if err := os.WriteFile(file, txtar.Format(UpdateArchive(ar, got)), 0o644); err != nil {
				t.Fatalf("write updated file: %v", err)
			}
			t.Logf("updated %s", file)
		})
	}
}
