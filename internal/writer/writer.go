// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package writer puts artifacts on disk and checks that disk is up to date.
package writer

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/bladegen/emit"
	"github.com/albertocavalcante/bladegen/internal/logging"
)

// Options configures where artifacts go.
type Options struct {
	// OutputDir collects every artifact in one directory. When empty, each
	// artifact is written next to the package declaring its type.
	OutputDir string

	// Dirs maps import path to package directory.
	Dirs map[string]string

	// DryRun reports what would be written without touching disk.
	DryRun bool

	// Stdout, when set, receives every artifact as a txtar archive.
	Stdout io.Writer

	// Logger receives one line per file. Defaults to a no-op logger.
	Logger *zap.SugaredLogger

	// Ending is the file name ending shared by every artifact, e.g. ".g.go".
	// When set, Check reports generated files that no artifact claims.
	Ending string

	// Failed name the artifacts of classes that failed to render. Their
	// files are left alone by Check.
	Failed []*emit.Artifact
}

// GeneratedMarker appears in the header of every file bladegen writes with a
// built-in template.
const GeneratedMarker = "Code generated by bladegen"

// headerWindow bounds how far into a file the marker is looked for.
const headerWindow = 512

// Report lists the outcome of Write.
type Report struct {
	// Written are paths whose content changed (or would change on a dry run).
	Written []string

	// Unchanged are paths whose content already matched.
	Unchanged []string
}

// CheckReport lists the outcome of Check.
type CheckReport struct {
	// Missing are paths that do not exist.
	Missing []string

	// Stale are paths whose content differs from the artifact.
	Stale []string

	// Current are paths that match.
	Current []string

	// Orphaned are generated files no artifact maps to, left behind by a
	// removed marker or a renamed type.
	Orphaned []string
}

// OK reports whether every artifact is on disk and current and no generated
// file is left over.
func (r *CheckReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Stale) == 0 && len(r.Orphaned) == 0
}

// Path returns where an artifact is written.
func Path(a *emit.Artifact, opts Options) (string, error) {
	if opts.OutputDir != "" {
		return filepath.Join(opts.OutputDir, a.Name), nil
	}
	dir, ok := opts.Dirs[a.Namespace]
	if !ok || dir == "" {
		return "", errors.WithHint(
			errors.Newf("no directory for package %q of %s", a.Namespace, a.Class),
			"set output.dir to collect artifacts in one directory",
		)
	}
	return filepath.Join(dir, a.Name), nil
}

// paths resolves the target path of every artifact. Two artifacts mapping to
// one path is an error: the second would silently replace the first.
func paths(artifacts []*emit.Artifact, opts Options) ([]string, error) {
	out := make([]string, len(artifacts))
	owner := make(map[string]*emit.Artifact, len(artifacts))
	for i, a := range artifacts {
		path, err := Path(a, opts)
		if err != nil {
			return nil, err
		}
		if prev, ok := owner[path]; ok {
			err := errors.Newf("%s and %s both generate %s",
				qualified(prev), qualified(a), path)
			if opts.OutputDir != "" {
				err = errors.WithHint(err, "drop output.dir to write each artifact next to its package")
			}
			return nil, err
		}
		owner[path] = a
		out[i] = path
	}
	return out, nil
}

func qualified(a *emit.Artifact) string {
	if a.Namespace == "" {
		return a.Class
	}
	return a.Namespace + "." + a.Class
}

// Write writes artifacts, leaving files whose content hash already matches.
// Nothing is written when two artifacts resolve to the same path.
func Write(artifacts []*emit.Artifact, opts Options) (*Report, error) {
	log := logging.OrNop(opts.Logger)
	report := &Report{}

	targets, err := paths(artifacts, opts)
	if err != nil {
		return report, err
	}

	if opts.Stdout != nil {
		if err := dump(opts.Stdout, artifacts, targets); err != nil {
			return nil, err
		}
	}

	for i, a := range artifacts {
		path := targets[i]

		current, err := hashFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return report, err
		}
		if current == a.Hash {
			log.Debugw("unchanged", logging.FieldPath, path)
			report.Unchanged = append(report.Unchanged, path)
			continue
		}

		if !opts.DryRun {
			if err := writeFile(path, a.Content); err != nil {
				return report, err
			}
		}
		log.Infow("wrote artifact", logging.FieldPath, path, logging.FieldClass, a.Class, "dry_run", opts.DryRun)
		report.Written = append(report.Written, path)
	}
	return report, nil
}

// Check compares artifacts with the files on disk.
func Check(artifacts []*emit.Artifact, opts Options) (*CheckReport, error) {
	report := &CheckReport{}
	targets, err := paths(artifacts, opts)
	if err != nil {
		return report, err
	}

	for i, a := range artifacts {
		path := targets[i]

		current, err := hashFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			report.Missing = append(report.Missing, path)
		case err != nil:
			return report, err
		case current != a.Hash:
			report.Stale = append(report.Stale, path)
		default:
			report.Current = append(report.Current, path)
		}
	}

	if opts.Ending != "" {
		orphaned, err := orphans(targets, opts)
		if err != nil {
			return report, err
		}
		report.Orphaned = orphaned
	}
	return report, nil
}

// orphans lists generated files in the output directories that none of
// claimed nor the failed artifacts account for.
func orphans(claimed []string, opts Options) ([]string, error) {
	known := make(map[string]bool, len(claimed)+len(opts.Failed))
	for _, p := range claimed {
		known[p] = true
	}
	for _, a := range opts.Failed {
		if p, err := Path(a, opts); err == nil {
			known[p] = true
		}
	}

	var dirs []string
	if opts.OutputDir != "" {
		dirs = []string{opts.OutputDir}
	} else {
		seen := make(map[string]bool)
		for _, d := range opts.Dirs {
			if d != "" && !seen[d] {
				seen[d] = true
				dirs = append(dirs, d)
			}
		}
	}
	sort.Strings(dirs)

	var out []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", dir)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), opts.Ending) {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if known[path] {
				continue
			}
			ok, err := generated(path)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, path)
			}
		}
	}
	return out, nil
}

// generated reports whether the file at path carries the bladegen header.
func generated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	head := make([]byte, headerWindow)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, errors.Wrapf(err, "read %s", path)
	}
	return bytes.Contains(head[:n], []byte(GeneratedMarker)), nil
}

// hashFile returns the content hash of the file at path.
func hashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return emit.Hash(data), nil
}

// writeFile replaces path atomically.
func writeFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}

	tmp, err := os.CreateTemp(dir, ".bladegen-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "chmod %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "rename to %s", path)
	}
	return nil
}

// dump writes artifacts to w as a txtar archive named by target path.
func dump(w io.Writer, artifacts []*emit.Artifact, targets []string) error {
	ar := &txtar.Archive{}
	for i, a := range artifacts {
		ar.Files = append(ar.Files, txtar.File{Name: filepath.ToSlash(targets[i]), Data: a.Content})
	}
	if _, err := w.Write(txtar.Format(ar)); err != nil {
		return errors.Wrap(err, "write stdout")
	}
	return nil
}
