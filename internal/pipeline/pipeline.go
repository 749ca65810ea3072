// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package pipeline runs one generation pass: load packages, discover marked
// types, collect them and emit one outcome per type.
package pipeline

import (
	"context"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/bladegen/discovery"
	"github.com/albertocavalcante/bladegen/emit"
	"github.com/albertocavalcante/bladegen/internal/host"
	"github.com/albertocavalcante/bladegen/internal/logging"
	"github.com/albertocavalcante/bladegen/model"
)

// Options configures a pass.
type Options struct {
	// Host selects the packages to load.
	Host host.Options

	// Filter decides which types qualify.
	Filter discovery.Filter

	// Emitter renders the collected types. Required.
	Emitter *emit.Emitter

	// Workers bounds concurrent package discovery.
	// Defaults to GOMAXPROCS.
	Workers int

	// Logger receives progress. Defaults to a no-op logger.
	Logger *zap.SugaredLogger
}

// Result is the outcome of one pass.
type Result struct {
	// Classes are the collected types, in package then declaration order.
	Classes []*model.ClassMetadata

	// Outcomes holds one entry per class, in the same order.
	Outcomes []emit.Outcome

	// Dirs maps import path to package directory.
	Dirs map[string]string

	// Warnings are package load and type errors. They never stop a pass.
	Warnings []string

	// Ending is the file name ending of every artifact, e.g. ".g.go".
	Ending string
}

// Artifacts returns the generated artifacts in order.
func (r *Result) Artifacts() []*emit.Artifact {
	return emit.Artifacts(r.Outcomes)
}

// Diagnostics returns the reported diagnostics in order.
func (r *Result) Diagnostics() []*emit.Diagnostic {
	return emit.Diagnostics(r.Outcomes)
}

// Failed returns placeholder artifacts, named but without content, for the
// classes that produced a diagnostic.
func (r *Result) Failed() []*emit.Artifact {
	var out []*emit.Artifact
	for i, o := range r.Outcomes {
		if o.Diagnostic == nil || i >= len(r.Classes) {
			continue
		}
		m := r.Classes[i]
		out = append(out, &emit.Artifact{
			Name:      emit.ArtifactName(m.Name, "", r.Ending),
			Class:     m.Name,
			Namespace: m.Namespace,
		})
	}
	return out
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics() {
		if d.Severity == emit.SeverityError {
			return true
		}
	}
	return false
}

// Run loads the packages and processes them.
// Only a failure to load packages is returned as an error.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Emitter == nil {
		return nil, errors.AssertionFailedf("pipeline: no emitter")
	}
	log := logging.OrNop(opts.Logger)

	start := time.Now()
	snap, err := host.Load(ctx, opts.Host)
	if err != nil {
		return nil, err
	}
	log.Debugw("loaded packages",
		logging.FieldCount, len(snap.Packages),
		logging.FieldCandidate, snap.Candidates(),
		logging.FieldDuration, time.Since(start).Milliseconds())

	return Process(snap, opts), nil
}

// Process runs discovery, collection and emission over a loaded snapshot.
func Process(snap *host.Snapshot, opts Options) *Result {
	log := logging.OrNop(opts.Logger)
	start := time.Now()

	res := &Result{Dirs: snap.Dirs(), Ending: opts.Emitter.Ending()}
	for _, p := range snap.Packages {
		for _, e := range p.Errors {
			log.Warnw("package has errors", logging.FieldPackage, p.Path, logging.FieldError, e)
			res.Warnings = append(res.Warnings, e)
		}
	}

	res.Classes = discovery.Collect(discover(snap, opts.Filter, opts.Workers, log))

	res.Outcomes = opts.Emitter.EmitAll(res.Classes)
	for _, o := range res.Outcomes {
		if o.Diagnostic != nil {
			log.Debugw("render failed", logging.FieldClass, o.Class, logging.FieldCode, o.Diagnostic.Code)
		}
	}

	log.Infow("generation pass complete",
		logging.FieldCount, len(res.Classes),
		"artifacts", len(res.Artifacts()),
		"diagnostics", len(res.Diagnostics()),
		logging.FieldDuration, time.Since(start).Milliseconds())
	return res
}

// discover inspects every candidate, packages concurrently. Each package
// writes its own slot, so the flattened result (absent entries included)
// keeps package then declaration order.
func discover(snap *host.Snapshot, filter discovery.Filter, workers int, log *zap.SugaredLogger) []*model.ClassMetadata {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	slots := make([][]*model.ClassMetadata, len(snap.Packages))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range snap.Packages {
		g.Go(func() error {
			results := make([]*model.ClassMetadata, len(p.Candidates))
			found := 0
			for j, c := range p.Candidates {
				if results[j] = filter.Inspect(c); results[j] != nil {
					found++
				}
			}
			slots[i] = results
			log.Debugw("discovered types",
				logging.FieldPackage, p.Path,
				logging.FieldCandidate, len(p.Candidates),
				logging.FieldCount, found)
			return nil
		})
	}
	_ = g.Wait() // discovery never fails

	var all []*model.ClassMetadata
	for _, s := range slots {
		all = append(all, s...)
	}
	return all
}
