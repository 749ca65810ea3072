// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/albertocavalcante/bladegen/discovery"
	"github.com/albertocavalcante/bladegen/generator"
	"github.com/albertocavalcante/bladegen/internal/config"
	"github.com/albertocavalcante/bladegen/internal/host"
	"github.com/albertocavalcante/bladegen/internal/logging"
	"github.com/albertocavalcante/bladegen/internal/pipeline"
	"github.com/albertocavalcante/bladegen/internal/templates"
	"github.com/albertocavalcante/bladegen/internal/writer"
)

// passFlags are the flags shared by generate and check.
type passFlags struct {
	target      string
	outputDir   string
	suffix      string
	template    string
	templateDir string
	strict      bool
	workers     int
	tags        []string
	options     []string
}

func (f *passFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.target, "target", "t", "", "generation target (see 'bladegen targets')")
	fs.StringVarP(&f.outputDir, "output", "o", "", "write every file to this directory instead of next to its package")
	fs.StringVar(&f.suffix, "suffix", "", "file name suffix before the extension (default: .g)")
	fs.StringVar(&f.template, "template", "", "template file replacing the target's built-in template")
	fs.StringVar(&f.templateDir, "template-dir", "", "directory of <target>.tmpl files")
	fs.BoolVar(&f.strict, "strict", false, "require the annotation to resolve to the marker type")
	fs.IntVarP(&f.workers, "workers", "j", 0, "concurrent workers (default: GOMAXPROCS)")
	fs.StringSliceVar(&f.tags, "tags", nil, "build tags used when loading packages")
	fs.StringArrayVarP(&f.options, "option", "O", nil, "target option as key=value (repeatable)")
}

// apply overrides cfg with the flags that were set.
// Precedence: flag > env > config file > default.
func (f *passFlags) apply(fs *pflag.FlagSet, cfg *config.Config, args []string) {
	if len(args) > 0 {
		cfg.Patterns = args
	}
	if fs.Changed("target") {
		cfg.Target = f.target
	}
	if fs.Changed("output") {
		cfg.Output.Dir = f.outputDir
	}
	if fs.Changed("suffix") {
		cfg.Output.Suffix = f.suffix
	}
	if fs.Changed("template") {
		cfg.Template.Path = f.template
	}
	if fs.Changed("template-dir") {
		cfg.Template.Dir = f.templateDir
	}
	if fs.Changed("strict") {
		cfg.Marker.Strict = f.strict
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("tags") {
		cfg.Tags = f.tags
	}
	// Flag options are appended so they win over file options with the same key.
	cfg.Options = append(cfg.Options, f.options...)
}

// pass runs one discovery and emission pass with the effective config.
func (a *app) pass(ctx context.Context) (*pipeline.Result, error) {
	cfg := a.cfg
	if err := cfg.Validate(); err != nil {
		return nil, config.ConfigError("invalid configuration", err)
	}

	g, err := generator.Lookup(cfg.Target)
	if err != nil {
		return nil, config.ConfigError("unknown target", err)
	}

	tmpl, err := templates.Load(templates.Options{
		LocalPath: cfg.Template.Path,
		Dir:       cfg.Template.Dir,
		Target:    cfg.Target,
	})
	if err != nil {
		return nil, config.ConfigError("loading template", err)
	}

	opts, err := cfg.OptionMap()
	if err != nil {
		return nil, config.ConfigError("invalid configuration", err)
	}

	r, err := g.NewRenderer(generator.Config{
		Template:       tmpl.Text,
		TemplateSource: tmpl.Source,
		Options:        opts,
	})
	if err != nil {
		return nil, config.ConfigError("preparing target "+cfg.Target, err)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	em := generator.NewEmitter(g, r, workers)
	em.Suffix = cfg.Output.Suffix

	a.log.Debugw("starting pass",
		logging.FieldTarget, cfg.Target,
		logging.FieldTemplate, tmpl.Source,
		logging.FieldPatterns, cfg.Patterns)

	res, err := pipeline.Run(ctx, pipeline.Options{
		Host: host.Options{Patterns: cfg.Patterns, Tags: cfg.Tags},
		Filter: discovery.Filter{
			Marker:        cfg.Marker.Name,
			Strict:        cfg.Marker.Strict,
			MarkerPackage: cfg.Marker.Package,
		},
		Emitter: em,
		Workers: workers,
		Logger:  a.log,
	})
	if err != nil {
		return nil, config.GeneralError("loading packages", err)
	}

	for _, d := range res.Diagnostics() {
		fmt.Fprintln(a.stderr, d)
	}
	return res, nil
}

func (a *app) writerOptions(res *pipeline.Result) writer.Options {
	return writer.Options{
		OutputDir: a.cfg.Output.Dir,
		Dirs:      res.Dirs,
		Logger:    a.log,
		Ending:    res.Ending,
		Failed:    res.Failed(),
	}
}

func diagnosticsError(res *pipeline.Result) error {
	if !res.HasErrors() {
		return nil
	}
	return config.GeneralError(fmt.Sprintf("%d of %d types failed to generate", len(res.Diagnostics()), len(res.Classes)), nil)
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		flags  passFlags
		dryRun bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "generate [patterns...]",
		Short: "Generate files for annotated types",
		Long: `Generate one file per annotated struct type.

Patterns are Go package patterns (default: ./...). Files whose content is
already current are left untouched. Types that fail to render are reported
as diagnostics; every other type is still generated.`,
		Example: `  # Generate Go accessors next to each package
  bladegen generate

  # Generate proto messages into one directory
  bladegen generate ./models/... -t proto -o proto -O package=app.v1

  # Print what would be generated
  bladegen generate --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd.Flags(), a.cfg, args)

			res, err := a.pass(cmd.Context())
			if err != nil {
				return err
			}

			opts := a.writerOptions(res)
			opts.DryRun = dryRun || stdout
			if stdout {
				opts.Stdout = a.stdout
			}
			report, err := writer.Write(res.Artifacts(), opts)
			if err != nil {
				return config.GeneralError("writing files", err)
			}
			a.log.Infow("generate complete",
				"written", len(report.Written),
				"unchanged", len(report.Unchanged),
				"dry_run", opts.DryRun)

			return diagnosticsError(res)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing files")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print generated files as a txtar archive instead of writing them")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	var flags passFlags

	cmd := &cobra.Command{
		Use:   "check [patterns...]",
		Short: "Verify generated files are current",
		Long: `Regenerate in memory and compare with the files on disk.

Exits with code 3 when a file is missing or out of date, or when a
generated file no longer matches any marked type.`,
		Example: `  # Fail CI when generated files are stale
  bladegen check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd.Flags(), a.cfg, args)

			res, err := a.pass(cmd.Context())
			if err != nil {
				return err
			}

			report, err := writer.Check(res.Artifacts(), a.writerOptions(res))
			if err != nil {
				return config.GeneralError("checking files", err)
			}
			for _, p := range report.Missing {
				fmt.Fprintf(a.stdout, "missing: %s\n", p)
			}
			for _, p := range report.Stale {
				fmt.Fprintf(a.stdout, "stale: %s\n", p)
			}
			for _, p := range report.Orphaned {
				fmt.Fprintf(a.stdout, "orphaned: %s\n", p)
			}

			if err := diagnosticsError(res); err != nil {
				return err
			}
			if !report.OK() {
				return config.StaleError(fmt.Sprintf("%d generated files out of date",
					len(report.Missing)+len(report.Stale)+len(report.Orphaned)))
			}
			a.log.Infow("check complete", "current", len(report.Current))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
