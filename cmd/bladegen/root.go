// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/albertocavalcante/bladegen/internal/config"
	"github.com/albertocavalcante/bladegen/internal/logging"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// Set during PersistentPreRunE.
	cfg        *config.Config
	configPath string
	log        *zap.SugaredLogger

	// Persistent flags.
	cfgFile string
	verbose int
	json    bool
}

// Command group IDs
const (
	groupGenerate = "generate"
	groupUtility  = "utility"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bladegen",
		Short: "Template-driven code generation for annotated Go types",
		Long: `bladegen - template-driven code generation for annotated Go types

bladegen finds struct types whose doc comment carries //@GenerateCode,
extracts their name, package, type parameters and exported fields, and
renders one companion file per type from a text template.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for help/completion/version commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				a.log = logging.Nop()
				return nil
			}

			var err error
			a.cfg, a.configPath, err = config.Load(a.cfgFile)
			if err != nil {
				return config.ConfigError("loading configuration", err)
			}

			a.log = logging.New(logging.Options{
				JSON:      a.json || a.cfg.Log.JSON,
				Verbosity: a.verbose,
				Output:    a.stderr,
			})
			if a.configPath != "" {
				a.log.Debugw("loaded config", logging.FieldConfig, a.configPath)
			}
			return nil
		},
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: auto-discover bladegen.yaml)")
	root.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase verbosity (can be repeated)")
	root.PersistentFlags().BoolVar(&a.json, "json", false, "log as JSON")

	root.AddGroup(
		&cobra.Group{ID: groupGenerate, Title: "Generation:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	for _, cmd := range []*cobra.Command{newGenerateCmd(a), newCheckCmd(a), newTargetsCmd(a)} {
		cmd.GroupID = groupGenerate
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{newConfigCmd(a), newVersionCmd(a)} {
		cmd.GroupID = groupUtility
		root.AddCommand(cmd)
	}
	return root
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	if a.log != nil {
		_ = a.log.Sync()
	}
	return config.Report(stderr, err)
}
