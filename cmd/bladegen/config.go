// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	var showSource bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  `Show the effective configuration after merging defaults, config file, and environment variables.`,
		Example: `  # Show effective configuration
  bladegen config show

  # Show configuration with source file path
  bladegen config show --source`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showSource {
				if a.configPath != "" {
					fmt.Fprintf(a.stdout, "Config file: %s\n\n", a.configPath)
				} else {
					fmt.Fprintln(a.stdout, "Config file: (none, using defaults)")
					fmt.Fprintln(a.stdout)
				}
			}

			out, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, string(out))
			return nil
		},
	}
	showCmd.Flags().BoolVar(&showSource, "source", false, "show config file source")
	configCmd.AddCommand(showCmd)
	return configCmd
}
