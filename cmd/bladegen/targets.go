// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/bladegen/generator"
)

func newTargetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List available generation targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(a.stdout)
			table.SetHeader([]string{"Target", "Version", "Extensions", "Description"})
			table.SetAutoWrapText(false)
			table.SetBorder(false)

			for _, g := range generator.All() {
				m := g.Metadata()
				table.Append([]string{m.Name, m.Version, strings.Join(m.FileExtensions, ", "), m.Description})
			}
			table.Render()
			return nil
		},
	}
}
