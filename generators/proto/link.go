// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package proto

import (
	"go/ast"
	"go/parser"
	"go/types"

	"github.com/albertocavalcante/bladegen/model"
)

// references returns the qualified names of the generated classes m's
// fields refer to. Overridden types refer to nothing.
func references(m *model.ClassMetadata, classes []*model.ClassMetadata, overrides map[string]string) map[string]bool {
	local := m.LocalNames(classes)
	out := make(map[string]bool)
	for _, p := range m.Properties {
		expr, err := parser.ParseExpr(p.LocalType)
		if err != nil {
			continue
		}
		ast.Inspect(expr, func(n ast.Node) bool {
			e, ok := n.(ast.Expr)
			if !ok {
				return true
			}
			name := types.ExprString(e)
			if _, ok := overrides[name]; ok {
				return false
			}
			switch e.(type) {
			case *ast.Ident, *ast.SelectorExpr:
				if k, ok := local[name]; ok && !k.IsGeneric() {
					out[k.QualifiedName()] = true
				}
				return false
			}
			return true
		})
	}
	return out
}

// importCycles returns, per class, the other classes it shares an import
// cycle with. proto files may not import each other in a cycle.
func importCycles(classes []*model.ClassMetadata, overrides map[string]string) map[string]map[string]bool {
	edges := make(map[string]map[string]bool, len(classes))
	for _, c := range classes {
		if c != nil {
			edges[c.QualifiedName()] = references(c, classes, overrides)
		}
	}

	reach := make(map[string]map[string]bool, len(edges))
	for from := range edges {
		seen := make(map[string]bool)
		stack := []string{from}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for to := range edges[n] {
				if !seen[to] {
					seen[to] = true
					stack = append(stack, to)
				}
			}
		}
		reach[from] = seen
	}

	out := make(map[string]map[string]bool)
	for a, ra := range reach {
		for b := range ra {
			if a != b && reach[b][a] {
				if out[a] == nil {
					out[a] = make(map[string]bool)
				}
				out[a][b] = true
			}
		}
	}
	return out
}
