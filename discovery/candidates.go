// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package discovery

import (
	"go/ast"
	"go/token"
)

// FileCandidates returns every package-level type declaration of file, in
// source order.
//
// Types declared inside function bodies are not candidates: generated
// companion files could not refer to them.
//
// The doc comment of a single unparenthesized declaration sits on the
// GenDecl; inside a "type ( ... )" group each spec carries its own.
func FileCandidates(file *ast.File, r Resolver) []Candidate {
	var out []Candidate
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := ts.Doc
			if doc == nil && !gen.Lparen.IsValid() {
				doc = gen.Doc
			}
			out = append(out, Candidate{
				Spec:     ts,
				Doc:      doc,
				File:     file,
				Resolver: r,
			})
		}
	}
	return out
}
