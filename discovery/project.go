// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package discovery

import (
	"go/types"

	"github.com/albertocavalcante/bladegen/model"
)

// project copies the parts of a resolved struct type that templates need.
// Only exported, directly declared fields are kept; promoted fields of
// embedded types are not.
func project(tn *types.TypeName, named *types.Named, st *types.Struct) *model.ClassMetadata {
	m := &model.ClassMetadata{
		Name:       tn.Name(),
		Properties: make([]model.PropertyMetadata, 0, st.NumFields()),
	}

	pkg := tn.Pkg()
	if pkg != nil {
		m.Namespace = pkg.Path()
		m.Package = pkg.Name()
	}

	if tps := named.TypeParams(); tps != nil {
		for i := 0; i < tps.Len(); i++ {
			m.TypeParams = append(m.TypeParams, tps.At(i).Obj().Name())
		}
	}

	imports := newOrderedMap[string]()
	local := func(p *types.Package) string {
		if p == pkg {
			return ""
		}
		imports.set(p.Path(), p.Name())
		return p.Name()
	}

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() {
			continue
		}
		m.Properties = append(m.Properties, model.PropertyMetadata{
			Name:      f.Name(),
			Type:      types.TypeString(f.Type(), nil),
			LocalType: types.TypeString(f.Type(), local),
			Tag:       st.Tag(i),
			Embedded:  f.Embedded(),
		})
	}

	for _, p := range imports.keys() {
		m.Imports = append(m.Imports, model.Import{Path: p, Name: imports.get(p)})
	}
	return m
}
