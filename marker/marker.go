// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package marker declares the annotation that marks a struct for generation.
//
// A struct is marked by an annotation line in its doc comment:
//
//	//@GenerateCode
//	type Widget struct {
//		Id    int
//		Label string
//	}
//
// By default bladegen matches the annotation name textually. In strict mode
// the annotation must resolve to [GenerateCode] in this package, either
// qualified through an import or unqualified through a dot-import:
//
//	import _ "github.com/albertocavalcante/bladegen/marker"
//
//	//@marker.GenerateCode
//	type Widget struct{ ... }
package marker

// Path is the import path of this package.
const Path = "github.com/albertocavalcante/bladegen/marker"

// Name is the annotation name that marks a struct for generation.
const Name = "GenerateCode"

// GenerateCode marks a struct for generation. It carries no arguments; any
// written after the annotation name are ignored.
type GenerateCode struct{}
