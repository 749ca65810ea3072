// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command bladegen generates companion files for annotated Go types.
//
// Usage:
//
//	bladegen generate [patterns] [flags]
//	bladegen check [patterns] [flags]
//	bladegen targets
//	bladegen config show [--source]
//	bladegen version
//
// A struct type is generated when its doc comment carries the annotation:
//
//	//@GenerateCode
//	type Widget struct {
//		ID   int
//		Name string
//	}
//
// Each type yields one file named <Type>.g<ext> next to its package.
package main

import (
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
