// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build bladegen_minimal

package main

import (
	"github.com/albertocavalcante/bladegen/generator"
	"github.com/albertocavalcante/bladegen/generators/golang"
)

func init() {
	// Minimal build: only the Go target
	generator.Register(golang.NewGenerator())
}
