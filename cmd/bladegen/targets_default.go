// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build !bladegen_minimal

package main

import (
	"github.com/albertocavalcante/bladegen/generator"
	"github.com/albertocavalcante/bladegen/generators/golang"
	"github.com/albertocavalcante/bladegen/generators/kotlin"
	"github.com/albertocavalcante/bladegen/generators/markdown"
	"github.com/albertocavalcante/bladegen/generators/proto"
)

func init() {
	// Default build: every target embedded
	generator.Register(golang.NewGenerator())
	generator.Register(proto.NewGenerator())
	generator.Register(markdown.NewGenerator())
	generator.Register(kotlin.NewGenerator())
}
