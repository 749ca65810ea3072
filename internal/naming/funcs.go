// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package naming

import (
	"strconv"
	"strings"
	"text/template"
)

// FuncMap returns the template functions available to every target template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"capitalize":     Capitalize,
		"lowerFirst":     LowerFirst,
		"receiver":       Receiver,
		"camel":          Camel,
		"snake":          Snake,
		"screamingSnake": ScreamingSnake,
		"quote":          strconv.Quote,
		"join":           func(sep string, elems []string) string { return strings.Join(elems, sep) },
	}
}
