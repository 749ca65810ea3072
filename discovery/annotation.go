// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package discovery

import (
	"go/ast"
	"strings"
	"unicode"
)

// Annotation is a "@Name" line found in a doc comment.
type Annotation struct {
	// Qualifier is the part before the last dot ("marker" in "@marker.GenerateCode").
	Qualifier string

	// Name is the simple name ("GenerateCode").
	Name string
}

// Text returns the annotation name as written, e.g. "marker.GenerateCode".
func (a Annotation) Text() string {
	if a.Qualifier == "" {
		return a.Name
	}
	return a.Qualifier + "." + a.Name
}

// Annotations extracts annotations from a doc comment group, in order.
//
// An annotation is a comment line whose text, after the comment marker and
// optional spaces, starts with "@". The name runs up to "(", whitespace or
// the end of the line. Arguments are not parsed.
func Annotations(doc *ast.CommentGroup) []Annotation {
	if doc == nil {
		return nil
	}

	var out []Annotation
	for _, c := range doc.List {
		for _, line := range commentLines(c.Text) {
			if a, ok := parseAnnotation(line); ok {
				out = append(out, a)
			}
		}
	}
	return out
}

// commentLines strips comment markers and splits block comments into lines.
func commentLines(text string) []string {
	if strings.HasPrefix(text, "//") {
		return []string{strings.TrimPrefix(text, "//")}
	}
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		// Leading " * " decoration in block comments.
		line = strings.TrimLeft(line, " \t")
		line = strings.TrimPrefix(line, "*")
		lines[i] = line
	}
	return lines
}

func parseAnnotation(line string) (Annotation, bool) {
	line = strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(line, "@") {
		return Annotation{}, false
	}
	line = line[1:]

	end := strings.IndexFunc(line, func(r rune) bool {
		return r == '(' || unicode.IsSpace(r)
	})
	if end >= 0 {
		line = line[:end]
	}
	if line == "" {
		return Annotation{}, false
	}

	if i := strings.LastIndexByte(line, '.'); i >= 0 {
		if i == 0 || i == len(line)-1 {
			return Annotation{}, false
		}
		return Annotation{Qualifier: line[:i], Name: line[i+1:]}, true
	}
	return Annotation{Name: line}, true
}
