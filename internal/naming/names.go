// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming provides identifier case helpers shared by all targets.
package naming

import (
	"strings"
	"unicode"
)

// Capitalize returns name with the first letter uppercased.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// LowerFirst returns name with the first letter lowercased.
func LowerFirst(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// Receiver returns the conventional one-letter receiver name for a type.
func Receiver(typeName string) string {
	for _, r := range typeName {
		return string(unicode.ToLower(r))
	}
	return "x"
}

// Words splits a Go identifier into words. Acronyms stay together
// ("HTTPServer" -> ["HTTP", "Server"], "UserID" -> ["User", "ID"]) and
// underscores separate words.
func Words(name string) []string {
	var words []string
	runes := []rune(name)
	start := 0
	flush := func(end int) {
		if end > start {
			words = append(words, string(runes[start:end]))
		}
	}
	for i, r := range runes {
		if r == '_' {
			flush(i)
			start = i + 1
			continue
		}
		if i == start || !unicode.IsUpper(r) {
			continue
		}
		prev := runes[i-1]
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}

// Snake converts a CamelCase name to snake_case.
func Snake(name string) string {
	return strings.ToLower(strings.Join(Words(name), "_"))
}

// ScreamingSnake converts a CamelCase name to SCREAMING_SNAKE_CASE.
func ScreamingSnake(name string) string {
	return strings.ToUpper(strings.Join(Words(name), "_"))
}

// Camel converts a Go identifier to lowerCamelCase, lowering whole
// acronyms ("UserID" -> "userId", "HTTPServer" -> "httpServer").
func Camel(name string) string {
	words := Words(name)
	var b strings.Builder
	for i, w := range words {
		w = strings.ToLower(w)
		if i > 0 {
			w = Capitalize(w)
		}
		b.WriteString(w)
	}
	return b.String()
}
