// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

// Config holds configuration for Kotlin generation.
type Config struct {
	// PackageName is the Kotlin package name (e.g., "com.example.app").
	// Defaults to the Go package name.
	PackageName string

	// TypeOverrides maps Go types, as written in the declaring package,
	// to Kotlin types. Set with "map.<GoType>" options.
	TypeOverrides map[string]string
}

// Kotlin imports added by generated code.
const (
	importSerializable = "kotlinx.serialization.Serializable"
	importSerialName   = "kotlinx.serialization.SerialName"
	importJSONElement  = "kotlinx.serialization.json.JsonElement"
)

// JSONElement is the Kotlin type of dynamic Go values.
const JSONElement = "JsonElement?"

// DefaultMappings maps Go types to the Kotlin types that decode the same
// JSON encoding/json produces for them.
var DefaultMappings = map[string]string{
	"bool":    "Boolean",
	"string":  "String",
	"int":     "Long",
	"int8":    "Byte",
	"int16":   "Short",
	"int32":   "Int",
	"rune":    "Int",
	"int64":   "Long",
	"uint":    "ULong",
	"uint8":   "UByte",
	"byte":    "UByte",
	"uint16":  "UShort",
	"uint32":  "UInt",
	"uint64":  "ULong",
	"uintptr": "ULong",
	"float32": "Float",
	"float64": "Double",

	// RFC 3339 string and nanoseconds
	"time.Time":     "String",
	"time.Duration": "Long",

	"any":             JSONElement,
	"interface{}":     JSONElement,
	"json.RawMessage": JSONElement,
}

// keywords are Kotlin hard keywords, escaped with backticks when used as
// property names.
var keywords = map[string]bool{
	"as": true, "break": true, "class": true, "continue": true, "do": true,
	"else": true, "false": true, "for": true, "fun": true, "if": true,
	"in": true, "interface": true, "is": true, "null": true, "object": true,
	"package": true, "return": true, "super": true, "this": true, "throw": true,
	"true": true, "try": true, "typealias": true, "typeof": true, "val": true,
	"var": true, "when": true, "while": true,
}
