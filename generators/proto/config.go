// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package proto

// Config holds configuration for proto generation.
type Config struct {
	// PackageName is the proto package name. Defaults to the Go package name.
	PackageName string

	// GoPackage is the go_package option value. Defaults to the Go import path.
	GoPackage string

	// TypeOverrides maps Go types, as written in the declaring package
	// (e.g., "uuid.UUID"), to proto types. Set with "map.<GoType>" options.
	TypeOverrides map[string]string
}

// Well-known proto types.
const (
	Timestamp = "google.protobuf.Timestamp"
	Duration  = "google.protobuf.Duration"
	Value     = "google.protobuf.Value"
)

// DefaultMappings maps Go types to proto3 types.
var DefaultMappings = map[string]string{
	"bool":    "bool",
	"string":  "string",
	"int":     "int64",
	"int8":    "int32",
	"int16":   "int32",
	"int32":   "int32",
	"rune":    "int32",
	"int64":   "int64",
	"uint":    "uint64",
	"uint8":   "uint32",
	"byte":    "uint32",
	"uint16":  "uint32",
	"uint32":  "uint32",
	"uint64":  "uint64",
	"uintptr": "uint64",
	"float32": "float",
	"float64": "double",

	"time.Time":     Timestamp,
	"time.Duration": Duration,

	// Dynamic values
	"any":         Value,
	"interface{}": Value,
}

// wellKnownImports maps well-known types to the file declaring them.
var wellKnownImports = map[string]string{
	Timestamp: "google/protobuf/timestamp.proto",
	Duration:  "google/protobuf/duration.proto",
	Value:     "google/protobuf/struct.proto",
}
