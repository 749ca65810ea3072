// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package proto

import (
	"go/ast"
	"go/parser"
	"go/types"
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/bladegen/internal/naming"
)

// TypeResolver maps Go field types to proto3 field types.
type TypeResolver struct {
	// Maps Go types (as written in the declaring package) to proto types
	typeMap map[string]string

	// Type parameter names of the message being generated
	typeParams map[string]bool

	// Messages generated in the same pass, by local Go type
	messages map[string]Message

	// Proto files imported by resolved types
	imports map[string]bool
}

// Message is a message declared by another generated file.
type Message struct {
	// Name is the message name as referenced, e.g. "Item" or "geo.Point".
	Name string

	// File is the proto file declaring it. Empty for the message being
	// generated.
	File string

	// Cycle reports that File imports, directly or not, the file being
	// generated.
	Cycle bool
}

// NewTypeResolver creates a TypeResolver for one type. Named types resolve
// only through overrides or messages; messages is keyed by the Go type as
// written in the declaring package.
func NewTypeResolver(typeParams []string, overrides map[string]string, messages map[string]Message) *TypeResolver {
	r := &TypeResolver{
		typeMap:    maps.Clone(DefaultMappings),
		typeParams: make(map[string]bool),
		messages:   messages,
		imports:    make(map[string]bool),
	}
	maps.Copy(r.typeMap, overrides)
	for _, tp := range typeParams {
		r.typeParams[tp] = true
	}
	return r
}

// Resolve returns the proto3 field type for a Go type written as goType in
// the declaring package, e.g. "[]string" -> "repeated string".
func (r *TypeResolver) Resolve(goType string) (string, error) {
	if p, ok := r.lookup(goType); ok {
		return p, nil
	}
	expr, err := parser.ParseExpr(goType)
	if err != nil {
		return "", errors.Newf("unsupported type %s", goType)
	}
	return r.convert(expr)
}

// Imports returns the proto files needed by the resolved types, sorted.
func (r *TypeResolver) Imports() []string {
	return slices.Sorted(maps.Keys(r.imports))
}

func (r *TypeResolver) lookup(goType string) (string, bool) {
	p, ok := r.typeMap[goType]
	if ok {
		if file, wk := wellKnownImports[p]; wk {
			r.imports[file] = true
		}
	}
	return p, ok
}

func (r *TypeResolver) convert(expr ast.Expr) (string, error) {
	goType := types.ExprString(expr)
	if p, ok := r.lookup(goType); ok {
		return p, nil
	}

	switch x := expr.(type) {
	case *ast.Ident:
		if r.typeParams[x.Name] {
			return "", errors.Newf("type parameter %s", x.Name)
		}
		if x.Name == "error" || x.Name == "complex64" || x.Name == "complex128" {
			return "", errors.Newf("unsupported type %s", x.Name)
		}
		return r.message(goType)

	case *ast.SelectorExpr:
		return r.message(goType)

	case *ast.StarExpr:
		return r.convert(x.X)

	case *ast.ArrayType:
		if isByte(x.Elt) {
			return "bytes", nil
		}
		elem, err := r.convert(x.Elt)
		if err != nil {
			return "", err
		}
		if isCollection(elem) {
			return "", errors.Newf("nested collection %s", goType)
		}
		return "repeated " + elem, nil

	case *ast.MapType:
		key, err := r.convert(x.Key)
		if err != nil {
			return "", err
		}
		if !validMapKey(key) {
			return "", errors.Newf("map key %s cannot be a proto map key", types.ExprString(x.Key))
		}
		val, err := r.convert(x.Value)
		if err != nil {
			return "", err
		}
		if isCollection(val) {
			return "", errors.Newf("nested collection %s", goType)
		}
		return "map<" + key + ", " + val + ">", nil

	default:
		return "", errors.Newf("unsupported type %s", goType)
	}
}

// message resolves a named type to a message generated in the same pass.
func (r *TypeResolver) message(goType string) (string, error) {
	msg, ok := r.messages[goType]
	if !ok {
		return "", errors.Newf("%s is not a generated message", goType)
	}
	if msg.Cycle {
		return "", errors.Newf("%s would create an import cycle", goType)
	}
	if msg.File != "" {
		r.imports[msg.File] = true
	}
	return msg.Name, nil
}

func isByte(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && (id.Name == "byte" || id.Name == "uint8")
}

func isCollection(protoType string) bool {
	return strings.HasPrefix(protoType, "repeated ") || strings.HasPrefix(protoType, "map<")
}

// validMapKey reports whether a proto type may be used as a map key.
func validMapKey(protoType string) bool {
	switch protoType {
	case "string", "bool", "int32", "int64", "uint32", "uint64":
		return true
	}
	return false
}

// toProtoFieldName converts a Go field name to a proto field name.
func toProtoFieldName(name string) string {
	return naming.Snake(name)
}
