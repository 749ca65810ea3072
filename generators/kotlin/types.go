// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

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

// TypeResolver maps Go field types to Kotlin types.
type TypeResolver struct {
	typeMap    map[string]string
	typeParams map[string]bool
	classes    map[string]Class
	imports    map[string]bool
}

// Class is a Kotlin class generated in the same pass.
type Class struct {
	// Name is the simple class name.
	Name string

	// Import is the fully qualified name to import, or empty when the class
	// shares the package of the file being generated.
	Import string
}

// NewTypeResolver creates a TypeResolver for one type. Named types resolve
// only through overrides or classes; classes is keyed by the Go type as
// written in the declaring package.
func NewTypeResolver(typeParams []string, overrides map[string]string, classes map[string]Class) *TypeResolver {
	r := &TypeResolver{
		typeMap:    maps.Clone(DefaultMappings),
		typeParams: make(map[string]bool),
		classes:    classes,
		imports:    make(map[string]bool),
	}
	maps.Copy(r.typeMap, overrides)
	for _, tp := range typeParams {
		r.typeParams[tp] = true
	}
	return r
}

// Resolve returns the Kotlin type for a Go type written as goType in the
// declaring package, e.g. "[]*User" -> "List<User?>".
func (r *TypeResolver) Resolve(goType string) (string, error) {
	if k, ok := r.lookup(goType); ok {
		return k, nil
	}
	expr, err := parser.ParseExpr(goType)
	if err != nil {
		return "", errors.Newf("unsupported type %s", goType)
	}
	return r.convert(expr)
}

// Imports returns the Kotlin imports needed by the resolved types, sorted.
func (r *TypeResolver) Imports() []string {
	return slices.Sorted(maps.Keys(r.imports))
}

func (r *TypeResolver) lookup(goType string) (string, bool) {
	k, ok := r.typeMap[goType]
	if ok && k == JSONElement {
		r.imports[importJSONElement] = true
	}
	return k, ok
}

func (r *TypeResolver) convert(expr ast.Expr) (string, error) {
	goType := types.ExprString(expr)
	if k, ok := r.lookup(goType); ok {
		return k, nil
	}

	switch x := expr.(type) {
	case *ast.Ident:
		if r.typeParams[x.Name] {
			return x.Name, nil
		}
		if x.Name == "error" || x.Name == "complex64" || x.Name == "complex128" {
			return "", errors.Newf("unsupported type %s", x.Name)
		}
		return r.class(goType)

	case *ast.SelectorExpr:
		return r.class(goType)

	case *ast.StarExpr:
		inner, err := r.convert(x.X)
		if err != nil {
			return "", err
		}
		return nullable(inner), nil

	case *ast.ArrayType:
		if isByte(x.Elt) {
			return "ByteArray", nil
		}
		elem, err := r.convert(x.Elt)
		if err != nil {
			return "", err
		}
		return "List<" + elem + ">", nil

	case *ast.MapType:
		key, err := r.convert(x.Key)
		if err != nil {
			return "", err
		}
		val, err := r.convert(x.Value)
		if err != nil {
			return "", err
		}
		return "Map<" + key + ", " + val + ">", nil

	case *ast.IndexExpr:
		return r.generic(x.X, []ast.Expr{x.Index})

	case *ast.IndexListExpr:
		return r.generic(x.X, x.Indices)

	default:
		return "", errors.Newf("unsupported type %s", goType)
	}
}

// generic converts an instantiated generic type, e.g. Page[T] -> Page<T>.
func (r *TypeResolver) generic(base ast.Expr, args []ast.Expr) (string, error) {
	name, err := r.convert(base)
	if err != nil {
		return "", err
	}
	converted := make([]string, len(args))
	for i, a := range args {
		if converted[i], err = r.convert(a); err != nil {
			return "", err
		}
	}
	return name + "<" + strings.Join(converted, ", ") + ">", nil
}

// class resolves a named type to a class generated in the same pass.
func (r *TypeResolver) class(goType string) (string, error) {
	c, ok := r.classes[goType]
	if !ok {
		return "", errors.Newf("%s is not a generated class", goType)
	}
	if c.Import != "" {
		r.imports[c.Import] = true
	}
	return c.Name, nil
}

func isByte(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && (id.Name == "byte" || id.Name == "uint8")
}

func nullable(kotlinType string) string {
	if strings.HasSuffix(kotlinType, "?") {
		return kotlinType
	}
	return kotlinType + "?"
}

// fieldName converts a Go field name to a Kotlin property name (camelCase),
// escaping keywords.
func fieldName(name string) string {
	n := naming.Camel(name)
	if keywords[n] {
		return "`" + n + "`"
	}
	return n
}
