// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Generator)
)

// Register adds a target to the registry.
// It panics if a target with the same name is already registered.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()
	meta := g.Metadata()
	if meta.Name == "" {
		panic("generator: target has no name")
	}
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("generator %q already registered", meta.Name))
	}
	registry[meta.Name] = g
}

// Get returns a target by name.
func Get(name string) (Generator, bool) {
	mu.RLock()
	defer mu.RUnlock()
	g, ok := registry[name]
	return g, ok
}

// Lookup is like [Get] but returns an error naming the known targets.
func Lookup(name string) (Generator, error) {
	if g, ok := Get(name); ok {
		return g, nil
	}
	err := errors.Newf("unknown target %q", name)
	return nil, errors.WithHintf(err, "available targets: %s", strings.Join(List(), ", "))
}

// List returns all registered target names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered targets, sorted by name.
func All() []Generator {
	mu.RLock()
	defer mu.RUnlock()
	gens := make([]Generator, 0, len(registry))
	for _, g := range registry {
		gens = append(gens, g)
	}
	slices.SortFunc(gens, func(a, b Generator) int {
		return strings.Compare(a.Metadata().Name, b.Metadata().Name)
	})
	return gens
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Generator)
}
