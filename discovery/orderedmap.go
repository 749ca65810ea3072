// SPDX-License-Identifier: MIT

package discovery

import "slices"

// orderedMap remembers keys as they are first set and lists them sorted,
// so output built from it does not depend on field order or map iteration.
type orderedMap[T any] struct {
	m     map[string]T
	order []string
}

func newOrderedMap[T any]() *orderedMap[T] {
	return &orderedMap[T]{
		m: make(map[string]T),
	}
}

func (m *orderedMap[T]) set(key string, value T) {
	if _, exists := m.m[key]; !exists {
		m.order = append(m.order, key)
	}
	m.m[key] = value
}

func (m *orderedMap[T]) get(key string) T {
	return m.m[key]
}

func (m *orderedMap[T]) keys() []string {
	sorted := slices.Clone(m.order)
	slices.Sort(sorted)
	return sorted
}
