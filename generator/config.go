// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"strconv"
	"strings"
)

// Config contains target configuration.
type Config struct {
	// Template replaces the target's embedded template when non-empty.
	Template string

	// TemplateSource describes where Template came from (for headers and errors).
	TemplateSource string

	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// BoolOption returns a boolean option. Values that do not parse yield the default.
func (c Config) BoolOption(key string, defaultValue bool) bool {
	v, ok := c.Options[key]
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}

// OptionsWithPrefix returns the options whose key starts with prefix, with
// the prefix removed. Used for option families like "map.<GoType>".
func (c Config) OptionsWithPrefix(prefix string) map[string]string {
	out := make(map[string]string)
	for k, v := range c.Options {
		if rest, ok := strings.CutPrefix(k, prefix); ok && rest != "" {
			out[rest] = v
		}
	}
	return out
}
