// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package discovery

import "github.com/albertocavalcante/bladegen/model"

// Collect drops absent (nil) results and keeps the rest in their original
// order. It never sorts, deduplicates or validates. The result is non-nil
// even when nothing qualified.
func Collect(results []*model.ClassMetadata) []*model.ClassMetadata {
	out := make([]*model.ClassMetadata, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

// InspectAll runs f over every candidate in order and collects the
// qualifying results.
func (f Filter) InspectAll(candidates []Candidate) []*model.ClassMetadata {
	results := make([]*model.ClassMetadata, len(candidates))
	for i, c := range candidates {
		results[i] = f.Inspect(c)
	}
	return Collect(results)
}
