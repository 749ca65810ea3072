// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emit

import "fmt"

// Diagnostic codes.
const (
	// CodeRenderFailed reports a template that failed for one class.
	CodeRenderFailed = "RB0001"
)

const (
	renderFailedTitle  = "Template rendering failed"
	renderFailedFormat = "Failed to render template for %s: %s"

	// Category groups every diagnostic produced by bladegen.
	Category = "bladegen"
)

// Severity is the severity of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic is reported instead of an artifact when a class could not be
// generated. Diagnostics carry no source position: they belong to the
// generation step, not to a span of the input.
type Diagnostic struct {
	Code     string
	Severity Severity
	Title    string
	Message  string
	Category string

	// Target is the class the diagnostic is about.
	Target string
}

// renderFailed builds the RB0001 diagnostic for class.
func renderFailed(class string, err error) *Diagnostic {
	return &Diagnostic{
		Code:     CodeRenderFailed,
		Severity: SeverityError,
		Title:    renderFailedTitle,
		Message:  fmt.Sprintf(renderFailedFormat, class, err.Error()),
		Category: Category,
		Target:   class,
	}
}

// String formats the diagnostic the way compilers print them:
// "error RB0001: Failed to render template for Widget: boom".
func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Severity, d.Code, d.Message)
}
