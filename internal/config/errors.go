// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitConfig  = 2
	ExitStale   = 3
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ConfigError creates an ExitError with ExitConfig code.
func ConfigError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitConfig, Message: msg, Err: err}
}

// StaleError creates an ExitError with ExitStale code.
func StaleError(msg string) *ExitError {
	return &ExitError{Code: ExitStale, Message: msg}
}

// GeneralError creates an ExitError with ExitGeneral code.
func GeneralError(msg string, err error) *ExitError {
	return &ExitError{Code: ExitGeneral, Message: msg, Err: err}
}

// Report prints err and its hints to w and returns the exit code for it.
func Report(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(w, "Error:", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, "Hint:", hint)
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitGeneral
}
