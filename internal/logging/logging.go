// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package logging builds the zap loggers used by bladegen.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging.
const (
	FieldTarget    = "target"
	FieldPackage   = "package"
	FieldClass     = "class"
	FieldArtifact  = "artifact"
	FieldPath      = "path"
	FieldCode      = "code"
	FieldCount     = "count"
	FieldTemplate  = "template"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldPatterns  = "patterns"
	FieldConfig    = "config"
	FieldCandidate = "candidates"
)

// Verbosity levels for repeated -v flags.
const (
	VerbosityQuiet = 0 // warnings and errors only
	VerbosityInfo  = 1 // -v: + per-pass summary and written files
	VerbosityDebug = 2 // -vv: + per-package and per-class detail
)

// Options configures a logger.
type Options struct {
	// JSON selects machine-readable output.
	JSON bool

	// Verbosity is the number of -v flags.
	Verbosity int

	// Output receives log lines. Defaults to os.Stderr so generated
	// content on stdout stays clean.
	Output io.Writer
}

// VerbosityToLevel maps verbosity flags to zap levels.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityQuiet:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New builds a logger.
func New(opts Options) *zap.SugaredLogger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := VerbosityToLevel(opts.Verbosity)

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), level)).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return Nop()
	}
	return l
}
