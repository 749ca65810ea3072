// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package emit turns collected metadata into generated artifacts.
//
// Every input item yields exactly one [Outcome]: an [Artifact] holding the
// full rendered text, or a [Diagnostic] explaining why rendering failed.
// A failing item never stops the others.
package emit

import (
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/bladegen/model"
)

// Renderer renders one class to text.
type Renderer interface {
	Render(m *model.ClassMetadata) (string, error)
}

// Linker is implemented by renderers whose output for one class refers to
// other classes emitted in the same pass. Link returns the renderer used for
// the pass; ending is the file name ending every artifact shares.
type Linker interface {
	Link(classes []*model.ClassMetadata, ending string) Renderer
}

// Outcome is the result of emitting one class. Exactly one of Artifact and
// Diagnostic is set.
type Outcome struct {
	Class      string
	Artifact   *Artifact
	Diagnostic *Diagnostic
}

// OK reports whether the class produced an artifact.
func (o Outcome) OK() bool {
	return o.Artifact != nil
}

// Emitter renders classes into artifacts.
type Emitter struct {
	// Renderer produces the text for one class.
	Renderer Renderer

	// Suffix is inserted between class name and extension.
	// Defaults to [DefaultSuffix].
	Suffix string

	// Extension is the artifact file extension, including the dot.
	// Defaults to [DefaultExtension].
	Extension string

	// Workers bounds concurrent rendering in EmitAll. Values below 2
	// render sequentially.
	Workers int
}

func (e *Emitter) suffix() string {
	if e.Suffix == "" {
		return DefaultSuffix
	}
	return e.Suffix
}

func (e *Emitter) extension() string {
	if e.Extension == "" {
		return DefaultExtension
	}
	return e.Extension
}

// Ending returns the file name ending of every artifact, e.g. ".g.go".
func (e *Emitter) Ending() string {
	return e.suffix() + e.extension()
}

// Emit renders one class on its own. The renderer receives a copy of m.
func (e *Emitter) Emit(m *model.ClassMetadata) Outcome {
	var classes []*model.ClassMetadata
	if m != nil {
		classes = []*model.ClassMetadata{m}
	}
	return e.emit(e.link(classes), m)
}

// link binds a linking renderer to the classes of a pass.
func (e *Emitter) link(classes []*model.ClassMetadata) Renderer {
	if l, ok := e.Renderer.(Linker); ok {
		return l.Link(classes, e.Ending())
	}
	return e.Renderer
}

func (e *Emitter) emit(r Renderer, m *model.ClassMetadata) Outcome {
	if m == nil {
		return Outcome{Diagnostic: renderFailed("<nil>", errors.New("no metadata"))}
	}

	text, err := render(r, m)
	if err == nil && !utf8.ValidString(text) {
		err = errors.Newf("rendered output is not valid %s", Encoding)
	}
	if err != nil {
		return Outcome{Class: m.Name, Diagnostic: renderFailed(m.Name, err)}
	}

	content := []byte(text)
	return Outcome{
		Class: m.Name,
		Artifact: &Artifact{
			Name:      ArtifactName(m.Name, e.suffix(), e.extension()),
			Class:     m.Name,
			Namespace: m.Namespace,
			Content:   content,
			Encoding:  Encoding,
			Hash:      Hash(content),
		},
	}
}

// render calls r, turning a panic into an error.
func render(r Renderer, m *model.ClassMetadata) (text string, err error) {
	if r == nil {
		return "", errors.New("no renderer configured")
	}
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.Newf("renderer panicked: %v", r)
		}
	}()
	return r.Render(m.Clone())
}

// EmitAll emits every class and returns outcomes in input order.
func (e *Emitter) EmitAll(classes []*model.ClassMetadata) []Outcome {
	out := make([]Outcome, len(classes))
	r := e.link(classes)
	if e.Workers < 2 || len(classes) < 2 {
		for i, m := range classes {
			out[i] = e.emit(r, m)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(e.Workers)
	for i, m := range classes {
		g.Go(func() error {
			out[i] = e.emit(r, m)
			return nil
		})
	}
	_ = g.Wait() // Emit never fails; failures are outcomes.
	return out
}

// Artifacts returns the artifacts among outcomes, in order.
func Artifacts(outcomes []Outcome) []*Artifact {
	var out []*Artifact
	for _, o := range outcomes {
		if o.Artifact != nil {
			out = append(out, o.Artifact)
		}
	}
	return out
}

// Diagnostics returns the diagnostics among outcomes, in order.
func Diagnostics(outcomes []Outcome) []*Diagnostic {
	var out []*Diagnostic
	for _, o := range outcomes {
		if o.Diagnostic != nil {
			out = append(out, o.Diagnostic)
		}
	}
	return out
}
