// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package emit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	// DefaultSuffix marks a file as generated.
	DefaultSuffix = ".g"

	// DefaultExtension is used when the renderer does not name one.
	DefaultExtension = ".go"

	// Encoding is the text encoding of every artifact.
	Encoding = "utf-8"

	// HashAlgorithm names the content hash attached to every artifact.
	HashAlgorithm = "sha256"
)

// Artifact is one generated file.
type Artifact struct {
	// Name is the file name, "<Class><Suffix><Extension>" (e.g., "Widget.g.go").
	Name string

	// Class is the type the artifact was generated for.
	Class string

	// Namespace is the import path of the package declaring Class.
	Namespace string

	// Content is the rendered text, UTF-8 encoded.
	Content []byte

	// Encoding is always [Encoding].
	Encoding string

	// Hash is the hex SHA-256 of Content.
	Hash string
}

// ArtifactName returns the file name generated for a class.
func ArtifactName(class, suffix, ext string) string {
	return class + suffix + ext
}

// Hash returns the hex SHA-256 of content.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Verify reports whether Hash matches Content.
func (a *Artifact) Verify() bool {
	return a.Hash == Hash(a.Content)
}

// String returns a one-line summary.
func (a *Artifact) String() string {
	return fmt.Sprintf("%s (%d bytes, %s:%s)", a.Name, len(a.Content), HashAlgorithm, a.Hash)
}
