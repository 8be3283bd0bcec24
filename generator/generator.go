// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for configen output templates.
package generator

import (
	"context"

	"github.com/albertocavalcante/configen/model"
)

// Generator is the interface that all output templates must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate renders output files for the resolved settings.
	// Settings arrive sorted by variable name.
	Generate(ctx context.Context, settings []model.Setting, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "objc", "swift").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists the extensions of the files produced
	// (e.g., [".h", ".m"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}
