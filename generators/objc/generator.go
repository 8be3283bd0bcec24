// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package objc generates an Objective-C class (header and implementation)
// with one class method per configuration setting.
package objc

import (
	"context"

	"github.com/albertocavalcante/configen/generator"
	"github.com/albertocavalcante/configen/internal/render"
	"github.com/albertocavalcante/configen/model"
)

// Generator implements [generator.Generator] for Objective-C.
type Generator struct{}

// NewGenerator creates a new Objective-C generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "objc",
		Version:        "1.0.0",
		Description:    "Objective-C class with a header and an implementation file",
		FileExtensions: []string{".h", ".m"},
		URL:            "https://github.com/albertocavalcante/configen",
	}
}

// Generate renders <ClassName>.h and <ClassName>.m.
//
// Options:
//   - superclass: superclass of the generated @interface (default NSObject)
func (g *Generator) Generate(ctx context.Context, settings []model.Setting, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl := Template(cfg.ClassName, cfg.Option("superclass", DefaultSuperclass))
	banner := render.Banner(cfg.App(), cfg.HintsPath)

	files, err := render.Files(settings, tmpl, cfg.ClassName, banner, cfg.Imports)
	if err != nil {
		return nil, err
	}
	return &generator.Output{Files: files}, nil
}
