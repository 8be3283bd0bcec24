// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package swift generates a single Swift file declaring one static
// constant per configuration setting.
package swift

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/albertocavalcante/configen/generator"
	"github.com/albertocavalcante/configen/internal/render"
	"github.com/albertocavalcante/configen/model"
)

// Generator implements [generator.Generator] for Swift.
type Generator struct{}

// NewGenerator creates a new Swift generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "swift",
		Version:        "1.0.0",
		Description:    "Swift type with static constants",
		FileExtensions: []string{".swift"},
		URL:            "https://github.com/albertocavalcante/configen",
	}
}

// Generate renders <ClassName>.swift.
//
// Options:
//   - keyword: class, struct or enum (default class)
func (g *Generator) Generate(ctx context.Context, settings []model.Setting, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keyword := cfg.Option("keyword", DefaultKeyword)
	switch keyword {
	case "class", "struct", "enum":
	default:
		return nil, errors.Newf("swift: unsupported keyword %q (want class, struct or enum)", keyword)
	}

	tmpl := Template(cfg.ClassName, keyword)
	banner := render.Banner(cfg.App(), cfg.HintsPath)

	files, err := render.Files(settings, tmpl, cfg.ClassName, banner, cfg.Imports)
	if err != nil {
		return nil, err
	}
	return &generator.Output{Files: files}, nil
}
