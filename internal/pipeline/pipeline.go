// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package pipeline runs one generation: load inputs, resolve settings,
// render with the selected template and write or compare the files.
package pipeline

import (
	"context"
	"regexp"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/albertocavalcante/configen/generator"
	"github.com/albertocavalcante/configen/internal/logger"
	"github.com/albertocavalcante/configen/internal/output"
	"github.com/albertocavalcante/configen/internal/source"
	"github.com/albertocavalcante/configen/model"
)

// ErrInvalidOptions marks incomplete or malformed run options.
var ErrInvalidOptions = errors.New("invalid options")

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options configures a run.
type Options struct {
	// HintsPath is the mapping file.
	HintsPath string `mapstructure:"hints"`

	// ValuesPath is the values file.
	ValuesPath string `mapstructure:"values"`

	// OutputDir receives the generated files.
	OutputDir string `mapstructure:"output-dir"`

	// ClassName names the generated class and its files.
	ClassName string `mapstructure:"class"`

	// Template is the registered generator name.
	Template string `mapstructure:"template"`

	// Imports lists additional modules for the implementation file.
	Imports []string `mapstructure:"imports"`

	// Options holds target-specific options.
	Options map[string]string `mapstructure:"options"`

	// AppName is quoted in the banner; defaults to configen.
	AppName string `mapstructure:"-"`
}

// Validate reports the first missing or malformed option.
func (o Options) Validate() error {
	var err error
	switch {
	case o.HintsPath == "":
		err = errors.WithHint(errors.New("no mapping file given"), "pass --hints")
	case o.ValuesPath == "":
		err = errors.WithHint(errors.New("no values file given"), "pass --values")
	case o.Template == "":
		err = errors.WithHint(errors.New("no template given"), "pass --template")
	case !identifier.MatchString(o.ClassName):
		err = errors.Newf("class name %q is not a valid identifier", o.ClassName)
	}
	if err != nil {
		return errors.Mark(err, ErrInvalidOptions)
	}
	return nil
}

// Result is a rendered but unwritten generation.
type Result struct {
	Generator generator.Generator
	Settings  []model.Setting
	Output    *generator.Output
}

// Build loads the inputs from fs and renders every file in memory.
// Nothing is written; an error means no output exists.
func Build(ctx context.Context, fs afero.Fs, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	gen, err := generator.Lookup(opts.Template)
	if err != nil {
		return nil, err
	}

	hints, err := source.LoadHints(fs, opts.HintsPath)
	if err != nil {
		return nil, err
	}
	for _, name := range generator.Duplicates(hints) {
		logger.Warnw("variable declared more than once", "name", name, logger.FieldFile, opts.HintsPath)
	}

	values, err := source.LoadValues(fs, opts.ValuesPath)
	if err != nil {
		return nil, err
	}

	settings, err := generator.Resolve(hints, values)
	if err != nil {
		return nil, err
	}
	logger.Debugw("resolved settings", logger.FieldCount, len(settings), logger.FieldTemplate, opts.Template)

	out, err := gen.Generate(ctx, settings, generator.Config{
		ClassName: opts.ClassName,
		HintsPath: opts.HintsPath,
		AppName:   opts.AppName,
		Imports:   opts.Imports,
		Options:   opts.Options,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s template", opts.Template)
	}

	return &Result{Generator: gen, Settings: settings, Output: out}, nil
}

// Generate builds the output and writes it to opts.OutputDir on fs.
// Inputs are read from the same fs.
// It returns the paths written.
func Generate(ctx context.Context, fs afero.Fs, opts Options) ([]string, error) {
	res, err := Build(ctx, fs, opts)
	if err != nil {
		return nil, err
	}
	written, err := output.NewWriter(fs, opts.OutputDir).Write(res.Output)
	if err != nil {
		return written, err
	}
	meta := res.Generator.Metadata()
	logger.Infow("generated configuration",
		logger.FieldClass, opts.ClassName,
		logger.FieldTemplate, meta.Name,
		logger.FieldVersion, meta.Version,
		logger.FieldCount, len(res.Settings),
	)
	return written, nil
}

// Check builds the output and compares it with the files in
// opts.OutputDir on fs.
func Check(ctx context.Context, fs afero.Fs, opts Options) ([]output.Drift, error) {
	res, err := Build(ctx, fs, opts)
	if err != nil {
		return nil, err
	}
	return output.NewWriter(fs, opts.OutputDir).Check(res.Output)
}
