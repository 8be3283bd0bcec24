// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package source reads configen's two inputs: the mapping file declaring
// each variable's type and the values file holding the literals.
package source

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/configen/model"
)

// ErrInvalidInput marks input files that cannot be parsed.
var ErrInvalidInput = errors.New("invalid input")

// LoadHints reads the mapping file at path on fs.
func LoadHints(fs afero.Fs, path string) ([]model.Hint, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read mapping file %s", path)
	}
	return ParseHints(path, data)
}

// ParseHints parses a mapping file. The format is chosen from the name's
// extension: .yaml, .yml and .json hold a name-to-type mapping; anything
// else is the line format
//
//	# comment
//	apiBaseURL : URL
//	retryCount : Int
func ParseHints(name string, data []byte) ([]model.Hint, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return parseHintMapping(name, data)
	default:
		return parseHintLines(name, data)
	}
}

func parseHintLines(name string, data []byte) ([]model.Hint, error) {
	var hints []model.Hint
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		varName, typ, ok := strings.Cut(line, ":")
		varName, typ = strings.TrimSpace(varName), strings.TrimSpace(typ)
		if !ok || varName == "" || typ == "" {
			err := errors.Newf("%s:%d: expected \"name : Type\", got %q", name, lineNo, line)
			return nil, errors.Mark(err, ErrInvalidInput)
		}
		hints = append(hints, model.Hint{VariableName: varName, Type: typ, Line: lineNo})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "scan %s", name)
	}
	return hints, nil
}

func parseHintMapping(name string, data []byte) ([]model.Hint, error) {
	root, err := decodeMapping(name, data)
	if err != nil || root == nil {
		return nil, err
	}

	hints := make([]model.Hint, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], resolveAlias(root.Content[i+1])
		if val.Kind != yaml.ScalarNode || val.Value == "" {
			err := errors.Newf("%s:%d: type of %q must be a non-empty string", name, val.Line, key.Value)
			return nil, errors.Mark(err, ErrInvalidInput)
		}
		hints = append(hints, model.Hint{VariableName: key.Value, Type: val.Value, Line: key.Line})
	}
	return hints, nil
}

// decodeMapping returns the top-level mapping node of a YAML or JSON
// document, or nil for an empty document.
func decodeMapping(name string, data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parse %s", name), ErrInvalidInput)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		err := errors.Newf("%s: top level must be a mapping", name)
		return nil, errors.Mark(err, ErrInvalidInput)
	}
	return root, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
