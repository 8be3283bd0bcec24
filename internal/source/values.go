// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package source

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
	"howett.net/plist"

	"github.com/albertocavalcante/configen/model"
)

// ValueFormats lists the values file extensions ParseValues understands.
var ValueFormats = []string{".plist", ".yaml", ".yml", ".json", ".toml"}

// LoadValues reads the values file at path on fs.
func LoadValues(fs afero.Fs, path string) (*model.Values, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read values file %s", path)
	}
	return ParseValues(path, data)
}

// ParseValues decodes a values file; the format is chosen from the name's
// extension. Keys whose values cannot be represented are recorded in
// [model.Values.Unsupported] rather than rejected.
func ParseValues(name string, data []byte) (*model.Values, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".plist":
		return parsePlist(name, data)
	case ".yaml", ".yml", ".json":
		return parseYAML(name, data)
	case ".toml":
		return parseTOML(name, data)
	default:
		err := errors.Newf("%s: unsupported values format %q", name, ext)
		err = errors.WithHintf(err, "use one of %s", strings.Join(ValueFormats, ", "))
		return nil, errors.Mark(err, ErrInvalidInput)
	}
}

func parsePlist(name string, data []byte) (*model.Values, error) {
	var raw map[string]any
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parse %s", name), ErrInvalidInput)
	}
	return fromMap(raw), nil
}

func parseTOML(name string, data []byte) (*model.Values, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parse %s", name), ErrInvalidInput)
	}
	return fromMap(raw), nil
}

func fromMap(raw map[string]any) *model.Values {
	vs := model.NewValues()
	for k, v := range raw {
		if val, ok := convert(v); ok {
			vs.Set(k, val)
		} else {
			vs.Unsupported[k] = shapeOf(v)
		}
	}
	return vs
}

// convert maps a decoded plist or TOML value onto a model value.
func convert(v any) (model.Value, bool) {
	if elems, ok := v.([]any); ok {
		list := make([]string, 0, len(elems))
		for _, e := range elems {
			s, ok := scalarText(e)
			if !ok {
				return model.Value{}, false
			}
			list = append(list, s)
		}
		return model.List(list...), true
	}

	switch x := v.(type) {
	case bool:
		return model.Bool(x), true
	case string:
		return model.Text(x), true
	}
	if s, ok := numberText(v); ok {
		return model.Number(s), true
	}
	return model.Value{}, false
}

func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x), true
	case string:
		return x, true
	}
	return numberText(v)
}

func numberText(v any) (string, bool) {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	}
	return "", false
}

func shapeOf(v any) string {
	switch v.(type) {
	case map[string]any:
		return "dictionary"
	case []any:
		return "nested list"
	case []byte:
		return "data"
	case time.Time, toml.LocalDate, toml.LocalDateTime, toml.LocalTime:
		return "date"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func parseYAML(name string, data []byte) (*model.Values, error) {
	root, err := decodeMapping(name, data)
	if err != nil {
		return nil, err
	}
	vs := model.NewValues()
	if root == nil {
		return vs, nil
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i].Value, resolveAlias(root.Content[i+1])
		val, shape, err := nodeValue(node)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "%s:%d: %s", name, node.Line, key), ErrInvalidInput)
		}
		if shape != "" {
			vs.Unsupported[key] = shape
			continue
		}
		vs.Set(key, val)
	}
	return vs, nil
}

// nodeValue converts a YAML node. Numbers keep their source text.
// A non-empty shape reports a node that has no model representation.
func nodeValue(n *yaml.Node) (model.Value, string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return model.Value{}, "", err
			}
			return model.Bool(b), "", nil
		case "!!int", "!!float":
			return model.Number(n.Value), "", nil
		case "!!null":
			return model.Value{}, "null", nil
		case "!!timestamp":
			return model.Value{}, "date", nil
		case "!!binary":
			return model.Value{}, "data", nil
		default:
			return model.Text(n.Value), "", nil
		}

	case yaml.SequenceNode:
		elems := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			c = resolveAlias(c)
			if c.Kind != yaml.ScalarNode {
				return model.Value{}, "nested list", nil
			}
			elems = append(elems, c.Value)
		}
		return model.List(elems...), "", nil

	case yaml.MappingNode:
		return model.Value{}, "dictionary", nil

	default:
		return model.Value{}, "", errors.Newf("unexpected yaml node kind %d", n.Kind)
	}
}
