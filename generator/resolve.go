// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"slices"
	"strings"

	"github.com/albertocavalcante/configen/model"
)

// SortHints returns a copy of hints stable-sorted by variable name.
func SortHints(hints []model.Hint) []model.Hint {
	sorted := slices.Clone(hints)
	slices.SortStableFunc(sorted, func(a, b model.Hint) int {
		return strings.Compare(a.VariableName, b.VariableName)
	})
	return sorted
}

// Resolve joins every hint with its value, in variable name order.
// It never substitutes a default: the first hint without a value aborts
// resolution with an error marked [model.ErrMissingValue].
func Resolve(hints []model.Hint, values *model.Values) ([]model.Setting, error) {
	sorted := SortHints(hints)
	settings := make([]model.Setting, 0, len(sorted))
	for _, h := range sorted {
		v, ok := values.Lookup(h.VariableName)
		if !ok {
			if shape, unsupported := values.Unsupported[h.VariableName]; unsupported {
				return nil, model.TypeMismatchError(h,
					"value for %s is a %s, which cannot be rendered", h.VariableName, shape)
			}
			return nil, model.MissingValueError(h.VariableName)
		}
		settings = append(settings, model.Setting{Hint: h, Value: v})
	}
	return settings, nil
}

// Duplicates returns variable names declared more than once, sorted.
func Duplicates(hints []model.Hint) []string {
	seen := make(map[string]int, len(hints))
	for _, h := range hints {
		seen[h.VariableName]++
	}
	var dups []string
	for name, n := range seen {
		if n > 1 {
			dups = append(dups, name)
		}
	}
	slices.Sort(dups)
	return dups
}
