// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package output

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/albertocavalcante/configen/generator"
)

// Drift describes a generated file that differs from the file on disk.
type Drift struct {
	// Path is the file on disk.
	Path string

	// Missing is set when the file does not exist.
	Missing bool

	// Diff is a line diff (-disk +generated); empty when Missing.
	Diff string
}

// Check compares out against the files in the writer's directory without
// writing anything. It returns one Drift per file that is missing or out
// of date, in name order.
func (w *Writer) Check(out *generator.Output) ([]Drift, error) {
	var drifts []Drift
	for _, name := range out.Names() {
		path := w.Path(name)
		current, err := afero.ReadFile(w.fs, path)
		if errors.Is(err, os.ErrNotExist) {
			drifts = append(drifts, Drift{Path: path, Missing: true})
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}

		want := out.Files[name]
		if string(current) == string(want) {
			continue
		}
		diff := cmp.Diff(strings.Split(string(current), "\n"), strings.Split(string(want), "\n"))
		drifts = append(drifts, Drift{Path: path, Diff: diff})
	}
	return drifts, nil
}
