// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package output writes generated files and compares them with files
// already on disk.
package output

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/albertocavalcante/configen/generator"
	"github.com/albertocavalcante/configen/internal/logger"
)

// ErrWriteFailure marks a generated file that could not be written.
var ErrWriteFailure = errors.New("write failure")

// Writer writes generated output into a directory.
type Writer struct {
	fs  afero.Fs
	dir string
}

// NewWriter creates a Writer for dir on fs.
func NewWriter(fs afero.Fs, dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{fs: fs, dir: dir}
}

// Path returns the destination of the named file.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Write writes every file of out and returns the paths written, in name
// order. Each file is replaced atomically; a failure stops at the file
// that failed and leaves files already written in place.
func (w *Writer) Write(out *generator.Output) ([]string, error) {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return nil, writeFailure(w.dir, err)
	}

	var written []string
	for _, name := range out.Names() {
		path := w.Path(name)
		if err := w.writeFile(path, out.Files[name]); err != nil {
			return written, err
		}
		logger.Debugw("wrote file", logger.FieldPath, path, "bytes", len(out.Files[name]))
		written = append(written, path)
	}
	return written, nil
}

// writeFile writes data to a temp file next to path and renames it over
// path.
func (w *Writer) writeFile(path string, data []byte) error {
	tmp, err := afero.TempFile(w.fs, filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return writeFailure(path, err)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = w.fs.Chmod(tmpName, 0o644)
	}
	if err == nil {
		err = w.fs.Rename(tmpName, path)
	}
	if err != nil {
		_ = w.fs.Remove(tmpName)
		return writeFailure(path, err)
	}
	return nil
}

func writeFailure(path string, cause error) error {
	err := errors.Wrapf(cause, "failed to write to file at path %s", path)
	if errors.Is(cause, os.ErrPermission) {
		err = errors.WithHint(err, "check that the output directory is writable")
	}
	return errors.Mark(err, ErrWriteFailure)
}
