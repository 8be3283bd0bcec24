// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import "github.com/cockroachdb/errors"

// Generation errors. Failures are marked with one of these so callers can
// classify them with errors.Is while the message names the setting.
var (
	// ErrMissingValue marks a hint without an entry in the values file.
	ErrMissingValue = errors.New("missing value")

	// ErrTypeMismatch marks a value whose shape does not fit the declared type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMalformedURL marks a URL value that does not parse or has no host.
	ErrMalformedURL = errors.New("malformed url")
)

// MissingValueError reports that no value exists for name.
func MissingValueError(name string) error {
	err := errors.Newf("no configuration setting for variable name: %s", name)
	err = errors.WithHintf(err, "add a %q entry to the values file or remove it from the mapping file", name)
	return errors.Mark(err, ErrMissingValue)
}

// TypeMismatchError reports a value of the wrong shape for a hint.
func TypeMismatchError(h Hint, format string, args ...any) error {
	err := errors.Newf(format, args...)
	err = errors.WithDetailf(err, "setting %s declared as %s", h.VariableName, h.Type)
	return errors.Mark(err, ErrTypeMismatch)
}

// MalformedURLError reports an unusable URL value.
func MalformedURLError(h Hint, raw string, cause error) error {
	var err error
	if cause != nil {
		err = errors.Wrapf(cause, "not a URL: %q for setting: %s", raw, h.VariableName)
	} else {
		err = errors.Newf("found URL without host: %s for setting: %s", raw, h.VariableName)
	}
	return errors.Mark(err, ErrMalformedURL)
}
