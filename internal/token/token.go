// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package token substitutes placeholder tokens in template text.
package token

import "strings"

// Placeholders recognized in templates.
const (
	VariableName     = "$VARIABLE_NAME_TOKEN"
	CustomType       = "$CUSTOM_TYPE_TOKEN"
	Body             = "$BODY_TOKEN"
	Value            = "$VALUE_TOKEN"
	AdditionalImport = "$ADDITIONAL_IMPORT_TOKEN"
)

// Replace substitutes every occurrence of each token with its replacement.
// pairs alternates token and replacement, as for [strings.NewReplacer].
//
// All tokens are replaced in a single pass over s: replacement text is
// never scanned again, so a value that happens to contain a token literal
// is emitted as is.
func Replace(s string, pairs ...string) string {
	if len(pairs)%2 == 1 {
		panic("token.Replace: odd argument count")
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
