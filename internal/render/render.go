// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package render turns resolved settings into source text.
//
// A [Template] is a fixed set of snippets for one output format. Rendering
// picks a snippet per setting by declared type, substitutes the setting's
// name, type and value into it, and inserts the concatenated lines into
// the file skeleton at the body token.
package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/albertocavalcante/configen/internal/token"
	"github.com/albertocavalcante/configen/model"
)

// ReadmeURL is linked from every generated banner.
const ReadmeURL = "https://github.com/albertocavalcante/configen/blob/main/README.md"

// Template is the complete set of snippets for one output format.
// Declarations is nil for formats that emit a single implementation file.
type Template struct {
	Declarations    *Declarations
	Implementations Implementations
}

// Declarations holds the snippets of a header/interface file.
// Snippets may reference [token.VariableName]; Custom may also reference
// [token.CustomType].
type Declarations struct {
	// Extension is the file extension, including the dot.
	Extension string

	// Imports is written right after the banner.
	Imports string

	// Body is the file skeleton; it must contain [token.Body].
	Body string

	Double string
	Int    string
	String string
	Bool   string
	URL    string
	Custom string
}

// Implementations holds the snippets of an implementation file.
// Snippets may reference [token.VariableName] and [token.Value]; Custom may
// also reference [token.CustomType].
type Implementations struct {
	// Extension is the file extension, including the dot.
	Extension string

	// Imports is written right after the banner.
	Imports string

	// AdditionalImport is written once per extra import, with
	// [token.AdditionalImport] replaced by the module name.
	AdditionalImport string

	// Body is the file skeleton; it must contain [token.Body].
	Body string

	Double string
	Int    string
	String string
	Bool   string
	URL    string
	Custom string

	// True and False replace [token.Value] in Bool.
	True  string
	False string

	// Array builds the value of array-typed settings; [token.CustomType]
	// is the element type and [token.Value] the comma-separated elements.
	Array string
}

// Banner returns the comment placed at the top of every generated file.
func Banner(app, hintsPath string) string {
	return fmt.Sprintf("// auto-generated by %s\n"+
		"// to add or remove properties, edit the mapping file: '%s'.\n"+
		"// README: %s\n\n", app, hintsPath, ReadmeURL)
}

// Declaration renders the header line for h, without terminator.
func Declaration(h model.Hint, d *Declarations) string {
	var line string
	switch h.Kind() {
	case model.KindDouble:
		line = d.Double
	case model.KindInt:
		line = d.Int
	case model.KindString:
		line = d.String
	case model.KindBool:
		line = d.Bool
	case model.KindURL:
		line = d.URL
	default:
		line = d.Custom
	}
	return token.Replace(line,
		token.CustomType, h.Type,
		token.VariableName, h.VariableName,
	)
}

// Implementation renders the implementation snippet for s.
// It fails when the value's shape does not fit the declared type.
func Implementation(s model.Setting, im *Implementations) (string, error) {
	h := s.Hint

	var line, value string
	switch h.Kind() {
	case model.KindDouble:
		line, value = im.Double, s.Value.Literal()

	case model.KindInt:
		line, value = im.Int, s.Value.Literal()

	case model.KindString:
		line, value = im.String, s.Value.Literal()

	case model.KindBool:
		b, ok := s.Value.AsBool()
		if !ok {
			return "", model.TypeMismatchError(h, "not a bool: %s has a %s value", h.VariableName, s.Value.Kind)
		}
		line, value = im.Bool, im.False
		if b {
			value = im.True
		}

	case model.KindURL:
		raw, ok := s.Value.AsText()
		if !ok {
			return "", model.TypeMismatchError(h,
				"value (%s) must be a string in order to be used as a URL", s.Value)
		}
		if err := checkURL(h, raw); err != nil {
			return "", err
		}
		line, value = im.URL, raw

	case model.KindArray:
		elems, ok := s.Value.AsList()
		if !ok {
			return "", model.TypeMismatchError(h,
				"value (%s) must be a list in order to be used by array type %s", s.Value, h.Type)
		}
		line = im.Custom
		value = token.Replace(im.Array,
			token.CustomType, h.ElementType(),
			token.Value, strings.Join(elems, ", "),
		)

	default:
		str, ok := s.Value.AsText()
		if !ok {
			return "", model.TypeMismatchError(h,
				"value (%s) must be a string in order to be used by custom type %s", s.Value, h.Type)
		}
		line, value = im.Custom, str
	}

	return token.Replace(line,
		token.VariableName, h.VariableName,
		token.CustomType, h.Type,
		token.Value, value,
	), nil
}

func checkURL(h model.Hint, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return model.MalformedURLError(h, raw, err)
	}
	if u.Hostname() == "" {
		return model.MalformedURLError(h, raw, nil)
	}
	return nil
}

// Header assembles the declaration file.
func Header(settings []model.Setting, d *Declarations, banner string) []byte {
	var body strings.Builder
	for _, s := range settings {
		body.WriteString("\n")
		body.WriteString(Declaration(s.Hint, d))
		body.WriteString(";\n")
	}

	var buf strings.Builder
	buf.WriteString(banner)
	buf.WriteString(d.Imports)
	buf.WriteString(token.Replace(d.Body, token.Body, body.String()))
	return []byte(buf.String())
}

// Source assembles the implementation file. Rendering stops at the first
// setting that fails.
func Source(settings []model.Setting, im *Implementations, banner string, imports []string) ([]byte, error) {
	var body strings.Builder
	for _, s := range settings {
		line, err := Implementation(s, im)
		if err != nil {
			return nil, err
		}
		body.WriteString("\n")
		body.WriteString(line)
		body.WriteString("\n")
	}

	var buf strings.Builder
	buf.WriteString(banner)
	buf.WriteString(im.Imports)
	for _, imp := range imports {
		buf.WriteString("\n")
		buf.WriteString(token.Replace(im.AdditionalImport, token.AdditionalImport, imp))
	}
	buf.WriteString(token.Replace(im.Body, token.Body, body.String()))
	return []byte(buf.String()), nil
}

// Files renders every file of t. Names are className plus the template's
// extensions. Nothing is returned unless all settings render.
func Files(settings []model.Setting, t Template, className, banner string, imports []string) (map[string][]byte, error) {
	src, err := Source(settings, &t.Implementations, banner, imports)
	if err != nil {
		return nil, err
	}
	files := map[string][]byte{className + t.Implementations.Extension: src}
	if t.Declarations != nil {
		files[className+t.Declarations.Extension] = Header(settings, t.Declarations, banner)
	}
	return files, nil
}
