// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the data structures configen generates from.
//
// A generation run joins two inputs:
//
//   - Hints, read from the mapping file, declare the variable name and type
//     of every accessor to generate.
//   - Values, read from the values file, hold the literal for each name.
//
// The join produces one [Setting] per hint. Values are decoded once into a
// closed set of shapes ([Value]) so the formatters switch on the shape
// instead of inspecting dynamic types.
package model

import (
	"regexp"
	"strings"
)

// Primitive type tags recognized in the mapping file.
const (
	TypeDouble = "Double"
	TypeInt    = "Int"
	TypeString = "String"
	TypeBool   = "Bool"
	TypeURL    = "URL"
)

// TypeKind classifies a declared hint type.
type TypeKind int

const (
	KindCustom TypeKind = iota
	KindDouble
	KindInt
	KindString
	KindBool
	KindURL
	KindArray
)

func (k TypeKind) String() string {
	switch k {
	case KindDouble:
		return "double"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindURL:
		return "url"
	case KindArray:
		return "array"
	default:
		return "custom"
	}
}

var arrayType = regexp.MustCompile(`(?i)^\[\w+\]$`)

// Hint declares one accessor: its variable name and its type as written
// in the mapping file.
type Hint struct {
	// VariableName is the accessor name (e.g. "apiBaseURL").
	VariableName string `json:"variableName" yaml:"variableName"`

	// Type is a primitive tag, an array annotation like "[String]",
	// or any other (custom) type name.
	Type string `json:"type" yaml:"type"`

	// Line is the source line in the mapping file (0 if unknown).
	Line int `json:"line,omitempty" yaml:"-"`
}

// Kind reports how the declared type is rendered.
func (h Hint) Kind() TypeKind {
	switch h.Type {
	case TypeDouble:
		return KindDouble
	case TypeInt:
		return KindInt
	case TypeString:
		return KindString
	case TypeBool:
		return KindBool
	case TypeURL:
		return KindURL
	}
	if arrayType.MatchString(h.Type) {
		return KindArray
	}
	return KindCustom
}

// ElementType returns the element type of an array annotation
// ("[String]" -> "String"). It returns "" for non-array types.
func (h Hint) ElementType() string {
	if h.Kind() != KindArray {
		return ""
	}
	return h.Type[1 : len(h.Type)-1]
}

// ValueKind is the shape of a decoded value.
type ValueKind int

const (
	BoolValue ValueKind = iota + 1
	NumberValue
	TextValue
	ListValue
)

func (k ValueKind) String() string {
	switch k {
	case BoolValue:
		return "bool"
	case NumberValue:
		return "number"
	case TextValue:
		return "string"
	case ListValue:
		return "list"
	default:
		return "invalid"
	}
}

// Value is a configuration literal. Exactly one of the shapes is set,
// selected by Kind. The zero Value is invalid.
type Value struct {
	Kind ValueKind

	bool bool
	text string
	list []string
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: BoolValue, bool: b} }

// Number returns a numeric value. The text is emitted verbatim.
func Number(text string) Value { return Value{Kind: NumberValue, text: text} }

// Text returns a string value.
func Text(s string) Value { return Value{Kind: TextValue, text: s} }

// List returns a list value. Elements are emitted verbatim.
func List(elems ...string) Value {
	return Value{Kind: ListValue, list: append([]string(nil), elems...)}
}

// AsBool returns the boolean and whether v is a Bool.
func (v Value) AsBool() (bool, bool) {
	return v.bool, v.Kind == BoolValue
}

// AsText returns the string and whether v is Text.
func (v Value) AsText() (string, bool) {
	return v.text, v.Kind == TextValue
}

// AsList returns the elements and whether v is a List.
func (v Value) AsList() ([]string, bool) {
	return v.list, v.Kind == ListValue
}

// Literal returns the text interpolated into templates for types that do
// not inspect the value's shape.
func (v Value) Literal() string {
	switch v.Kind {
	case BoolValue:
		if v.bool {
			return "true"
		}
		return "false"
	case NumberValue, TextValue:
		return v.text
	case ListValue:
		return strings.Join(v.list, ", ")
	default:
		return ""
	}
}

func (v Value) String() string {
	if v.Kind == ListValue {
		return "(" + v.Literal() + ")"
	}
	return v.Literal()
}

// Values is the decoded content of a values file.
type Values struct {
	// Entries maps setting name to its value.
	Entries map[string]Value

	// Unsupported maps names whose value could not be represented
	// (dictionaries, dates, data) to a short description of the shape.
	Unsupported map[string]string
}

// NewValues creates an empty Values.
func NewValues() *Values {
	return &Values{
		Entries:     make(map[string]Value),
		Unsupported: make(map[string]string),
	}
}

// Set stores a value under name.
func (vs *Values) Set(name string, v Value) {
	vs.Entries[name] = v
}

// Lookup returns the value stored under name.
func (vs *Values) Lookup(name string) (Value, bool) {
	if vs == nil {
		return Value{}, false
	}
	v, ok := vs.Entries[name]
	return v, ok
}

// Setting is a hint joined with its value.
type Setting struct {
	Hint  Hint
	Value Value
}
