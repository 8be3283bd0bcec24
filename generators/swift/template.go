// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package swift

import (
	"github.com/albertocavalcante/configen/internal/render"
	"github.com/albertocavalcante/configen/internal/token"
)

// DefaultKeyword declares the generated type.
const DefaultKeyword = "class"

// Template returns the Swift snippets for a type named className declared
// with keyword ("class", "struct" or "enum").
func Template(className, keyword string) render.Template {
	return render.Template{
		Implementations: render.Implementations{
			Extension:        ".swift",
			Imports:          "import Foundation",
			AdditionalImport: "import " + token.AdditionalImport,
			Body:             "\n\n" + keyword + " " + className + " {\n" + token.Body + "\n}\n",

			Double: "  static let " + token.VariableName + ": Double = " + token.Value,
			Int:    "  static let " + token.VariableName + ": Int = " + token.Value,
			String: "  static let " + token.VariableName + ": String = \"" + token.Value + "\"",
			Bool:   "  static let " + token.VariableName + ": Bool = " + token.Value,
			URL:    "  static let " + token.VariableName + ": URL = URL(string: \"" + token.Value + "\")!",
			Custom: "  static let " + token.VariableName + ": " + token.CustomType + " = " + token.Value,

			True:  "true",
			False: "false",
			Array: "Array<" + token.CustomType + ">(arrayLiteral: " + token.Value + ")",
		},
	}
}
