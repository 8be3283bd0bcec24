// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package objc

import (
	"github.com/albertocavalcante/configen/internal/render"
	"github.com/albertocavalcante/configen/internal/token"
)

// DefaultSuperclass is the superclass of the generated @interface.
const DefaultSuperclass = "NSObject"

// Template returns the Objective-C snippets for a class named className.
//
// Numbers are boxed NSNumber literals, strings NSString literals and URLs
// are built with +[NSURL URLWithString:]. Custom and array types return
// the value verbatim.
func Template(className, superclass string) render.Template {
	decl := &render.Declarations{
		Extension: ".h",
		Imports:   "#import <Foundation/Foundation.h>\n\n",
		Body:      "@interface " + className + " : " + superclass + " \n" + token.Body + "\n@end\n",

		Double: "+ (NSNumber *)" + token.VariableName,
		Int:    "+ (NSNumber *)" + token.VariableName,
		String: "+ (NSString *)" + token.VariableName,
		Bool:   "+ (BOOL)" + token.VariableName,
		URL:    "+ (NSURL *)" + token.VariableName,
		Custom: "+ (" + token.CustomType + ")" + token.VariableName,
	}

	return render.Template{
		Declarations: decl,
		Implementations: render.Implementations{
			Extension:        ".m",
			Imports:          `#import "` + className + `.h"`,
			AdditionalImport: "@import " + token.AdditionalImport + ";",
			Body:             "\n\n@implementation " + className + " \n" + token.Body + "\n@end\n",

			Double: decl.Double + "\n{\n  return @" + token.Value + ";\n}",
			Int:    decl.Int + "\n{\n  return @" + token.Value + ";\n}",
			String: decl.String + "\n{\n  return @\"" + token.Value + "\";\n}",
			Bool:   decl.Bool + "\n{\n  return " + token.Value + ";\n}",
			URL:    decl.URL + "\n{\n  return [NSURL URLWithString:@\"" + token.Value + "\"];\n}",
			Custom: decl.Custom + "\n{\n  return " + token.Value + ";\n}",

			True:  "YES",
			False: "NO",
			Array: "Array<" + token.CustomType + ">(arrayLiteral: " + token.Value + ")",
		},
	}
}
