// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/albertocavalcante/configen/generator"
	"github.com/albertocavalcante/configen/generators/objc"
	"github.com/albertocavalcante/configen/generators/swift"
)

func init() {
	generator.Register(objc.NewGenerator())
	generator.Register(swift.NewGenerator())
}
