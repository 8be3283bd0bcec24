// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// DefaultAppName is the tool name written into generated banners.
const DefaultAppName = "configen"

// Config contains generator configuration.
type Config struct {
	// ClassName is the name of the generated class; output files are
	// named after it.
	ClassName string

	// HintsPath is the mapping file path quoted in the banner.
	HintsPath string

	// AppName is the tool name quoted in the banner.
	AppName string

	// Imports lists additional modules imported by the implementation file.
	Imports []string

	// Options contains target-specific options.
	Options map[string]string
}

// App returns AppName, or DefaultAppName when unset.
func (c Config) App() string {
	if c.AppName == "" {
		return DefaultAppName
	}
	return c.AppName
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}
