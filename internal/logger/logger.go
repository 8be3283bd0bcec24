// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package logger holds the process-wide structured logger.
//
// The logger is a no-op until Initialize is called, so packages may log
// unconditionally.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names.
const (
	FieldFile     = "file"
	FieldPath     = "path"
	FieldTemplate = "template"
	FieldClass    = "class"
	FieldCount    = "count"
	FieldError    = "error"
	FieldOp       = "op"
	FieldVersion  = "version"
)

// Logger is the global logger instance.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Options configures Initialize.
type Options struct {
	// Verbose enables debug messages.
	Verbose bool

	// JSON switches from the console encoder to JSON lines.
	JSON bool

	// Output receives log lines; defaults to stderr.
	Output io.Writer
}

// Initialize replaces the global logger.
func Initialize(opts Options) {
	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if _, isFile := out.(*os.File); !isFile {
			cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), level)
	Logger = zap.New(core).Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}

// Named returns a child logger for a component.
func Named(component string) *zap.SugaredLogger {
	return Logger.Named(component)
}

// Debugw logs a debug message with key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	Logger.Debugw(msg, keysAndValues...)
}

// Infow logs an info message with key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	Logger.Infow(msg, keysAndValues...)
}

// Warnw logs a warning with key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	Logger.Warnw(msg, keysAndValues...)
}

// Errorw logs an error with key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	Logger.Errorw(msg, keysAndValues...)
}
