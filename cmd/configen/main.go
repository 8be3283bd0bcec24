// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command configen generates typed configuration accessors for
// Objective-C and Swift from a mapping file and a values file.
//
// Usage:
//
//	configen generate --hints Config/hints.map --values Config/dev.plist [flags]
//	configen check    --hints ... --values ... --output-dir Generated
//	configen watch    --hints ... --values ...
//	configen list
//	configen version
//
// Settings are read from flags, then CONFIGEN_* environment variables,
// then configen.{yaml,toml,json} in the working directory (or --config).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"github.com/albertocavalcante/configen/internal/logger"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(afero.NewOsFs()).ExecuteContext(ctx)
	stop()
	logger.Sync()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err and any hints attached to it.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "hint: %s\n", hint)
	}
}
