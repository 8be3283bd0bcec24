// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package watch reruns a callback when input files change.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/albertocavalcante/configen/internal/logger"
)

// DefaultDebounce collapses editor save bursts into one run.
const DefaultDebounce = 300 * time.Millisecond

// Func is called after the watched files settle.
type Func func(ctx context.Context) error

// Watcher observes a fixed set of files.
//
// Directories are watched rather than the files themselves so that
// editors replacing a file by rename keep being observed.
type Watcher struct {
	files    map[string]bool
	dirs     []string
	debounce time.Duration
}

// New returns a Watcher for paths. A non-positive debounce uses
// DefaultDebounce.
func New(debounce time.Duration, paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("nothing to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{files: make(map[string]bool), debounce: debounce}
	seen := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve %s", p)
		}
		w.files[abs] = true
		if dir := filepath.Dir(abs); !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	return w, nil
}

// Run calls fn once immediately and again after every change to a watched
// file. Errors from fn are logged, not returned. Run returns nil when ctx
// is done.
func (w *Watcher) Run(ctx context.Context, fn Func) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create file watcher")
	}
	defer fw.Close()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return errors.Wrapf(err, "watch %s", dir)
		}
	}

	log := logger.Named("watch")
	w.call(ctx, log, fn)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			log.Debugw("input changed", logger.FieldFile, event.Name, logger.FieldOp, event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watch error", logger.FieldError, err)

		case <-timer.C:
			w.call(ctx, log, fn)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

func (w *Watcher) call(ctx context.Context, log *zap.SugaredLogger, fn Func) {
	if err := fn(ctx); err != nil {
		log.Errorw("regeneration failed", logger.FieldError, err)
	}
}
