// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/tooltip/tooltip"
	"github.com/fsnotify/fsnotify"
)

// Watch prints the placement again whenever the scenario file changes,
// until interrupted.
func Watch(c *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.watch(ctx, func() {
		errors.Log(c.place(ctx, os.Stdout))
	})
}

// watch calls update once, and then again after changes to the scenario
// file, with bursts of changes coalesced into one call. Editors often
// replace files instead of writing them, so the directory is watched.
func (c *Config) watch(ctx context.Context, update func()) error {
	file, err := filepath.Abs(c.Scenario)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("watching %q: %w", c.Scenario, err)
	}

	co := tooltip.NewCoalescer(100*time.Millisecond, update)
	defer co.Stop()
	update()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != file || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("tipplace: scenario changed", "file", ev.Name, "op", ev.Op)
			co.Request()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("tipplace: watching scenario", "err", err)
		}
	}
}
