// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aplane-algo/equity/internal/util"
)

const configDebounceDelay = 500 * time.Millisecond

// startConfigWatcher calls onChange after config.yaml in dataDir is created,
// written, removed or renamed. Bursts of events within the debounce delay
// produce one call. The watcher stops when ctx is done.
//
// The data directory is watched rather than the file so editors that save by
// rename are still seen.
func startConfigWatcher(ctx context.Context, dataDir string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(dataDir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch data directory: %w", err)
	}

	go func() {
		defer func() { _ = watcher.Close() }()

		var debounce *time.Timer
		for {
			select {
			case <-ctx.Done():
				if debounce != nil {
					debounce.Stop()
				}
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != util.ConfigFileName {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(configDebounceDelay, onChange)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				util.Warn("config watcher error", "error", err)
			}
		}
	}()

	util.Debug("watching config", "dir", dataDir)
	return nil
}
