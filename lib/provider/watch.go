// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/scalefield/console/lib/clock"
)

// DefaultDebounce coalesces the burst of events one save produces.
const DefaultDebounce = 50 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	// Debounce is how long the file must stay quiet before onChange
	// runs. Zero means DefaultDebounce.
	Debounce time.Duration

	// Clock schedules the debounce timer. Nil means clock.Real().
	Clock clock.Clock

	Logger *slog.Logger
}

// Watch calls onChange after the file at path is written or replaced.
// It watches the parent directory rather than the file so editors
// and tools that save by renaming a temporary file over the target
// are seen. onChange runs on a timer goroutine, once per burst.
//
// The watcher stops when ctx is cancelled; the returned channel is
// closed once it has.
func Watch(ctx context.Context, path string, options WatchOptions, onChange func()) (<-chan struct{}, error) {
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if options.Debounce <= 0 {
		options.Debounce = DefaultDebounce
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absolutePath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absolutePath), err)
	}
	logger.Debug("watching bundle", "path", absolutePath)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer watcher.Close()

		var pending *clock.Timer
		for {
			select {
			case <-ctx.Done():
				pending.Stop()
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absolutePath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				pending.Stop()
				pending = options.Clock.AfterFunc(options.Debounce, onChange)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("bundle watch error", "path", absolutePath, "error", err)
			}
		}
	}()
	return done, nil
}
