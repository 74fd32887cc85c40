// Package watcher reports changes to a single file.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mcncl/formatx/internal/errors"
)

// Watch calls fn each time the file at path changes, until ctx is done.
// Events arriving within debounce of each other are coalesced into a
// single call made once the file has been quiet for debounce. fn runs on
// the watching goroutine, so changes made while it runs are picked up
// afterwards.
//
// Watch returns nil when ctx is cancelled.
func Watch(ctx context.Context, path string, debounce time.Duration, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewWatchError("failed to create file watcher", err)
	}
	defer func() { _ = w.Close() }()

	// Watch the directory containing the file rather than the file itself.
	// This handles atomic writes (temp file + rename) and file recreation.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return errors.NewWatchError(fmt.Sprintf("failed to watch directory %q", dir), err)
	}

	filename := filepath.Base(path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			// Only process events for our specific file
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			fn()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return errors.NewWatchError(fmt.Sprintf("watching %q", path), err)
		case <-ctx.Done():
			return nil
		}
	}
}
