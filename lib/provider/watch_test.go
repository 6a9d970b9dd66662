// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scalefield/console/lib/testutil"
)

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestWatchReportsWrite(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "bundle.json")
	writeRaw(t, path, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 8)
	done, err := Watch(ctx, path, WatchOptions{Debounce: 10 * time.Millisecond}, func() {
		changed <- struct{}{}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	writeRaw(t, filepath.Join(directory, "other.json"), `{}`)
	testutil.RequireQuiet(t, changed, 100*time.Millisecond, "write to another file in the directory")
	writeRaw(t, path, `{"logs": []}`)
	testutil.RequireReceive(t, changed, 5*time.Second, "waiting for change notification")

	cancel()
	testutil.RequireClosed(t, done, 5*time.Second, "watcher stopped")
}

func TestWatchReportsAtomicReplace(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "bundle.yaml")
	writeRaw(t, path, "logs: []\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 8)
	_, err := Watch(ctx, path, WatchOptions{Debounce: 10 * time.Millisecond}, func() {
		changed <- struct{}{}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	temporary := filepath.Join(directory, ".bundle.yaml.tmp")
	writeRaw(t, temporary, "projects: []\n")
	if err := os.Rename(temporary, path); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	testutil.RequireReceive(t, changed, 5*time.Second, "waiting for change after rename")
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "bundle.json")
	if _, err := Watch(context.Background(), path, WatchOptions{}, func() {}); err == nil {
		t.Fatal("Watch succeeded on a missing directory")
	}
}
