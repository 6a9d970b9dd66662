// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/provider"
)

// exportName is the file a page export is written to:
// "<kind>-<timestamp>.jsonl", with ".zst" when compressed.
func exportName(kind console.Kind, compress bool, now time.Time) string {
	name := fmt.Sprintf("%s-%s.jsonl", kind, now.UTC().Format("20060102T150405Z"))
	if compress {
		name += ".zst"
	}
	return name
}

// writeExport writes rows as JSON lines into dir and returns the path.
// The file is written under a temporary name and renamed into place,
// so a reader never sees a partial export.
func writeExport[T any](dir string, kind console.Kind, rows []T, compress bool, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, exportName(kind, compress, now))

	temporary, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer os.Remove(temporary.Name())

	if err := encodeRows(temporary, rows, compress); err != nil {
		temporary.Close()
		return "", err
	}
	if err := temporary.Close(); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	if err := os.Rename(temporary.Name(), path); err != nil {
		return "", fmt.Errorf("placing export: %w", err)
	}
	return path, nil
}

func encodeRows[T any](w io.Writer, rows []T, compress bool) error {
	var compressor io.WriteCloser
	if compress {
		var err error
		compressor, err = provider.NewZstdWriter(w)
		if err != nil {
			return fmt.Errorf("creating zstd writer: %w", err)
		}
		w = compressor
	}
	encoder := json.NewEncoder(w)
	for index, row := range rows {
		if err := encoder.Encode(row); err != nil {
			return fmt.Errorf("encoding row %d: %w", index, err)
		}
	}
	if compressor != nil {
		if err := compressor.Close(); err != nil {
			return fmt.Errorf("finishing zstd stream: %w", err)
		}
	}
	return nil
}
