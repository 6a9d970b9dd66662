// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/provider"
)

func TestExportName(t *testing.T) {
	now := time.Date(2026, 1, 14, 14, 5, 9, 0, time.UTC)
	if name := exportName(console.KindLog, false, now); name != "logs-20260114T140509Z.jsonl" {
		t.Errorf("exportName() = %q", name)
	}
	if name := exportName(console.KindDeployment, true, now); name != "deployments-20260114T140509Z.jsonl.zst" {
		t.Errorf("compressed exportName() = %q", name)
	}
}

func exportedDeployments() []console.Deployment {
	return []console.Deployment{
		{ID: "847", Project: "api-gateway", Status: console.DeploymentSuccess},
		{ID: "1198", Project: "payment-processor", Status: console.DeploymentFailed},
	}
}

func checkExportLines(t *testing.T, data []byte) {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("export has %d lines, want 2", len(lines))
	}
	var second console.Deployment
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 2 is not JSON: %v", err)
	}
	if second.ID != "1198" || second.Status != console.DeploymentFailed {
		t.Errorf("line 2 = %+v", second)
	}
}

func TestWriteExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2026, 1, 14, 14, 0, 0, 0, time.UTC)

	path, err := writeExport(dir, console.KindDeployment, exportedDeployments(), false, now)
	if err != nil {
		t.Fatalf("writeExport: %v", err)
	}
	if filepath.Base(path) != exportName(console.KindDeployment, false, now) {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	checkExportLines(t, data)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("export directory has %d entries, temporary file left behind", len(entries))
	}
}

func TestWriteExportCompressed(t *testing.T) {
	now := time.Date(2026, 1, 14, 14, 0, 0, 0, time.UTC)
	path, err := writeExport(t.TempDir(), console.KindDeployment, exportedDeployments(), true, now)
	if err != nil {
		t.Fatalf("writeExport: %v", err)
	}
	if !strings.HasSuffix(path, ".zst") {
		t.Errorf("path = %q, want a .zst suffix", path)
	}
	compressed, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data, err := provider.Decompress(compressed, provider.CompressionZstd)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	checkExportLines(t, data)
}
