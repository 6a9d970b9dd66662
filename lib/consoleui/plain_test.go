// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/provider"
)

func seedSource() *provider.BundleSource {
	seed := console.Seed()
	return provider.NewStaticSource(&seed)
}

func TestWritePlainStatusFilter(t *testing.T) {
	var output bytes.Buffer
	count, err := WritePlain(context.Background(), &output, console.KindDeployment, seedSource(), string(console.DeploymentFailed), "")
	if err != nil {
		t.Fatalf("WritePlain: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	lines := strings.Split(strings.TrimRight(output.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("output has %d lines, want header and one row:\n%s", len(lines), output.String())
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1198") || !strings.Contains(lines[1], "payment-processor") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWritePlainSearch(t *testing.T) {
	var output bytes.Buffer
	count, err := WritePlain(context.Background(), &output, console.KindDeployment, seedSource(), "", "api-gateway")
	if err != nil {
		t.Fatalf("WritePlain: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestWritePlainNoMatch(t *testing.T) {
	var output bytes.Buffer
	count, err := WritePlain(context.Background(), &output, console.KindProject, seedSource(), "", "no-such-project")
	if err != nil {
		t.Fatalf("WritePlain: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if lines := strings.Count(output.String(), "\n"); lines != 1 {
		t.Errorf("output has %d lines, want only the header", lines)
	}
}

func TestWritePlainEveryKind(t *testing.T) {
	for _, kind := range console.Kinds {
		var output bytes.Buffer
		if _, err := WritePlain(context.Background(), &output, kind, seedSource(), "", ""); err != nil {
			t.Errorf("%s: %v", kind, err)
		}
	}
}

func TestWritePlainUnknownKind(t *testing.T) {
	var output bytes.Buffer
	if _, err := WritePlain(context.Background(), &output, console.Kind("widgets"), seedSource(), "", ""); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestPlainCell(t *testing.T) {
	for input, want := range map[string]string{
		"":            "-",
		"api-gateway": "api-gateway",
		"a\tb\nc":     "a b c",
	} {
		if got := plainCell(input); got != want {
			t.Errorf("plainCell(%q) = %q, want %q", input, got, want)
		}
	}
}
