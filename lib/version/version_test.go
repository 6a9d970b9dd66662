// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestBuildString(t *testing.T) {
	tests := []struct {
		build Build
		want  string
	}{
		{Build{Version: "1.2.0", Commit: "abc1234", BuildTime: "2026-01-14T14:00:00Z"}, "1.2.0 (abc1234, 2026-01-14T14:00:00Z)"},
		{Build{Version: "1.2.0", Commit: "abc1234", Dirty: true, BuildTime: "unknown"}, "1.2.0 (abc1234-dirty, unknown)"},
	}
	for _, test := range tests {
		if got := test.build.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestCurrentPrefersInjectedValues(t *testing.T) {
	savedCommit, savedDirty, savedTime := GitCommit, GitDirty, BuildTime
	defer func() { GitCommit, GitDirty, BuildTime = savedCommit, savedDirty, savedTime }()

	GitCommit, GitDirty, BuildTime = "abc1234", "true", "2026-01-14T14:00:00Z"
	build := Current()
	if build.Commit != "abc1234" || !build.Dirty || build.BuildTime != "2026-01-14T14:00:00Z" {
		t.Errorf("Current() = %+v, want the injected values", build)
	}
	if build.Version != Short() {
		t.Errorf("Version = %q, want %q", build.Version, Short())
	}
}

func TestFullIncludesPlatform(t *testing.T) {
	full := Full()
	if !strings.HasPrefix(full, "scalefield-console "+Short()) {
		t.Errorf("Full() = %q, want program name and version first", full)
	}
	if !strings.Contains(full, "Platform: ") {
		t.Errorf("Full() = %q, want platform line", full)
	}
}
