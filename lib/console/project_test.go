// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	valid := []string{"my-awesome-project", "api", "service-2"}
	for _, name := range valid {
		if err := ValidateProjectName(name); err != nil {
			t.Errorf("ValidateProjectName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"My-Project", "with space", "trailing-", "-leading", "double--hyphen", "under_score"}
	for _, name := range invalid {
		if err := ValidateProjectName(name); !errors.Is(err, ErrProjectName) {
			t.Errorf("ValidateProjectName(%q) = %v, want ErrProjectName", name, err)
		}
	}

	if err := ValidateProjectName(""); err == nil {
		t.Error("empty name should be rejected")
	}
}

func TestRegionLabel(t *testing.T) {
	if got := RegionLabel("eu-central-1"); got != "EU Central (Frankfurt)" {
		t.Errorf("RegionLabel(eu-central-1) = %q", got)
	}
	if got := RegionLabel("sa-east-1"); got != "sa-east-1" {
		t.Errorf("unknown region should be returned as is, got %q", got)
	}
	for _, region := range Regions {
		if RegionLabel(region) == region {
			t.Errorf("region %q has no label", region)
		}
	}
}
