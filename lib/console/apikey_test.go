// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import "testing"

func TestAPIKeyMasked(t *testing.T) {
	key := APIKey{Key: "sk_live_4f9a2c7e1b8d3f60abc123"}
	want := "sk_live_****************abc123"
	if got := key.Masked(); got != want {
		t.Errorf("Masked() = %q, want %q", got, want)
	}
	if got := key.Display(true); got != key.Key {
		t.Errorf("Display(true) = %q, want the raw key", got)
	}
	if got := key.Display(false); got != want {
		t.Errorf("Display(false) = %q, want %q", got, want)
	}
}

func TestAPIKeyMaskedLeavesMaskedKeys(t *testing.T) {
	key := APIKey{Key: "sk_live_***************abc123"}
	if got := key.Masked(); got != key.Key {
		t.Errorf("Masked() = %q, want unchanged", got)
	}
}

func TestAPIKeyFingerprint(t *testing.T) {
	first := APIKey{Key: "sk_live_4f9a2c7e1b8d3f60abc123"}.Fingerprint()
	second := APIKey{Key: "sk_live_4f9a2c7e1b8d3f60abc123"}.Fingerprint()
	other := APIKey{Key: "sk_test_9e1d4b7a2c5f8e30def456"}.Fingerprint()
	if len(first) != 16 {
		t.Fatalf("fingerprint length = %d, want 16", len(first))
	}
	if first != second {
		t.Error("fingerprint is not deterministic")
	}
	if first == other {
		t.Error("different keys share a fingerprint")
	}
}

func TestUsagePercentage(t *testing.T) {
	tests := []struct {
		metric UsageMetric
		want   float64
	}{
		{UsageMetric{Current: 847230, Limit: 1000000}, 84.7},
		{UsageMetric{Current: 156.8, Limit: 500}, 31.4},
		{UsageMetric{Current: 5, Limit: 0}, 0},
	}
	for _, test := range tests {
		if got := test.metric.Percentage(); got != test.want {
			t.Errorf("Percentage(%v/%v) = %v, want %v", test.metric.Current, test.metric.Limit, got, test.want)
		}
	}
}
