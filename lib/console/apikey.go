// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"
)

// APIKey is a credential for programmatic access. The environment is
// the entity status.
type APIKey struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Key         string `json:"key" yaml:"key"`
	Environment string `json:"environment" yaml:"environment"`
	Created     string `json:"created" yaml:"created"`
	LastUsed    string `json:"last_used" yaml:"last_used"`

	Usage KeyUsage `json:"usage" yaml:"usage"`
}

// KeyUsage is the last 24 hours of traffic for a key.
type KeyUsage struct {
	Requests    int    `json:"requests" yaml:"requests"`
	Errors      int    `json:"errors" yaml:"errors"`
	AvgResponse string `json:"avg_response" yaml:"avg_response"`
}

func (key APIKey) EntityID() string     { return key.ID }
func (key APIKey) EntityStatus() string { return key.Environment }

// SearchText matches keys by name.
func (key APIKey) SearchText() []string { return []string{key.Name} }

// Actions is the same for every environment.
func (key APIKey) Actions() []Action {
	return []Action{ActionReveal, ActionCopy, ActionRevoke}
}

// Masked returns the key with everything between the prefix (through
// the second underscore) and the last six characters replaced by
// asterisks. Keys that are already masked are returned unchanged.
func (key APIKey) Masked() string {
	secret := key.Key
	if strings.Contains(secret, "*") || len(secret) <= 6 {
		return secret
	}
	prefixEnd := 0
	underscores := 0
	for index, character := range secret {
		if character == '_' {
			underscores++
			if underscores == 2 {
				prefixEnd = index + 1
				break
			}
		}
	}
	suffixStart := len(secret) - 6
	if prefixEnd >= suffixStart {
		prefixEnd = 0
	}
	return secret[:prefixEnd] + strings.Repeat("*", suffixStart-prefixEnd) + secret[suffixStart:]
}

// Display returns the key as the panel shows it.
func (key APIKey) Display(revealed bool) string {
	if revealed {
		return key.Key
	}
	return key.Masked()
}

// Fingerprint returns the first 16 hex digits of the BLAKE3 hash of
// the key. It identifies a key in audit output without revealing it.
func (key APIKey) Fingerprint() string {
	sum := blake3.Sum256([]byte(key.Key))
	return hex.EncodeToString(sum[:8])
}
