// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the console's CBOR encoding configuration.
//
// Data bundles can be written as YAML, JSON, or CBOR. CBOR is the
// compact binary form and the one compressed and encrypted bundles
// normally carry. Every package that reads or writes CBOR goes through
// this package so the encoding is configured once.
//
//	data, err := codec.Marshal(bundle)
//	err = codec.Unmarshal(data, &bundle)
//
// # Struct Tags
//
// Record types in lib/console carry `json` and `yaml` tags only.
// fxamacker/cbor reads `json` tags when `cbor` tags are absent, so one
// `json` tag controls field naming and omitempty for both JSON and
// CBOR bundles. Do not add `cbor` tags to record types.
package codec
