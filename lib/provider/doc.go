// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package provider supplies the console's record collections.
//
// A list view asks a [Provider] for its records once per load and
// filters them client-side; providers are never re-queried when the
// filter changes. [Static] and [Func] adapt slices and closures.
//
// Data bundles are files holding a whole [console.Bundle]. The file
// name selects the encoding, read right to left:
//
//	deployments.yaml            YAML
//	fixtures.jsonc              JSON with comments
//	snapshot.cbor.zst           CBOR, zstd-compressed
//	export.json.lz4             JSON, lz4-compressed
//	prod.cbor.zst.age           CBOR, zstd, age-encrypted
//
// [LoadFile] decrypts, decompresses and decodes; [WriteFile] does the
// reverse and replaces the target atomically. [BundleSource] holds the
// current bundle for the TUI and reloads it on demand; [Watch] reports
// when the bundle file changes on disk.
//
// [TableCatalog] reads the table editor's records from a SQLite
// database instead of a bundle.
package provider
