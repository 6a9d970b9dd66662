// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads scalefield-console settings.
//
// Settings come from one file, then environment variables, then
// command-line flags (applied by the command, not this package). The
// file is found at, in order: the --config flag ([LoadFile]), the
// SCALEFIELD_CONFIG environment variable, or
// $XDG_CONFIG_HOME/scalefield/console.yaml ([Load]). A missing default
// file is not an error; an explicitly named file must exist.
//
// Files ending in .json or .jsonc are read as JSON with comments and
// trailing commas allowed. Everything else is YAML.
//
// Path fields expand ${HOME}, ${XDG_CONFIG_HOME} and ${VAR:-default}
// after loading.
//
// Key exports:
//
//   - [Config] with [Default], [Load], [LoadFile] and [Config.Validate]
//   - [Duration], a time.Duration that parses "300ms" style strings
//
// This package depends on lib/console for page names and lib/tui for
// theme names.
package config
