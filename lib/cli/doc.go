// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the error and logging conventions shared by the
// scalefield-console command.
//
// Commands return categorized [ToolError] values so main can pick an
// exit code without parsing message text:
//
//	return cli.Validation("unknown page %q", name).
//	    WithHint("Pages: overview, database, projects, deployments, ...")
//
// main maps errors to exit codes through interface{ ExitCode() int },
// which both ToolError and [ExitError] implement.
package cli
