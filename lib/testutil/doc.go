// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// The Require* helpers bound channel waits with a timeout so a test
// that loses an event (a file watcher that never fires, a reload that
// never lands) fails with a message instead of hanging the suite.
// [WriteFile] creates fixture files under a per-test directory.
package testutil
