// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the terminal building blocks shared by the
// console's pages: the color theme, ANSI-aware overlay splicing for the
// slide-in panel and dropdowns, easing curves, change highlighting,
// scrollbars, sparklines and fuzzy matching.
//
// Nothing here knows about pages or selection. Callers render their
// own content and use these helpers to place and decorate it.
package tui
