// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package console defines the records shown by the Scalefield console:
// deployments, projects, log entries, webhooks, API keys, team members,
// monitored services, invoices and database tables.
//
// Every list record implements the listview entity contract (EntityID
// and EntityStatus) and the search contract (SearchText) by method set
// alone; this package does not import the UI. Each type also carries
// its status-to-actions table. The tables are fixed: an action list is
// looked up, never computed from other fields, and activating an
// action never mutates a record.
//
// Records are plain structs with json and yaml tags. The same tags
// drive CBOR encoding through lib/codec, so one [Bundle] value can be
// stored as JSON, JSONC, YAML or CBOR.
package console
