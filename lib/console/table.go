// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

// Schemas offered by the table editor's schema selector.
var Schemas = []string{"public", "auth", "storage"}

// DefaultSchema is the schema the table editor opens on.
const DefaultSchema = "public"

// Table is a database table listed by the table editor. The schema is
// the entity status, so the schema selector is the status filter.
type Table struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Schema  string   `json:"schema" yaml:"schema"`
	Rows    int64    `json:"rows" yaml:"rows"`
	Columns []Column `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// Column describes one column of a table.
type Column struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	NotNull    bool   `json:"not_null,omitempty" yaml:"not_null,omitempty"`
	PrimaryKey bool   `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
}

func (table Table) EntityID() string     { return table.ID }
func (table Table) EntityStatus() string { return table.Schema }

// SearchText matches tables by name.
func (table Table) SearchText() []string { return []string{table.Name} }

// QualifiedName returns schema.name.
func (table Table) QualifiedName() string { return table.Schema + "." + table.Name }

// Actions is the same for every table.
func (table Table) Actions() []Action {
	return []Action{ActionInsert, ActionRealtime}
}
