// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"path/filepath"
	"testing"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/scalefield/console/lib/console"
)

func createCatalogFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.db")
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite|sqlite.OpenCreate)
	if err != nil {
		t.Fatalf("OpenConn: %v", err)
	}
	defer conn.Close()

	err = sqlitex.ExecuteScript(conn, `
		CREATE TABLE users (
			id INTEGER PRIMARY KEY,
			email TEXT NOT NULL,
			display_name TEXT
		);
		CREATE TABLE "order items" (sku TEXT, quantity INTEGER);
		CREATE INDEX users_email ON users (email);
		INSERT INTO users (email) VALUES ('a@example.com'), ('b@example.com'), ('c@example.com');
	`, nil)
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	return path
}

func TestTableCatalogList(t *testing.T) {
	catalog, err := OpenTableCatalog(createCatalogFixture(t), nil)
	if err != nil {
		t.Fatalf("OpenTableCatalog: %v", err)
	}
	defer catalog.Close()

	tables, err := catalog.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("tables = %+v, want 2 (indexes excluded)", tables)
	}

	items, users := tables[0], tables[1]
	if items.Name != "order items" || users.Name != "users" {
		t.Fatalf("table order = [%s %s], want [order items, users]", items.Name, users.Name)
	}
	if users.ID != "public.users" || users.Schema != console.DefaultSchema {
		t.Errorf("users id/schema = %q/%q", users.ID, users.Schema)
	}
	if users.Rows != 3 {
		t.Errorf("users rows = %d, want 3", users.Rows)
	}
	if items.Rows != 0 {
		t.Errorf("order items rows = %d, want 0", items.Rows)
	}

	want := []console.Column{
		{Name: "id", Type: "integer", PrimaryKey: true},
		{Name: "email", Type: "text", NotNull: true},
		{Name: "display_name", Type: "text"},
	}
	if len(users.Columns) != len(want) {
		t.Fatalf("users columns = %+v", users.Columns)
	}
	for index, column := range want {
		if users.Columns[index] != column {
			t.Errorf("column %d = %+v, want %+v", index, users.Columns[index], column)
		}
	}
}

func TestTableCatalogAsSourceTables(t *testing.T) {
	catalog, err := OpenTableCatalog(createCatalogFixture(t), nil)
	if err != nil {
		t.Fatalf("OpenTableCatalog: %v", err)
	}
	defer catalog.Close()

	seed := console.Seed()
	source := NewStaticSource(&seed)
	source.SetTables(catalog)

	tables, err := source.Tables().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tables) != 2 {
		t.Errorf("tables = %d, want the catalog's 2", len(tables))
	}
}

func TestSchemaName(t *testing.T) {
	if got := SchemaName("main"); got != "public" {
		t.Errorf("SchemaName(main) = %q, want public", got)
	}
	if got := SchemaName("auth"); got != "auth" {
		t.Errorf("SchemaName(auth) = %q, want auth", got)
	}
}
