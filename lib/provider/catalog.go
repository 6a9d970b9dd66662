// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/sqlitepool"
)

// TableCatalog lists the tables of a SQLite database for the table
// editor. The main database is shown as schema "public"; attached
// databases keep their names. The database is opened read-only.
type TableCatalog struct {
	pool   *sqlitepool.Pool
	logger *slog.Logger
}

// OpenTableCatalog opens path read-only. The file must exist.
func OpenTableCatalog(path string, logger *slog.Logger) (*TableCatalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:     path,
		ReadOnly: true,
		PoolSize: 2,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	return &TableCatalog{pool: pool, logger: logger}, nil
}

// Close closes the database.
func (catalog *TableCatalog) Close() error {
	return catalog.pool.Close()
}

// List returns every user table with its columns and row count,
// ordered by schema then name.
func (catalog *TableCatalog) List(ctx context.Context) ([]console.Table, error) {
	var tables []console.Table
	err := catalog.pool.With(ctx, func(conn *sqlite.Conn) error {
		databases, err := listDatabases(conn)
		if err != nil {
			return err
		}
		for _, database := range databases {
			found, err := listTables(conn, database)
			if err != nil {
				return err
			}
			tables = append(tables, found...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading table catalog from %s: %w", catalog.pool.Path(), err)
	}
	catalog.logger.Debug("table catalog listed", "path", catalog.pool.Path(), "tables", len(tables))
	return tables, nil
}

// SchemaName maps a SQLite database name to the schema the table
// editor shows.
func SchemaName(database string) string {
	if database == "main" {
		return console.DefaultSchema
	}
	return database
}

func listDatabases(conn *sqlite.Conn) ([]string, error) {
	var databases []string
	err := sqlitex.Execute(conn, "SELECT name FROM pragma_database_list WHERE name != 'temp' ORDER BY seq", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			databases = append(databases, stmt.ColumnText(0))
			return nil
		},
	})
	return databases, err
}

func listTables(conn *sqlite.Conn, database string) ([]console.Table, error) {
	schema := SchemaName(database)
	query := fmt.Sprintf(
		"SELECT name FROM %s.sqlite_schema WHERE type = 'table' AND name NOT LIKE 'sqlite_%%' ORDER BY name",
		quoteIdentifier(database))

	var names []string
	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("listing tables in %s: %w", database, err)
	}

	tables := make([]console.Table, 0, len(names))
	for _, name := range names {
		table := console.Table{ID: schema + "." + name, Name: name, Schema: schema}

		err := sqlitex.Execute(conn,
			`SELECT name, type, "notnull", pk FROM pragma_table_info(?, ?) ORDER BY cid`,
			&sqlitex.ExecOptions{
				Args: []any{name, database},
				ResultFunc: func(stmt *sqlite.Stmt) error {
					table.Columns = append(table.Columns, console.Column{
						Name:       stmt.ColumnText(0),
						Type:       strings.ToLower(stmt.ColumnText(1)),
						NotNull:    stmt.ColumnInt(2) != 0,
						PrimaryKey: stmt.ColumnInt(3) != 0,
					})
					return nil
				},
			})
		if err != nil {
			return nil, fmt.Errorf("reading columns of %s: %w", name, err)
		}

		countQuery := fmt.Sprintf("SELECT count(*) FROM %s.%s", quoteIdentifier(database), quoteIdentifier(name))
		err = sqlitex.Execute(conn, countQuery, &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				table.Rows = stmt.ColumnInt64(0)
				return nil
			},
		})
		if err != nil {
			return nil, fmt.Errorf("counting rows of %s: %w", name, err)
		}

		tables = append(tables, table)
	}
	return tables, nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
