// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlitepool provides a SQLite connection pool with standard
// pragmas.
//
// It wraps zombiezen.com/go/sqlite's sqlitex.Pool. Callers
// [Pool.Take] a connection, perform work, and [Pool.Put] it back, or
// use [Pool.With] for both. Connections are NOT safe for concurrent
// use; each goroutine must hold its own connection for the duration
// of its work.
//
// # Modes
//
// Read-write pools (the default) apply WAL journaling, NORMAL
// synchronous, a 5 second busy timeout, an 8 MB page cache and
// in-memory temp storage. Tests use them to build fixture databases.
//
// Read-only pools ([Config].ReadOnly) open with SQLITE_OPEN_READONLY
// and set query_only=ON. The console's table editor opens the
// --database file this way: it lists tables and counts rows but never
// writes.
//
// # Usage
//
//	pool, err := sqlitepool.Open(sqlitepool.Config{
//	    Path:     "app.db",
//	    ReadOnly: true,
//	    PoolSize: 2,
//	    Logger:   logger,
//	})
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
// The package is intentionally thin. Callers write SQL and use
// sqlitex.Execute with a ResultFunc; there is no query builder.
package sqlitepool
