// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package sqlitepool_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/scalefield/console/lib/sqlitepool"
)

const fixtureSchema = `
	CREATE TABLE users (id INTEGER PRIMARY KEY, email TEXT NOT NULL);
	CREATE TABLE sessions (id INTEGER PRIMARY KEY, user_id INTEGER NOT NULL);
	INSERT INTO users (email) VALUES ('alex@company.com'), ('sarah@company.com'), ('mike@company.com');
`

// writeFixture creates a database file with fixtureSchema applied and
// returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.db")
	pool, err := sqlitepool.Open(sqlitepool.Config{Path: path, PoolSize: 1})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	err = pool.With(context.Background(), func(conn *sqlite.Conn) error {
		return sqlitex.ExecuteScript(conn, fixtureSchema, nil)
	})
	if err != nil {
		t.Fatalf("creating fixture: %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}

func pragma(t *testing.T, conn *sqlite.Conn, name string) string {
	t.Helper()
	var value string
	err := sqlitex.Execute(conn, "PRAGMA "+name, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			value = stmt.ColumnText(0)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("PRAGMA %s: %v", name, err)
	}
	return value
}

func TestPragmas(t *testing.T) {
	path := writeFixture(t)
	for _, test := range []struct {
		readOnly bool
		want     map[string]string
	}{
		{false, map[string]string{"journal_mode": "wal", "synchronous": "1", "query_only": "0"}},
		{true, map[string]string{"journal_mode": "wal", "query_only": "1", "busy_timeout": "5000"}},
	} {
		pool, err := sqlitepool.Open(sqlitepool.Config{Path: path, ReadOnly: test.readOnly, PoolSize: 1})
		if err != nil {
			t.Fatalf("Open(read-only %v): %v", test.readOnly, err)
		}
		err = pool.With(context.Background(), func(conn *sqlite.Conn) error {
			for name, want := range test.want {
				if got := pragma(t, conn, name); got != want {
					t.Errorf("read-only %v: %s = %q, want %q", test.readOnly, name, got, want)
				}
			}
			return nil
		})
		if err != nil {
			t.Fatalf("With: %v", err)
		}
		pool.Close()
	}
}

func TestOnConnectRunsPerConnection(t *testing.T) {
	var mutex sync.Mutex
	connections := 0
	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:     writeFixture(t),
		ReadOnly: true,
		PoolSize: 2,
		OnConnect: func(conn *sqlite.Conn) error {
			mutex.Lock()
			connections++
			mutex.Unlock()
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pool.Close()

	first, err := pool.Take(context.Background())
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	second, err := pool.Take(context.Background())
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	pool.Put(first)
	pool.Put(second)

	if connections != 2 {
		t.Errorf("OnConnect ran %d times, want once per connection", connections)
	}
}

func TestOnConnectError(t *testing.T) {
	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:      writeFixture(t),
		PoolSize:  1,
		OnConnect: func(*sqlite.Conn) error { return fmt.Errorf("schema mismatch") },
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pool.Close()

	if err := pool.With(context.Background(), func(*sqlite.Conn) error { return nil }); err == nil {
		t.Error("a failing OnConnect should fail Take")
	}
}

func TestReadOnlyConcurrentCounts(t *testing.T) {
	pool, err := sqlitepool.Open(sqlitepool.Config{Path: writeFixture(t), ReadOnly: true, PoolSize: 4})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pool.Close()

	var waitGroup sync.WaitGroup
	failures := make(chan error, 8)
	for range 8 {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			err := pool.With(context.Background(), func(conn *sqlite.Conn) error {
				count := 0
				err := sqlitex.Execute(conn, "SELECT count(*) FROM users", &sqlitex.ExecOptions{
					ResultFunc: func(stmt *sqlite.Stmt) error {
						count = stmt.ColumnInt(0)
						return nil
					},
				})
				if err == nil && count != 3 {
					err = fmt.Errorf("count = %d, want 3", count)
				}
				return err
			})
			if err != nil {
				failures <- err
			}
		}()
	}
	waitGroup.Wait()
	close(failures)
	for err := range failures {
		t.Error(err)
	}
}

func TestReadOnlyRejectsWrites(t *testing.T) {
	pool, err := sqlitepool.Open(sqlitepool.Config{Path: writeFixture(t), ReadOnly: true, PoolSize: 1})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pool.Close()

	err = pool.With(context.Background(), func(conn *sqlite.Conn) error {
		return sqlitex.Execute(conn, "INSERT INTO users (email) VALUES ('emma@company.com')", nil)
	})
	if err == nil {
		t.Error("INSERT succeeded on a read-only pool")
	}
}

func TestReadOnlyMissingFile(t *testing.T) {
	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:     filepath.Join(t.TempDir(), "missing.db"),
		ReadOnly: true,
		PoolSize: 1,
	})
	if err == nil {
		defer pool.Close()
		err = pool.With(context.Background(), func(*sqlite.Conn) error { return nil })
	}
	if err == nil {
		t.Error("read-only pool opened a missing database")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := sqlitepool.Open(sqlitepool.Config{ReadOnly: true}); err == nil {
		t.Fatal("Open without a path should fail")
	}
}

func TestTakeHonorsCancellation(t *testing.T) {
	pool, err := sqlitepool.Open(sqlitepool.Config{Path: writeFixture(t), ReadOnly: true, PoolSize: 1})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pool.Close()

	held, err := pool.Take(context.Background())
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	defer pool.Put(held)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := pool.Take(ctx); err == nil {
		t.Fatal("Take with a cancelled context and no free connection should fail")
	}
	if pool.Path() == "" {
		t.Error("Path() is empty")
	}
}
