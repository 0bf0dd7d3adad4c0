package repositories

import (
	"context"
	"database/sql"
	"testing"

	"opsboard/internal/storage"
)

// newTestDB opens a fresh in-memory sqlite store with the schema applied.
// storage.Open caps the pool at one connection, so the memory database
// lives for the whole test.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func testCtx() context.Context {
	return context.Background()
}
