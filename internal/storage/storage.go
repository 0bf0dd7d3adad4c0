// Package storage owns the database handle: driver selection, connection
// setup and schema bootstrap. Everything else takes the *sql.DB it returns.
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Cascades and the person-detach rule are enforced in application-level
// transactions, not by FK actions, so both schemas stay free of foreign-key
// constraints (restore trusts document ids without re-validating parents).
const schemaPostgres = `
CREATE TABLE IF NOT EXISTS categories (
	id      BIGSERIAL PRIMARY KEY,
	name    VARCHAR(100) NOT NULL,
	color   VARCHAR(50) NOT NULL,
	"order" BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS people (
	id   BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id          BIGSERIAL PRIMARY KEY,
	category_id BIGINT NOT NULL,
	person_id   BIGINT,
	text        VARCHAR(500) NOT NULL,
	done        BOOLEAN NOT NULL DEFAULT FALSE,
	"order"     BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS notes (
	id      BIGSERIAL PRIMARY KEY,
	task_id BIGINT NOT NULL,
	date    VARCHAR(10) NOT NULL,
	content TEXT
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_notes_task_date ON notes (task_id, date);
CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks (category_id);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS categories (
	id      INTEGER PRIMARY KEY,
	name    VARCHAR(100) NOT NULL,
	color   VARCHAR(50) NOT NULL,
	"order" INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS people (
	id   INTEGER PRIMARY KEY,
	name VARCHAR(100) NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY,
	category_id INTEGER NOT NULL,
	person_id   INTEGER,
	text        VARCHAR(500) NOT NULL,
	done        BOOLEAN NOT NULL DEFAULT FALSE,
	"order"     INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS notes (
	id      INTEGER PRIMARY KEY,
	task_id INTEGER NOT NULL,
	date    VARCHAR(10) NOT NULL,
	content TEXT
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_notes_task_date ON notes (task_id, date);
CREATE INDEX IF NOT EXISTS idx_tasks_category ON tasks (category_id);
`

// Open connects with the given driver ("postgres" or "sqlite3"), verifies
// the connection and applies the schema. The same SQL works against both
// drivers elsewhere; only the DDL differs.
func Open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "sqlite3" {
		// A single writer connection keeps sqlite's locking out of the way;
		// the spec's concurrency model is single-writer anyway.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	schema := schemaPostgres
	if driver == "sqlite3" {
		schema = schemaSQLite
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
