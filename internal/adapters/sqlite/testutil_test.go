// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Instead, use
// setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/foundry/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every pooled connection to :memory: is a separate database
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedPart inserts a bare part and returns its ID.
func seedPart(t *testing.T, db *sql.DB, id, material, process string) string {
	t.Helper()
	if id == "" {
		id = "PART-001"
	}
	_, err := db.Exec("INSERT INTO parts (id, material, process, quantity) VALUES (?, ?, ?, 100)", id, material, process)
	if err != nil {
		t.Fatalf("failed to seed part: %v", err)
	}
	return id
}

// seedSnapshot inserts a snapshot for a part.
func seedSnapshot(t *testing.T, db *sql.DB, partID, version string, score int) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO snapshots (part_id, version, material, process, quantity, score) VALUES (?, ?, 'ABS', 'Injection Molding', 100, ?)",
		partID, version, score,
	)
	if err != nil {
		t.Fatalf("failed to seed snapshot: %v", err)
	}
}
