package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateStoreDB creates a store database file at path with the cursorDiskKV
// table, creating parent directories as needed.
func CreateStoreDB(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create store directory: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to create store database: %v", err)
	}
	defer db.Close()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS cursorDiskKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create cursorDiskKV table: %v", err)
	}
}

// InsertEntry inserts one key/value row into a store database.
func InsertEntry(t *testing.T, path, key, value string) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open store database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("INSERT INTO cursorDiskKV (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert entry %s: %v", key, err)
	}
}

// InsertEntries inserts key/value pairs into a store database in order.
func InsertEntries(t *testing.T, path string, pairs [][2]string) {
	t.Helper()
	for _, pair := range pairs {
		InsertEntry(t, path, pair[0], pair[1])
	}
}

// CreateBaseLayout builds a User directory layout containing one global
// store and one workspace store, returning the base path, the global store
// path, and the workspace store path.
func CreateBaseLayout(t *testing.T, workspaceHash string) (base, globalDB, workspaceDB string) {
	t.Helper()

	base = filepath.Join(t.TempDir(), "Cursor", "User")
	globalDB = filepath.Join(base, "globalStorage", "state.vscdb")
	workspaceDB = filepath.Join(base, "workspaceStorage", workspaceHash, "state.vscdb")
	CreateStoreDB(t, globalDB)
	CreateStoreDB(t, workspaceDB)
	return base, globalDB, workspaceDB
}
