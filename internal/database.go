package internal

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// RawEntry is a single key/value row streamed from a store.
type RawEntry struct {
	Key   string
	Value string
}

const (
	// BubblePrefix is the key prefix of every message payload row.
	BubblePrefix = "bubbleId:"
	// ComposerIndexKey holds the conversation-name index in workspace stores.
	ComposerIndexKey = "composer.composerData"

	conversationIDLen = 36
)

// OpenStore opens a store database strictly read-only. The editor may hold
// the file open for writing concurrently, so the reader must never request
// a write lock.
func OpenStore(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, &StoreUnreadableError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreUnreadableError{Path: path, Op: "open", Err: err}
	}

	return db, nil
}

// QueryEntries returns all rows whose key matches the LIKE pattern, in
// ascending key order. Key order is the only ordering guarantee the store
// provides; everything downstream depends on it.
func QueryEntries(db *sql.DB, path, pattern string) ([]RawEntry, error) {
	rows, err := db.Query(
		"SELECT key, value FROM cursorDiskKV WHERE key LIKE ? AND value IS NOT NULL ORDER BY key ASC",
		pattern,
	)
	if err != nil {
		return nil, &StoreUnreadableError{Path: path, Op: "query", Err: err}
	}
	defer rows.Close()

	var entries []RawEntry
	for rows.Next() {
		var entry RawEntry
		var value sql.NullString
		if err := rows.Scan(&entry.Key, &value); err != nil {
			return nil, &StoreUnreadableError{Path: path, Op: "query", Err: fmt.Errorf("scan: %w", err)}
		}
		if value.Valid {
			entry.Value = value.String
			entries = append(entries, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreUnreadableError{Path: path, Op: "query", Err: err}
	}

	return entries, nil
}

// ListConversationIDs discovers every distinct conversation id in a store by
// scanning bubble keys. An unreadable store yields an empty list and a
// warning, never an error: one bad store must not abort a multi-store scan.
func ListConversationIDs(store StoreHandle) []string {
	db, err := OpenStore(store.Path)
	if err != nil {
		LogWarn("skipping store %s: %v", store.DisplayName, err)
		return nil
	}
	defer db.Close()

	entries, err := QueryEntries(db, store.Path, BubblePrefix+"%")
	if err != nil {
		LogWarn("skipping store %s: %v", store.DisplayName, err)
		return nil
	}

	seen := make(map[string]bool)
	var ids []string
	for _, entry := range entries {
		id, ok := conversationIDFromKey(entry.Key)
		if !ok {
			LogDebug("ignoring malformed bubble key: %s", entry.Key)
			continue
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids
}

// FetchConversationEntries returns all bubble rows for one conversation id,
// in ascending key order. An unreadable store yields nil and a warning.
func FetchConversationEntries(store StoreHandle, conversationID string) []RawEntry {
	db, err := OpenStore(store.Path)
	if err != nil {
		LogWarn("skipping store %s: %v", store.DisplayName, err)
		return nil
	}
	defer db.Close()

	entries, err := QueryEntries(db, store.Path, BubblePrefix+conversationID+":%")
	if err != nil {
		LogWarn("skipping store %s: %v", store.DisplayName, err)
		return nil
	}

	return entries
}

// FetchComposerIndex returns the raw conversation-name index blob, present
// only in per-workspace stores. Absence is not an error.
func FetchComposerIndex(store StoreHandle) (string, bool) {
	db, err := OpenStore(store.Path)
	if err != nil {
		LogDebug("composer index unavailable for %s: %v", store.DisplayName, err)
		return "", false
	}
	defer db.Close()

	var value sql.NullString
	err = db.QueryRow("SELECT value FROM cursorDiskKV WHERE key = ?", ComposerIndexKey).Scan(&value)
	if err != nil || !value.Valid {
		return "", false
	}

	return value.String, true
}

// conversationIDFromKey extracts the 36-char conversation id embedded at a
// fixed offset in a bubble key: bubbleId:<conversation-id>:<message-id>.
func conversationIDFromKey(key string) (string, bool) {
	end := len(BubblePrefix) + conversationIDLen
	if len(key) <= end || key[end] != ':' {
		return "", false
	}
	id := key[len(BubblePrefix):end]
	if uuid.Validate(id) != nil {
		return "", false
	}
	return id, true
}
