package internal

import "fmt"

// StoreUnreadableError reports a store database that could not be opened or
// queried. Recoverable: multi-store scans log it and continue.
type StoreUnreadableError struct {
	Path string
	Op   string // "open", "query"
	Err  error
}

func (e *StoreUnreadableError) Error() string {
	return fmt.Sprintf("store unreadable: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreUnreadableError) Unwrap() error {
	return e.Err
}

// EntryDecodeError reports a single entry whose value could not be decoded.
// Recoverable: the entry is dropped, the conversation survives.
type EntryDecodeError struct {
	Key string
	Err error
}

func (e *EntryDecodeError) Error() string {
	return fmt.Sprintf("entry decode failed [%s]: %v", e.Key, e.Err)
}

func (e *EntryDecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a conversation id absent from every discovered store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("conversation not found: %s", e.ID)
}

// WriteError reports an export destination that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
