package session

import "fmt"

// StorageError reports a failure of the underlying storage medium.
type StorageError struct {
	ID  string
	Op  string // "save", "load", "clear"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("session storage: %s %s: %v", e.Op, e.ID, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// CorruptError reports a session record that exists but cannot be decoded.
// Kept distinct from "not found": a corrupt session is never silently
// treated as missing.
type CorruptError struct {
	ID  string
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("session %s is corrupt: %v", e.ID, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// NotFoundError reports an interaction referencing a session id with no
// stored record.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session %s not found (run a capture first)", e.ID)
}
