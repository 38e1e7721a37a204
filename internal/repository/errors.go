package repository

import "errors"

// Common storage errors.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrCorruptStore indicates a backing file exists but does not contain
	// a valid JSON array. Callers must treat this as fatal rather than
	// silently resetting data.
	ErrCorruptStore = errors.New("repository: corrupt collection file")
)

var (
	ErrUserNotFound = ErrNotFound
	ErrPostNotFound = ErrNotFound
)
