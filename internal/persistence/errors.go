package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrStorage is returned when the underlying medium rejects a read or write.
	ErrStorage = errors.New("persistence: storage failure")
)
