package repositories

import "errors"

var (
	// ErrNotFound is returned by every store when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrNoMatch is returned by conditional updates whose guard no longer holds.
	ErrNoMatch = errors.New("no document matched the update conditions")
)
