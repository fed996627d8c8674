// Package common defines sentinel errors and constants shared by the client
// and server layers. Callers should match errors with errors.Is.
package common

import "errors"

var (
	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCursor is returned when a pagination cursor cannot be decoded.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrInvalidArgument reports a malformed request (empty id, non-positive page size).
	ErrInvalidArgument = errors.New("invalid argument")
)
