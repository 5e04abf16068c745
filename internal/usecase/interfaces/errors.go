package interfaces

import "errors"

var (
	// ErrVersionMismatch is returned by repositories using optimistic concurrency.
	ErrVersionMismatch = errors.New("version mismatch")
	ErrRecordNotFound  = errors.New("record not found")
)
