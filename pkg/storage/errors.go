package storage

import "errors"

var (
	// ErrDisabled indicates no archive destination is configured.
	ErrDisabled = errors.New("storage archive not configured")
	// ErrEmptyKey indicates an empty storage key was provided.
	ErrEmptyKey = errors.New("storage key must not be empty")
	// ErrInvalidKey indicates the storage key contains a path traversal segment.
	ErrInvalidKey = errors.New("storage key contains invalid path segment")
)
