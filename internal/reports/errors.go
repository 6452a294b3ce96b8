package reports

import "errors"

var (
	ErrUnknownSchema = errors.New("unknown report schema")
	// ErrNotClassified indicates a table lacks the verdict or response columns
	// of the requested schema.
	ErrNotClassified = errors.New("table is not a classified report")
	ErrWriteFailed   = errors.New("failed to write report")
)
