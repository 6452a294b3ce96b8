package documents

import "errors"

// Errors returned while producing acknowledgment documents.
var (
	ErrRenderFailed = errors.New("failed to render acknowledgment")
	ErrWriteFailed  = errors.New("failed to write acknowledgment")
)
