package notes

import "errors"

// Errors that abort a consolidation run. Problems with a single employee's
// files are logged and skipped instead.
var (
	ErrRootUnreadable = errors.New("root directory unreadable")
	ErrWriteFailed    = errors.New("failed to write consolidated table")
)
