package workflow

import "errors"

// Sentinel errors for pipeline runs. Per-row failures are never returned;
// they are logged and recorded on the affected row.
var (
	ErrMissingColumn = errors.New("input table missing required column")
	ErrInvalidRange  = errors.New("invalid date range")
	ErrReportWrite   = errors.New("failed to write report")
)
