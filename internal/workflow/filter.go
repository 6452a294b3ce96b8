package workflow

import (
	"fmt"
	"time"

	"github.com/JaimeStill/cleandesk/pkg/formatting"
	"github.com/JaimeStill/cleandesk/pkg/table"
)

// ParseRange parses inclusive range bounds with layouts.
func ParseRange(start, end string, layouts []string) (time.Time, time.Time, error) {
	from, err := formatting.ParseDate(start, layouts...)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start: %w", ErrInvalidRange, err)
	}
	to, err := formatting.ParseDate(end, layouts...)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end: %w", ErrInvalidRange, err)
	}
	return from, to, nil
}

// Filter returns the rows of t whose column value parses with layouts and
// falls within [from, to]. Rows with unparseable dates are excluded. Row
// order is preserved.
func Filter(t *table.Table, column string, from, to time.Time, layouts []string) *table.Table {
	out := table.New(t.Columns...)
	for _, row := range t.Rows {
		d, err := formatting.ParseDate(row[column], layouts...)
		if err != nil {
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		out.Append(row)
	}
	return out
}
