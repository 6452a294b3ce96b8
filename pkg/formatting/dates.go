package formatting

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a value matches none of the candidate layouts.
var ErrInvalidDate = errors.New("invalid date")

// DateLayout is the month-day-year form used for date ranges and document filenames.
const DateLayout = "01-02-2006"

// Layout presets. Single-digit month and day fields accept zero padding.
var (
	MonthFirstLayouts = []string{"1-2-2006", "1/2/2006"}
	DayFirstLayouts   = []string{"2/1/2006", "2-1-2006"}
	ISOLayouts        = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

	PermissiveLayouts = []string{
		"1/2/2006", "1-2-2006", "1/2/06",
		"2006-01-02", "2006/1/2", "2006-01-02 15:04:05", time.RFC3339,
		"Jan 2, 2006", "Jan 2 2006", "January 2, 2006", "January 2 2006",
		"2 Jan 2006", "2 January 2006",
	}
)

// ParseDate tries each layout in order and returns the first match.
func ParseDate(s string, layouts ...string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// NormalizeDate parses s with the given layouts and renders it as DateLayout.
func NormalizeDate(s string, layouts ...string) (string, error) {
	t, err := ParseDate(s, layouts...)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// Preset names accepted by Layouts.
const (
	PresetMonthFirst = "month-first"
	PresetDayFirst   = "day-first"
	PresetISO        = "iso"
	PresetPermissive = "permissive"
)

// ErrUnknownPreset is returned by Layouts for an unrecognized preset name.
var ErrUnknownPreset = errors.New("unknown date preset")

var presets = map[string][]string{
	PresetMonthFirst: MonthFirstLayouts,
	PresetDayFirst:   DayFirstLayouts,
	PresetISO:        ISOLayouts,
	PresetPermissive: PermissiveLayouts,
}

// Layouts concatenates the layouts of the named presets in order.
func Layouts(names ...string) ([]string, error) {
	var layouts []string
	for _, name := range names {
		l, ok := presets[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
		}
		layouts = append(layouts, l...)
	}
	return layouts, nil
}
