package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"

	"github.com/JaimeStill/cleandesk/internal/classifications"
	"github.com/JaimeStill/cleandesk/pkg/table"
)

// Name returns the saved report filename for a date range. Slashes in the
// bounds are replaced so the name stays a single path segment.
func Name(start, end string) string {
	r := strings.NewReplacer("/", "-", `\`, "-")
	return fmt.Sprintf("Clean_Desk_Report-%s-%s.csv", r.Replace(start), r.Replace(end))
}

// Save writes t into dir under Name(start, end), creating dir if needed,
// and returns the written path.
func Save(t *table.Table, dir, start, end string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: create directory: %w", ErrWriteFailed, err)
	}

	path := filepath.Join(dir, Name(start, end))
	if err := t.WriteFile(path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return path, nil
}

// Open hands path to the operating system's default viewer.
func Open(path string) error {
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

// Tally counts records by verdict.
type Tally struct {
	Passed  int
	Failed  int
	Unknown int
}

// Count tallies the verdicts of records.
func Count(records []classifications.Record) Tally {
	var t Tally
	for _, r := range records {
		switch r.Verdict {
		case classifications.VerdictPassed:
			t.Passed++
		case classifications.VerdictFailed:
			t.Failed++
		default:
			t.Unknown++
		}
	}
	return t
}

// Total returns the number of tallied records.
func (t Tally) Total() int {
	return t.Passed + t.Failed + t.Unknown
}
