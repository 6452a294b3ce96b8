// Package classifications maps free-text LLM replies to clean-desk verdicts
// and carries the per-row classification result.
package classifications

import (
	"strings"

	"github.com/JaimeStill/cleandesk/pkg/table"
)

// NoResponse replaces the reply text when the LLM call fails or returns nothing.
const NoResponse = "Error or No Response"

// Verdict is the Pass/Fail determination for a single note.
type Verdict string

// Verdicts. The values are written to reports verbatim.
const (
	VerdictPassed  Verdict = "PASSED"
	VerdictFailed  Verdict = "FAILED"
	VerdictUnknown Verdict = "UNKNOWN"
)

// Compliance is the YES/NO rendering of a verdict used by the compliance report.
type Compliance string

// Compliance values.
const (
	CompliantYes     Compliance = "YES"
	CompliantNo      Compliance = "NO"
	CompliantUnknown Compliance = "UNKNOWN"
)

// Classify derives a verdict from reply text. "pass" is checked before
// "fail", so a reply containing both classifies as passed.
func Classify(text string) Verdict {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "pass"):
		return VerdictPassed
	case strings.Contains(lower, "fail"):
		return VerdictFailed
	default:
		return VerdictUnknown
	}
}

// Compliant maps the verdict onto the compliance column.
func (v Verdict) Compliant() Compliance {
	switch v {
	case VerdictPassed:
		return CompliantYes
	case VerdictFailed:
		return CompliantNo
	default:
		return CompliantUnknown
	}
}

// ParseVerdict reads a stored verdict; unrecognized values are unknown.
func ParseVerdict(s string) Verdict {
	switch v := Verdict(strings.ToUpper(strings.TrimSpace(s))); v {
	case VerdictPassed, VerdictFailed:
		return v
	default:
		return VerdictUnknown
	}
}

// ParseCompliant reads a stored compliance value back into a verdict.
func ParseCompliant(s string) Verdict {
	switch Compliance(strings.ToUpper(strings.TrimSpace(s))) {
	case CompliantYes:
		return VerdictPassed
	case CompliantNo:
		return VerdictFailed
	default:
		return VerdictUnknown
	}
}

// Record is one input row together with its classification. Index is the
// zero-based position within the filtered table.
type Record struct {
	Index    int
	Row      table.Row
	Response string
	Verdict  Verdict
}

// Compliant returns the record's compliance value.
func (r Record) Compliant() Compliance {
	return r.Verdict.Compliant()
}

// Value returns the row cell for column, or fallback when it is absent or empty.
func (r Record) Value(column, fallback string) string {
	if v, ok := r.Row[column]; ok && v != "" {
		return v
	}
	return fallback
}

// Resolve builds the record for a completed LLM call. A call error or an
// empty reply yields NoResponse and an unknown verdict.
func Resolve(index int, row table.Row, text string, err error) Record {
	text = strings.TrimSpace(text)
	if err != nil || text == "" {
		return Record{
			Index:    index,
			Row:      row,
			Response: NoResponse,
			Verdict:  VerdictUnknown,
		}
	}

	return Record{
		Index:    index,
		Row:      row,
		Response: text,
		Verdict:  Classify(text),
	}
}
