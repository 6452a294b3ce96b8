// Package reports lays classified records out as report tables. Two
// layouts are supported: the audit layout prepends the verdict and reply to
// the input columns, and the compliance layout projects a fixed column
// set for review.
package reports

import (
	"fmt"
	"slices"

	"github.com/JaimeStill/cleandesk/internal/classifications"
	"github.com/JaimeStill/cleandesk/internal/notes"
	"github.com/JaimeStill/cleandesk/pkg/table"
)

// Schema selects the report layout.
type Schema string

const (
	SchemaCompliance Schema = "compliance"
	SchemaAudit      Schema = "audit"
)

// Report columns added to or projected from the classified rows.
const (
	ColumnVerdict   = "AI_P_F"
	ColumnResponse  = "AI_Response"
	ColumnLastDate  = "Last Clean Desk Date"
	ColumnCompliant = "Compliant"
)

// Unknown is the compliance layout placeholder for a missing location.
const Unknown = "Unknown"

var complianceColumns = []string{
	notes.ColumnEmployee,
	ColumnLastDate,
	notes.ColumnLocation,
	ColumnCompliant,
	notes.ColumnNote,
	ColumnResponse,
}

// ParseSchema validates a schema name.
func ParseSchema(s string) (Schema, error) {
	switch v := Schema(s); v {
	case SchemaCompliance, SchemaAudit:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSchema, s)
	}
}

// Columns returns the report header for schema given the input table columns.
func Columns(schema Schema, input []string) []string {
	if schema == SchemaCompliance {
		return slices.Clone(complianceColumns)
	}

	cols := []string{ColumnVerdict, ColumnResponse}
	for _, c := range input {
		if c != ColumnVerdict && c != ColumnResponse {
			cols = append(cols, c)
		}
	}
	return cols
}

// Build lays records out under schema. input is the column order of the
// table the records were read from; records appear in slice order.
func Build(schema Schema, input []string, records []classifications.Record) *table.Table {
	t := table.New(Columns(schema, input)...)

	for _, rec := range records {
		if schema == SchemaCompliance {
			t.Append(complianceRow(rec))
			continue
		}
		row := rec.Row.Clone()
		row[ColumnVerdict] = string(rec.Verdict)
		row[ColumnResponse] = rec.Response
		t.Append(row)
	}

	return t
}

func complianceRow(rec classifications.Record) table.Row {
	return table.Row{
		notes.ColumnEmployee: rec.Value(notes.ColumnEmployee, ""),
		ColumnLastDate:       rec.Value(notes.ColumnDate, rec.Value(ColumnLastDate, "")),
		notes.ColumnLocation: rec.Value(notes.ColumnLocation, Unknown),
		ColumnCompliant:      string(rec.Compliant()),
		notes.ColumnNote:     rec.Value(notes.ColumnNote, ""),
		ColumnResponse:       rec.Response,
	}
}

// Records reads classified records back out of a report table written under
// schema, along with the input columns they were built from. Building the
// result again under the same schema reproduces t.
func Records(schema Schema, t *table.Table) ([]classifications.Record, []string, error) {
	switch schema {
	case SchemaCompliance:
		return complianceRecords(t)
	case SchemaAudit:
		return auditRecords(t)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSchema, schema)
	}
}

func auditRecords(t *table.Table) ([]classifications.Record, []string, error) {
	if !t.Has(ColumnVerdict) || !t.Has(ColumnResponse) {
		return nil, nil, fmt.Errorf("%w: missing %s or %s", ErrNotClassified, ColumnVerdict, ColumnResponse)
	}

	input := Columns(SchemaAudit, t.Columns)[2:]
	records := make([]classifications.Record, 0, t.Len())

	for i, row := range t.Rows {
		orig := row.Clone()
		delete(orig, ColumnVerdict)
		delete(orig, ColumnResponse)

		records = append(records, classifications.Record{
			Index:    i,
			Row:      orig,
			Response: row[ColumnResponse],
			Verdict:  classifications.ParseVerdict(row[ColumnVerdict]),
		})
	}

	return records, input, nil
}

func complianceRecords(t *table.Table) ([]classifications.Record, []string, error) {
	if !t.Has(ColumnCompliant) || !t.Has(ColumnResponse) {
		return nil, nil, fmt.Errorf("%w: missing %s or %s", ErrNotClassified, ColumnCompliant, ColumnResponse)
	}

	records := make([]classifications.Record, 0, t.Len())

	for i, row := range t.Rows {
		records = append(records, classifications.Record{
			Index: i,
			Row: table.Row{
				notes.ColumnEmployee: row[notes.ColumnEmployee],
				notes.ColumnDate:     row[ColumnLastDate],
				notes.ColumnNote:     row[notes.ColumnNote],
				notes.ColumnLocation: row[notes.ColumnLocation],
			},
			Response: row[ColumnResponse],
			Verdict:  classifications.ParseCompliant(row[ColumnCompliant]),
		})
	}

	return records, notes.Columns(true), nil
}
