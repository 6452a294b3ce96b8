package reports_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/JaimeStill/cleandesk/internal/classifications"
	"github.com/JaimeStill/cleandesk/internal/notes"
	"github.com/JaimeStill/cleandesk/internal/reports"
	"github.com/JaimeStill/cleandesk/pkg/table"
)

func sampleRecords() ([]string, []classifications.Record) {
	cols := notes.Columns(true)
	rows := []table.Row{
		{notes.ColumnEmployee: "Acme", notes.ColumnDate: "03/01/2024", notes.ColumnNote: "Papers, badge on desk", notes.ColumnLocation: "B7"},
		{notes.ColumnEmployee: "Bea", notes.ColumnDate: "03/02/2024", notes.ColumnNote: "Desk clean - meets compliance"},
		{notes.ColumnEmployee: "Cal", notes.ColumnDate: "03/03/2024", notes.ColumnNote: "Monitor\nleft on", notes.ColumnLocation: "B2"},
	}

	return cols, []classifications.Record{
		classifications.Resolve(0, rows[0], "Fail. Papers visible.", nil),
		classifications.Resolve(1, rows[1], "Pass", nil),
		classifications.Resolve(2, rows[2], "", errors.New("timeout")),
	}
}

func render(t *testing.T, tbl *table.Table) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := tbl.Write(&buf); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	return buf.Bytes()
}

func TestParseSchema(t *testing.T) {
	for _, s := range []string{"compliance", "audit"} {
		if _, err := reports.ParseSchema(s); err != nil {
			t.Errorf("ParseSchema(%q) error: %v", s, err)
		}
	}
	if _, err := reports.ParseSchema("xml"); !errors.Is(err, reports.ErrUnknownSchema) {
		t.Errorf("error = %v, want ErrUnknownSchema", err)
	}
}

func TestBuildAudit(t *testing.T) {
	cols, records := sampleRecords()
	got := reports.Build(reports.SchemaAudit, cols, records)

	wantCols := append([]string{reports.ColumnVerdict, reports.ColumnResponse}, cols...)
	if !slices.Equal(got.Columns, wantCols) {
		t.Errorf("columns = %v, want %v", got.Columns, wantCols)
	}

	tests := []struct {
		verdict  string
		response string
	}{
		{"FAILED", "Fail. Papers visible."},
		{"PASSED", "Pass"},
		{"UNKNOWN", classifications.NoResponse},
	}
	for i, tt := range tests {
		row := got.Rows[i]
		if row[reports.ColumnVerdict] != tt.verdict || row[reports.ColumnResponse] != tt.response {
			t.Errorf("row %d = %s/%s, want %s/%s", i, row[reports.ColumnVerdict], row[reports.ColumnResponse], tt.verdict, tt.response)
		}
	}

	if _, ok := records[0].Row[reports.ColumnVerdict]; ok {
		t.Error("Build mutated the input row")
	}
}

func TestBuildCompliance(t *testing.T) {
	cols, records := sampleRecords()
	got := reports.Build(reports.SchemaCompliance, cols, records)

	want := []string{"Employee Name", "Last Clean Desk Date", "Location", "Compliant", "Note", "AI_Response"}
	if !slices.Equal(got.Columns, want) {
		t.Fatalf("columns = %v, want %v", got.Columns, want)
	}

	if got.Rows[0][reports.ColumnCompliant] != "NO" || got.Rows[0][reports.ColumnLastDate] != "03/01/2024" {
		t.Errorf("row 0 = %v", got.Rows[0])
	}
	if got.Rows[1][notes.ColumnLocation] != reports.Unknown {
		t.Errorf("missing location = %q, want placeholder", got.Rows[1][notes.ColumnLocation])
	}
	if got.Rows[2][reports.ColumnCompliant] != "UNKNOWN" {
		t.Errorf("row 2 compliant = %q, want UNKNOWN", got.Rows[2][reports.ColumnCompliant])
	}
}

func TestBuildEmpty(t *testing.T) {
	got := reports.Build(reports.SchemaAudit, []string{"A"}, nil)
	if got.Len() != 0 || len(got.Columns) != 3 {
		t.Errorf("empty build = %+v", got)
	}
}

func TestRebuildIsIdentical(t *testing.T) {
	for _, schema := range []reports.Schema{reports.SchemaAudit, reports.SchemaCompliance} {
		t.Run(string(schema), func(t *testing.T) {
			cols, records := sampleRecords()
			first := render(t, reports.Build(schema, cols, records))

			reloaded, err := table.Read(bytes.NewReader(first))
			if err != nil {
				t.Fatalf("Read error: %v", err)
			}

			recs, input, err := reports.Records(schema, reloaded)
			if err != nil {
				t.Fatalf("Records error: %v", err)
			}

			second := render(t, reports.Build(schema, input, recs))
			if !bytes.Equal(first, second) {
				t.Errorf("rebuild differs:\nfirst:\n%s\nsecond:\n%s", first, second)
			}
		})
	}
}

func TestRecordsNotClassified(t *testing.T) {
	tbl := table.New(notes.Columns(false)...)
	for _, schema := range []reports.Schema{reports.SchemaAudit, reports.SchemaCompliance} {
		if _, _, err := reports.Records(schema, tbl); !errors.Is(err, reports.ErrNotClassified) {
			t.Errorf("%s: error = %v, want ErrNotClassified", schema, err)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		start, end, want string
	}{
		{"03-01-2024", "03-31-2024", "Clean_Desk_Report-03-01-2024-03-31-2024.csv"},
		{"03/01/2024", "03/31/2024", "Clean_Desk_Report-03-01-2024-03-31-2024.csv"},
	}
	for _, tt := range tests {
		if got := reports.Name(tt.start, tt.end); got != tt.want {
			t.Errorf("Name(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestSave(t *testing.T) {
	cols, records := sampleRecords()
	tbl := reports.Build(reports.SchemaAudit, cols, records)
	dir := filepath.Join(t.TempDir(), "saved")

	path, err := reports.Save(tbl, dir, "03/01/2024", "03/31/2024")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if filepath.Base(path) != "Clean_Desk_Report-03-01-2024-03-31-2024.csv" {
		t.Errorf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved report: %v", err)
	}
	if !bytes.Equal(data, render(t, tbl)) {
		t.Error("saved report differs from rendered table")
	}
}

func TestCount(t *testing.T) {
	_, records := sampleRecords()
	got := reports.Count(records)
	if got.Passed != 1 || got.Failed != 1 || got.Unknown != 1 || got.Total() != 3 {
		t.Errorf("Count = %+v", got)
	}
}
