package table_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JaimeStill/cleandesk/pkg/table"
)

func TestRead(t *testing.T) {
	input := "Employee Name,Record Date,Note\nAcme,03/01/2024,pens on desk\nBeta,03/02/2024,\"clean, tidy\"\n"

	tbl, err := table.Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}

	if len(tbl.Columns) != 3 {
		t.Fatalf("Columns = %v, want 3 columns", tbl.Columns)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}
	if got := tbl.Rows[1]["Note"]; got != "clean, tidy" {
		t.Errorf("Rows[1][Note] = %q, want %q", got, "clean, tidy")
	}
	if !tbl.Has("Record Date") {
		t.Error("Has(Record Date) = false, want true")
	}
	if tbl.Has("Location") {
		t.Error("Has(Location) = true, want false")
	}
}

func TestReadEmpty(t *testing.T) {
	_, err := table.Read(strings.NewReader(""))
	if !errors.Is(err, table.ErrNoHeader) {
		t.Errorf("error = %v, want ErrNoHeader", err)
	}
}

func TestReadFieldCountMismatch(t *testing.T) {
	_, err := table.Read(strings.NewReader("a,b\n1,2,3\n"))
	if err == nil {
		t.Fatal("expected error for mismatched field count, got nil")
	}
}

func TestWriteFillsMissingCells(t *testing.T) {
	tbl := table.New("A", "B", "C")
	tbl.Append(table.Row{"A": "1", "C": "3"})

	var buf bytes.Buffer
	if err := tbl.Write(&buf); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	want := "A,B,C\n1,,3\n"
	if buf.String() != want {
		t.Errorf("Write = %q, want %q", buf.String(), want)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	tbl := table.New("Employee Name", "Note")
	tbl.Append(table.Row{"Employee Name": "Acme", "Note": "line one\nline two"})

	if err := tbl.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	got, err := table.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if got.Rows[0]["Note"] != "line one\nline two" {
		t.Errorf("Note = %q, want embedded newline preserved", got.Rows[0]["Note"])
	}

	first, _ := os.ReadFile(path)
	if err := got.WriteFile(path); err != nil {
		t.Fatalf("second WriteFile error: %v", err)
	}
	second, _ := os.ReadFile(path)
	if !bytes.Equal(first, second) {
		t.Errorf("rewrite changed bytes:\n%s\n---\n%s", first, second)
	}
}

func TestRowClone(t *testing.T) {
	row := table.Row{"a": "1"}
	clone := row.Clone()
	clone["a"] = "2"
	if row["a"] != "1" {
		t.Errorf("original mutated: %q", row["a"])
	}
}
