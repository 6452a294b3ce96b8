// Package notes consolidates per-employee clean-desk note files into a single
// table. Each immediate subdirectory of the scan root is one employee; its
// notes file holds headerless (date, note) lines.
package notes

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JaimeStill/cleandesk/pkg/table"
)

// Consolidated table columns.
const (
	ColumnEmployee = "Employee Name"
	ColumnDate     = "Record Date"
	ColumnNote     = "Note"
	ColumnLocation = "Location"
)

// DefaultLocation is recorded when an employee has no readable location file.
const DefaultLocation = "Unknown Location"

const bom = "\ufeff"

// Note is one line from an employee's notes file. Date is carried as written.
type Note struct {
	Employee string
	Date     string
	Text     string
	Location string
}

// Row renders the note as a consolidated table row.
func (n Note) Row(withLocation bool) table.Row {
	row := table.Row{
		ColumnEmployee: n.Employee,
		ColumnDate:     n.Date,
		ColumnNote:     n.Text,
	}
	if withLocation {
		row[ColumnLocation] = n.Location
	}
	return row
}

// Columns returns the consolidated table header.
func Columns(withLocation bool) []string {
	cols := []string{ColumnEmployee, ColumnDate, ColumnNote}
	if withLocation {
		cols = append(cols, ColumnLocation)
	}
	return cols
}

// Line is a well-formed (date, note) pair read from a notes file.
type Line struct {
	Date string
	Text string
}

// ReadLines parses a headerless two-column notes file one physical line at
// a time. A line that does not parse as exactly two fields is dropped and
// counted without affecting its neighbours; blank lines are ignored. The
// returned error reports only read failures of the underlying stream.
func ReadLines(r io.Reader) ([]Line, int, error) {
	br := bufio.NewReader(r)

	var (
		lines   []Line
		dropped int
		first   = true
	)

	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, dropped, fmt.Errorf("read notes: %w", err)
		}

		text := strings.TrimRight(raw, "\r\n")
		if first {
			first = false
			text = strings.TrimPrefix(text, bom)
		}

		if strings.TrimSpace(text) != "" {
			if line, ok := parseLine(text); ok {
				lines = append(lines, line)
			} else {
				dropped++
			}
		}

		if err != nil {
			break
		}
	}

	return lines, dropped, nil
}

// parseLine reads a single line as a two-field record. Bare quotes inside an
// unquoted field are tolerated; an unterminated quoted field is not.
func parseLine(text string) (Line, bool) {
	record, err := parseRecord(text, false)
	if errors.Is(err, csv.ErrBareQuote) {
		record, err = parseRecord(text, true)
	}
	if err != nil {
		return Line{}, false
	}

	return Line{
		Date: strings.TrimSpace(record[0]),
		Text: record[1],
	}, true
}

func parseRecord(text string, lazy bool) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = 2
	reader.LazyQuotes = lazy
	reader.TrimLeadingSpace = true
	return reader.Read()
}
