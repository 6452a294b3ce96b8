// Package documents renders the one-page acknowledgment an employee signs
// when a clean-desk note is classified as a failure.
package documents

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/JaimeStill/cleandesk/internal/classifications"
	"github.com/JaimeStill/cleandesk/internal/notes"
)

// Title is the heading printed at the top of every acknowledgment.
const Title = "Employee Acknowledgment of Desk Policy Violation"

// Statement is the fixed acknowledgment paragraph.
const Statement = "I, the undersigned employee, acknowledge receipt of this notice regarding the " +
	"violation of the clean desk policy. I understand the nature of the failure outlined " +
	"above and agree to take immediate corrective actions to ensure compliance in the future."

// Placeholders used when a row lacks a value.
const (
	UnknownEmployee = "Unknown"
	UnknownDate     = "Unknown"
	NoNotes         = "No Notes"
)

// Acknowledgment carries the values printed on a single document.
type Acknowledgment struct {
	Employee string
	Date     string
	Notes    string
	Response string
}

// FromRecord resolves the printed values from a classified record.
func FromRecord(rec classifications.Record) Acknowledgment {
	return Acknowledgment{
		Employee: rec.Value(notes.ColumnEmployee, UnknownEmployee),
		Date:     rec.Value(notes.ColumnDate, UnknownDate),
		Notes:    rec.Value(notes.ColumnNote, NoNotes),
		Response: rec.Response,
	}
}

// Render lays out the acknowledgment on an A4 page and returns the PDF bytes.
func Render(a Acknowledgment) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(Title, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr(Title), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	line(pdf, tr("Employee Name: "+a.Employee))
	line(pdf, tr("Record Date: "+a.Date))
	line(pdf, tr("Notes: "+singleLine(a.Notes)))
	pdf.MultiCell(0, 10, tr("AI Response: "+a.Response), "", "", false)
	pdf.Ln(10)

	pdf.MultiCell(0, 10, tr(Statement), "", "", false)
	pdf.Ln(10)

	line(pdf, "Signature: ___________________________")
	line(pdf, "Date: ______________________________")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func line(pdf *fpdf.Fpdf, text string) {
	pdf.CellFormat(0, 10, text, "", 1, "", false, 0, "")
}

// singleLine collapses whitespace runs, line breaks included, to one space.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
