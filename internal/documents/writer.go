package documents

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/JaimeStill/cleandesk/pkg/formatting"
)

// UnknownFileDate replaces the filename date when the record date cannot be parsed.
const UnknownFileDate = "Unknown_Date"

var nameReplacer = strings.NewReplacer(" ", "_", "/", "_", `\`, "_")

// Writer renders acknowledgments into a directory. Filenames are derived
// from the normalized date and employee name, so two failures for the same
// employee on the same date overwrite each other; the writer logs a warning
// when that happens within one run.
type Writer struct {
	dir     string
	layouts []string
	logger  *slog.Logger
	written map[string]int
}

// NewWriter creates a writer for dir. layouts are tried in order when
// normalizing record dates for filenames.
func NewWriter(dir string, layouts []string, logger *slog.Logger) *Writer {
	return &Writer{
		dir:     dir,
		layouts: layouts,
		logger:  logger.With("system", "documents"),
		written: make(map[string]int),
	}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Filename returns {MM-DD-YYYY}-{Employee_Name}-CD.PDF for a.
func (w *Writer) Filename(a Acknowledgment) string {
	date, err := formatting.NormalizeDate(a.Date, w.layouts...)
	if err != nil {
		w.logger.Warn(
			"invalid or missing record date, using placeholder",
			"employee", a.Employee,
			"date", a.Date,
			"placeholder", UnknownFileDate,
		)
		date = UnknownFileDate
	}

	return fmt.Sprintf("%s-%s-CD.PDF", date, nameReplacer.Replace(a.Employee))
}

// Write renders a and stores it in the output directory, creating the
// directory if needed. Returns the written path.
func (w *Writer) Write(a Acknowledgment) (string, error) {
	data, err := Render(a)
	if err != nil {
		return "", err
	}

	if pages, err := api.PageCount(bytes.NewReader(data), nil); err != nil {
		return "", fmt.Errorf("%w: verify pdf: %w", ErrRenderFailed, err)
	} else if pages != 1 {
		w.logger.Warn("acknowledgment exceeds one page", "employee", a.Employee, "pages", pages)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("%w: create directory: %w", ErrWriteFailed, err)
	}

	name := w.Filename(a)
	path := filepath.Join(w.dir, name)

	if n := w.written[name]; n > 0 {
		w.logger.Warn("acknowledgment filename collision, overwriting", "file", path, "previous", n)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	w.written[name]++

	w.logger.Info(
		"acknowledgment generated",
		"file", path,
		"size", formatting.FormatBytes(int64(len(data)), 1),
	)
	return path, nil
}
