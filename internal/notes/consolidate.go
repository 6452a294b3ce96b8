package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/cleandesk/internal/metrics"
	"github.com/JaimeStill/cleandesk/pkg/formatting"
	"github.com/JaimeStill/cleandesk/pkg/table"
)

// Result summarizes a consolidation pass.
type Result struct {
	Table     *table.Table
	Employees int
	Skipped   int
	Dropped   int
	Written   bool
	Output    string
}

// Consolidator scans a folder tree of employee directories.
type Consolidator struct {
	cfg     *Config
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New creates a consolidator. m may be nil.
func New(cfg *Config, logger *slog.Logger, m *metrics.Recorder) *Consolidator {
	return &Consolidator{
		cfg:     cfg,
		logger:  logger.With("system", "notes"),
		metrics: m,
	}
}

// Scan reads every employee directory directly beneath root, in sorted
// order, and returns the combined table. Only an unreadable root is an
// error; problems with a single employee are logged and that employee is
// skipped.
func (c *Consolidator) Scan(root string) (*Result, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: no root directory given", ErrRootUnreadable)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRootUnreadable, err)
	}

	withLocation := c.cfg.LocationEnabled()
	result := &Result{Table: table.New(Columns(withLocation)...)}

	for _, entry := range entries {
		if !entry.IsDir() {
			c.logger.Info("skipping non-directory entry", "name", entry.Name())
			continue
		}

		employee := entry.Name()
		dir := filepath.Join(root, employee)

		rows, dropped, ok := c.employee(dir, employee, withLocation)
		result.Dropped += dropped
		if !ok {
			result.Skipped++
			continue
		}

		result.Employees++
		for _, n := range rows {
			result.Table.Append(n.Row(withLocation))
		}
	}

	c.metrics.NotesConsolidated(result.Table.Len())
	c.metrics.LinesDropped(result.Dropped)

	c.logger.Info(
		"scan complete",
		"root", root,
		"employees", result.Employees,
		"skipped", result.Skipped,
		"rows", result.Table.Len(),
		"dropped", result.Dropped,
	)
	return result, nil
}

// Consolidate scans root and writes the table to output. When no rows are
// found nothing is written and Result.Written is false.
func (c *Consolidator) Consolidate(root, output string) (*Result, error) {
	result, err := c.Scan(root)
	if err != nil {
		return nil, err
	}
	result.Output = output

	if result.Table.Len() == 0 {
		c.logger.Info("No data found to consolidate", "root", root)
		return result, nil
	}

	if err := result.Table.WriteFile(output); err != nil {
		return result, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	result.Written = true

	c.logger.Info("consolidated notes written", "output", output, "rows", result.Table.Len())
	return result, nil
}

func (c *Consolidator) employee(dir, employee string, withLocation bool) ([]Note, int, bool) {
	path := filepath.Join(dir, c.cfg.NotesFile)
	logger := c.logger.With("employee", employee)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("notes file not found", "path", path)
			c.metrics.EmployeeSkipped(metrics.SkipMissing)
		} else {
			logger.Error("notes file unreadable", "path", path, "error", err)
			c.metrics.EmployeeSkipped(metrics.SkipUnreadable)
		}
		return nil, 0, false
	}

	if limit := c.cfg.MaxNoteSizeBytes(); info.Size() > limit {
		logger.Warn(
			"notes file exceeds size limit",
			"path", path,
			"size", formatting.FormatBytes(info.Size(), 1),
			"limit", c.cfg.MaxNoteSize,
		)
		c.metrics.EmployeeSkipped(metrics.SkipOversize)
		return nil, 0, false
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Error("open notes file", "path", path, "error", err)
		c.metrics.EmployeeSkipped(metrics.SkipUnreadable)
		return nil, 0, false
	}
	defer f.Close()

	lines, dropped, err := ReadLines(f)
	if err != nil {
		logger.Error("read notes file", "path", path, "error", err)
		c.metrics.EmployeeSkipped(metrics.SkipUnreadable)
		return nil, dropped, false
	}
	if dropped > 0 {
		logger.Warn("dropped malformed note lines", "path", path, "dropped", dropped)
	}

	location := ""
	if withLocation {
		location = c.location(dir, logger)
	}

	out := make([]Note, 0, len(lines))
	for _, l := range lines {
		out = append(out, Note{
			Employee: employee,
			Date:     l.Date,
			Text:     l.Text,
			Location: location,
		})
	}
	return out, dropped, true
}

func (c *Consolidator) location(dir string, logger *slog.Logger) string {
	path := filepath.Join(dir, c.cfg.LocationFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Error("read location file", "path", path, "error", err)
		}
		return DefaultLocation
	}

	loc := strings.TrimSpace(strings.TrimPrefix(string(data), bom))
	if loc == "" {
		return DefaultLocation
	}
	return loc
}
