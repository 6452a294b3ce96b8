// Package workflow runs the classify-and-report pipeline over a consolidated
// notes table: date filtering, sequential LLM classification with inline
// acknowledgments, report output, and optional archiving.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/cleandesk/internal/classifications"
	"github.com/JaimeStill/cleandesk/internal/documents"
	"github.com/JaimeStill/cleandesk/internal/prompts"
	"github.com/JaimeStill/cleandesk/internal/reports"
	"github.com/JaimeStill/cleandesk/pkg/table"
)

// Execute filters the input table to [req.Start, req.End], classifies every
// remaining row, writes the report and, when req.Documents is set, an
// acknowledgment per failed row. An empty range is not an error: the result
// has Filtered == 0 and nothing is written.
func Execute(ctx context.Context, rt *Runtime, req Request) (*Result, error) {
	cfg := rt.Config
	result := &Result{RunID: rt.RunID}

	input := req.Input
	if input == "" {
		input = cfg.Classify.Input
	}

	t, err := table.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	result.Input = t.Len()

	for _, col := range []string{cfg.Classify.Column, cfg.Classify.DateColumn} {
		if !t.Has(col) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	tmpl, err := prompts.ParseTemplate(cfg.Classify.Template)
	if err != nil {
		return nil, err
	}

	layouts := cfg.Classify.Layouts()
	from, to, err := ParseRange(req.Start, req.End, layouts)
	if err != nil {
		return nil, err
	}

	filtered := Filter(t, cfg.Classify.DateColumn, from, to, layouts)
	result.Filtered = filtered.Len()

	rt.Logger.InfoContext(
		ctx, "rows filtered",
		"input", input,
		"start", req.Start,
		"end", req.End,
		"rows", t.Len(),
		"in_range", filtered.Len(),
	)
	rt.emit(Event{Kind: EventFiltered, Index: filtered.Len(), Total: t.Len()})

	if filtered.Len() == 0 {
		rt.Logger.InfoContext(ctx, "No records found in the specified date range")
		rt.emit(Event{Kind: EventNoRecords})
		result.CompletedAt = time.Now()
		return result, nil
	}

	var writer *documents.Writer
	if req.Documents {
		writer = documents.NewWriter(cfg.Report.DocumentsDir, cfg.Report.DocumentLayouts(), rt.Logger)
	}

	if err := classifyRows(ctx, rt, filtered, tmpl, writer, result); err != nil {
		return result, err
	}
	result.Tally = reports.Count(result.Records)

	report := reports.Build(cfg.Report.SchemaValue(), filtered.Columns, result.Records)
	if err := report.WriteFile(cfg.Report.Output); err != nil {
		return result, fmt.Errorf("%w: %w", ErrReportWrite, err)
	}
	result.Report = cfg.Report.Output

	rt.Logger.InfoContext(
		ctx, "report saved",
		"path", result.Report,
		"passed", result.Tally.Passed,
		"failed", result.Tally.Failed,
		"unknown", result.Tally.Unknown,
		"documents", len(result.Documents),
	)
	rt.emit(Event{Kind: EventReportSaved, Path: result.Report, Total: report.Len()})

	finish(ctx, rt, result)
	return result, nil
}

// Rerender rebuilds a report from an already classified report without
// calling the provider. The report is saved into req.Dir under the
// date-range name; acknowledgments are regenerated for failed rows when
// req.Documents is set.
func Rerender(ctx context.Context, rt *Runtime, req RerenderRequest) (*Result, error) {
	cfg := rt.Config
	result := &Result{RunID: rt.RunID}

	if _, _, err := ParseRange(req.Start, req.End, cfg.Classify.Layouts()); err != nil {
		return nil, err
	}

	input := req.Input
	if input == "" {
		input = cfg.Report.Output
	}
	dir := req.Dir
	if dir == "" {
		dir = cfg.Report.Directory
	}

	t, err := table.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	schema := cfg.Report.SchemaValue()
	records, columns, err := reports.Records(schema, t)
	if err != nil {
		return nil, err
	}
	result.Input = t.Len()
	result.Filtered = len(records)
	result.Records = records
	result.Tally = reports.Count(records)

	if req.Documents {
		writer := documents.NewWriter(cfg.Report.DocumentsDir, cfg.Report.DocumentLayouts(), rt.Logger)
		for _, rec := range records {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			if rec.Verdict == classifications.VerdictFailed {
				acknowledge(ctx, rt, writer, rec, len(records), result)
			}
		}
	}

	path, err := reports.Save(reports.Build(schema, columns, records), dir, req.Start, req.End)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrReportWrite, err)
	}
	result.Report = path

	rt.Logger.InfoContext(ctx, "report saved", "path", path, "rows", len(records))
	rt.emit(Event{Kind: EventReportSaved, Path: path, Total: len(records)})

	finish(ctx, rt, result)
	return result, nil
}

func finish(ctx context.Context, rt *Runtime, result *Result) {
	result.Archived = archive(ctx, rt, result)
	result.CompletedAt = time.Now()
	rt.Metrics.Succeeded(result.CompletedAt)

	if path := rt.Config.Report.MetricsFile; path != "" {
		if err := rt.Metrics.WriteTextfile(path); err != nil {
			rt.Logger.ErrorContext(ctx, "metrics textfile failed", "path", path, "error", err)
		}
	}
}
