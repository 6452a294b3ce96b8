package workflow

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/JaimeStill/cleandesk/internal/classifications"
	"github.com/JaimeStill/cleandesk/internal/documents"
	"github.com/JaimeStill/cleandesk/internal/notes"
	"github.com/JaimeStill/cleandesk/internal/prompts"
	"github.com/JaimeStill/cleandesk/pkg/table"
)

// classifyRows sends each row's note to the provider one at a time, in
// table order. A failed call records an unknown verdict for that row and
// the run continues; only context cancellation stops the loop. Failed rows
// get an acknowledgment as soon as they are classified when writer is set.
func classifyRows(
	ctx context.Context,
	rt *Runtime,
	t *table.Table,
	tmpl prompts.Template,
	writer *documents.Writer,
	result *Result,
) error {
	column := rt.Config.Classify.Column
	total := t.Len()

	for i, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("classification stopped at row %d of %d: %w", i+1, total, err)
		}

		prompt, err := prompts.Compose(tmpl, row[column])
		if err != nil {
			return err
		}

		began := time.Now()
		text, err := rt.Provider.Complete(ctx, prompt)
		elapsed := time.Since(began)

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("classification stopped at row %d of %d: %w", i+1, total, ctxErr)
			}
			rt.Logger.WarnContext(
				ctx, "completion failed",
				"row", i+1,
				"provider", rt.Provider.Name(),
				"error", err,
			)
			rt.Metrics.CompletionFailed()
		}

		rec := classifications.Resolve(i, row, text, err)
		result.Records = append(result.Records, rec)
		rt.Metrics.Classified(string(rec.Verdict), elapsed)

		rt.Logger.InfoContext(
			ctx, "row classified",
			"row", i+1,
			"total", total,
			"verdict", rec.Verdict,
			"duration", elapsed,
		)
		rt.emit(Event{
			Kind:     EventClassified,
			Index:    i + 1,
			Total:    total,
			Employee: rec.Value(notes.ColumnEmployee, ""),
			Verdict:  rec.Verdict,
		})

		if rec.Verdict == classifications.VerdictFailed && writer != nil {
			acknowledge(ctx, rt, writer, rec, total, result)
		}
	}

	return nil
}

func acknowledge(
	ctx context.Context,
	rt *Runtime,
	writer *documents.Writer,
	rec classifications.Record,
	total int,
	result *Result,
) {
	ack := documents.FromRecord(rec)

	path, err := writer.Write(ack)
	rt.Metrics.Document(err == nil)

	if err != nil {
		result.DocumentFailures++
		rt.Logger.ErrorContext(
			ctx, "acknowledgment failed",
			"row", rec.Index+1,
			"employee", ack.Employee,
			"error", err,
		)
	} else if !slices.Contains(result.Documents, path) {
		result.Documents = append(result.Documents, path)
	}

	rt.emit(Event{
		Kind:     EventDocument,
		Index:    rec.Index + 1,
		Total:    total,
		Employee: ack.Employee,
		Path:     path,
		Err:      err,
	})
}
