package main

import (
	"fmt"
	"io"

	"github.com/JaimeStill/cleandesk/internal/workflow"
)

// printEvents renders pipeline progress as plain lines on w.
func printEvents(w io.Writer) workflow.Observer {
	return func(e workflow.Event) {
		switch e.Kind {
		case workflow.EventFiltered:
			fmt.Fprintf(w, "%d of %d rows in range\n", e.Index, e.Total)
		case workflow.EventNoRecords:
			fmt.Fprintln(w, "No records found in the specified date range.")
		case workflow.EventClassified:
			fmt.Fprintf(w, "[%d/%d] %s: %s\n", e.Index, e.Total, e.Employee, e.Verdict)
		case workflow.EventDocument:
			if e.Err != nil {
				fmt.Fprintf(w, "  acknowledgment failed for %s: %v\n", e.Employee, e.Err)
				return
			}
			fmt.Fprintf(w, "  acknowledgment: %s\n", e.Path)
		case workflow.EventReportSaved:
			fmt.Fprintf(w, "Report saved: %s (%d rows)\n", e.Path, e.Total)
		case workflow.EventArchived:
			fmt.Fprintf(w, "Archived %d of %d files\n", e.Index, e.Total)
		}
	}
}
