package workflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/cleandesk/internal/classifications"
	"github.com/JaimeStill/cleandesk/internal/reports"
)

// EventKind identifies a pipeline progress event.
type EventKind string

const (
	EventFiltered    EventKind = "filtered"
	EventNoRecords   EventKind = "no_records"
	EventClassified  EventKind = "classified"
	EventDocument    EventKind = "document"
	EventReportSaved EventKind = "report_saved"
	EventArchived    EventKind = "archived"
)

// Event reports pipeline progress to the caller. Fields not relevant to
// Kind are zero. Index is one-based for classified and document events.
type Event struct {
	Kind     EventKind
	Index    int
	Total    int
	Employee string
	Verdict  classifications.Verdict
	Path     string
	Err      error
}

// Observer receives events synchronously, in pipeline order.
type Observer func(Event)

// Request parameterizes Execute. An empty Input uses the configured
// consolidated table. Start and End are inclusive bounds.
type Request struct {
	Input     string
	Start     string
	End       string
	Documents bool
}

// RerenderRequest parameterizes Rerender. An empty Input uses the configured
// report output and an empty Dir the configured report directory.
type RerenderRequest struct {
	Input     string
	Start     string
	End       string
	Dir       string
	Documents bool
}

// Result summarizes a pipeline run.
type Result struct {
	RunID            uuid.UUID
	Input            int
	Filtered         int
	Records          []classifications.Record
	Tally            reports.Tally
	Report           string
	Documents        []string
	DocumentFailures int
	Archived         int
	CompletedAt      time.Time
}
