package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/JaimeStill/cleandesk/internal/metrics"
)

func TestNilRecorder(t *testing.T) {
	var r *metrics.Recorder

	r.NotesConsolidated(3)
	r.LinesDropped(1)
	r.EmployeeSkipped(metrics.SkipMissing)
	r.Classified("PASSED", time.Second)
	r.CompletionFailed()
	r.Document(true)
	r.Upload(false)
	r.Succeeded(time.Now())

	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")); err != nil {
		t.Errorf("WriteTextfile on nil recorder: %v", err)
	}
	if r.Registry() != nil {
		t.Error("Registry() on nil recorder should be nil")
	}
}

func TestRecorderCounts(t *testing.T) {
	r := metrics.New()

	r.NotesConsolidated(2)
	r.NotesConsolidated(3)
	r.Classified("FAILED", 200*time.Millisecond)
	r.Classified("PASSED", 300*time.Millisecond)
	r.Classified("FAILED", 100*time.Millisecond)

	count, err := testutil.GatherAndCount(r.Registry(), "cleandesk_classifications_total")
	if err != nil {
		t.Fatalf("GatherAndCount error: %v", err)
	}
	if count != 2 {
		t.Errorf("classification series = %d, want 2", count)
	}

	expected := `
# HELP cleandesk_notes_consolidated_total Note rows added to the consolidated table.
# TYPE cleandesk_notes_consolidated_total counter
cleandesk_notes_consolidated_total 5
`
	if err := testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "cleandesk_notes_consolidated_total"); err != nil {
		t.Errorf("GatherAndCompare: %v", err)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := metrics.New()
	r.Document(true)
	r.Document(false)

	path := filepath.Join(t.TempDir(), "cleandesk.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), `cleandesk_acknowledgments_total{outcome="failure"} 1`) {
		t.Errorf("textfile missing failure outcome:\n%s", data)
	}
}
