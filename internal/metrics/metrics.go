// Package metrics records per-run pipeline counters on a private prometheus
// registry. Runs are batch jobs, so the registry is exported by writing a
// textfile for a node exporter textfile collector rather than served over HTTP.
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cleandesk"

// Reasons an employee directory contributes no rows.
const (
	SkipMissing    = "missing"
	SkipOversize   = "oversize"
	SkipUnreadable = "unreadable"
)

// Recorder holds the run's collectors.
type Recorder struct {
	registry *prometheus.Registry

	notes       prometheus.Counter
	dropped     prometheus.Counter
	skipped     *prometheus.CounterVec
	verdicts    *prometheus.CounterVec
	completion  prometheus.Histogram
	failures    prometheus.Counter
	documents   *prometheus.CounterVec
	uploads     *prometheus.CounterVec
	lastSuccess prometheus.Gauge
}

// New registers all collectors on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		notes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notes_consolidated_total",
			Help:      "Note rows added to the consolidated table.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "note_lines_dropped_total",
			Help:      "Malformed note lines skipped during consolidation.",
		}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "employees_skipped_total",
			Help:      "Employee directories that contributed no rows, by reason.",
		}, []string{"reason"}),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Classified notes by verdict.",
		}, []string{"verdict"}),
		completion: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "completion_duration_seconds",
			Help:      "LLM completion latency per note.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completion_failures_total",
			Help:      "LLM calls that errored or returned no text.",
		}),
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acknowledgments_total",
			Help:      "Acknowledgment documents by outcome.",
		}, []string{"outcome"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "archive_uploads_total",
			Help:      "Archive uploads by outcome.",
		}, []string{"outcome"}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last completed stage.",
		}),
	}

	r.registry.MustRegister(
		r.notes, r.dropped, r.skipped,
		r.verdicts, r.completion, r.failures,
		r.documents, r.uploads, r.lastSuccess,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) NotesConsolidated(n int) {
	if r != nil {
		r.notes.Add(float64(n))
	}
}

func (r *Recorder) LinesDropped(n int) {
	if r != nil {
		r.dropped.Add(float64(n))
	}
}

func (r *Recorder) EmployeeSkipped(reason string) {
	if r != nil {
		r.skipped.WithLabelValues(reason).Inc()
	}
}

// Classified records a verdict and the latency of the call that produced it.
func (r *Recorder) Classified(verdict string, elapsed time.Duration) {
	if r != nil {
		r.verdicts.WithLabelValues(verdict).Inc()
		r.completion.Observe(elapsed.Seconds())
	}
}

func (r *Recorder) CompletionFailed() {
	if r != nil {
		r.failures.Inc()
	}
}

func (r *Recorder) Document(ok bool) {
	if r != nil {
		r.documents.WithLabelValues(outcome(ok)).Inc()
	}
}

func (r *Recorder) Upload(ok bool) {
	if r != nil {
		r.uploads.WithLabelValues(outcome(ok)).Inc()
	}
}

// Succeeded stamps the completion time of a stage.
func (r *Recorder) Succeeded(at time.Time) {
	if r != nil {
		r.lastSuccess.Set(float64(at.Unix()))
	}
}

// WriteTextfile writes the registry in text exposition format to path.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
