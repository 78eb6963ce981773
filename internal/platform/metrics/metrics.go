// Package metrics exposes Prometheus instrumentation for the ingest pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	extractsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "teds",
		Name:      "extracts_ingested_total",
		Help:      "Completed extract ingests by final status.",
	}, []string{"status"})

	extractsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "teds",
		Name:      "extracts_rejected_total",
		Help:      "Ingest calls aborted by extract metadata validation.",
	})

	recordsValidated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "teds",
		Name:      "records_validated_total",
		Help:      "Validated records by outcome.",
	}, []string{"status"})

	validationIssues = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "teds",
		Name:      "validation_issues_total",
		Help:      "Validation issues raised, by category and severity.",
	}, []string{"category", "severity"})

	ingestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "teds",
		Name:      "ingest_duration_seconds",
		Help:      "Wall time of whole ingest calls.",
		Buckets:   prometheus.DefBuckets,
	})
)

// ExtractIngested records a completed ingest with its final extract status.
func ExtractIngested(status string) {
	extractsIngested.WithLabelValues(status).Inc()
}

// ExtractRejected records an ingest aborted by metadata validation.
func ExtractRejected() {
	extractsRejected.Inc()
}

// RecordValidated records one validated record outcome.
func RecordValidated(status string) {
	recordsValidated.WithLabelValues(status).Inc()
}

// IssueRaised records one validation issue.
func IssueRaised(category, severity string) {
	validationIssues.WithLabelValues(category, severity).Inc()
}

// ObserveIngestDuration records the wall time of one ingest call.
func ObserveIngestDuration(seconds float64) {
	ingestDuration.Observe(seconds)
}
