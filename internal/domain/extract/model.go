package extract

import (
	"time"

	"github.com/google/uuid"

	"github.com/teds/teds/internal/validation"
)

// ExtractStatus is the batch-level acceptance status.
type ExtractStatus string

const (
	StatusValid   ExtractStatus = "valid"
	StatusInvalid ExtractStatus = "invalid"
)

// RecordStatus is the per-record outcome.
type RecordStatus string

const (
	RecordPass RecordStatus = "pass"
	RecordFail RecordStatus = "fail"
)

// Extract is one provider submission batch. Records are appended in input
// order during ingest and the aggregate is immutable once persisted.
type Extract struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	ProviderID    string        `db:"provider_id" json:"provider_id"`
	RecordGroup   string        `db:"record_group" json:"record_group"`
	CoverageStart time.Time     `db:"coverage_start" json:"coverage_start"`
	CoverageEnd   time.Time     `db:"coverage_end" json:"coverage_end"`
	ExtractedOn   time.Time     `db:"extracted_on" json:"extracted_on"`
	FileName      *string       `db:"file_name" json:"file_name,omitempty"`
	Status        ExtractStatus `db:"status" json:"status"`
	SubmittedAt   time.Time     `db:"submitted_at" json:"submitted_at"`
	Records       []*Record     `db:"-" json:"records,omitempty"`
}

// Record is one raw submission row plus its computed validation outcome.
type Record struct {
	ID        uuid.UUID          `db:"id" json:"id"`
	ExtractID uuid.UUID          `db:"extract_id" json:"extract_id"`
	Position  int                `db:"position" json:"position"`
	Payload   map[string]string  `db:"payload" json:"payload"`
	Status    RecordStatus       `db:"status" json:"status"`
	Warnings  []validation.Issue `db:"warnings" json:"warnings"`
	Failures  []validation.Issue `db:"failures" json:"failures"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
}

// Summary is the listing projection of an extract, ordered most recent
// submission first by the repository.
type Summary struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	ProviderID    string        `db:"provider_id" json:"provider_id"`
	RecordGroup   string        `db:"record_group" json:"record_group"`
	CoverageStart time.Time     `db:"coverage_start" json:"coverage_start"`
	CoverageEnd   time.Time     `db:"coverage_end" json:"coverage_end"`
	ExtractedOn   time.Time     `db:"extracted_on" json:"extracted_on"`
	Status        ExtractStatus `db:"status" json:"status"`
	SubmittedAt   time.Time     `db:"submitted_at" json:"submitted_at"`
	RecordCount   int           `db:"record_count" json:"record_count"`
	PassedCount   int           `db:"passed_count" json:"passed_count"`
	FailedCount   int           `db:"failed_count" json:"failed_count"`
	WarnedCount   int           `db:"warned_count" json:"warned_count"`
	FailureCount  int           `db:"failure_count" json:"failure_count"`
	WarningCount  int           `db:"warning_count" json:"warning_count"`
}

// Meta is the extract-level metadata submitted alongside the raw records.
// Dates arrive as strings and are validated before any record is processed.
type Meta struct {
	ProviderID    string  `json:"provider_id"`
	RecordGroup   string  `json:"record_group"`
	CoverageStart string  `json:"coverage_start"`
	CoverageEnd   string  `json:"coverage_end"`
	ExtractedOn   string  `json:"extracted_on"`
	FileName      *string `json:"file_name,omitempty"`
}

// FailedRecordCount returns the number of records with a fail status.
func (e *Extract) FailedRecordCount() int {
	n := 0
	for _, r := range e.Records {
		if r.Status == RecordFail {
			n++
		}
	}
	return n
}

// WarnedRecordCount returns the number of records carrying at least one warning.
func (e *Extract) WarnedRecordCount() int {
	n := 0
	for _, r := range e.Records {
		if len(r.Warnings) > 0 {
			n++
		}
	}
	return n
}

// computeStatus applies the aggregate invariant: an extract is invalid iff
// any owned record failed.
func computeStatus(records []*Record) ExtractStatus {
	for _, r := range records {
		if r.Status == RecordFail {
			return StatusInvalid
		}
	}
	return StatusValid
}
