package extract

import (
	"testing"
	"time"

	"github.com/teds/teds/internal/validation"
)

var metaToday = time.Date(2022, time.August, 1, 0, 0, 0, 0, time.UTC)

func validMeta() Meta {
	return Meta{
		ProviderID:    "PRV-001",
		RecordGroup:   "admission",
		CoverageStart: "2022-07-01",
		CoverageEnd:   "2022-07-31",
		ExtractedOn:   "2022-07-31",
	}
}

func findIssue(issues []validation.Issue, key string, category validation.Category) bool {
	for _, issue := range issues {
		if issue.Key == key && issue.Category == category {
			return true
		}
	}
	return false
}

func TestValidateMeta_Valid(t *testing.T) {
	if issues := ValidateMeta(validMeta(), metaToday); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestValidateMeta_MissingFields(t *testing.T) {
	issues := ValidateMeta(Meta{}, metaToday)
	for _, key := range []string{"provider_id", "record_group", "coverage_start", "coverage_end", "extracted_on"} {
		if !findIssue(issues, key, validation.MissingValue) {
			t.Errorf("expected missing_value on %s, got %v", key, issues)
		}
	}
}

func TestValidateMeta_InvalidRecordGroup(t *testing.T) {
	meta := validMeta()
	meta.RecordGroup = "monthly"
	if issues := ValidateMeta(meta, metaToday); !findIssue(issues, "record_group", validation.InvalidValue) {
		t.Errorf("expected invalid record_group, got %v", issues)
	}
}

func TestValidateMeta_BadDateFormat(t *testing.T) {
	meta := validMeta()
	meta.ExtractedOn = "07/31/2022"
	if issues := ValidateMeta(meta, metaToday); !findIssue(issues, "extracted_on", validation.WrongFormat) {
		t.Errorf("expected wrong_format on extracted_on, got %v", issues)
	}
}

func TestValidateMeta_FutureDate(t *testing.T) {
	meta := validMeta()
	meta.ExtractedOn = "2022-09-15"
	if issues := ValidateMeta(meta, metaToday); !findIssue(issues, "extracted_on", validation.DataInconsistency) {
		t.Errorf("expected future-date inconsistency, got %v", issues)
	}
}

func TestValidateMeta_WindowOrder(t *testing.T) {
	meta := validMeta()
	meta.CoverageStart = "2022-07-31"
	meta.CoverageEnd = "2022-07-01"
	if issues := ValidateMeta(meta, metaToday); !findIssue(issues, "coverage_end", validation.DataInconsistency) {
		t.Errorf("expected window-order inconsistency, got %v", issues)
	}
}

func TestValidateMeta_WindowSpan(t *testing.T) {
	meta := validMeta()
	meta.CoverageStart = "2021-01-01"
	meta.CoverageEnd = "2022-06-30"
	if issues := ValidateMeta(meta, metaToday); !findIssue(issues, "coverage_end", validation.DataInconsistency) {
		t.Errorf("expected window-span inconsistency, got %v", issues)
	}

	// Exactly one year is allowed.
	meta.CoverageStart = "2021-07-01"
	meta.CoverageEnd = "2022-07-01"
	if issues := ValidateMeta(meta, metaToday); len(issues) != 0 {
		t.Errorf("expected a 365-day window to pass, got %v", issues)
	}
}
