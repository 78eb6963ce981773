package extract

import (
	"time"

	"github.com/teds/teds/internal/codes"
	"github.com/teds/teds/internal/validation"
)

// maxCoverageDays bounds the coverage window of one extract.
const maxCoverageDays = 365

// ValidateMeta checks the extract-level metadata. Any returned issue aborts
// the whole ingest call before a single record is processed.
func ValidateMeta(meta Meta, today time.Time) []validation.Issue {
	var issues []validation.Issue

	if meta.ProviderID == "" {
		issues = append(issues, validation.Fail("provider_id", validation.MissingValue, "provider_id is required"))
	}
	if meta.RecordGroup == "" {
		issues = append(issues, validation.Fail("record_group", validation.MissingValue, "record_group is required"))
	} else if !codes.RecordGroups.Has(meta.RecordGroup) {
		issues = append(issues, validation.Fail("record_group", validation.InvalidValue, "%s is not a valid record group", meta.RecordGroup))
	}

	start, ok := metaDate(&issues, "coverage_start", meta.CoverageStart, today)
	end, okEnd := metaDate(&issues, "coverage_end", meta.CoverageEnd, today)
	metaDate(&issues, "extracted_on", meta.ExtractedOn, today)

	if ok && okEnd {
		if end.Before(start) {
			issues = append(issues, validation.Fail("coverage_end", validation.DataInconsistency, "coverage_end must not precede coverage_start"))
		} else if end.Sub(start) > maxCoverageDays*24*time.Hour {
			issues = append(issues, validation.Fail("coverage_end", validation.DataInconsistency, "coverage window must not span more than %d days", maxCoverageDays))
		}
	}
	return issues
}

// metaDate validates presence, format, and the not-in-the-future constraint
// for one metadata date, appending issues as it goes.
func metaDate(issues *[]validation.Issue, key, value string, today time.Time) (time.Time, bool) {
	if value == "" {
		*issues = append(*issues, validation.Fail(key, validation.MissingValue, "%s is required", key))
		return time.Time{}, false
	}
	t, err := time.Parse(validation.DateLayout, value)
	if err != nil {
		*issues = append(*issues, validation.Fail(key, validation.WrongFormat, "%s must be a date in YYYY-MM-DD format", key))
		return time.Time{}, false
	}
	if t.After(today) {
		*issues = append(*issues, validation.Fail(key, validation.DataInconsistency, "%s must not be in the future", key))
		return t, false
	}
	return t, true
}
