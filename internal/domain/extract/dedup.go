package extract

import "github.com/teds/teds/internal/validation"

// CheckDuplicate reports a blocking inconsistency when admissionID is already
// present in the known set. The scope of the set — this batch only, or all
// historically ingested extracts — is the caller's decision; this check never
// mutates it.
func CheckDuplicate(admissionID string, known map[string]struct{}) *validation.Issue {
	if admissionID == "" {
		return nil
	}
	if _, seen := known[admissionID]; !seen {
		return nil
	}
	issue := validation.Fail("admission_id", validation.DataInconsistency,
		"admission_id must be a unique admission identifier; %s was already submitted", admissionID)
	return &issue
}
