package episode

import (
	"github.com/teds/teds/internal/codes"
	"github.com/teds/teds/internal/validation"
)

// Arrest counts are reported as 0, 1, or 2 (two or more), with the usual
// unknown/not-collected escapes.
var arrestCounts = codes.Table{
	"0":  "No arrests",
	"1":  "One arrest",
	"2":  "Two or more arrests",
	"97": "Unknown",
	"98": "Not collected",
}

var clientProfileValidator = &validation.Validator{
	Name: "client_profile",
	Schema: []validation.Field{
		{Name: "marital_status", Required: true, Type: validation.TypeCode, Codes: codes.MaritalStatuses},
		{Name: "veteran_status", Required: true, Type: validation.TypeCode, Codes: codes.VeteranStatuses},
		{Name: "education", Required: true, Type: validation.TypeCode, Codes: codes.EducationLevels},
		{Name: "employment_status", Required: true, Type: validation.TypeCode, Codes: codes.EmploymentStatuses},
		{Name: "legal_status", Type: validation.TypeCode, Codes: codes.LegalStatuses},
		{Name: "school_attendance", Type: validation.TypeCode, Codes: codes.SchoolAttendances},
		{Name: "pregnant", Type: validation.TypeCode, Codes: codes.PregnancyStatuses},
		{Name: "self_help_frequency", Type: validation.TypeCode, Codes: codes.SelfHelpFrequencies},
		{Name: "arrests_past_30_days", Type: validation.TypeCode, Codes: arrestCounts},
	},
	Rules: nil,
}

// ValidateClientProfile runs the psychosocial validator against a
// client-profile sub-map. Cross-entity rules that also need client or episode
// fields (pregnancy vs. gender) live on the episode validator, which sees the
// merged candidate.
func ValidateClientProfile(vals validation.Values) []validation.Issue {
	return clientProfileValidator.Validate(vals)
}
