package episode

import (
	"testing"

	"github.com/teds/teds/internal/validation"
)

func validProfile() validation.Values {
	return validation.Values{
		"marital_status":    "1",
		"veteran_status":    "2",
		"education":         "3",
		"employment_status": "1",
	}
}

func TestValidateClientProfile_Valid(t *testing.T) {
	if issues := ValidateClientProfile(validProfile()); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestValidateClientProfile_RequiredFields(t *testing.T) {
	issues := ValidateClientProfile(validation.Values{})
	for _, key := range []string{"marital_status", "veteran_status", "education", "employment_status"} {
		if !hasIssue(issues, key, validation.MissingValue) {
			t.Errorf("expected missing_value on %s, got %v", key, issues)
		}
	}
}

func TestValidateClientProfile_ArrestCount(t *testing.T) {
	vals := validProfile()
	vals["arrests_past_30_days"] = "3"
	if issues := ValidateClientProfile(vals); !hasIssue(issues, "arrests_past_30_days", validation.InvalidValue) {
		t.Errorf("expected arrest count code issue, got %v", issues)
	}

	vals["arrests_past_30_days"] = "2"
	if issues := ValidateClientProfile(vals); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}
