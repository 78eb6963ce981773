package episode

import (
	"errors"
	"strings"

	"github.com/teds/teds/internal/validation"
)

// ErrEmptyPayload is returned when a raw record carries no non-blank values.
var ErrEmptyPayload = errors.New("payload has no content")

// Draft is the canonical nested view of one raw record, grouped into the four
// entities the validators operate on. It exists only for the duration of one
// record's validation.
type Draft struct {
	Episode       validation.Values
	Client        validation.Values
	ClientProfile validation.Values
	ClinicalInfo  validation.Values
}

// Static field groups. A raw key that belongs to none of them is dropped.
var episodeFields = fieldSet(
	"record_type", "episode_id", "admission_id", "admission_date",
	"discharge_date", "last_contact_date", "treatment_type", "discharge_reason",
	"referral_source", "criminal_justice_referral", "payment_source",
	"prior_admissions", "npi",
)

var clientFields = fieldSet(
	"client_id", "first_name", "middle_name", "last_name", "name_suffix",
	"ssn", "medicaid_id", "dob", "gender", "race", "ethnicity", "language",
	"address_line", "city", "state", "zip", "area_code", "phone_number",
)

var clientProfileFields = fieldSet(
	"marital_status", "veteran_status", "education", "employment_status",
	"legal_status", "school_attendance", "pregnant", "self_help_frequency",
	"arrests_past_30_days",
)

var clinicalInfoFields = fieldSet(
	"gaf_admission", "gaf_discharge", "smi_sed", "co_occurring",
	"primary_substance", "primary_route", "primary_frequency",
	"secondary_substance", "secondary_route",
	"tertiary_substance", "tertiary_route",
)

func fieldSet(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// IsBlank reports whether a raw record carries no non-blank values.
func IsBlank(raw map[string]string) bool {
	for _, v := range raw {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Transform partitions a flat raw record into the canonical Draft. Unknown
// keys are silently dropped. The function is pure: the same input always
// yields a structurally identical Draft.
func Transform(raw map[string]string) (Draft, error) {
	if IsBlank(raw) {
		return Draft{}, ErrEmptyPayload
	}

	d := Draft{
		Episode:       validation.Values{},
		Client:        validation.Values{},
		ClientProfile: validation.Values{},
		ClinicalInfo:  validation.Values{},
	}

	for key, value := range raw {
		switch {
		case member(episodeFields, key):
			d.Episode[key] = value
		case member(clientFields, key):
			d.Client[key] = value
		case member(clientProfileFields, key):
			d.ClientProfile[key] = value
		case member(clinicalInfoFields, key):
			d.ClinicalInfo[key] = value
		}
	}
	return d, nil
}

func member(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
