package episode

import (
	"github.com/teds/teds/internal/codes"
	"github.com/teds/teds/internal/validation"
)

// Identifier lengths enforced on client fields.
const (
	ssnLength        = 9
	medicaidIDLength = 8
	zipLength        = 5
	areaCodeLength   = 3
	phoneLength      = 7
)

var clientValidator = &validation.Validator{
	Name: "client",
	Schema: []validation.Field{
		{Name: "client_id", Required: true, Type: validation.TypeString},
		{Name: "first_name", Required: true, Type: validation.TypeString},
		{Name: "middle_name", Type: validation.TypeString},
		{Name: "last_name", Required: true, Type: validation.TypeString},
		{Name: "name_suffix", Type: validation.TypeString},
		{Name: "ssn", Type: validation.TypeString},
		{Name: "medicaid_id", Type: validation.TypeString},
		{Name: "dob", Required: true, Type: validation.TypeDate},
		{Name: "gender", Required: true, Type: validation.TypeCode, Codes: codes.Genders},
		{Name: "race", Required: true, Type: validation.TypeCode, Codes: codes.Races},
		{Name: "ethnicity", Required: true, Type: validation.TypeCode, Codes: codes.Ethnicities},
		{Name: "language", Type: validation.TypeCode, Codes: codes.Languages},
		{Name: "address_line", Type: validation.TypeString},
		{Name: "city", Type: validation.TypeString},
		{Name: "state", Type: validation.TypeCode, Codes: codes.States},
		{Name: "zip", Type: validation.TypeString},
		{Name: "area_code", Type: validation.TypeString},
		{Name: "phone_number", Type: validation.TypeString},
	},
	Rules: []validation.Rule{
		nameFormatRule("first_name"),
		nameFormatRule("middle_name"),
		nameFormatRule("last_name"),
		nameFormatRule("city"),
		{
			Trigger: []string{"ssn"},
			Pred:    func(v validation.Values) bool { return validation.AllDigits(v.Get("ssn")) },
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("ssn", validation.WrongFormat, "ssn must be numeric")}
			},
		},
		{
			Trigger: []string{"ssn"},
			Pred:    func(v validation.Values) bool { return len(v.Get("ssn")) == ssnLength },
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("ssn", validation.InvalidFieldLength, "ssn must be exactly %d digits", ssnLength)}
			},
		},
		{
			// Nine identical digits is a placeholder, not a real SSN.
			Trigger: []string{"ssn"},
			Pred:    func(v validation.Values) bool { return !allSameDigit(v.Get("ssn")) },
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Warn("ssn", validation.InvalidValue, "ssn of identical digits looks like a placeholder")}
			},
		},
		{
			Trigger: []string{"medicaid_id"},
			Pred:    func(v validation.Values) bool { return validation.AllDigits(v.Get("medicaid_id")) },
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("medicaid_id", validation.WrongFormat, "medicaid_id must be numeric")}
			},
		},
		{
			Trigger: []string{"medicaid_id"},
			Pred:    func(v validation.Values) bool { return len(v.Get("medicaid_id")) == medicaidIDLength },
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("medicaid_id", validation.InvalidFieldLength, "medicaid_id must be exactly %d digits", medicaidIDLength)}
			},
		},
		{
			// All zeros is accepted (client has no Medicaid id) but flagged.
			Trigger: []string{"medicaid_id"},
			Pred:    func(v validation.Values) bool { return !allZeros(v.Get("medicaid_id")) },
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Warn("medicaid_id", validation.InvalidValue, "medicaid_id of all zeros should only be used when the client has no Medicaid id")}
			},
		},
		{
			Trigger: []string{"zip"},
			Pred: func(v validation.Values) bool {
				z := v.Get("zip")
				return validation.AllDigits(z) && len(z) == zipLength
			},
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("zip", validation.InvalidFieldLength, "zip must be exactly %d digits", zipLength)}
			},
		},
		{
			Trigger: []string{"area_code"},
			Pred:    func(v validation.Values) bool { return ValidPhonePart(v.Get("area_code"), areaCodeLength) },
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("area_code", validation.WrongFormat, "area_code must be %d digits and must not begin with 0", areaCodeLength)}
			},
		},
		{
			Trigger: []string{"phone_number"},
			Pred:    func(v validation.Values) bool { return ValidPhonePart(v.Get("phone_number"), phoneLength) },
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("phone_number", validation.WrongFormat, "phone_number must be %d digits and must not begin with 0", phoneLength)}
			},
		},
	},
}

func nameFormatRule(field string) validation.Rule {
	return validation.Rule{
		Trigger: []string{field},
		// The raw value is checked so leading and trailing spaces are
		// reported rather than trimmed away.
		Pred: func(v validation.Values) bool { return ValidName(v.Raw(field)) },
		Issues: func(v validation.Values) []validation.Issue {
			return []validation.Issue{validation.Fail(field, validation.WrongFormat, "%s may only contain letters, hyphens, apostrophes, and single embedded spaces", field)}
		},
	}
}

// ValidateClient runs the client validator against a client sub-map.
func ValidateClient(vals validation.Values) []validation.Issue {
	return clientValidator.Validate(vals)
}
