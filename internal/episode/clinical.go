package episode

import (
	"strconv"

	"github.com/teds/teds/internal/codes"
	"github.com/teds/teds/internal/validation"
)

var clinicalInfoValidator = &validation.Validator{
	Name: "clinical_info",
	Schema: []validation.Field{
		{Name: "gaf_admission", Type: validation.TypeNumeric},
		{Name: "gaf_discharge", Type: validation.TypeNumeric},
		{Name: "smi_sed", Type: validation.TypeCode, Codes: codes.SMISEDStatuses},
		{Name: "co_occurring", Type: validation.TypeCode, Codes: codes.CoOccurringFlags},
		{Name: "primary_substance", Type: validation.TypeCode, Codes: codes.Substances},
		{Name: "primary_route", Type: validation.TypeCode, Codes: codes.Routes},
		{Name: "primary_frequency", Type: validation.TypeCode, Codes: codes.Frequencies},
		{Name: "secondary_substance", Type: validation.TypeCode, Codes: codes.Substances},
		{Name: "secondary_route", Type: validation.TypeCode, Codes: codes.Routes},
		{Name: "tertiary_substance", Type: validation.TypeCode, Codes: codes.Substances},
		{Name: "tertiary_route", Type: validation.TypeCode, Codes: codes.Routes},
	},
	Rules: []validation.Rule{
		gafRangeRule("gaf_admission"),
		gafRangeRule("gaf_discharge"),
		routePairRule("primary_substance", "primary_route"),
		routePairRule("secondary_substance", "secondary_route"),
		routePairRule("tertiary_substance", "tertiary_route"),
	},
}

func gafRangeRule(field string) validation.Rule {
	return validation.Rule{
		Trigger: []string{field},
		Pred: func(v validation.Values) bool {
			n, err := strconv.Atoi(v.Get(field))
			if err != nil {
				// Non-numeric is already reported by the schema phase.
				return true
			}
			return n >= 1 && n <= 100
		},
		Issues: func(v validation.Values) []validation.Issue {
			return []validation.Issue{validation.Fail(field, validation.InvalidValue, "%s must be between 1 and 100", field)}
		},
	}
}

// routePairRule requires the route whenever its paired substance denotes an
// actual substance, and forbids it when the substance is reported as none.
func routePairRule(substance, route string) validation.Rule {
	return validation.Rule{
		Trigger: []string{substance},
		Pred: func(v validation.Values) bool {
			code := v.Get(substance)
			if !codes.NoSubstanceCodes.Has(code) {
				return v.Has(route)
			}
			if code == "1" { // none
				return !v.Has(route)
			}
			return true
		},
		Issues: func(v validation.Values) []validation.Issue {
			if codes.NoSubstanceCodes.Has(v.Get(substance)) {
				return []validation.Issue{validation.Fail(route, validation.DataInconsistency, "%s must be blank when %s reports no substance", route, substance)}
			}
			return []validation.Issue{validation.Fail(route, validation.MissingValue, "%s is required when %s reports an actual substance", route, substance)}
		},
	}
}

// ValidateClinicalInfo runs the clinical validator against a clinical-info
// sub-map. The SMI/SED age rule lives on the episode validator, which sees
// the client's date of birth.
func ValidateClinicalInfo(vals validation.Values) []validation.Issue {
	return clinicalInfoValidator.Validate(vals)
}
