// Package episode transforms raw submission rows into a canonical Episode
// draft and validates the draft against the field-level and cross-field rule
// catalog. All findings accumulate; nothing short-circuits.
package episode

import (
	"time"

	"github.com/teds/teds/internal/codes"
	"github.com/teds/teds/internal/validation"
)

// Context carries the extract-level dates merged into the episode candidate
// so cross-date rules can fire. Today defaults to time.Now() when zero.
type Context struct {
	CoverageStart time.Time
	CoverageEnd   time.Time
	ExtractedOn   time.Time
	Today         time.Time
}

// Context keys merged into the episode candidate. They share the namespace of
// episode fields, so no submitted field may reuse these names.
const (
	keyCoverageStart = "coverage_start"
	keyCoverageEnd   = "coverage_end"
	keyExtractedOn   = "extracted_on"
	keyToday         = "today"
)

const npiLength = 10

var episodeValidator = &validation.Validator{
	Name: "episode",
	Schema: []validation.Field{
		{Name: "record_type", Required: true, Type: validation.TypeCode, Codes: codes.RecordTypes},
		{Name: "episode_id", Required: true, Type: validation.TypeString},
		{Name: "admission_id", Required: true, Type: validation.TypeString},
		{Name: "admission_date", Required: true, Type: validation.TypeDate},
		{Name: "discharge_date", Type: validation.TypeDate},
		{Name: "last_contact_date", Type: validation.TypeDate},
		{Name: "treatment_type", Required: true, Type: validation.TypeString},
		{Name: "discharge_reason", Type: validation.TypeCode, Codes: codes.DischargeReasons},
		{Name: "referral_source", Required: true, Type: validation.TypeCode, Codes: codes.ReferralSources},
		{Name: "criminal_justice_referral", Type: validation.TypeCode, Codes: codes.CriminalJusticeReferrals},
		{Name: "payment_source", Type: validation.TypeCode, Codes: codes.PaymentSources},
		{Name: "prior_admissions", Type: validation.TypeNumeric},
		{Name: "npi", Type: validation.TypeString},
	},
	Rules: []validation.Rule{
		{
			Trigger: []string{"npi"},
			Pred: func(v validation.Values) bool {
				n := v.Get("npi")
				return validation.AllDigits(n) && len(n) == npiLength
			},
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("npi", validation.InvalidFieldLength, "npi must be exactly %d digits", npiLength)}
			},
		},
		{
			Trigger: []string{"record_type", "treatment_type"},
			Pred: func(v validation.Values) bool {
				return treatmentTypeMatchesRecordType(v.Get("record_type"), v.Get("treatment_type"))
			},
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("treatment_type", validation.InvalidValue,
					"treatment_type %s is not valid for record_type %s", v.Get("treatment_type"), v.Get("record_type"))}
			},
		},
		{
			Trigger: []string{"discharge_date"},
			Pred:    func(v validation.Values) bool { return v.Has("discharge_reason") },
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("discharge_reason", validation.MissingValue, "discharge_reason is required when a discharge date is present")}
			},
		},
		{
			Trigger: []string{"discharge_reason"},
			Pred:    func(v validation.Values) bool { return v.Has("discharge_date") },
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("discharge_reason", validation.DataInconsistency, "discharge_reason must be blank when no discharge date is present")}
			},
		},
		dateOrderRule("admission_date", "last_contact_date", "last_contact_date", "last_contact_date must not precede admission_date"),
		dateOrderRule("last_contact_date", keyExtractedOn, "last_contact_date", "last_contact_date must not follow the extraction date"),
		dateOrderRule(keyCoverageStart, "admission_date", "admission_date", "admission_date must not precede the coverage window"),
		dateOrderRule("admission_date", keyCoverageEnd, "admission_date", "admission_date must not follow the coverage window"),
		dateOrderRule("admission_date", "discharge_date", "discharge_date", "discharge_date must not precede admission_date"),
		dateOrderRule("discharge_date", keyCoverageEnd, "discharge_date", "discharge_date must not follow the coverage window"),
		dateOrderRule("discharge_date", keyExtractedOn, "discharge_date", "discharge_date must not follow the extraction date"),
		dateOrderRule("dob", "admission_date", "dob", "dob must not follow admission_date"),
		dateOrderRule("admission_date", keyToday, "admission_date", "admission_date must not be in the future"),
		{
			Trigger: []string{"pregnant", "gender"},
			Pred: func(v validation.Values) bool {
				return !(v.Get("pregnant") == "1" && v.Get("gender") == "1")
			},
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("pregnant", validation.DataInconsistency, "pregnant is incompatible with a male gender code")}
			},
		},
		{
			Trigger: []string{"smi_sed", "dob", "admission_date"},
			Pred: func(v validation.Values) bool {
				dob, ok := v.Date("dob")
				if !ok {
					return true
				}
				admission, ok := v.Date("admission_date")
				if !ok {
					return true
				}
				age := Age(dob, admission)
				switch v.Get("smi_sed") {
				case codes.SMICode:
					return age >= codes.SMISEDAgeCutoff
				case codes.SEDCode:
					return age < codes.SMISEDAgeCutoff
				}
				return true
			},
			Issues: func(v validation.Values) []validation.Issue {
				if v.Get("smi_sed") == codes.SMICode {
					return []validation.Issue{validation.Fail("smi_sed", validation.DataInconsistency, "SMI applies only to clients aged %d or older at admission", codes.SMISEDAgeCutoff)}
				}
				return []validation.Issue{validation.Fail("smi_sed", validation.DataInconsistency, "SED applies only to clients under %d at admission", codes.SMISEDAgeCutoff)}
			},
		},
		{
			Trigger: []string{"referral_source"},
			Pred: func(v validation.Values) bool {
				if v.Get("referral_source") != codes.CourtReferralSource {
					return true
				}
				return cjrApplicable(v.Get("criminal_justice_referral"))
			},
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("criminal_justice_referral", validation.DataInconsistency,
					"criminal_justice_referral must carry an applicable code when referral_source is %s", codes.CourtReferralSource)}
			},
		},
		{
			Trigger: []string{"criminal_justice_referral"},
			Pred: func(v validation.Values) bool {
				if !cjrApplicable(v.Get("criminal_justice_referral")) {
					return true
				}
				return v.Get("referral_source") == codes.CourtReferralSource
			},
			Issues: func(v validation.Values) []validation.Issue {
				return []validation.Issue{validation.Fail("referral_source", validation.DataInconsistency,
					"referral_source must be %s when criminal_justice_referral carries an applicable code", codes.CourtReferralSource)}
			},
		},
	},
}

// treatmentTypeMatchesRecordType checks the band pairing: substance-use rows
// (A/T/D) use codes 1-8, mental-health rows (M) use 70-77, and collateral
// rows (C) use the reserved escape code.
func treatmentTypeMatchesRecordType(recordType, treatmentType string) bool {
	switch recordType {
	case "A", "T", "D":
		return codes.SubstanceTreatmentTypes.Has(treatmentType)
	case "M":
		return codes.MentalHealthTreatmentTypes.Has(treatmentType)
	case "C":
		return treatmentType == codes.CollateralTreatmentType
	}
	return true
}

// cjrApplicable reports whether a criminal-justice referral code denotes an
// actual referral rather than a not-applicable/unknown escape.
func cjrApplicable(code string) bool {
	switch code {
	case "", codes.NotApplicable, codes.Unknown, codes.NotCollected:
		return false
	}
	return true
}

func dateOrderRule(earlier, later, issueKey, text string) validation.Rule {
	return validation.Rule{
		Trigger: []string{earlier, later},
		Pred: func(v validation.Values) bool {
			a, ok := v.Date(earlier)
			if !ok {
				// Unparseable dates are already reported by the schema phase.
				return true
			}
			b, ok := v.Date(later)
			if !ok {
				return true
			}
			return !a.After(b)
		},
		Issues: func(v validation.Values) []validation.Issue {
			return []validation.Issue{validation.Fail(issueKey, validation.DataInconsistency, text)}
		},
	}
}

// Validate runs the episode validator and the three sub-entity validators
// against a draft and merges all findings into one list. Sub-entity issues
// are keyed by leaf field name with no entity prefix; a field name shared by
// two sub-entities therefore yields indistinguishable keys. That is a known
// constraint of the reporting format, not something this engine disambiguates.
func Validate(d Draft, ctx Context) []validation.Issue {
	merged := mergedCandidate(d, ctx)

	var issues []validation.Issue
	issues = append(issues, episodeValidator.Validate(merged)...)
	issues = append(issues, ValidateClient(d.Client)...)
	issues = append(issues, ValidateClientProfile(d.ClientProfile)...)
	issues = append(issues, ValidateClinicalInfo(d.ClinicalInfo)...)
	return issues
}

// mergedCandidate flattens the draft into one candidate map and adds the
// extract date context, so episode-level rules can reason across entities.
func mergedCandidate(d Draft, ctx Context) validation.Values {
	merged := validation.Values{}
	for _, vals := range []validation.Values{d.ClinicalInfo, d.ClientProfile, d.Client, d.Episode} {
		for k, v := range vals {
			merged[k] = v
		}
	}

	today := ctx.Today
	if today.IsZero() {
		today = time.Now()
	}
	merged[keyToday] = today.Format(validation.DateLayout)
	if !ctx.CoverageStart.IsZero() {
		merged[keyCoverageStart] = ctx.CoverageStart.Format(validation.DateLayout)
	}
	if !ctx.CoverageEnd.IsZero() {
		merged[keyCoverageEnd] = ctx.CoverageEnd.Format(validation.DateLayout)
	}
	if !ctx.ExtractedOn.IsZero() {
		merged[keyExtractedOn] = ctx.ExtractedOn.Format(validation.DateLayout)
	}
	return merged
}
