package episode

import (
	"reflect"
	"testing"
	"time"

	"github.com/teds/teds/internal/validation"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testContext pins the extract window and today's date so the date-order
// rules are deterministic.
func testContext() Context {
	return Context{
		CoverageStart: day(2022, time.July, 1),
		CoverageEnd:   day(2022, time.July, 31),
		ExtractedOn:   day(2022, time.July, 31),
		Today:         day(2022, time.August, 1),
	}
}

// validRaw is a fully valid admission row inside the test coverage window.
func validRaw() map[string]string {
	return map[string]string{
		"record_type":       "A",
		"episode_id":        "EP-1001",
		"admission_id":      "ADM-1001",
		"admission_date":    "2022-07-15",
		"last_contact_date": "2022-07-20",
		"treatment_type":    "4",
		"referral_source":   "1",
		"payment_source":    "4",
		"npi":               "1234567890",

		"client_id":    "CL-1001",
		"first_name":   "John",
		"last_name":    "Smith",
		"ssn":          "123456789",
		"medicaid_id":  "12345678",
		"dob":          "1990-05-10",
		"gender":       "1",
		"race":         "5",
		"ethnicity":    "5",
		"language":     "1",
		"city":         "Springfield",
		"state":        "IL",
		"zip":          "62704",
		"area_code":    "217",
		"phone_number": "5551234",

		"marital_status":       "1",
		"veteran_status":       "2",
		"education":            "3",
		"employment_status":    "1",
		"legal_status":         "1",
		"school_attendance":    "2",
		"pregnant":             "96",
		"self_help_frequency":  "1",
		"arrests_past_30_days": "0",

		"gaf_admission":       "55",
		"smi_sed":             "3",
		"co_occurring":        "2",
		"primary_substance":   "2",
		"primary_route":       "1",
		"primary_frequency":   "5",
		"secondary_substance": "1",
	}
}

func validateRaw(t *testing.T, raw map[string]string) []validation.Issue {
	t.Helper()
	d, err := Transform(raw)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	return Validate(d, testContext())
}

func hasIssue(issues []validation.Issue, key string, category validation.Category) bool {
	for _, issue := range issues {
		if issue.Key == key && issue.Category == category {
			return true
		}
	}
	return false
}

func TestValidate_CleanAdmissionRecord(t *testing.T) {
	issues := validateRaw(t, validRaw())
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestValidate_MissingAdmissionDate(t *testing.T) {
	raw := validRaw()
	delete(raw, "admission_date")
	issues := validateRaw(t, raw)
	if len(issues) != 1 {
		t.Fatalf("expected exactly 1 issue, got %d: %v", len(issues), issues)
	}
	if !hasIssue(issues, "admission_date", validation.MissingValue) {
		t.Errorf("expected missing_value on admission_date, got %v", issues)
	}
}

func TestValidate_TreatmentTypeBands(t *testing.T) {
	tests := []struct {
		recordType    string
		treatmentType string
		ok            bool
	}{
		{"A", "4", true},
		{"T", "1", true},
		{"D", "8", true},
		{"A", "70", false},
		{"M", "72", true},
		{"M", "4", false},
		{"C", "96", true},
		{"C", "4", false},
		{"C", "70", false},
	}
	for _, tt := range tests {
		raw := validRaw()
		raw["record_type"] = tt.recordType
		raw["treatment_type"] = tt.treatmentType
		issues := validateRaw(t, raw)
		got := hasIssue(issues, "treatment_type", validation.InvalidValue)
		if got == tt.ok {
			t.Errorf("record_type=%s treatment_type=%s: band issue=%v, want ok=%v",
				tt.recordType, tt.treatmentType, got, tt.ok)
		}
	}
}

func TestValidate_DischargeRequiresReason(t *testing.T) {
	raw := validRaw()
	raw["discharge_date"] = "2022-07-25"
	issues := validateRaw(t, raw)
	if !hasIssue(issues, "discharge_reason", validation.MissingValue) {
		t.Errorf("expected missing discharge_reason, got %v", issues)
	}

	raw["discharge_reason"] = "1"
	issues = validateRaw(t, raw)
	if hasIssue(issues, "discharge_reason", validation.MissingValue) {
		t.Errorf("expected no discharge_reason issue with reason present, got %v", issues)
	}
}

func TestValidate_ReasonWithoutDischargeDate(t *testing.T) {
	raw := validRaw()
	raw["discharge_reason"] = "1"
	issues := validateRaw(t, raw)
	if !hasIssue(issues, "discharge_reason", validation.DataInconsistency) {
		t.Errorf("expected discharge_reason inconsistency, got %v", issues)
	}
}

func TestValidate_DateOrderings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]string)
		wantKey string
	}{
		{
			"discharge before admission",
			func(raw map[string]string) {
				raw["discharge_date"] = "2022-07-10"
				raw["discharge_reason"] = "1"
			},
			"discharge_date",
		},
		{
			"last contact before admission",
			func(raw map[string]string) { raw["last_contact_date"] = "2022-07-01" },
			"last_contact_date",
		},
		{
			"admission before coverage window",
			func(raw map[string]string) {
				raw["admission_date"] = "2022-06-15"
				raw["last_contact_date"] = "2022-07-01"
			},
			"admission_date",
		},
		{
			"dob after admission",
			func(raw map[string]string) { raw["dob"] = "2023-01-20" },
			"dob",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(raw)
			issues := validateRaw(t, raw)
			if !hasIssue(issues, tt.wantKey, validation.DataInconsistency) {
				t.Errorf("expected data_inconsistency on %s, got %v", tt.wantKey, issues)
			}
		})
	}
}

func TestValidate_AdmissionInFuture(t *testing.T) {
	raw := validRaw()
	raw["admission_date"] = "2022-07-25"
	d, err := Transform(raw)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	ctx := testContext()
	ctx.Today = day(2022, time.July, 20)
	issues := Validate(d, ctx)
	if !hasIssue(issues, "admission_date", validation.DataInconsistency) {
		t.Errorf("expected future-admission inconsistency, got %v", issues)
	}
}

func TestValidate_PregnancyGenderConflict(t *testing.T) {
	raw := validRaw()
	raw["pregnant"] = "1"
	issues := validateRaw(t, raw)
	if !hasIssue(issues, "pregnant", validation.DataInconsistency) {
		t.Errorf("expected pregnant/gender conflict, got %v", issues)
	}

	raw["gender"] = "2"
	issues = validateRaw(t, raw)
	if hasIssue(issues, "pregnant", validation.DataInconsistency) {
		t.Errorf("expected no conflict for female gender, got %v", issues)
	}
}

func TestValidate_SMISEDAgeApplicability(t *testing.T) {
	tests := []struct {
		name   string
		smiSed string
		dob    string
		ok     bool
	}{
		{"SMI adult", "1", "1990-05-10", true},
		{"SMI minor", "1", "2006-07-20", false},
		{"SMI on 18th birthday", "1", "2004-07-15", true},
		{"SED minor", "2", "2010-03-01", true},
		{"SED adult", "2", "1990-05-10", false},
		{"neither ignores age", "3", "2010-03-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			raw["smi_sed"] = tt.smiSed
			raw["dob"] = tt.dob
			issues := validateRaw(t, raw)
			got := !hasIssue(issues, "smi_sed", validation.DataInconsistency)
			if got != tt.ok {
				t.Errorf("smi_sed=%s dob=%s: ok=%v, want %v (%v)", tt.smiSed, tt.dob, got, tt.ok, issues)
			}
		})
	}
}

func TestValidate_CourtReferralPairing(t *testing.T) {
	tests := []struct {
		name     string
		referral string
		cjr      string
		wantKey  string
	}{
		{"court referral without detail", "7", "", "criminal_justice_referral"},
		{"court referral with escape detail", "7", "96", "criminal_justice_referral"},
		{"court referral with detail", "7", "3", ""},
		{"detail without court referral", "1", "3", "referral_source"},
		{"escape detail without court referral", "1", "96", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			raw["referral_source"] = tt.referral
			if tt.cjr != "" {
				raw["criminal_justice_referral"] = tt.cjr
			}
			issues := validateRaw(t, raw)
			if tt.wantKey == "" {
				if hasIssue(issues, "referral_source", validation.DataInconsistency) ||
					hasIssue(issues, "criminal_justice_referral", validation.DataInconsistency) {
					t.Errorf("expected no pairing issue, got %v", issues)
				}
				return
			}
			if !hasIssue(issues, tt.wantKey, validation.DataInconsistency) {
				t.Errorf("expected data_inconsistency on %s, got %v", tt.wantKey, issues)
			}
		})
	}
}

func TestValidate_NPILength(t *testing.T) {
	raw := validRaw()
	raw["npi"] = "12345"
	issues := validateRaw(t, raw)
	if !hasIssue(issues, "npi", validation.InvalidFieldLength) {
		t.Errorf("expected npi length issue, got %v", issues)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	raw := validRaw()
	raw["referral_source"] = "7"
	raw["ssn"] = "999999999"
	delete(raw, "marital_status")

	d, err := Transform(raw)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	first := Validate(d, testContext())
	second := Validate(d, testContext())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical issue lists, got %v and %v", first, second)
	}
	if len(first) == 0 {
		t.Error("expected the mutated record to carry issues")
	}
}

func TestValidate_AccumulatesAcrossEntities(t *testing.T) {
	raw := validRaw()
	delete(raw, "marital_status") // profile failure
	raw["zip"] = "123"            // client failure
	raw["gaf_admission"] = "150"  // clinical failure
	raw["treatment_type"] = "70"  // episode failure

	issues := validateRaw(t, raw)
	for _, want := range []struct {
		key      string
		category validation.Category
	}{
		{"marital_status", validation.MissingValue},
		{"zip", validation.InvalidFieldLength},
		{"gaf_admission", validation.InvalidValue},
		{"treatment_type", validation.InvalidValue},
	} {
		if !hasIssue(issues, want.key, want.category) {
			t.Errorf("expected %s/%s among issues, got %v", want.key, want.category, issues)
		}
	}
}
