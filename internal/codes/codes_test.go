package codes

import "testing"

func TestTableHas(t *testing.T) {
	if !Genders.Has("1") || !Genders.Has("98") {
		t.Error("expected known gender codes to be members")
	}
	if Genders.Has("3") || Genders.Has("") {
		t.Error("expected unknown codes to be rejected")
	}
}

func TestTableLabel(t *testing.T) {
	if got := RecordTypes.Label("A"); got != "Admission" {
		t.Errorf("unexpected label: %q", got)
	}
	if got := RecordTypes.Label("Z"); got != "" {
		t.Errorf("expected empty label for unknown code, got %q", got)
	}
}

func TestTreatmentTypeBandsDisjoint(t *testing.T) {
	for code := range SubstanceTreatmentTypes {
		if MentalHealthTreatmentTypes.Has(code) {
			t.Errorf("code %s appears in both treatment-type bands", code)
		}
	}
	if SubstanceTreatmentTypes.Has(CollateralTreatmentType) || MentalHealthTreatmentTypes.Has(CollateralTreatmentType) {
		t.Error("collateral escape code must belong to neither band")
	}
}

func TestNoSubstanceCodesSubsetOfSubstances(t *testing.T) {
	for code := range NoSubstanceCodes {
		if !Substances.Has(code) {
			t.Errorf("no-substance code %s is not a substance code", code)
		}
	}
}

func TestRecordGroups(t *testing.T) {
	for _, g := range []string{"admission", "discharge", "update"} {
		if !RecordGroups.Has(g) {
			t.Errorf("expected record group %s", g)
		}
	}
	if RecordGroups.Has("monthly") {
		t.Error("expected unknown record group to be rejected")
	}
}
