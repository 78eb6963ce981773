// Package codes holds the closed code tables used by submission validation.
// Each table maps a reporting code to its display label. Tables are fixed at
// build time and used only for membership tests and label lookups.
package codes

// Table is an immutable code-to-label mapping.
type Table map[string]string

// Has reports whether code belongs to the table.
func (t Table) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// Label returns the display label for code, or "" when the code is unknown.
func (t Table) Label(code string) string {
	return t[code]
}

// Codes shared across tables for "not applicable" / "unknown" entries.
const (
	NotApplicable = "96"
	Unknown       = "97"
	NotCollected  = "98"
)

// CollateralTreatmentType is the escape treatment-type code reserved for
// collateral/codependent clients.
const CollateralTreatmentType = "96"

var Genders = Table{
	"1":  "Male",
	"2":  "Female",
	"97": "Unknown",
	"98": "Not collected",
}

var Races = Table{
	"1":  "Alaska Native",
	"2":  "American Indian",
	"3":  "Asian or Pacific Islander",
	"4":  "Black or African American",
	"5":  "White",
	"13": "Asian",
	"20": "Other single race",
	"21": "Two or more races",
	"23": "Native Hawaiian or Other Pacific Islander",
	"97": "Unknown",
	"98": "Not collected",
}

var Ethnicities = Table{
	"1":  "Puerto Rican",
	"2":  "Mexican",
	"3":  "Cuban",
	"4":  "Other specific Hispanic or Latino",
	"5":  "Not of Hispanic or Latino origin",
	"6":  "Hispanic or Latino, not specified",
	"97": "Unknown",
	"98": "Not collected",
}

var Languages = Table{
	"1":  "English",
	"2":  "Spanish",
	"3":  "Other",
	"97": "Unknown",
	"98": "Not collected",
}

var MaritalStatuses = Table{
	"1":  "Never married",
	"2":  "Now married",
	"3":  "Separated",
	"4":  "Divorced",
	"5":  "Widowed",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

var VeteranStatuses = Table{
	"1":  "Veteran",
	"2":  "Not a veteran",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

var EducationLevels = Table{
	"0":  "No schooling",
	"1":  "Grades 1-8",
	"2":  "Grades 9-11",
	"3":  "Grade 12 or GED",
	"4":  "1-3 years of college",
	"5":  "4 or more years of college",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

var EmploymentStatuses = Table{
	"1":  "Full time",
	"2":  "Part time",
	"3":  "Unemployed",
	"4":  "Not in labor force",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

var LegalStatuses = Table{
	"1":  "Voluntary",
	"2":  "Involuntary, civil",
	"3":  "Involuntary, criminal",
	"4":  "Involuntary, juvenile justice",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

var SchoolAttendances = Table{
	"1":  "Yes",
	"2":  "No",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

var PregnancyStatuses = Table{
	"1":  "Pregnant",
	"2":  "Not pregnant",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

var SelfHelpFrequencies = Table{
	"1":  "No attendance",
	"2":  "1-3 times in the past month",
	"3":  "4-7 times in the past month",
	"4":  "8-30 times in the past month",
	"5":  "Some attendance, frequency unknown",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

// Treatment-type codes come in two disjoint bands: substance-use services
// (1-8) and mental-health services (70-77). Code 96 is reserved for
// collateral/codependent clients and belongs to neither band.
var SubstanceTreatmentTypes = Table{
	"1": "Detoxification, 24-hour, hospital inpatient",
	"2": "Detoxification, 24-hour, free-standing residential",
	"3": "Rehabilitation/residential, hospital",
	"4": "Rehabilitation/residential, short term",
	"5": "Rehabilitation/residential, long term",
	"6": "Ambulatory, intensive outpatient",
	"7": "Ambulatory, non-intensive outpatient",
	"8": "Ambulatory, detoxification",
}

var MentalHealthTreatmentTypes = Table{
	"70": "State psychiatric hospital",
	"71": "SMHA-funded community-based program, inpatient",
	"72": "SMHA-funded community-based program, residential",
	"73": "SMHA-funded community-based program, outpatient",
	"74": "Other psychiatric inpatient",
	"75": "Institutions under the justice system",
	"76": "Residential treatment center",
	"77": "Partial hospitalization/day treatment",
}

var DischargeReasons = Table{
	"1":  "Treatment completed",
	"2":  "Dropped out of treatment",
	"3":  "Terminated by facility",
	"4":  "Transferred to another program",
	"5":  "Incarcerated",
	"6":  "Death",
	"7":  "Other",
	"97": "Unknown",
	"98": "Not collected",
}

// ReferralSources: code 7 is a court/criminal-justice referral and must pair
// with an applicable criminal-justice referral detail code.
var ReferralSources = Table{
	"1":  "Individual (includes self-referral)",
	"2":  "Alcohol/drug use care provider",
	"3":  "Other health care provider",
	"4":  "School (educational)",
	"5":  "Employer/EAP",
	"6":  "Other community referral",
	"7":  "Court/criminal justice referral/DUI/DWI",
	"97": "Unknown",
	"98": "Not collected",
}

// CourtReferralSource is the referral-source code that requires a paired
// criminal-justice referral detail.
const CourtReferralSource = "7"

var CriminalJusticeReferrals = Table{
	"1":  "State/federal court",
	"2":  "Formal adjudication process",
	"3":  "Probation/parole",
	"4":  "Other recognized legal entity",
	"5":  "Diversionary program",
	"6":  "Prison",
	"7":  "DUI/DWI",
	"8":  "Other",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

var PaymentSources = Table{
	"1":  "Self-pay",
	"2":  "Blue Cross/Blue Shield",
	"3":  "Medicare",
	"4":  "Medicaid",
	"5":  "Other government payments",
	"6":  "Worker's compensation",
	"7":  "Other health insurance companies",
	"8":  "No charge",
	"9":  "Other",
	"97": "Unknown",
	"98": "Not collected",
}

var SMISEDStatuses = Table{
	"1":  "SMI (serious mental illness)",
	"2":  "SED (serious emotional disturbance)",
	"3":  "Neither",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

// SMI applies to adults, SED to children. The boundary age used by the
// applicability rule.
const (
	SMICode         = "1"
	SEDCode         = "2"
	SMISEDAgeCutoff = 18
)

var CoOccurringFlags = Table{
	"1":  "Yes",
	"2":  "No",
	"97": "Unknown",
	"98": "Not collected",
}

// Substances: code 96 means "none" — a route/frequency paired with it must be
// absent. 97/98 carry no substance either.
var Substances = Table{
	"1":  "None",
	"2":  "Alcohol",
	"3":  "Cocaine/crack",
	"4":  "Marijuana/hashish",
	"5":  "Heroin",
	"6":  "Non-prescription methadone",
	"7":  "Other opiates and synthetics",
	"8":  "PCP",
	"9":  "Other hallucinogens",
	"10": "Methamphetamine",
	"11": "Other amphetamines",
	"12": "Other stimulants",
	"13": "Benzodiazepines",
	"14": "Other non-benzodiazepine tranquilizers",
	"15": "Barbiturates",
	"16": "Other non-barbiturate sedatives or hypnotics",
	"17": "Inhalants",
	"18": "Over-the-counter medications",
	"19": "Other",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

// NoSubstanceCodes are the substance codes that denote no actual substance;
// paired detail fields (route, frequency) are forbidden or optional for these.
var NoSubstanceCodes = Table{
	"1":  "None",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

var Routes = Table{
	"1":  "Oral",
	"2":  "Smoking",
	"3":  "Inhalation",
	"4":  "Injection (IV or intramuscular)",
	"5":  "Other",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

var Frequencies = Table{
	"1":  "No use in the past month",
	"2":  "1-3 times in the past month",
	"3":  "1-2 times in the past week",
	"4":  "3-6 times in the past week",
	"5":  "Daily",
	"96": "Not applicable",
	"97": "Unknown",
	"98": "Not collected",
}

// RecordTypes classify a submitted row. The treatment-type band a row may use
// is keyed by this code: A/T/D rows use the substance band, M rows the
// mental-health band, C rows the collateral escape code.
var RecordTypes = Table{
	"A": "Admission",
	"T": "Transfer",
	"D": "Discharge",
	"M": "Mental health episode",
	"C": "Collateral/codependent",
}

// RecordGroups classify a whole extract.
var RecordGroups = Table{
	"admission": "Admission extract",
	"discharge": "Discharge extract",
	"update":    "Update extract",
}

var States = Table{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
	"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}
