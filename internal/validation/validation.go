// Package validation implements the generic rule engine used by submission
// validators. A Validator is a schema (presence and primitive type checks)
// plus an ordered list of declarative rules. Both phases always run; issues
// accumulate and are never short-circuited, so a single pass reports the
// complete set of problems found.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/teds/teds/internal/codes"
)

// Category classifies a validation finding.
type Category string

const (
	MissingValue       Category = "missing_value"
	InvalidValue       Category = "invalid_value"
	InvalidFieldLength Category = "invalid_field_length"
	WrongFormat        Category = "wrong_format"
	DataInconsistency  Category = "data_inconsistency"
)

// Severity distinguishes advisory findings from blocking ones.
type Severity string

const (
	Warning Severity = "warning"
	Failure Severity = "failure"
)

// Issue is one field-addressed validation finding. Key may be composite
// (e.g. "client.dob") when a validator chooses to qualify it.
type Issue struct {
	Key      string   `json:"key"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
}

// Fail builds a blocking issue.
func Fail(key string, category Category, format string, args ...interface{}) Issue {
	return Issue{Key: key, Text: fmt.Sprintf(format, args...), Category: category, Severity: Failure}
}

// Warn builds an advisory issue.
func Warn(key string, category Category, format string, args ...interface{}) Issue {
	return Issue{Key: key, Text: fmt.Sprintf(format, args...), Category: category, Severity: Warning}
}

// Values is a flat candidate map for one entity. Raw submissions arrive as
// strings; blank strings count as absent.
type Values map[string]string

// Has reports whether key is present with a non-blank value.
func (v Values) Has(key string) bool {
	return strings.TrimSpace(v[key]) != ""
}

// Get returns the trimmed value for key.
func (v Values) Get(key string) string {
	return strings.TrimSpace(v[key])
}

// Raw returns the stored value for key without trimming. Format rules that
// must report surrounding whitespace instead of normalizing it away read the
// raw value.
func (v Values) Raw(key string) string {
	return v[key]
}

// DateLayout is the wire format for all submission dates.
const DateLayout = "2006-01-02"

// Date parses the value under key. The boolean is false when the value is
// absent or unparseable; callers that need the parse failure reported rely on
// the schema phase.
func (v Values) Date(key string) (time.Time, bool) {
	s := v.Get(key)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FieldType is the primitive type checked by the schema phase.
type FieldType int

const (
	TypeString FieldType = iota
	TypeDate
	TypeNumeric
	TypeCode
)

// Field describes one schema entry.
type Field struct {
	Name     string
	Required bool
	Type     FieldType
	// Codes is the closed table membership for TypeCode fields.
	Codes codes.Table
}

// Rule is one declarative rule descriptor. The rule fires only when every
// trigger field is present; Pred returns true when the candidate is
// acceptable, and Issues produces the findings otherwise. Issues append in
// declaration order, so later rules addressing the same key follow earlier
// ones.
type Rule struct {
	Trigger []string
	Pred    func(Values) bool
	Issues  func(Values) []Issue
}

// Validator is a named schema plus ordered rule list.
type Validator struct {
	Name   string
	Schema []Field
	Rules  []Rule
}

// Validate runs the schema phase then the rule phase against vals. A schema
// failure on a field does not suppress rules that read the field; rules check
// presence via their trigger list.
func (v *Validator) Validate(vals Values) []Issue {
	var issues []Issue
	issues = append(issues, v.runSchema(vals)...)
	issues = append(issues, v.runRules(vals)...)
	return issues
}

func (v *Validator) runSchema(vals Values) []Issue {
	var issues []Issue
	for _, f := range v.Schema {
		if !vals.Has(f.Name) {
			if f.Required {
				issues = append(issues, Fail(f.Name, MissingValue, "%s is required", f.Name))
			}
			continue
		}
		val := vals.Get(f.Name)
		switch f.Type {
		case TypeDate:
			if _, err := time.Parse(DateLayout, val); err != nil {
				issues = append(issues, Fail(f.Name, WrongFormat, "%s must be a date in YYYY-MM-DD format", f.Name))
			}
		case TypeNumeric:
			if !AllDigits(val) {
				issues = append(issues, Fail(f.Name, WrongFormat, "%s must be numeric", f.Name))
			}
		case TypeCode:
			if !f.Codes.Has(val) {
				issues = append(issues, Fail(f.Name, InvalidValue, "%s is not a valid code for %s", val, f.Name))
			}
		}
	}
	return issues
}

func (v *Validator) runRules(vals Values) []Issue {
	var issues []Issue
	for _, r := range v.Rules {
		if !triggered(r, vals) {
			continue
		}
		if r.Pred != nil && r.Pred(vals) {
			continue
		}
		issues = append(issues, r.Issues(vals)...)
	}
	return issues
}

func triggered(r Rule, vals Values) bool {
	for _, key := range r.Trigger {
		if !vals.Has(key) {
			return false
		}
	}
	return true
}

// Classify partitions issues into advisory warnings and blocking failures.
// A record passes iff failures is empty, regardless of warning count.
func Classify(issues []Issue) (warnings, failures []Issue) {
	for _, issue := range issues {
		if issue.Severity == Warning {
			warnings = append(warnings, issue)
		} else {
			failures = append(failures, issue)
		}
	}
	return warnings, failures
}

// AllDigits reports whether s is non-empty and consists only of ASCII digits.
func AllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
