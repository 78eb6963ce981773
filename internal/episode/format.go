package episode

import (
	"regexp"

	"github.com/teds/teds/internal/validation"
)

// Free-text name and city fields allow letters, hyphen, apostrophe, and
// single embedded spaces. Leading, trailing, and doubled spaces are rejected.
var namePattern = regexp.MustCompile(`^[A-Za-z'-]+( [A-Za-z'-]+)*$`)

// ValidName reports whether s satisfies the free-text name format.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// ValidPhonePart reports whether s is an all-numeric telephone component of
// exactly length digits that does not begin with 0.
func ValidPhonePart(s string, length int) bool {
	return validation.AllDigits(s) && len(s) == length && s[0] != '0'
}

// allSameDigit reports whether s is non-empty and every byte equals the first.
func allSameDigit(s string) bool {
	if s == "" {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// allZeros reports whether s is non-empty and consists only of '0'.
func allZeros(s string) bool {
	return allSameDigit(s) && s[0] == '0'
}
