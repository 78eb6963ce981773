package episode

import "time"

// Age returns whole years between dob and ref, decremented by one when ref's
// month/day falls before the birth month/day. Boundary behavior is load
// bearing: a client turns an age on the birthday itself, not the day before.
func Age(dob, ref time.Time) int {
	years := ref.Year() - dob.Year()
	if ref.Month() < dob.Month() || (ref.Month() == dob.Month() && ref.Day() < dob.Day()) {
		years--
	}
	return years
}
