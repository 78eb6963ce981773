package episode

import (
	"testing"
	"time"
)

func TestAge(t *testing.T) {
	tests := []struct {
		name string
		dob  time.Time
		ref  time.Time
		want int
	}{
		{"birthday passed this year", day(1990, time.May, 10), day(2022, time.July, 15), 32},
		{"birthday not yet reached", day(1990, time.September, 1), day(2022, time.July, 15), 31},
		{"on the birthday itself", day(2004, time.July, 15), day(2022, time.July, 15), 18},
		{"day before the birthday", day(2004, time.July, 16), day(2022, time.July, 15), 17},
		{"same month earlier day", day(1990, time.July, 20), day(2022, time.July, 15), 31},
		{"newborn", day(2022, time.July, 1), day(2022, time.July, 15), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Age(tt.dob, tt.ref); got != tt.want {
				t.Errorf("Age(%v, %v) = %d, want %d", tt.dob, tt.ref, got, tt.want)
			}
		})
	}
}
