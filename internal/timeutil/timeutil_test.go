package timeutil

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	expected := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // a Monday

	cases := []struct {
		name string
		now  time.Time
	}{
		{
			name: "monday morning",
			now:  time.Date(2024, 3, 4, 0, 0, 1, 0, time.UTC),
		},
		{
			name: "midweek",
			now:  time.Date(2024, 3, 6, 15, 30, 0, 0, time.UTC),
		},
		{
			name: "sunday night",
			now:  time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekStart(tc.now)

			if !got.Equal(expected) {
				t.Errorf(
					"expected week start to be: %v, but got: %v",
					expected,
					got,
				)
			}
		})
	}
}

func TestWeekStartOnMonday(t *testing.T) {
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	if got := WeekStart(monday); !got.Equal(monday) {
		t.Errorf("expected week start to be: %v, but got: %v", monday, got)
	}
}

func TestWeekdaysOrder(t *testing.T) {
	if Weekdays[0] != time.Monday || Weekdays[6] != time.Sunday {
		t.Errorf("expected weekdays ordered Mon..Sun, but got: %v", Weekdays)
	}
}
