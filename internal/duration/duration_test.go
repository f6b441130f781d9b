package duration

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		value    any
		expected time.Duration
	}{
		{2.0, 2 * time.Hour},
		{0.5, 30 * time.Minute},
		{0, 0},
		{"1.25", 75 * time.Minute},
		{"02:30:00", 2*time.Hour + 30*time.Minute},
		{"00:00:59", 59 * time.Second},
		{"128:00:00", 128 * time.Hour},
	}

	for _, tc := range cases {
		got, err := Parse(tc.value)
		if err != nil {
			t.Fatalf("Parse(%v): unexpected error: %v", tc.value, err)
		}

		if got != tc.expected {
			t.Errorf(
				"Parse(%v): expected %v, but got %v",
				tc.value,
				tc.expected,
				got,
			)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []any{
		"bad",
		"1:2",
		"aa:bb:cc",
		"-1:00:00",
		-2.5,
		nil,
		true,
	}

	for _, value := range cases {
		_, err := Parse(value)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%v): expected ErrMalformed, but got %v", value, err)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	cases := []time.Duration{
		0,
		time.Second,
		59 * time.Second,
		2*time.Hour + 30*time.Minute + 15*time.Second,
		128 * time.Hour,
	}

	for _, d := range cases {
		got, err := Parse(Clock(d))
		if err != nil {
			t.Fatalf("Parse(Clock(%v)): unexpected error: %v", d, err)
		}

		if got != d {
			t.Errorf("Parse(Clock(%v)): expected %v, but got %v", d, Clock(d), got)
		}
	}
}

func TestHoursRoundTrip(t *testing.T) {
	// durations that are whole multiples of 0.01 hours survive the decimal
	// form exactly
	cases := []time.Duration{
		0,
		36 * time.Second,
		30 * time.Minute,
		2 * time.Hour,
		127*time.Hour + 30*time.Minute,
	}

	for _, d := range cases {
		got, err := Parse(Hours(d))
		if err != nil {
			t.Fatalf("Parse(Hours(%v)): unexpected error: %v", d, err)
		}

		if got != d {
			t.Errorf("Parse(Hours(%v)): expected %v, but got %v", d, Hours(d), got)
		}
	}
}

func TestFormat(t *testing.T) {
	d := 2*time.Hour + 5*time.Minute + 9*time.Second

	if got := Clock(d); got != "02:05:09" {
		t.Errorf("Clock: expected 02:05:09, but got %s", got)
	}

	if got := Hours(2 * time.Hour); got != "2.00" {
		t.Errorf("Hours: expected 2.00, but got %s", got)
	}

	if got := Clock(-time.Minute); got != "00:00:00" {
		t.Errorf("Clock of negative duration: expected 00:00:00, but got %s", got)
	}
}
