// Package duration converts between time.Duration and the two wire
// representations of a session duration: a decimal number of hours, and a
// "HH:MM:SS" clock string.
package duration

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"tally/internal/apperr"
)

// ErrMalformed indicates a duration value that cannot be interpreted as
// decimal hours or as a "HH:MM:SS" string.
var ErrMalformed = &apperr.Error{
	Message: "malformed duration: %v",
}

const (
	secondsInAnHour   = 3600
	secondsInAMinute  = 60
	clockParts        = 3
	hoursDecimalPlace = 100
)

// Parse interprets a raw duration value from the log. Numbers are read as
// decimal hours, strings as either decimal hours or "HH:MM:SS". Negative
// and malformed values fail with ErrMalformed.
func Parse(value any) (time.Duration, error) {
	switch v := value.(type) {
	case float64:
		return FromHours(v)
	case int:
		return FromHours(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, ErrMalformed.Fmt(value)
		}

		return FromHours(f)
	case string:
		if strings.Contains(v, ":") {
			return ParseClock(v)
		}

		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, ErrMalformed.Fmt(value)
		}

		return FromHours(f)
	default:
		return 0, ErrMalformed.Fmt(value)
	}
}

// ParseClock converts a "HH:MM:SS" string to a duration.
func ParseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != clockParts {
		return 0, ErrMalformed.Fmt(s)
	}

	var units [clockParts]int

	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, ErrMalformed.Fmt(s)
		}

		units[i] = n
	}

	secs := units[0]*secondsInAnHour + units[1]*secondsInAMinute + units[2]

	return time.Duration(secs) * time.Second, nil
}

// FromHours converts a decimal hours value to a duration, rounded to the
// nearest second.
func FromHours(hours float64) (time.Duration, error) {
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, ErrMalformed.Fmt(hours)
	}

	secs := math.Round(hours * secondsInAnHour)

	return time.Duration(secs) * time.Second, nil
}

// Clock renders a duration as "HH:MM:SS" for timer display. Hours are not
// wrapped at 24 so large totals remain readable.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int(math.Round(d.Seconds()))
	hours := total / secondsInAnHour
	minutes := (total % secondsInAnHour) / secondsInAMinute
	seconds := total % secondsInAMinute

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Hours renders a duration as a decimal hours string with two decimal
// places. This is the canonical form written to the log.
func Hours(d time.Duration) string {
	return strconv.FormatFloat(RoundHours(d), 'f', 2, 64)
}

// RoundHours converts a duration to decimal hours rounded to two places.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*hoursDecimalPlace) / hoursDecimalPlace
}
