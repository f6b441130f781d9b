// Package timeutil provides utility functions for working with
// time-related operations.
package timeutil

import (
	"math"
	"time"
)

const daysInAWeek = 7

// Weekdays lists the days of the week in report order, starting from
// Monday.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest
// integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// WeekStart returns the most recent Monday at 00:00 relative to t. If t
// falls on a Monday, the start of that same day is returned.
func WeekStart(t time.Time) time.Time {
	daysSinceMonday := int(t.Weekday()-time.Monday+daysInAWeek) % daysInAWeek

	return RoundToStart(t.AddDate(0, 0, -daysSinceMonday))
}

// ToKey converts a time value to a database key.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339))
}
