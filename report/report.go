// Package report computes aggregate views over the session log.
package report

import (
	"time"

	"tally/internal/session"
	"tally/internal/timeutil"
)

// Weekly summarizes the hours logged since the most recent Monday 00:00.
type Weekly struct {
	PerCategory map[session.Category]float64
	TotalHours  float64
}

// WeeklyTotals sums the durations, in hours, of all records whose start
// falls within the current week relative to now. Every known category is
// present in the result, zero when nothing was logged for it.
func WeeklyTotals(records []session.Record, now time.Time) Weekly {
	weekStart := timeutil.WeekStart(now)

	totals := Weekly{
		PerCategory: make(
			map[session.Category]float64,
			len(session.Categories),
		),
	}

	for _, c := range session.Categories {
		totals.PerCategory[c] = 0
	}

	for i := range records {
		rec := records[i]

		if rec.Start.Before(weekStart) {
			continue
		}

		hours := rec.Duration.Hours()

		totals.TotalHours += hours
		totals.PerCategory[rec.Category] += hours
	}

	return totals
}

// RemainingHours returns how many hours are left toward the weekly target.
// It is never negative, no matter how much has been logged.
func RemainingHours(
	records []session.Record,
	now time.Time,
	target float64,
) float64 {
	remaining := target - WeeklyTotals(records, now).TotalHours
	if remaining < 0 {
		return 0
	}

	return remaining
}

// DayHours is the total logged for one weekday.
type DayHours struct {
	Day   time.Weekday
	Hours float64
}

// DailyHours buckets record durations by the weekday of their start time,
// ordered Monday through Sunday and zero-seeded. With currentWeekOnly
// false the whole log contributes, which reproduces the historical chart
// behavior; true restricts the chart to the current week. The default is
// chosen by the chart_all_time config option.
func DailyHours(
	records []session.Record,
	now time.Time,
	currentWeekOnly bool,
) []DayHours {
	weekStart := timeutil.WeekStart(now)
	totals := make(map[time.Weekday]float64, len(timeutil.Weekdays))

	for i := range records {
		rec := records[i]

		if currentWeekOnly && rec.Start.Before(weekStart) {
			continue
		}

		totals[rec.Start.Weekday()] += rec.Duration.Hours()
	}

	days := make([]DayHours, 0, len(timeutil.Weekdays))

	for _, d := range timeutil.Weekdays {
		days = append(days, DayHours{
			Day:   d,
			Hours: totals[d],
		})
	}

	return days
}
