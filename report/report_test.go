package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tally/internal/session"
)

// now is a Wednesday; the week starts on Monday March 4.
var now = time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

func record(start time.Time, cat session.Category, d time.Duration) session.Record {
	rec := session.Record{
		Start:    start,
		Category: cat,
	}
	rec.Finalize(start.Add(d))

	return rec
}

func TestWeeklyTotalsEmptyLog(t *testing.T) {
	totals := WeeklyTotals(nil, now)

	if totals.TotalHours != 0 {
		t.Errorf("expected 0 total hours, but got: %.2f", totals.TotalHours)
	}

	for _, c := range session.Categories {
		if h, ok := totals.PerCategory[c]; !ok || h != 0 {
			t.Errorf("expected %s to be present and zero, but got: %v", c, h)
		}
	}

	if got := RemainingHours(nil, now, 128); got != 128 {
		t.Errorf("expected 128 remaining hours, but got: %.2f", got)
	}
}

func TestWeeklyTotalsSingleRecord(t *testing.T) {
	monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	records := []session.Record{
		record(monday, session.Hard, 2*time.Hour),
	}

	totals := WeeklyTotals(records, now)

	if totals.TotalHours != 2.0 {
		t.Errorf("expected 2.00 total hours, but got: %.2f", totals.TotalHours)
	}

	expected := map[session.Category]float64{
		session.Easy:   0,
		session.Medium: 0,
		session.Hard:   2.0,
	}

	if diff := cmp.Diff(expected, totals.PerCategory); diff != "" {
		t.Errorf("per-category totals differ (-want +got):\n%s", diff)
	}

	if got := RemainingHours(records, now, 128); got != 126.0 {
		t.Errorf("expected 126.00 remaining hours, but got: %.2f", got)
	}
}

func TestWeeklyTotalsExcludesLastWeek(t *testing.T) {
	lastFriday := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	sundayNight := time.Date(2024, 3, 3, 23, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	records := []session.Record{
		record(lastFriday, session.Medium, 3*time.Hour),
		record(sundayNight, session.Medium, time.Hour),
		record(monday, session.Medium, 2*time.Hour),
	}

	totals := WeeklyTotals(records, now)

	if totals.TotalHours != 2.0 {
		t.Errorf(
			"expected only this week's record to count (2.00), but got: %.2f",
			totals.TotalHours,
		)
	}
}

func TestRemainingHoursNeverNegative(t *testing.T) {
	monday := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)

	records := []session.Record{
		record(monday, session.Hard, 200*time.Hour),
	}

	if got := RemainingHours(records, now, 128); got != 0 {
		t.Errorf("expected 0 remaining hours, but got: %.2f", got)
	}
}

func TestDailyHoursAllTime(t *testing.T) {
	lastMonday := time.Date(2024, 2, 26, 9, 0, 0, 0, time.UTC)
	thisMonday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	thisTuesday := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	records := []session.Record{
		record(lastMonday, session.Easy, time.Hour),
		record(thisMonday, session.Medium, 2*time.Hour),
		record(thisTuesday, session.Hard, 30*time.Minute),
	}

	days := DailyHours(records, now, false)

	if len(days) != 7 {
		t.Fatalf("expected 7 weekday buckets, but got %d", len(days))
	}

	if days[0].Day != time.Monday || days[6].Day != time.Sunday {
		t.Fatalf("expected buckets ordered Mon..Sun, but got: %v", days)
	}

	// all-time bucketing folds last Monday into the Monday bucket
	if days[0].Hours != 3.0 {
		t.Errorf("expected 3.00 hours on Monday, but got: %.2f", days[0].Hours)
	}

	if days[1].Hours != 0.5 {
		t.Errorf("expected 0.50 hours on Tuesday, but got: %.2f", days[1].Hours)
	}

	for _, d := range days[2:] {
		if d.Hours != 0 {
			t.Errorf("expected %s to be zero, but got: %.2f", d.Day, d.Hours)
		}
	}
}

func TestDailyHoursCurrentWeekOnly(t *testing.T) {
	lastMonday := time.Date(2024, 2, 26, 9, 0, 0, 0, time.UTC)
	thisMonday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	records := []session.Record{
		record(lastMonday, session.Easy, time.Hour),
		record(thisMonday, session.Medium, 2*time.Hour),
	}

	days := DailyHours(records, now, true)

	if days[0].Hours != 2.0 {
		t.Errorf(
			"expected only this week's Monday hours (2.00), but got: %.2f",
			days[0].Hours,
		)
	}
}

func TestText(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		text := Text(nil, now)

		if !strings.Contains(text, noWorkMsg) {
			t.Errorf("expected %q in report, but got:\n%s", noWorkMsg, text)
		}
	})

	t.Run("logged work", func(t *testing.T) {
		monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

		records := []session.Record{
			record(monday, session.Hard, 2*time.Hour),
		}

		text := Text(records, now)

		if !strings.Contains(text, "Hard Work: 2.00 hrs") {
			t.Errorf("expected Hard category line in report, but got:\n%s", text)
		}

		if strings.Contains(text, noWorkMsg) {
			t.Errorf("did not expect the empty note, but got:\n%s", text)
		}
	})
}

func TestRemainingDisplay(t *testing.T) {
	if got := RemainingDisplay(126); got != "126.00 hrs" {
		t.Errorf("expected \"126.00 hrs\", but got: %q", got)
	}
}
