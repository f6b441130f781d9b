package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"tally/internal/session"
	"tally/internal/timeutil"
	"tally/internal/ui"
)

const (
	barChartChar = "▇"
	noWorkMsg    = "No work logged this week."
	noChartMsg   = "No work data available to display."
)

// Text renders the weekly report block.
func Text(records []session.Record, now time.Time) string {
	totals := WeeklyTotals(records, now)

	var builder strings.Builder

	builder.WriteString(ui.Blue("--- Weekly Report ---") + "\n")
	fmt.Fprintf(
		&builder,
		"Total Hours Worked: %s\n",
		ui.Green(fmt.Sprintf("%.2f", totals.TotalHours)),
	)

	for _, c := range session.Categories {
		fmt.Fprintf(
			&builder,
			"%s Work: %.2f hrs\n",
			c,
			totals.PerCategory[c],
		)
	}

	if totals.TotalHours == 0 {
		builder.WriteString("\n" + noWorkMsg)
	}

	return builder.String()
}

// RemainingDisplay formats a remaining-hours value for display.
func RemainingDisplay(remaining float64) string {
	return fmt.Sprintf("%.2f hrs", remaining)
}

// Chart renders the per-weekday bar chart. Bars are measured in minutes
// since the chart only takes integer values.
func Chart(days []DayHours) string {
	var (
		bars  pterm.Bars
		total float64
	)

	for _, d := range days {
		total += d.Hours

		bars = append(bars, pterm.Bar{
			Label: d.Day.String()[:3],
			Value: timeutil.Round(d.Hours * 60),
		})
	}

	if total == 0 {
		return noChartMsg
	}

	header := ui.Blue("Weekday breakdown (minutes)")

	chart, err := pterm.DefaultBarChart.
		WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + "\n" + chart
}
