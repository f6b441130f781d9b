// Package session defines tracked work sessions
package session

import (
	"encoding/json"
	"strings"
	"time"

	"tally/internal/apperr"
	"tally/internal/duration"
)

// Category is the work-type classification assigned to a session when it
// starts.
type Category string

const (
	Easy   Category = "Easy"
	Medium Category = "Medium"
	Hard   Category = "Hard"
)

// DefaultCategory is used when no category is specified at session start.
const DefaultCategory = Medium

// Categories lists the known categories in display order.
var Categories = []Category{Easy, Medium, Hard}

// Weights maps each category to its billing weight. The weights are carried
// as metadata for future use and are not applied to durations anywhere.
var Weights = map[Category]float64{
	Easy:   0.5,
	Medium: 1,
	Hard:   1.5,
}

var errUnknownCategory = &apperr.Error{
	Message: "unknown category: %q",
}

// ParseCategory validates a category name from user input. Matching is
// case-insensitive; the canonical spelling is returned.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return DefaultCategory, nil
	}

	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}

	return "", errUnknownCategory.Fmt(s)
}

// Record represents one work session. End is zero while the session is
// active. Duration always equals End − Start once End is set; it is stored
// redundantly so reports never recompute it from timestamps.
type Record struct {
	Start       time.Time
	End         time.Time
	Category    Category
	Description string
	Duration    time.Duration
}

// Active reports whether the session is still running.
func (r *Record) Active() bool {
	return r.End.IsZero()
}

// Finalize sets the end timestamp and computes the duration from the same
// clock values used for start and end.
func (r *Record) Finalize(end time.Time) {
	r.End = end
	r.Duration = end.Sub(r.Start)
}

// recordJSON is the wire shape of a logged session. Duration is written as
// decimal hours but may be read back as either decimal hours or a
// "HH:MM:SS" string produced by older logs.
type recordJSON struct {
	Start       string          `json:"start"`
	End         string          `json:"end"`
	Type        Category        `json:"type"`
	Description string          `json:"description"`
	Duration    json.RawMessage `json:"duration"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Start:       r.Start.Format(time.RFC3339),
		End:         r.End.Format(time.RFC3339),
		Type:        r.Category,
		Description: r.Description,
		Duration:    json.RawMessage(duration.Hours(r.Duration)),
	})
}

func (r *Record) UnmarshalJSON(b []byte) error {
	var raw recordJSON

	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err
	}

	start, err := time.Parse(time.RFC3339, raw.Start)
	if err != nil {
		return err
	}

	var end time.Time

	if raw.End != "" {
		end, err = time.Parse(time.RFC3339, raw.End)
		if err != nil {
			return err
		}
	}

	var d time.Duration

	// a missing duration field is read as zero, not dropped
	if len(raw.Duration) != 0 {
		var value any

		err = json.Unmarshal(raw.Duration, &value)
		if err != nil {
			return duration.ErrMalformed.Wrap(err)
		}

		d, err = duration.Parse(value)
		if err != nil {
			return err
		}
	}

	*r = Record{
		Start:       start,
		End:         end,
		Category:    raw.Type,
		Description: raw.Description,
		Duration:    d,
	}

	return nil
}
