package session

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tally/internal/duration"
)

func TestRecordRoundTrip(t *testing.T) {
	rec := Record{
		Start:       time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 3, 4, 11, 0, 0, 0, time.UTC),
		Category:    Hard,
		Description: "refactor the importer",
		Duration:    2 * time.Hour,
	}

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Record

	err = json.Unmarshal(b, &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("record did not survive round trip (-want +got):\n%s", diff)
	}
}

func TestRecordReadsClockDuration(t *testing.T) {
	// logs written by older versions store durations as "HH:MM:SS"
	raw := `{
		"start": "2024-03-04T09:00:00Z",
		"end": "2024-03-04T11:30:00Z",
		"type": "Medium",
		"description": "write docs",
		"duration": "02:30:00"
	}`

	var rec Record

	err := json.Unmarshal([]byte(raw), &rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Duration != 2*time.Hour+30*time.Minute {
		t.Errorf("expected duration 2h30m, but got: %v", rec.Duration)
	}
}

func TestRecordMalformedDuration(t *testing.T) {
	cases := []string{
		`{"start": "2024-03-04T09:00:00Z", "end": "2024-03-04T10:00:00Z", "type": "Easy", "duration": "bad"}`,
		`{"start": "2024-03-04T09:00:00Z", "end": "2024-03-04T10:00:00Z", "type": "Easy", "duration": -1}`,
		`{"start": "2024-03-04T09:00:00Z", "end": "2024-03-04T10:00:00Z", "type": "Easy", "duration": true}`,
	}

	for _, raw := range cases {
		var rec Record

		err := json.Unmarshal([]byte(raw), &rec)
		if !errors.Is(err, duration.ErrMalformed) {
			t.Errorf("expected ErrMalformed for %s, but got: %v", raw, err)
		}
	}
}

func TestRecordMissingDuration(t *testing.T) {
	raw := `{"start": "2024-03-04T09:00:00Z", "end": "2024-03-04T10:00:00Z", "type": "Easy", "description": ""}`

	var rec Record

	err := json.Unmarshal([]byte(raw), &rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Duration != 0 {
		t.Errorf("expected zero duration, but got: %v", rec.Duration)
	}
}

func TestFinalize(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	end := start.Add(95 * time.Minute)

	rec := Record{Start: start, Category: Medium}

	if !rec.Active() {
		t.Fatal("expected record without end time to be active")
	}

	rec.Finalize(end)

	if rec.Active() {
		t.Error("expected finalized record to be inactive")
	}

	if rec.Duration != end.Sub(start) {
		t.Errorf(
			"expected duration to equal end - start (%v), but got: %v",
			end.Sub(start),
			rec.Duration,
		)
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		input    string
		expected Category
		wantErr  bool
	}{
		{"Easy", Easy, false},
		{"hard", Hard, false},
		{"MEDIUM", Medium, false},
		{"", DefaultCategory, false},
		{"Impossible", "", true},
	}

	for _, tc := range cases {
		got, err := ParseCategory(tc.input)

		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q): expected an error", tc.input)
			}

			continue
		}

		if err != nil {
			t.Fatalf("ParseCategory(%q): unexpected error: %v", tc.input, err)
		}

		if got != tc.expected {
			t.Errorf(
				"ParseCategory(%q): expected %s, but got %s",
				tc.input,
				tc.expected,
				got,
			)
		}
	}
}
