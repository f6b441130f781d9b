package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestBoltRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.db")

	backend, err := NewBolt(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessLog, err := Open(backend)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs := []struct {
		start time.Time
		d     time.Duration
	}{
		{time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), 2 * time.Hour},
		{time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC), 30 * time.Minute},
	}

	for _, r := range recs {
		err = sessLog.Append(testRecord(r.start, r.d))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	err = sessLog.Close()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	backend, err = NewBolt(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := Open(backend)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer func() {
		_ = reloaded.Close()
	}()

	if diff := cmp.Diff(sessLog.Records(), reloaded.Records()); diff != "" {
		t.Errorf("reloaded log differs (-want +got):\n%s", diff)
	}

	if got := reloaded.TotalHours(); got != 2.5 {
		t.Errorf("expected total hours to be 2.50, but got: %.2f", got)
	}
}
