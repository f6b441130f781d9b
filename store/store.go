// Package store loads and persists the ordered log of completed work
// sessions.
package store

import (
	"time"

	"tally/internal/apperr"
	"tally/internal/session"
)

// ErrPersistence indicates that the log could not be written to its backing
// store. The in-memory log remains valid and still contains the record that
// failed to persist, so the caller may retry with Flush.
var ErrPersistence = &apperr.Error{
	Message: "unable to persist session log",
}

// Store is a persistence backend for the session log.
type Store interface {
	// Load reads all persisted records in chronological order.
	Load() ([]session.Record, error)
	// Save persists the full log.
	Save(records []session.Record) error
	Close() error
}

// Log is the in-memory session log backed by a Store. Records are appended
// in order of completion and never edited afterwards.
type Log struct {
	backend Store
	records []session.Record
}

// Open loads the persisted log once. Records that cannot be read are
// dropped by the backend rather than failing the whole load.
func Open(backend Store) (*Log, error) {
	records, err := backend.Load()
	if err != nil {
		return nil, err
	}

	return &Log{
		backend: backend,
		records: records,
	}, nil
}

// Append adds a finalized record to the log and persists the full store.
// On persistence failure the record is retained in memory and
// ErrPersistence is returned.
func (l *Log) Append(rec session.Record) error {
	l.records = append(l.records, rec)

	err := l.backend.Save(l.records)
	if err != nil {
		return ErrPersistence.Wrap(err)
	}

	return nil
}

// Flush re-persists the in-memory log after a failed Append.
func (l *Log) Flush() error {
	err := l.backend.Save(l.records)
	if err != nil {
		return ErrPersistence.Wrap(err)
	}

	return nil
}

// Records returns the logged sessions in chronological order of completion.
func (l *Log) Records() []session.Record {
	return l.records
}

// TotalHours sums the duration of every logged session, in hours.
func (l *Log) TotalHours() float64 {
	var total time.Duration

	for i := range l.records {
		total += l.records[i].Duration
	}

	return total.Hours()
}

func (l *Log) Close() error {
	return l.backend.Close()
}
