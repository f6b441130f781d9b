package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"tally/internal/apperr"
	"tally/internal/session"
	"tally/internal/timeutil"
)

const sessionBucket = "sessions"

const dbFileMode fs.FileMode = 0o600

var errAlreadyRunning = &apperr.Error{
	Message: "is tally already running? Only one instance can be active at a time",
}

// Bolt persists the log in a BoltDB database, one record per key ordered by
// RFC3339 start time. Record values use the same JSON shape as the file
// store.
type Bolt struct {
	db *bolt.DB
}

// NewBolt opens or creates a BoltDB store and locks it for this process.
func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(
		path,
		dbFileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, berr := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return berr
	})
	if err != nil {
		return nil, err
	}

	return &Bolt{
		db: db,
	}, nil
}

func (s *Bolt) Load() ([]session.Record, error) {
	var records []session.Record

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var rec session.Record

			uerr := json.Unmarshal(v, &rec)
			if uerr != nil {
				slog.Warn(
					"dropping unreadable session record",
					slog.String("key", string(k)),
					slog.Any("error", uerr),
				)

				continue
			}

			records = append(records, rec)
		}

		return nil
	})

	return records, err
}

func (s *Bolt) Save(records []session.Record) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		for i := range records {
			rec := records[i]

			value, err := json.Marshal(rec)
			if err != nil {
				return err
			}

			err = b.Put(timeutil.ToKey(rec.Start), value)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *Bolt) Close() error {
	return s.db.Close()
}
