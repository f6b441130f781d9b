package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"tally/internal/session"
)

const logFileMode fs.FileMode = 0o600

// JSON persists the log as a single JSON array file, the format written by
// earlier versions of this tool. Writes go to a temporary file which is
// renamed over the log, so a crash mid-write cannot truncate it.
type JSON struct {
	path string
}

// NewJSON returns a JSON file store rooted at path. The file is created on
// the first save.
func NewJSON(path string) *JSON {
	return &JSON{
		path: path,
	}
}

func (s *JSON) Load() ([]session.Record, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var raw []json.RawMessage

	err = json.Unmarshal(b, &raw)
	if err != nil {
		// a log that is not a JSON array is reset to an empty log
		slog.Warn(
			"session log is not a valid collection, starting empty",
			slog.String("path", s.path),
			slog.Any("error", err),
		)

		return nil, nil
	}

	records := make([]session.Record, 0, len(raw))

	for i, v := range raw {
		var rec session.Record

		err = json.Unmarshal(v, &rec)
		if err != nil {
			slog.Warn(
				"dropping unreadable session record",
				slog.Int("index", i),
				slog.Any("error", err),
			)

			continue
		}

		records = append(records, rec)
	}

	return records, nil
}

func (s *JSON) Save(records []session.Record) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	_, err = tmp.Write(b)
	if err != nil {
		_ = tmp.Close()
		return err
	}

	err = tmp.Close()
	if err != nil {
		return err
	}

	err = os.Chmod(tmp.Name(), logFileMode)
	if err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

func (s *JSON) Close() error {
	return nil
}
