package records

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/tally/internal/osutil"
)

const (
	columnDate   = "date"
	columnLength = "length"
	columnTask   = "task"
)

var header = []string{columnDate, columnLength, columnTask}

// Store reads and writes the whole records file. Appending is done by
// callers as read-all, push, write-all.
type Store struct {
	path string
}

// Open creates the records file if it does not exist and verifies that it
// can be opened for reading and writing.
func Open(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, osutil.FilePermission)
	if err != nil {
		return nil, errOpenRecords.Fmt(path).Wrap(err)
	}

	if err := f.Close(); err != nil {
		return nil, errOpenRecords.Fmt(path).Wrap(err)
	}

	return &Store{path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

// ReadAll parses every record in the file. An empty file holds no records.
func (s *Store) ReadAll() ([]TaskRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errOpenRecords.Fmt(s.path).Wrap(err)
	}

	defer f.Close()

	r := csv.NewReader(f)

	cols, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}

	if err != nil {
		return nil, ErrMalformedRow.Fmt(s.path).Wrap(err)
	}

	index, err := s.columnIndex(cols)
	if err != nil {
		return nil, err
	}

	var recs []TaskRecord

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, ErrMalformedRow.Fmt(s.path).Wrap(err)
		}

		recs = append(recs, TaskRecord{
			Date:   row[index[columnDate]],
			Length: row[index[columnLength]],
			Task:   row[index[columnTask]],
		})
	}

	return recs, nil
}

// columnIndex maps each required column to its position in the header row.
func (s *Store) columnIndex(cols []string) (map[string]int, error) {
	index := make(map[string]int, len(header))

	for i, c := range cols {
		index[c] = i
	}

	for _, c := range header {
		if _, ok := index[c]; !ok {
			return nil, ErrMissingColumn.Fmt(s.path, c)
		}
	}

	return index, nil
}

// WriteAll replaces the file contents with a header row followed by recs.
// The snapshot is written to a temporary file in the same directory and
// renamed over the records file.
func (s *Store) WriteAll(recs []TaskRecord) (err error) {
	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return errWriteRecords.Fmt(s.path).Wrap(err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)

	if err = w.Write(header); err != nil {
		return errWriteRecords.Fmt(s.path).Wrap(err)
	}

	for i := range recs {
		rec := recs[i]

		err = w.Write([]string{rec.Date, rec.Length, rec.Task})
		if err != nil {
			return errWriteRecords.Fmt(s.path).Wrap(err)
		}
	}

	w.Flush()

	if err = w.Error(); err != nil {
		return errWriteRecords.Fmt(s.path).Wrap(err)
	}

	if err = tmp.Chmod(osutil.FilePermission); err != nil {
		return errWriteRecords.Fmt(s.path).Wrap(err)
	}

	if err = tmp.Close(); err != nil {
		return errWriteRecords.Fmt(s.path).Wrap(err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return errWriteRecords.Fmt(s.path).Wrap(err)
	}

	return nil
}
