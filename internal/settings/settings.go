// Package settings manages the INI settings file edited from the settings
// screen
package settings

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const (
	// Section is the only section tally reads and writes.
	Section = "default"

	// KeyRecordsFilePath holds the location of the records file.
	KeyRecordsFilePath = "records_file_path"

	// DefaultRecordsFilePath is written on first run.
	DefaultRecordsFilePath = "work_entries.csv"
)

// Store is an in-memory copy of the settings file. Set only changes memory
// until Persist is called.
type Store struct {
	file *ini.File
	path string
}

// Open loads the settings file at path, creating it with default values if
// it does not exist yet.
func Open(path string) (*Store, error) {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		err = createDefault(path)
	}

	if err != nil {
		return nil, errReadSettings.Fmt(path).Wrap(err)
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, errReadSettings.Fmt(path).Wrap(err)
	}

	return &Store{
		file: f,
		path: path,
	}, nil
}

func createDefault(path string) error {
	f := ini.Empty()

	f.Section(Section).Key(KeyRecordsFilePath).SetValue(DefaultRecordsFilePath)

	return f.SaveTo(path)
}

func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored for key. A missing key is an error rather
// than an empty value. Matching quotes around a value are not part of it.
func (s *Store) Get(key string) (string, error) {
	sec, err := s.file.GetSection(Section)
	if err != nil || !sec.HasKey(key) {
		return "", ErrMissingKey.Fmt(key, s.path)
	}

	return sec.Key(key).String(), nil
}

// Set updates key in memory.
func (s *Store) Set(key, value string) {
	s.file.Section(Section).Key(key).SetValue(value)
}

// Persist overwrites the settings file with the in-memory values.
func (s *Store) Persist() error {
	err := s.file.SaveTo(s.path)
	if err != nil {
		return errWriteSettings.Fmt(s.path).Wrap(err)
	}

	return nil
}

// RecordsPath returns the configured records file. Relative paths are
// resolved against the directory of the settings file.
func (s *Store) RecordsPath() (string, error) {
	p, err := s.Get(KeyRecordsFilePath)
	if err != nil {
		return "", err
	}

	if filepath.IsAbs(p) {
		return p, nil
	}

	return filepath.Join(filepath.Dir(s.path), p), nil
}
