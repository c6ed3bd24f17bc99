package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tally/internal/testutil"
)

func TestOpenFirstRun(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tally.conf")

	s, err := Open(p)
	require.NoError(t, err)

	got, err := s.Get(KeyRecordsFilePath)
	require.NoError(t, err)
	assert.Equal(t, "work_entries.csv", got)

	content := testutil.ReadFile(t, p)
	assert.Contains(t, content, "[default]")
	assert.Contains(t, content, "records_file_path")
}

func TestOpenExisting(t *testing.T) {
	p := testutil.WriteFile(
		t,
		t.TempDir(),
		"tally.conf",
		"[default]\nrecords_file_path = /var/log/hours.csv\n",
	)

	s, err := Open(p)
	require.NoError(t, err)

	got, err := s.Get(KeyRecordsFilePath)
	require.NoError(t, err)
	assert.Equal(t, "/var/log/hours.csv", got)
}

func TestOpenMalformed(t *testing.T) {
	p := testutil.WriteFile(t, t.TempDir(), "tally.conf", "[default\nrecords")

	_, err := Open(p)

	assert.ErrorIs(t, err, errReadSettings)
}

func TestOpenUnreadable(t *testing.T) {
	// a directory exists at the path, so the error is not "not found"
	p := filepath.Join(t.TempDir(), "tally.conf")
	require.NoError(t, os.Mkdir(p, 0o755))

	_, err := Open(p)

	assert.ErrorIs(t, err, errReadSettings)
}

func TestGetMissingKey(t *testing.T) {
	testCases := []struct {
		Name    string
		Content string
	}{
		{Name: "no default section", Content: "[other]\nrecords_file_path = a.csv\n"},
		{Name: "no such key", Content: "[default]\ntheme = dark\n"},
		{Name: "empty file", Content: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			p := testutil.WriteFile(t, t.TempDir(), "tally.conf", tc.Content)

			s, err := Open(p)
			require.NoError(t, err)

			_, err = s.Get(KeyRecordsFilePath)
			assert.ErrorIs(t, err, ErrMissingKey)
		})
	}
}

func TestSetDoesNotTouchDisk(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tally.conf")

	s, err := Open(p)
	require.NoError(t, err)

	before := testutil.ReadFile(t, p)

	s.Set(KeyRecordsFilePath, "/tmp/out.csv")

	got, err := s.Get(KeyRecordsFilePath)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.csv", got)
	assert.Equal(t, before, testutil.ReadFile(t, p))
}

func TestPersistOverwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tally.conf")

	s, err := Open(p)
	require.NoError(t, err)

	s.Set(KeyRecordsFilePath, "/a/much/longer/path/than/the/default/records.csv")
	require.NoError(t, s.Persist())

	s.Set(KeyRecordsFilePath, "b.csv")
	require.NoError(t, s.Persist())

	content := testutil.ReadFile(t, p)
	assert.Equal(t, 1, strings.Count(content, "[default]"))
	assert.Equal(t, 1, strings.Count(content, KeyRecordsFilePath))
	assert.NotContains(t, content, "longer")

	reloaded, err := Open(p)
	require.NoError(t, err)

	got, err := reloaded.Get(KeyRecordsFilePath)
	require.NoError(t, err)
	assert.Equal(t, "b.csv", got)
}

func TestPersistKeepsSpecialCharacters(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tally.conf")

	s, err := Open(p)
	require.NoError(t, err)

	want := "/home/me/hours; week #1.csv"

	s.Set(KeyRecordsFilePath, want)
	require.NoError(t, s.Persist())

	reloaded, err := Open(p)
	require.NoError(t, err)

	got, err := reloaded.Get(KeyRecordsFilePath)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestQuotedValues(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		Name    string
		Content string
		Want    string
	}{
		{
			Name:    "double quotes",
			Content: "[default]\nrecords_file_path = \"my hours.csv\"\n",
			Want:    "my hours.csv",
		},
		{
			Name:    "single quotes",
			Content: "[default]\nrecords_file_path = 'my hours.csv'\n",
			Want:    "my hours.csv",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			p := testutil.WriteFile(t, dir, tc.Name+".conf", tc.Content)

			s, err := Open(p)
			require.NoError(t, err)

			got, err := s.Get(KeyRecordsFilePath)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}

	// padding survives because the writer quotes it
	p := filepath.Join(dir, "padded.conf")

	s, err := Open(p)
	require.NoError(t, err)

	s.Set(KeyRecordsFilePath, "  padded.csv ")
	require.NoError(t, s.Persist())

	reloaded, err := Open(p)
	require.NoError(t, err)

	got, err := reloaded.Get(KeyRecordsFilePath)
	require.NoError(t, err)
	assert.Equal(t, "  padded.csv ", got)
}

func TestRecordsPath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tally.conf")

	s, err := Open(p)
	require.NoError(t, err)

	got, err := s.RecordsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultRecordsFilePath), got)

	abs := filepath.Join(t.TempDir(), "elsewhere.csv")
	s.Set(KeyRecordsFilePath, abs)

	got, err = s.RecordsPath()
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}
