package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tally/internal/config"
	"github.com/ayoisaiah/tally/internal/records"
	"github.com/ayoisaiah/tally/internal/testutil"
)

func TestMain(m *testing.M) {
	root, err := os.MkdirTemp("", "tally-app-test")
	if err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	os.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	os.Setenv("NO_COLOR", "1")
	xdg.Reload()

	// an existing preferences file skips the first run prompt
	dir := filepath.Join(root, "config", "tally")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(err)
	}

	err = os.WriteFile(filepath.Join(dir, "config.yml"), []byte("log:\n    level: debug\n"), 0o644)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	os.RemoveAll(root)
	os.Exit(code)
}

// runApp runs tally against a fresh settings file and returns what it
// printed to config.Stdout.
func runApp(t *testing.T, settingsPath string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	stdout := config.Stdout
	config.Stdout = &buf

	t.Cleanup(func() {
		config.Stdout = stdout
	})

	argv := append([]string{"tally", "--settings", settingsPath}, args...)

	err := Get().Run(argv)

	return buf.String(), err
}

func TestAddThenList(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tally.conf")

	_, err := runApp(t, p, "add", "--length", "90s", "--date", "2024-01-02 12:00", "wrote", "spec")
	require.NoError(t, err)

	_, err = runApp(t, p, "add", "-l", "25", "--date", "2024-01-03 12:00", "fix bug, then ship")
	require.NoError(t, err)

	assert.Equal(
		t,
		"date,length,task\n"+
			"2024-01-02,1.50,wrote spec\n"+
			"2024-01-03,25.00,\"fix bug, then ship\"\n",
		testutil.ReadFile(t, filepath.Join(dir, "work_entries.csv")),
	)

	out, err := runApp(t, p, "list", "--json")
	require.NoError(t, err)

	var got []records.TaskRecord

	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "fix bug, then ship", got[1].Task)

	out, err = runApp(t, p, "list", "--since", "2024-01-03", "--json")
	require.NoError(t, err)

	got = nil

	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "25.00", got[0].Length)

	out, err = runApp(t, p, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote spec")
	assert.Contains(t, out, "MINUTES")
}

func TestSummaryJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tally.conf")

	testutil.WriteFile(t, dir, "tally.conf", "[default]\nrecords_file_path = hours.csv\n")
	testutil.WriteFile(
		t,
		dir,
		"hours.csv",
		"date,length,task\n2024-01-02,30.00,task 10\n2024-01-02,15.00,task 2\n2024-01-04,30.00,task 10\n",
	)

	out, err := runApp(t, p, "summary", "--json")
	require.NoError(t, err)

	var got struct {
		Tasks []struct {
			Task     string  `json:"task"`
			Minutes  float64 `json:"minutes"`
			Sessions int     `json:"sessions"`
		} `json:"tasks"`
		Minutes float64 `json:"minutes"`
		Count   int     `json:"sessions"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 75.0, got.Minutes, 0.001)
	require.Len(t, got.Tasks, 2)
	assert.Equal(t, "task 2", got.Tasks[0].Task)
	assert.Equal(t, 2, got.Tasks[1].Sessions)

	out, err = runApp(t, p, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Time logged: 1h 15m")
}

func TestListRejectsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tally.conf")

	testutil.WriteFile(t, dir, "work_entries.csv", "date,length,task\n2024-01-02,1.00\n")

	_, err := runApp(t, p, "list")

	assert.ErrorIs(t, err, records.ErrMalformedRow)
}

func TestAddInvalidLength(t *testing.T) {
	dir := t.TempDir()

	_, err := runApp(t, filepath.Join(dir, "tally.conf"), "add", "--length", "soon", "x")

	assert.ErrorIs(t, err, errInvalidLength)
	assert.NoFileExists(t, filepath.Join(dir, "work_entries.csv"))
}

func TestParseLength(t *testing.T) {
	testCases := []struct {
		Input   string
		Want    time.Duration
		WantErr bool
	}{
		{Input: "25m", Want: 25 * time.Minute},
		{Input: "1h30m", Want: 90 * time.Minute},
		{Input: "90s", Want: 90 * time.Second},
		{Input: "45", Want: 45 * time.Minute},
		{Input: "0", WantErr: true},
		{Input: "-5m", WantErr: true},
		{Input: "", WantErr: true},
		{Input: "soon", WantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			got, err := parseLength(tc.Input)
			if tc.WantErr {
				assert.ErrorIs(t, err, errInvalidLength)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "b", firstNonEmptyString("", "b", "c"))
	assert.Equal(t, "", firstNonEmptyString("", ""))
}

func TestPrintRecordsTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	printRecordsTable(&buf, []records.TaskRecord{
		{Date: "2024-01-02", Length: "1.50", Task: "wrote spec"},
	})

	out := buf.String()

	for _, s := range []string{"#", "DATE", "MINUTES", "TASK", "2024-01-02", "1.50", "wrote spec"} {
		assert.Contains(t, out, s)
	}
}

func TestEditConfigEditorArgs(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tally.conf")

	t.Setenv("VISUAL", "true --wait")

	_, err := runApp(t, p, "edit-config")
	require.NoError(t, err)
	assert.FileExists(t, p)

	t.Setenv("VISUAL", "'unterminated")

	_, err = runApp(t, p, "edit-config")
	assert.ErrorIs(t, err, errInvalidEditor)
}

func TestAddDateEastOfUTC(t *testing.T) {
	local := time.Local
	time.Local = time.FixedZone("JST", 9*60*60)

	t.Cleanup(func() {
		time.Local = local
	})

	dir := t.TempDir()

	_, err := runApp(t, filepath.Join(dir, "tally.conf"), "add", "-l", "10", "--date", "2024-03-05", "standup")
	require.NoError(t, err)

	assert.Equal(
		t,
		"date,length,task\n2024-03-05,10.00,standup\n",
		testutil.ReadFile(t, filepath.Join(dir, "work_entries.csv")),
	)
}
