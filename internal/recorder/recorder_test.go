package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tally/internal/records"
	"github.com/ayoisaiah/tally/internal/testutil"
)

var fixedNow = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

func newRecorder(t *testing.T) *Recorder {
	t.Helper()

	store, err := records.Open(filepath.Join(t.TempDir(), "work_entries.csv"))
	require.NoError(t, err)

	return New(store, WithClock(func() time.Time {
		return fixedNow
	}))
}

func TestElapsedForDisplay(t *testing.T) {
	testCases := []struct {
		Want    string
		Elapsed time.Duration
	}{
		{Elapsed: 0, Want: "00:00"},
		{Elapsed: 125 * time.Second, Want: "02:05"},
		{Elapsed: 3661 * time.Second, Want: "61:01"},
	}

	for _, tc := range testCases {
		t.Run(tc.Want, func(t *testing.T) {
			r := newRecorder(t)
			r.Advance(tc.Elapsed)

			assert.Equal(t, tc.Want, r.ElapsedForDisplay())
		})
	}
}

func TestDelegation(t *testing.T) {
	r := newRecorder(t)

	r.Start()
	assert.True(t, r.Running())

	r.Advance(3 * time.Second)
	r.Stop()
	assert.False(t, r.Running())
	assert.Equal(t, int64(3), r.Seconds())

	r.Start()
	r.Reset()
	assert.False(t, r.Running())
	assert.Equal(t, int64(0), r.Seconds())
}

func TestWrite(t *testing.T) {
	r := newRecorder(t)
	r.Advance(90 * time.Second)

	rec, err := r.Write("wrote spec")
	require.NoError(t, err)

	want := records.TaskRecord{
		Date:   "2024-03-10",
		Length: "1.50",
		Task:   "wrote spec",
	}

	assert.Equal(t, want, rec)

	// writing does not reset the stopwatch
	assert.Equal(t, int64(90), r.Seconds())

	assert.Equal(
		t,
		"date,length,task\n2024-03-10,1.50,wrote spec\n",
		testutil.ReadFile(t, r.RecordsPath()),
	)
}

func TestWriteAppends(t *testing.T) {
	r := newRecorder(t)

	r.Advance(5 * time.Second)
	_, err := r.Write("first")
	require.NoError(t, err)

	r.Reset()
	r.Advance(30 * time.Minute)
	_, err = r.Write("second, with comma")
	require.NoError(t, err)

	assert.Equal(
		t,
		"date,length,task\n"+
			"2024-03-10,0.08,first\n"+
			"2024-03-10,30.00,\"second, with comma\"\n",
		testutil.ReadFile(t, r.RecordsPath()),
	)
}

func TestWriteRejectsCorruptRecords(t *testing.T) {
	dir := t.TempDir()
	p := testutil.WriteFile(t, dir, "work_entries.csv", "date,length,task\nbroken\n")

	store, err := records.Open(p)
	require.NoError(t, err)

	r := New(store)
	r.Advance(time.Minute)

	_, err = r.Write("lost?")
	assert.ErrorIs(t, err, records.ErrMalformedRow)

	// the corrupt file is left as it was
	assert.Equal(t, "date,length,task\nbroken\n", testutil.ReadFile(t, p))
}
