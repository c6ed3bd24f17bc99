// Package recorder ties the stopwatch to the records file
package recorder

import (
	"time"

	"github.com/ayoisaiah/tally/internal/records"
	"github.com/ayoisaiah/tally/internal/stopwatch"
	"github.com/ayoisaiah/tally/internal/timeutil"
)

// Recorder times a session and writes it to the records file once the user
// labels it.
type Recorder struct {
	watch *stopwatch.Stopwatch
	store *records.Store
	now   func() time.Time
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock replaces the clock used to date new records.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		r.now = now
	}
}

// New returns a Recorder with a fresh stopwatch writing to store.
func New(store *records.Store, opts ...Option) *Recorder {
	r := &Recorder{
		watch: stopwatch.New(),
		store: store,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Recorder) Start() {
	r.watch.Start()
}

func (r *Recorder) Stop() {
	r.watch.Stop()
}

func (r *Recorder) Reset() {
	r.watch.Reset()
}

func (r *Recorder) Running() bool {
	return r.watch.Running()
}

// Advance moves the stopwatch forward by d.
func (r *Recorder) Advance(d time.Duration) {
	r.watch.Advance(d)
}

// Seconds returns the elapsed time in whole seconds.
func (r *Recorder) Seconds() int64 {
	return r.watch.Seconds()
}

// ElapsedForDisplay returns the elapsed time as "MM:SS".
func (r *Recorder) ElapsedForDisplay() string {
	return timeutil.Clock(r.watch.Seconds())
}

// LengthForRecord returns the elapsed minutes with two decimals.
func (r *Recorder) LengthForRecord() string {
	return timeutil.DecimalMinutes(r.watch.Minutes())
}

// RecordsPath returns the file new records are written to.
func (r *Recorder) RecordsPath() string {
	return r.store.Path()
}

// Write appends a record of the current session labelled with task. The
// stopwatch is left untouched; callers reset it once the write succeeds.
func (r *Recorder) Write(task string) (records.TaskRecord, error) {
	rec := records.ForDate(r.now(), r.LengthForRecord(), task)

	recs, err := r.store.ReadAll()
	if err != nil {
		return records.TaskRecord{}, err
	}

	recs = append(recs, rec)

	err = r.store.WriteAll(recs)
	if err != nil {
		return records.TaskRecord{}, err
	}

	return rec, nil
}
