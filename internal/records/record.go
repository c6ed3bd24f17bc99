// Package records persists completed task records to a CSV file
package records

import (
	"strconv"
	"time"

	"github.com/ayoisaiah/tally/internal/timeutil"
)

// TaskRecord is one completed session. Length holds minutes with two
// decimals.
type TaskRecord struct {
	Date   string `json:"date"`
	Length string `json:"length"`
	Task   string `json:"task"`
}

// ForDate builds a record stamped with the calendar date of t in UTC.
func ForDate(t time.Time, length, task string) TaskRecord {
	return TaskRecord{
		Date:   t.UTC().Format(timeutil.DateLayout),
		Length: length,
		Task:   task,
	}
}

// Day parses the record's date.
func (r TaskRecord) Day() (time.Time, error) {
	d, err := time.Parse(timeutil.DateLayout, r.Date)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(r.Date).Wrap(err)
	}

	return d, nil
}

// Minutes parses the record's length.
func (r TaskRecord) Minutes() (float64, error) {
	m, err := strconv.ParseFloat(r.Length, 64)
	if err != nil {
		return 0, errInvalidLength.Fmt(r.Length).Wrap(err)
	}

	return m, nil
}

// Filter returns the records dated on or after since. A zero since keeps
// every record.
func Filter(recs []TaskRecord, since time.Time) ([]TaskRecord, error) {
	if since.IsZero() {
		return recs, nil
	}

	// record dates carry no zone, so compare calendar days
	start := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, time.UTC)

	var out []TaskRecord

	for i := range recs {
		d, err := recs[i].Day()
		if err != nil {
			return nil, err
		}

		if d.Before(start) {
			continue
		}

		out = append(out, recs[i])
	}

	return out, nil
}
