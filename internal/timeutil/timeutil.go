// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/tally/internal/apperr"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
)

// DateLayout is the layout of the date column in the records file.
const DateLayout = "2006-01-02"

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

var (
	errInvalidPeriod = &apperr.Error{
		Message: "invalid period %q: expected one of %s",
	}

	errParsingDate = &apperr.Error{
		Message: "unable to parse %q as a date",
	}
)

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// SecsToMinsAndSecs splits a seconds value into whole minutes and the
// remaining seconds. Minutes are not wrapped at the hour.
func SecsToMinsAndSecs(secs int64) (mins, rem int64) {
	return secs / secondsInAMinute, secs % secondsInAMinute
}

// Clock formats a seconds value as "MM:SS".
func Clock(secs int64) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// DecimalMinutes formats fractional minutes with two decimals.
func DecimalMinutes(mins float64) string {
	return fmt.Sprintf("%.2f", mins)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// CalendarDay returns noon in UTC on the calendar day of t in its own
// location. Converting the result to UTC keeps the same date.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// PeriodStart returns the first day covered by p relative to now. The zero
// time is returned for PeriodAllTime.
func PeriodStart(p Period, now time.Time) (time.Time, error) {
	offset, ok := Range[p]
	if !ok {
		names := make([]string, len(PeriodCollection))
		for i := range PeriodCollection {
			names[i] = string(PeriodCollection[i])
		}

		return time.Time{}, errInvalidPeriod.Fmt(p, strings.Join(names, ", "))
	}

	if p == PeriodAllTime {
		return time.Time{}, nil
	}

	return RoundToStart(now.AddDate(0, 0, offset)), nil
}

// FromStr parses absolute or relative dates such as "2024-03-01" or
// "2 weeks ago".
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errParsingDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}
