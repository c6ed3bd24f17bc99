// Package stats reports totals over the recorded work sessions
package stats

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/records"
	"github.com/ayoisaiah/tally/internal/timeutil"
	"github.com/ayoisaiah/tally/internal/ui"
)

const (
	barChartChar  = "▇"
	noRecordsMsg  = "No records found for the specified time range"
	reportDateFmt = "January 02, 2006"
)

// TaskTotal is the time spent on one task description.
type TaskTotal struct {
	Task     string  `json:"task"`
	Minutes  float64 `json:"minutes"`
	Sessions int     `json:"sessions"`
}

// Totals summarises a set of records.
type Totals struct {
	// minutes per day and per weekday
	daily   map[time.Time]float64
	weekly  map[time.Weekday]float64
	First   time.Time   `json:"first"`
	Last    time.Time   `json:"last"`
	Tasks   []TaskTotal `json:"tasks"`
	Minutes float64     `json:"minutes"`
	Count   int         `json:"sessions"`
}

// Compute adds up recs. Tasks are ordered naturally by description.
func Compute(recs []records.TaskRecord) (*Totals, error) {
	t := &Totals{
		daily:  make(map[time.Time]float64),
		weekly: make(map[time.Weekday]float64),
	}

	byTask := make(map[string]*TaskTotal)

	for i := range recs {
		r := recs[i]

		day, err := r.Day()
		if err != nil {
			return nil, err
		}

		mins, err := r.Minutes()
		if err != nil {
			return nil, err
		}

		tt, ok := byTask[r.Task]
		if !ok {
			tt = &TaskTotal{Task: r.Task}
			byTask[r.Task] = tt
		}

		tt.Minutes += mins
		tt.Sessions++

		t.Minutes += mins
		t.Count++
		t.daily[day] += mins
		t.weekly[day.Weekday()] += mins

		if t.First.IsZero() || day.Before(t.First) {
			t.First = day
		}

		if day.After(t.Last) {
			t.Last = day
		}
	}

	t.Tasks = make([]TaskTotal, 0, len(byTask))
	for _, v := range byTask {
		t.Tasks = append(t.Tasks, *v)
	}

	slices.SortFunc(t.Tasks, func(a, b TaskTotal) int {
		switch {
		case natural.Less(a.Task, b.Task):
			return -1
		case natural.Less(b.Task, a.Task):
			return 1
		}

		return 0
	})

	return t, nil
}

// FormatMinutes renders a minutes value as hours and minutes.
func FormatMinutes(mins float64) string {
	h, m := timeutil.MinsToHoursAndMins(timeutil.Round(mins))
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

func (t *Totals) summary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	timeLogged := fmt.Sprintf(
		"Time logged: %s\n",
		ui.Green(FormatMinutes(t.Minutes)),
	)

	sessions := fmt.Sprintln("Sessions recorded:", ui.Green(t.Count))

	days := len(t.daily)
	avg := fmt.Sprintf(
		"Daily average: %s\n",
		ui.Green(FormatMinutes(t.Minutes/float64(max(days, 1)))),
	)

	return header + timeLogged + sessions + avg
}

func (t *Totals) tasks() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Tasks")))

	for _, v := range t.Tasks {
		builder.WriteString(fmt.Sprintf(
			"%s: %s (%d)\n",
			ui.Highlight(v.Task),
			ui.Green(FormatMinutes(v.Minutes)),
			v.Sessions,
		))
	}

	return builder.String()
}

func barChart(header string, bars pterm.Bars) string {
	if len(bars) == 0 {
		return ""
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return ui.Blue("\n"+header) + "\n" + chart
}

func (t *Totals) dailyChart() string {
	days := make([]time.Time, 0, len(t.daily))
	for d := range t.daily {
		days = append(days, d)
	}

	slices.SortFunc(days, func(a, b time.Time) int {
		return a.Compare(b)
	})

	bars := make(pterm.Bars, 0, len(days))

	for _, d := range days {
		bars = append(bars, pterm.Bar{
			Label: d.Format("Jan 02, 2006"),
			Value: timeutil.Round(t.daily[d]),
		})
	}

	return barChart("Daily breakdown (minutes)", bars)
}

func (t *Totals) weeklyChart() string {
	days := make([]time.Weekday, 0, len(t.weekly))
	for d := range t.weekly {
		days = append(days, d)
	}

	slices.SortFunc(days, func(a, b time.Weekday) int {
		return cmp.Compare(a, b)
	})

	bars := make(pterm.Bars, 0, len(days))

	for _, d := range days {
		bars = append(bars, pterm.Bar{
			Label: d.String(),
			Value: timeutil.Round(t.weekly[d]),
		})
	}

	return barChart("Weekday breakdown (minutes)", bars)
}

// Show writes the report for the records dated from since onwards. A zero
// since starts the report at the first record.
func (t *Totals) Show(w io.Writer, since time.Time) {
	if t.Count == 0 {
		pterm.Info.WithWriter(w).Println(noRecordsMsg)
		return
	}

	if since.IsZero() {
		since = t.First
	}

	timePeriod := "Reporting period: " +
		since.Format(reportDateFmt) + " - " + t.Last.Format(reportDateFmt)

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln(timePeriod)

	output := fmt.Sprint(
		header,
		t.summary(),
		t.tasks(),
		t.dailyChart(),
		t.weeklyChart(),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}
