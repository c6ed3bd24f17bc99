// Package report prints the outcome of a command to the terminal
package report

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/records"
	"github.com/ayoisaiah/tally/internal/ui"
)

func RecordAdded(r records.TaskRecord, path string) {
	pterm.Success.Printfln(
		"recorded %s minutes of %s on %s in %s",
		ui.Green(r.Length),
		ui.Highlight(r.Task),
		r.Date,
		path,
	)
}

func Error(err error) {
	pterm.Error.Println(err)
}
