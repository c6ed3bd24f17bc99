package app

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/tally/internal/records"
	"github.com/ayoisaiah/tally/internal/ui"
)

const (
	noRecordsMsg = "No records found for the specified time range"
)

// printRecordsTable prints a table of records to the command-line.
func printRecordsTable(w io.Writer, recs []records.TaskRecord) {
	tableBody := make([][]string, len(recs))

	for i := range recs {
		r := recs[i]

		row := []string{
			fmt.Sprintf("%d", i+1),
			r.Date,
			ui.Green(r.Length),
			r.Task,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "DATE", "MINUTES", "TASK"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listRecords prints out a table of records.
func listRecords(w io.Writer, recs []records.TaskRecord) error {
	if len(recs) == 0 {
		pterm.Info.WithWriter(w).Println(noRecordsMsg)
		return nil
	}

	printRecordsTable(w, recs)

	return nil
}
