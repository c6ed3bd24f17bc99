package app

import "github.com/urfave/cli/v2"

var (
	settingsFlag = &cli.StringFlag{
		Name:    "settings",
		Usage:   "Path to the settings file that names the records file",
		EnvVars: []string{"TALLY_SETTINGS"},
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level for this run: debug, info, warn or error",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include records from this date onwards (e.g. '2024-03-01' or '2 weeks ago')",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: all-time, today, yesterday, 7days, 14days, 30days, 90days, 180days or 365days",
		Value:   "all-time",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	lengthFlag = &cli.StringFlag{
		Name:     "length",
		Aliases:  []string{"l"},
		Usage:    "Length of the session (e.g. 25m, 1h30m, or 45 for minutes)",
		Required: true,
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Date the session happened (e.g. 'yesterday'). Defaults to today",
	}

	preferencesFlag = &cli.BoolFlag{
		Name:  "preferences",
		Usage: "Edit the display and logging preferences instead of the settings file",
	}
)
