package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tally/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the tally app instance.
func Get() *cli.App {
	tallyApp := &cli.App{
		Name: "tally",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		tally is a stopwatch for the command-line. Time a work session, describe
		what you did, and tally appends it to a CSV file you can report on later.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List recorded sessions",
				Flags: []cli.Flag{
					sinceFlag,
					periodFlag,
					jsonFlag,
				},
				Action: listAction,
			},
			{
				Name: "summary",
				Usage: `
				Summarise the time spent on each task. Defaults to every 
				recorded session`,
				Flags: []cli.Flag{
					sinceFlag,
					periodFlag,
					jsonFlag,
				},
				Action: summaryAction,
			},
			{
				Name:      "add",
				Usage:     "Record a finished session without starting the stopwatch",
				ArgsUsage: "[TASK]",
				Flags: []cli.Flag{
					lengthFlag,
					dateFlag,
				},
				Action: addAction,
			},
			{
				Name:  "edit-config",
				Usage: "Edit the settings file",
				Flags: []cli.Flag{
					preferencesFlag,
				},
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			settingsFlag,
			logLevelFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return tallyApp
}
