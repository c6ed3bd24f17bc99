package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tally/internal/config"
	"github.com/ayoisaiah/tally/internal/logutil"
	"github.com/ayoisaiah/tally/internal/machine"
	"github.com/ayoisaiah/tally/internal/osutil"
	"github.com/ayoisaiah/tally/internal/pathutil"
	"github.com/ayoisaiah/tally/internal/recorder"
	"github.com/ayoisaiah/tally/internal/records"
	"github.com/ayoisaiah/tally/internal/settings"
	"github.com/ayoisaiah/tally/internal/timeutil"
	"github.com/ayoisaiah/tally/internal/ui"
	"github.com/ayoisaiah/tally/report"
	"github.com/ayoisaiah/tally/stats"
	"github.com/ayoisaiah/tally/timer"
)

const (
	envNoColor      = "NO_COLOR"
	envTallyNoColor = "TALLY_NO_COLOR"

	metaConfig = "config"
	metaLog    = "log"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// appConfig returns the configuration loaded in beforeAction.
func appConfig(ctx *cli.Context) *config.Config {
	cfg, _ := ctx.App.Metadata[metaConfig].(*config.Config)

	return cfg
}

// openSettings opens the settings file chosen on the command-line, or the
// default one.
func openSettings(ctx *cli.Context) (*settings.Store, error) {
	p := firstNonEmptyString(
		appConfig(ctx).CLI.SettingsPath,
		pathutil.SettingsFilePath(),
	)

	return settings.Open(p)
}

// openRecords opens the records file named in the settings file.
func openRecords(ctx *cli.Context) (*records.Store, error) {
	s, err := openSettings(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.RecordsPath()
	if err != nil {
		return nil, err
	}

	return records.Open(p)
}

// filteredRecords reads the records selected by --since or --period.
func filteredRecords(
	ctx *cli.Context,
) ([]records.TaskRecord, *config.FilterConfig, error) {
	filter, err := config.Filter(ctx, time.Now())
	if err != nil {
		return nil, nil, err
	}

	store, err := openRecords(ctx)
	if err != nil {
		return nil, nil, err
	}

	recs, err := store.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	recs, err = records.Filter(recs, filter.Since)
	if err != nil {
		return nil, nil, err
	}

	return recs, filter, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, string(b))

	return nil
}

// listAction handles the list command and prints a table of the recorded
// sessions.
func listAction(ctx *cli.Context) error {
	recs, filter, err := filteredRecords(ctx)
	if err != nil {
		return err
	}

	if filter.JSON {
		if recs == nil {
			recs = []records.TaskRecord{}
		}

		return printJSON(config.Stdout, recs)
	}

	return listRecords(config.Stdout, recs)
}

// summaryAction totals the recorded time per task.
func summaryAction(ctx *cli.Context) error {
	recs, filter, err := filteredRecords(ctx)
	if err != nil {
		return err
	}

	totals, err := stats.Compute(recs)
	if err != nil {
		return err
	}

	if filter.JSON {
		return printJSON(config.Stdout, totals)
	}

	totals.Show(config.Stdout, filter.Since)

	return nil
}

// parseLength reads a session length. Bare numbers are minutes.
func parseLength(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		if dur <= 0 {
			return 0, errInvalidLength.Fmt(s)
		}

		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil || mins <= 0 {
		return 0, errInvalidLength.Fmt(s)
	}

	return mins, nil
}

// promptTask asks for the task description when none was given on the
// command-line.
func promptTask() (string, error) {
	var task string

	err := huh.NewInput().
		Title("What did you work on?").
		Value(&task).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errEmptyTask
			}

			return nil
		}).
		Run()
	if err != nil {
		return "", err
	}

	return task, nil
}

// addAction records a finished session without running the stopwatch.
func addAction(ctx *cli.Context) error {
	length, err := parseLength(ctx.String("length"))
	if err != nil {
		return err
	}

	now := time.Now()

	if d := ctx.String("date"); d != "" {
		day, err := timeutil.FromStr(d, now)
		if err != nil {
			return err
		}

		// records are stamped in UTC, so pin the day the user named
		now = timeutil.CalendarDay(day)
	}

	task := strings.Join(ctx.Args().Slice(), " ")
	if task == "" {
		task, err = promptTask()
		if err != nil {
			return err
		}
	}

	store, err := openRecords(ctx)
	if err != nil {
		return err
	}

	rec := recorder.New(store, recorder.WithClock(func() time.Time {
		return now
	}))

	rec.Advance(length)

	r, err := rec.Write(task)
	if err != nil {
		return err
	}

	report.RecordAdded(r, store.Path())

	return nil
}

// editConfigAction handles the edit-config command which opens the settings
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	var p string

	if ctx.Bool("preferences") {
		p = pathutil.ConfigFilePath()
	} else {
		// create the file first so there is something to edit
		s, err := openSettings(ctx)
		if err != nil {
			return err
		}

		p = s.Path()
	}

	args, err := shellquote.Split(editor)
	if err != nil || len(args) == 0 {
		return errInvalidEditor.Fmt(editor)
	}

	cmd := exec.Command(args[0], append(args[1:], p)...)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// defaultAction runs the stopwatch.
func defaultAction(ctx *cli.Context) error {
	cfg := appConfig(ctx)

	s, err := openSettings(ctx)
	if err != nil {
		return err
	}

	m, err := machine.Load(s)
	if err != nil {
		return err
	}

	t := timer.New(m, timer.NewStyle(cfg.Display.AccentColor, cfg.Display.DarkTheme))

	slog.InfoContext(ctx.Context, "starting stopwatch", slog.String("settings", s.Path()))

	_, err = tea.NewProgram(t).Run()
	if err != nil {
		return err
	}

	return t.Err()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TALLY_NO_COLOR is set
	if _, exists := os.LookupEnv(envTallyNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	cfg, err := config.New(
		config.WithPromptConfig(pathutil.ConfigFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	logger, closer, err := logutil.New(logutil.Options{
		Path:       pathutil.LogFilePath(),
		Level:      cfg.SlogLevel(),
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return err
	}

	slog.SetDefault(logger)

	ctx.App.Metadata[metaConfig] = cfg
	ctx.App.Metadata[metaLog] = closer

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting tally")

	if closer, ok := ctx.App.Metadata[metaLog].(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
