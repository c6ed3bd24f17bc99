package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tally/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SettingsPath string
	LogLevel     string
	NoColor      bool
}

// FilterConfig selects the records shown by the reporting commands.
type FilterConfig struct {
	Since  time.Time
	Period timeutil.Period
	JSON   bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			SettingsPath: ctx.String("settings"),
			LogLevel:     ctx.String("log-level"),
			NoColor:      ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	c.CLI.SettingsPath = opts.SettingsPath
	c.CLI.NoColor = opts.NoColor

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}
}

// Filter reads the --since, --period and --json flags. --since takes
// precedence over --period, and no flags at all selects every record.
// Days are counted on the UTC calendar that record dates use.
func Filter(ctx *cli.Context, now time.Time) (*FilterConfig, error) {
	now = now.UTC()

	f := &FilterConfig{
		Period: timeutil.Period(ctx.String("period")),
		JSON:   ctx.Bool("json"),
	}

	if f.Period == "" {
		f.Period = timeutil.PeriodAllTime
	}

	if s := ctx.String("since"); s != "" {
		since, err := timeutil.FromStr(s, now)
		if err != nil {
			return nil, errInvalidSince.Wrap(err)
		}

		f.Since = timeutil.RoundToStart(since)

		return f, nil
	}

	since, err := timeutil.PeriodStart(f.Period, now)
	if err != nil {
		return nil, err
	}

	f.Since = since

	return f, nil
}
