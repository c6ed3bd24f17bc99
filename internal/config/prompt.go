package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
████████╗ █████╗ ██╗     ██╗  ██╗   ██╗
╚══██╔══╝██╔══██╗██║     ██║  ╚██╗ ██╔╝
   ██║   ███████║██║     ██║   ╚████╔╝
   ██║   ██╔══██║██║     ██║    ╚██╔╝
   ██║   ██║  ██║███████╗███████╗██║
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	AccentColor string
	DarkTheme   bool
}

// WithPromptConfig returns an Option that asks for display preferences the
// first time tally runs, before the config file exists.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return err
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		AccentColor: defaultAccent,
		DarkTheme:   true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure tally for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the preferences file later to change them.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Terminal background").
				Options(
					huh.NewOption("Dark", true),
					huh.NewOption("Light", false),
				).
				Value(&opts.DarkTheme),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Accent color").
				Options(
					huh.NewOption("Lime", defaultAccent),
					huh.NewOption("Cyan", "#12EAEA"),
					huh.NewOption("Mauve", "#C492B1"),
					huh.NewOption("Amber", "#F5A623"),
				).
				Value(&opts.AccentColor),
		),
	).WithInput(Stdin).WithOutput(Stdout)

	err := form.Run()
	if err != nil {
		return opts, errPrompt.Wrap(err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Display.AccentColor = opts.AccentColor
	c.Display.DarkTheme = opts.DarkTheme
}
