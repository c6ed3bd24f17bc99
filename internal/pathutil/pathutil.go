// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// Paths holds all application path configurations.
type Paths struct {
	configDir        string
	configFileName   string
	settingsFileName string
	logFileName      string

	// Computed absolute paths
	configFilePath   string
	settingsFilePath string
	logFilePath      string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:        "tally",
			configFileName:   "config.yml",
			settingsFileName: "tally.conf",
			logFileName:      "tally.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

// ConfigFilePath is the YAML preferences file.
func ConfigFilePath() string {
	return Must().configFilePath
}

// SettingsFilePath is the INI file holding the records file location.
func SettingsFilePath() string {
	return Must().settingsFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	tallyEnv := strings.TrimSpace(os.Getenv("TALLY_ENV"))
	if tallyEnv != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", tallyEnv)
		p.settingsFileName = fmt.Sprintf("tally_%s.conf", tallyEnv)
		p.logFileName = fmt.Sprintf("tally_%s.log", tallyEnv)
	}
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.configDir, p.configFileName),
	)
	if err != nil {
		return err
	}

	p.settingsFilePath, err = xdg.ConfigFile(
		filepath.Join(p.configDir, p.settingsFileName),
	)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
