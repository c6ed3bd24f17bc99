// Package machine holds the application state machine. Every change to the
// stopwatch, the records file and the settings file goes through Handle.
package machine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ayoisaiah/tally/internal/records"
	"github.com/ayoisaiah/tally/internal/recorder"
	"github.com/ayoisaiah/tally/internal/settings"
)

// Recorder times sessions and writes them out.
type Recorder interface {
	Start()
	Stop()
	Reset()
	Advance(d time.Duration)
	ElapsedForDisplay() string
	Write(task string) (records.TaskRecord, error)
}

// SettingsStore is the settings file as seen from the settings screen.
type SettingsStore interface {
	Get(key string) (string, error)
	Set(key, value string)
	Persist() error
}

// Machine is the four state application model.
type Machine struct {
	rec           Recorder
	settings      SettingsStore
	last          *records.TaskRecord
	settingsInput string
	state         State
	quitting      bool
}

// New returns a machine in the idle state.
func New(rec Recorder, s SettingsStore) *Machine {
	return &Machine{
		rec:      rec,
		settings: s,
		state:    StateIdle,
	}
}

// Load opens the records file named in s and returns a machine recording to
// it.
func Load(s *settings.Store, opts ...recorder.Option) (*Machine, error) {
	p, err := s.RecordsPath()
	if err != nil {
		return nil, err
	}

	store, err := records.Open(p)
	if err != nil {
		return nil, err
	}

	return New(recorder.New(store, opts...), s), nil
}

func (m *Machine) State() State {
	return m.state
}

// Quitting reports whether Quit has been handled.
func (m *Machine) Quitting() bool {
	return m.quitting
}

// Elapsed returns the stopwatch reading as "MM:SS".
func (m *Machine) Elapsed() string {
	return m.rec.ElapsedForDisplay()
}

// SettingsInput returns the records path loaded when the settings screen
// was opened.
func (m *Machine) SettingsInput() string {
	return m.settingsInput
}

// LastSaved returns the most recent record written in this session.
func (m *Machine) LastSaved() (records.TaskRecord, bool) {
	if m.last == nil {
		return records.TaskRecord{}, false
	}

	return *m.last, true
}

// Handle applies intent to the machine. Intents that have no meaning in the
// current state are ignored. If an error is returned the state is unchanged.
func (m *Machine) Handle(intent Intent) error {
	if m.quitting {
		return nil
	}

	from := m.state

	err := m.transition(intent)
	if err != nil {
		slog.Error(
			"intent failed",
			slog.String("state", from.String()),
			slog.String("intent", fmt.Sprintf("%T", intent)),
			slog.Any("error", err),
		)

		return err
	}

	if from != m.state {
		slog.Info(
			"state changed",
			slog.String("from", from.String()),
			slog.String("to", m.state.String()),
		)
	}

	return nil
}

func (m *Machine) transition(intent Intent) error {
	switch i := intent.(type) {
	case Quit:
		m.quitting = true

	case OpenSettings:
		p, err := m.settings.Get(settings.KeyRecordsFilePath)
		if err != nil {
			return err
		}

		m.settingsInput = p
		m.state = StateSettings

	case StartStop:
		switch m.state {
		case StateIdle:
			m.rec.Start()
			m.state = StateRunning
		case StateRunning:
			m.rec.Stop()
			m.state = StateIdle
		}

	case Reset:
		if m.state == StateIdle || m.state == StateRunning {
			m.rec.Reset()
			m.state = StateIdle
		}

	case Record:
		if m.state == StateIdle || m.state == StateRunning {
			m.rec.Stop()
			m.state = StateFinished
		}

	case Tick:
		if m.state == StateRunning {
			m.rec.Advance(Resolution)
		}

	case Save:
		if m.state != StateFinished {
			return nil
		}

		rec, err := m.rec.Write(i.Task)
		if err != nil {
			return err
		}

		m.rec.Reset()
		m.last = &rec
		m.state = StateIdle

	case ChangeSettings:
		if m.state != StateSettings {
			return nil
		}

		m.settings.Set(settings.KeyRecordsFilePath, i.Path)

		err := m.settings.Persist()
		if err != nil {
			return err
		}

		m.settingsInput = ""
		m.state = StateIdle

	case Cancel:
		if m.state == StateFinished || m.state == StateSettings {
			m.settingsInput = ""
			m.state = StateIdle
		}
	}

	return nil
}
