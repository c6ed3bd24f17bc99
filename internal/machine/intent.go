package machine

// Intent is a user or timer event handled by the machine.
type Intent interface {
	intent()
}

type (
	// StartStop toggles the stopwatch.
	StartStop struct{}

	// Reset zeroes the stopwatch.
	Reset struct{}

	// Record stops the stopwatch and asks for a task description.
	Record struct{}

	// Save writes the finished session with the given task description.
	Save struct {
		Task string
	}

	// Cancel leaves an input screen without saving.
	Cancel struct{}

	// OpenSettings shows the settings screen.
	OpenSettings struct{}

	// ChangeSettings stores a new records file path.
	ChangeSettings struct {
		Path string
	}

	// Tick advances a running stopwatch by Resolution.
	Tick struct{}

	// Quit ends the session without saving anything.
	Quit struct{}
)

func (StartStop) intent()      {}
func (Reset) intent()          {}
func (Record) intent()         {}
func (Save) intent()           {}
func (Cancel) intent()         {}
func (OpenSettings) intent()   {}
func (ChangeSettings) intent() {}
func (Tick) intent()           {}
func (Quit) intent()           {}
