package machine

import "time"

// State is the screen the application is on.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFinished
	StateSettings
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateSettings:
		return "settings"
	}

	return "unknown"
}

// Resolution is how often a running stopwatch is advanced.
const Resolution = time.Second

// TickSource describes a periodic tick the UI must deliver to the machine.
type TickSource struct {
	Interval time.Duration
}

// ActiveSubscription reports which tick, if any, should be delivered while
// the machine is in state s. Only a running stopwatch is ticked.
func ActiveSubscription(s State) (TickSource, bool) {
	if s != StateRunning {
		return TickSource{}, false
	}

	return TickSource{Interval: Resolution}, true
}
