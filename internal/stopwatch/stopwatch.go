// Package stopwatch keeps the elapsed time of a work session
package stopwatch

import "time"

// Stopwatch tracks elapsed time at second resolution. Elapsed time only grows
// through Advance; the running flag is informational for callers deciding
// whether to advance.
type Stopwatch struct {
	elapsed time.Duration
	running bool
}

// New returns a stopped stopwatch at zero.
func New() *Stopwatch {
	return &Stopwatch{}
}

// Start marks the stopwatch as running.
func (s *Stopwatch) Start() {
	s.running = true
}

// Stop marks the stopwatch as stopped.
func (s *Stopwatch) Stop() {
	s.running = false
}

// Reset stops the stopwatch and clears the elapsed time.
func (s *Stopwatch) Reset() {
	s.running = false
	s.elapsed = 0
}

// Advance adds d, truncated to whole seconds, to the elapsed time.
func (s *Stopwatch) Advance(d time.Duration) {
	d = d.Truncate(time.Second)
	if d <= 0 {
		return
	}

	s.elapsed += d
}

func (s *Stopwatch) Running() bool {
	return s.running
}

// Seconds returns the elapsed time in whole seconds.
func (s *Stopwatch) Seconds() int64 {
	return int64(s.elapsed / time.Second)
}

// Minutes returns the elapsed time as fractional minutes.
func (s *Stopwatch) Minutes() float64 {
	return float64(s.Seconds()) / 60
}
