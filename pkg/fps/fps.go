// Package fps drives the on-screen frame-rate counter. The counter text is
// refreshed once per timer period, or immediately after the counter has been
// switched on or off.
package fps

import (
	"fmt"
	"time"
)

// RefreshPeriod is how often the FPS line is recomputed while running.
const RefreshPeriod = time.Second

// Placeholder is shown while no frame-rate sample is available.
const Placeholder = "FPS: N/A"

// Source provides a rolling frame-rate average.
type Source interface {
	Average() (fps float64, ok bool)
}

// State holds the refresh timer and the update-now flag.
type State struct {
	Timer     *Timer
	UpdateNow bool
}

// NewState returns a running state that refreshes on the first update.
func NewState() *State {
	return &State{
		Timer:     NewTimer(RefreshPeriod, Repeating),
		UpdateNow: true,
	}
}

// Enable resumes the counter and requests an immediate refresh.
func (s *State) Enable() {
	s.Timer.Unpause()
	s.UpdateNow = true
}

// Disable pauses the counter and requests an immediate refresh.
func (s *State) Disable() {
	s.Timer.Pause()
	s.UpdateNow = true
}

// Enabled reports whether the counter is running.
func (s *State) Enabled() bool {
	return !s.Timer.Paused()
}

// Toggle flips between enabled and disabled.
func (s *State) Toggle() {
	if s.Enabled() {
		s.Disable()
	} else {
		s.Enable()
	}
}

// Line renders the FPS line for the current state: blank while paused, the
// rounded average while running, Placeholder without a sample.
func (s *State) Line(src Source) string {
	if !s.Enabled() {
		return ""
	}
	if src != nil {
		if v, ok := src.Average(); ok {
			return fmt.Sprintf("FPS: %.0f", v)
		}
	}
	return Placeholder
}

// Due reports whether the FPS line must be recomputed this frame. The timer is
// not ticked when an immediate refresh is already pending.
func (s *State) Due(delta time.Duration) bool {
	return s.UpdateNow || s.Timer.Tick(delta).JustFinished()
}
